// Package creative renders platform-specific ad content from campaign
// configurations. Each supported platform has its own builder; the Factory
// resolves platforms through a static table so the set stays closed.
package creative

import (
	"fmt"
	"strings"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// builders is the closed dispatch table from platform to builder
// constructor. Adding a platform means adding a row here; there is no
// runtime registration.
var builders = map[domain.Platform]func() port.AdBuilder{
	domain.PlatformFacebook:  func() port.AdBuilder { return newFacebookBuilder() },
	domain.PlatformInstagram: func() port.AdBuilder { return newInstagramBuilder() },
	domain.PlatformTwitter:   func() port.AdBuilder { return newTwitterBuilder() },
	domain.PlatformGoogleAds: func() port.AdBuilder { return newGoogleAdsBuilder() },
}

// Factory implements port.AdBuilderFactory over the static table.
type Factory struct{}

// NewFactory returns the ad builder factory.
func NewFactory() *Factory { return &Factory{} }

// BuilderFor returns a fresh builder for the platform. Unknown platforms
// fail without constructing anything.
func (f *Factory) BuilderFor(p domain.Platform) (port.AdBuilder, error) {
	ctor, ok := builders[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", port.ErrUnsupportedPlatform, p)
	}
	return ctor(), nil
}

// renderText substitutes the {cta} placeholder in a template. Templates
// without placeholders pass through unchanged.
func renderText(template, cta string) string {
	return strings.ReplaceAll(template, "{cta}", cta)
}

// visualRef resolves image options into an asset reference string, or ""
// when the campaign carries no visual. Width and height default per
// platform via fallback dimensions.
func visualRef(opts *domain.ImageOptions, defW, defH int) string {
	if opts == nil {
		return ""
	}
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = defW
	}
	if h == 0 {
		h = defH
	}
	return fmt.Sprintf("%s?w=%d&h=%d", opts.Source, w, h)
}
