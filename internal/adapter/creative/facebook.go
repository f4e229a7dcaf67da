package creative

import (
	"fmt"
	"strings"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// facebook feed ads: primary text up to 125 characters before truncation
// in the feed, square visual by default.
const (
	facebookPrimaryTextLimit = 125
	facebookDefaultDimension = 1080
)

type facebookBuilder struct {
	platform domain.Platform
}

func newFacebookBuilder() *facebookBuilder {
	return &facebookBuilder{platform: domain.PlatformFacebook}
}

// BuildAd renders a facebook feed ad. Text past the feed truncation point
// is kept but the builder refuses empty rendered text.
func (b *facebookBuilder) BuildAd(cfg domain.CampaignConfig) (domain.AdContent, error) {
	text := renderText(cfg.TextTemplate, cfg.CallToAction)
	if strings.TrimSpace(text) == "" {
		return domain.AdContent{}, fmt.Errorf("%w: rendered text is empty", port.ErrInvalidConfig)
	}
	return domain.AdContent{
		Platform: b.platform,
		Content:  text,
		Headline: truncate(text, facebookPrimaryTextLimit),
		Visual:   visualRef(cfg.ImageOptions, facebookDefaultDimension, facebookDefaultDimension),
		CTA:      cfg.CallToAction,
		Status:   domain.ContentStatusGenerated,
	}, nil
}

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
