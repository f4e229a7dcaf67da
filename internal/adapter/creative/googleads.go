package creative

import (
	"fmt"
	"strings"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// google_ads responsive search ads split copy into a headline and a
// description with fixed character budgets.
const (
	googleHeadlineLimit    = 30
	googleDescriptionLimit = 90
)

type googleAdsBuilder struct {
	platform domain.Platform
}

func newGoogleAdsBuilder() *googleAdsBuilder {
	return &googleAdsBuilder{platform: domain.PlatformGoogleAds}
}

// BuildAd renders a text ad. The first sentence (or the headline budget,
// whichever is shorter) becomes the headline; the full text becomes the
// description. Search ads carry no visual.
func (b *googleAdsBuilder) BuildAd(cfg domain.CampaignConfig) (domain.AdContent, error) {
	text := renderText(cfg.TextTemplate, cfg.CallToAction)
	if strings.TrimSpace(text) == "" {
		return domain.AdContent{}, fmt.Errorf("%w: rendered text is empty", port.ErrInvalidConfig)
	}
	headline := text
	if i := strings.IndexAny(text, ".!?"); i > 0 {
		headline = text[:i]
	}
	return domain.AdContent{
		Platform: b.platform,
		Content:  truncate(text, googleDescriptionLimit),
		Headline: truncate(headline, googleHeadlineLimit),
		CTA:      cfg.CallToAction,
		Status:   domain.ContentStatusGenerated,
	}, nil
}
