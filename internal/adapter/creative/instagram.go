package creative

import (
	"fmt"
	"strings"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

const instagramDefaultDimension = 1080

type instagramBuilder struct {
	platform domain.Platform
}

func newInstagramBuilder() *instagramBuilder {
	return &instagramBuilder{platform: domain.PlatformInstagram}
}

// BuildAd renders an instagram ad. Instagram placements are visual-first,
// so a campaign without image options is rejected.
func (b *instagramBuilder) BuildAd(cfg domain.CampaignConfig) (domain.AdContent, error) {
	if cfg.ImageOptions == nil {
		return domain.AdContent{}, fmt.Errorf("%w: instagram ads require image_options", port.ErrInvalidConfig)
	}
	text := renderText(cfg.TextTemplate, cfg.CallToAction)
	if strings.TrimSpace(text) == "" {
		return domain.AdContent{}, fmt.Errorf("%w: rendered text is empty", port.ErrInvalidConfig)
	}
	return domain.AdContent{
		Platform: b.platform,
		Content:  text,
		Visual:   visualRef(cfg.ImageOptions, instagramDefaultDimension, instagramDefaultDimension),
		CTA:      cfg.CallToAction,
		Status:   domain.ContentStatusGenerated,
	}, nil
}
