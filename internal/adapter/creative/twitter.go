package creative

import (
	"fmt"
	"strings"

	"ad-orchestrator/internal/core/domain"
	"ad-orchestrator/internal/core/port"
)

// twitter enforces the 280 character post limit; longer templates are
// truncated rather than rejected so one config can serve all platforms.
const (
	twitterTextLimit    = 280
	twitterVisualWidth  = 1600
	twitterVisualHeight = 900
)

type twitterBuilder struct {
	platform domain.Platform
}

func newTwitterBuilder() *twitterBuilder {
	return &twitterBuilder{platform: domain.PlatformTwitter}
}

func (b *twitterBuilder) BuildAd(cfg domain.CampaignConfig) (domain.AdContent, error) {
	text := renderText(cfg.TextTemplate, cfg.CallToAction)
	if strings.TrimSpace(text) == "" {
		return domain.AdContent{}, fmt.Errorf("%w: rendered text is empty", port.ErrInvalidConfig)
	}
	return domain.AdContent{
		Platform: b.platform,
		Content:  truncate(text, twitterTextLimit),
		Visual:   visualRef(cfg.ImageOptions, twitterVisualWidth, twitterVisualHeight),
		CTA:      cfg.CallToAction,
		Status:   domain.ContentStatusGenerated,
	}, nil
}
