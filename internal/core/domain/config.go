package domain

import "errors"

// CampaignConfig describes the input for creating a campaign. TextTemplate
// is the only required field; the rest refine targeting and rendering.
type CampaignConfig struct {
	TextTemplate string        `json:"text_template"`
	ImageOptions *ImageOptions `json:"image_options,omitempty"`
	Targeting    TargetingSpec `json:"targeting"`
	CallToAction string        `json:"call_to_action,omitempty"`
	LandingURL   string        `json:"landing_url,omitempty"`
}

// ImageOptions configures visual content generation for an ad.
type ImageOptions struct {
	Source string `json:"source"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// TargetingSpec describes who should see a campaign.
type TargetingSpec struct {
	Languages []string `json:"languages,omitempty"`
	Geos      []string `json:"geos,omitempty"`
	Interests []string `json:"interests,omitempty"`
	AgeMin    int      `json:"age_min,omitempty"`
	AgeMax    int      `json:"age_max,omitempty"`
}

// Validate checks the config shape. It does not interpret the template;
// platform builders apply their own constraints on top.
func (c CampaignConfig) Validate() error {
	if c.TextTemplate == "" {
		return errors.New("text_template is required")
	}
	if c.ImageOptions != nil && c.ImageOptions.Source == "" {
		return errors.New("image_options.source is required when image_options is set")
	}
	if c.Targeting.AgeMin < 0 || c.Targeting.AgeMax < 0 {
		return errors.New("age bounds must be non-negative")
	}
	if c.Targeting.AgeMax > 0 && c.Targeting.AgeMin > c.Targeting.AgeMax {
		return errors.New("age_min exceeds age_max")
	}
	return nil
}
