package domain

// AdContent is the rendered advertisement produced by a platform builder.
type AdContent struct {
	Platform Platform `json:"platform"`
	Content  string   `json:"content"`
	Headline string   `json:"headline,omitempty"`
	Visual   string   `json:"visual,omitempty"`
	CTA      string   `json:"cta,omitempty"`
	Status   string   `json:"status"`
}

// ContentStatusGenerated marks content that passed platform rendering.
const ContentStatusGenerated = "generated"
