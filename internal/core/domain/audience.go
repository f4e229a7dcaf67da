package domain

// Audience is the resolved target population for a campaign. Size feeds
// initial bid sizing; Segments name the narrowing dimensions that applied.
type Audience struct {
	Size     int64    `json:"size"`
	Segments []string `json:"segments,omitempty"`
}
