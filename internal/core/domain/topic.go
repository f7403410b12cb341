package domain

// Connection is a related topic worth exploring next.
type Connection struct {
	Topic    string `json:"topic"`
	Kind     string `json:"type"`
	Question string `json:"question"`
}

// Topic is a summary of a subject and the rabbit holes leading away from it.
type Topic struct {
	Name        string       `json:"name"`
	Summary     string       `json:"summary"`
	Connections []Connection `json:"connections"`
	Generated   bool         `json:"aiGenerated,omitempty"`
	Fallback    bool         `json:"fallback,omitempty"`
}
