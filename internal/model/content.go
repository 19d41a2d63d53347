package model

// Tip is a static security advice card.
type Tip struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Contact is one way to reach the company behind the app.
type Contact struct {
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Value string `json:"value"`
	Link  string `json:"link,omitempty"`
}

// About describes the app and its publisher.
type About struct {
	App      string    `json:"app"`
	Company  string    `json:"company"`
	Tagline  string    `json:"tagline"`
	Mission  string    `json:"mission"`
	Contacts []Contact `json:"contacts"`
}
