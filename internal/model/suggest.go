package model

// Suggestion is one AI-proposed password variation.
type Suggestion struct {
	Password    string           `json:"password"`
	Type        string           `json:"type"`
	Explanation string           `json:"explanation"`
	Strength    StrengthResponse `json:"strength"`
}

// SuggestResponse lists the variations returned for a suggest request.
type SuggestResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}
