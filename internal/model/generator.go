package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish missing (nil -> default) from explicit values, so an
// explicit zero length is rejected rather than defaulted.
type GenerateRequest struct {
	Length    *int   `json:"length"`
	Mode      string `json:"mode"`
	Lowercase *bool  `json:"lowercase"`
	Uppercase *bool  `json:"uppercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
}

// GenerateResponse carries a fresh password and its strength.
type GenerateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Mode     string           `json:"mode"`
	Strength StrengthResponse `json:"strength"`
}

// StrengthRequest asks for the strength of an arbitrary password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse is the strength indicator shown under a password.
type StrengthResponse struct {
	Score   int    `json:"score"`
	Label   string `json:"label"`
	Message string `json:"message"`
}

// ExportRequest asks for a password to be returned as a text file download.
type ExportRequest struct {
	Password string `json:"password"`
	Filename string `json:"filename"`
}
