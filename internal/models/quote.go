package models

// Quote is a devotional verse with its translation.
type Quote struct {
	Arabic      string `json:"arabic" yaml:"arabic"`
	Translation string `json:"translation" yaml:"translation"`
	Reference   string `json:"reference,omitempty" yaml:"reference"`
}

// IntroVerse is the rotating verse with its position in the rotation.
type IntroVerse struct {
	Quote
	Index int `json:"index"`
	Total int `json:"total"`
}
