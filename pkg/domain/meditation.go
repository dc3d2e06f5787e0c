package domain

// Meditation is a single passage from the fixed corpus. The notification core
// reads only ID and Text; the rest of the fields belong to the reader surface.
type Meditation struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Book  string `json:"book,omitempty"`
	Theme string `json:"theme,omitempty"`
}

// Collection is the content source document as served by the upstream origin
type Collection struct {
	Items []Meditation `json:"items"`
}
