package mock_generator

// MockStory is one canned provider reply. Raw, when set, is returned verbatim
// instead of the encoded title and content; Error makes the call fail.
type MockStory struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Raw     string  `json:"raw,omitempty"`
	Error   string  `json:"error,omitempty"`
	Delay   float64 `json:"delay"`
}
