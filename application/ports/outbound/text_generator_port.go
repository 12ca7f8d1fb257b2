package outbound

import "context"

type Prompt struct {
	System string
	User   string
}

// TextGeneratorPort is a hosted generative-text provider: given a prompt it
// returns the raw text completion.
type TextGeneratorPort interface {
	Name() string
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
