package generator

import "context"

// Static returns canned responses, for tests and offline demos.
type Static struct {
	Responses map[string]string
	Fallback  string
}

// Generate looks up the prompt, returning Fallback on a miss.
func (g *Static) Generate(ctx context.Context, prompt string) (string, error) {
	if r, ok := g.Responses[prompt]; ok {
		return r, nil
	}
	return g.Fallback, nil
}
