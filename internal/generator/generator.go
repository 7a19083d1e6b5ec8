// Package generator abstracts the downstream text generator used to
// transform pulse payloads before delivery.
package generator

import "context"

// Generator produces a transformed text for a prompt. Callers treat any
// error or empty result as "nothing usable" and fall back to the raw
// payload.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
