package generator

import "context"

// Generator is one remote script-generation tier. Implementations may
// return an empty string when the backend produced nothing usable; callers
// treat empty output and errors the same way (fall through to the next tier).
type Generator interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}
