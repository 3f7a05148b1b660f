package llm

import "context"

// Generator is the single operation the pipeline needs from a generation
// backend. Implementations return the raw model text; recovering JSON from
// it is the caller's problem (see ExtractJSONPayload).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
