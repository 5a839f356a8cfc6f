package prompt

import (
	"context"

	"google.golang.org/genai"
)

// Request is a single rendered prompt submitted to a text-generation model.
type Request struct {
	Template string
	System   string
	Prompt   string
	Schema   *genai.Schema
}

type Model interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// ModelFunc adapts a plain function to the Model interface.
type ModelFunc func(ctx context.Context, req Request) (string, error)

func (f ModelFunc) Generate(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
