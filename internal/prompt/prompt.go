/*
Package prompt renders typed inputs against prompt templates, submits them to a
text-generation model and validates the model's JSON reply against a declared
output schema.
*/
package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"text/template"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"
)

var (
	ErrInvalidInput  = errors.New("input failed schema validation")
	ErrModelCall     = errors.New("model call failed")
	ErrInvalidOutput = errors.New("output failed schema validation")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Template binds a prompt body to its input type In and output type Out.
// Input is checked with validator struct tags before rendering; output must
// carry every property listed in the schema's Required set and decode into Out.
type Template[In, Out any] struct {
	name   string
	system string
	schema *genai.Schema
	tmpl   *template.Template
}

func NewTemplate[In, Out any](name, system, body string, schema *genai.Schema) (*Template[In, Out], error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
	}
	return &Template[In, Out]{
		name:   name,
		system: system,
		schema: schema,
		tmpl:   tmpl,
	}, nil
}

func MustTemplate[In, Out any](name, system, body string, schema *genai.Schema) *Template[In, Out] {
	t, err := NewTemplate[In, Out](name, system, body, schema)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template[In, Out]) Name() string { return t.name }

func (t *Template[In, Out]) Schema() *genai.Schema { return t.schema }

// Render executes the template body against in without validating it.
func (t *Template[In, Out]) Render(in In) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", t.name, err)
	}
	return buf.String(), nil
}

// Invoke validates in, renders it, calls m once and decodes the reply.
// There is no retry: any failure is returned wrapped in one of
// ErrInvalidInput, ErrModelCall or ErrInvalidOutput.
func (t *Template[In, Out]) Invoke(ctx context.Context, m Model, in In) (Out, error) {
	var out Out

	if err := validate.StructCtx(ctx, in); err != nil {
		return out, fmt.Errorf("%s: %w: %w", t.name, ErrInvalidInput, err)
	}

	text, err := t.Render(in)
	if err != nil {
		return out, fmt.Errorf("%s: %w: %w", t.name, ErrInvalidInput, err)
	}

	raw, err := m.Generate(ctx, Request{
		Template: t.name,
		System:   t.system,
		Prompt:   text,
		Schema:   t.schema,
	})
	if err != nil {
		return out, fmt.Errorf("%s: %w: %w", t.name, ErrModelCall, err)
	}

	if err := decodeOutput(raw, t.schema, &out); err != nil {
		return out, fmt.Errorf("%s: %w: %w", t.name, ErrInvalidOutput, err)
	}

	return out, nil
}

func decodeOutput(raw string, schema *genai.Schema, out any) error {
	content := cleanJSONResponse(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return fmt.Errorf("response is not a JSON object: %w, content: %s", err, content)
	}

	if schema != nil {
		for _, key := range schema.Required {
			v, ok := fields[key]
			if !ok || string(bytes.TrimSpace(v)) == "null" {
				return fmt.Errorf("missing required field %q", key)
			}
		}
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return fmt.Errorf("failed to parse response: %w, content: %s", err, content)
	}
	return nil
}
