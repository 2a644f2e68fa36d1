// Package llm abstracts over the hosted model APIs used for insight
// narration and parent coaching. All calls go through the Provider
// interface so the rest of the app never touches an SDK directly.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is a single-method client for structured generation.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema
	// the returned Content is JSON validated against it; otherwise it
	// is the raw model text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the concrete model the provider will call.
	ModelID() string
}

// Role marks who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of conversation context.
type Message struct {
	Role    Role
	Content string
}

// Request carries everything needed for one generation call.
type Request struct {
	// System sets the model's role and constraints for this call.
	System string

	// Messages is the turn history. Coach and insight calls are
	// single-turn, so this is almost always one user message.
	Messages []Message

	// Schema, when non-nil, switches the provider to its native
	// structured-output mode and gates the response on validation.
	Schema *Schema

	// MaxTokens bounds the completion length.
	MaxTokens int

	// Temperature in [0,1]. Zero value means deterministic sampling.
	Temperature float64
}

// Schema names and defines the JSON shape a response must take.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "coach-summary". Anthropic
	// sees it as a tool name, OpenAI as the response-format name.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema body.
	Definition map[string]any
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Response is the normalized result of a generation call.
type Response struct {
	// Content is schema-validated JSON when the request had a Schema,
	// raw text bytes otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call, which may be a
	// more specific ID than the one requested.
	Model string

	// StopReason is normalized across providers to "end" or
	// "max_tokens".
	StopReason string
}

// finalize applies schema validation and assembles the normalized
// response. Every backend funnels through here so validation cannot be
// skipped by one of them.
func finalize(req Request, content json.RawMessage, usage Usage, model, stop string) (*Response, error) {
	if err := validateResponse(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
