package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func reportSchema() *Schema {
	return &Schema{
		Name:        "practice-report",
		Description: "A child's practice report",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"child":    map[string]any{"type": "string"},
				"solved":   map[string]any{"type": "integer", "minimum": 0},
				"trend":    map[string]any{"type": "string", "enum": []any{"up", "flat", "down"}},
				"comments": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			},
			"required": []any{"child", "solved"},
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"all fields valid", `{"child":"Mia","solved":12,"trend":"up","comments":["quick"]}`, false},
		{"optional fields omitted", `{"child":"Leo","solved":0}`, false},
		{"missing required field", `{"child":"Ada"}`, true},
		{"wrong field type", `{"child":"Sam","solved":"twelve"}`, true},
		{"enum value outside set", `{"child":"Mia","solved":3,"trend":"sideways"}`, true},
		{"wrong array item type", `{"child":"Mia","solved":3,"comments":[7]}`, true},
		{"not JSON at all", `{nope}`, true},
		{"empty payload", ``, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(reportSchema(), json.RawMessage(tt.raw))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected validation error")
				}
				var invErr *ErrInvalidResponse
				if !errors.As(err, &invErr) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPassesThrough(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should pass everything, got: %v", err)
	}
}

func TestValidateResponseNestedObject(t *testing.T) {
	schema := &Schema{
		Name: "nested-report",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"profile": map[string]any{
					"type":       "object",
					"properties": map[string]any{"name": map[string]any{"type": "string"}},
					"required":   []any{"name"},
				},
			},
			"required": []any{"profile"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"profile":{"name":"Mia"}}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"profile":{}}`)); err == nil {
		t.Fatal("expected error for missing nested required field")
	}
}
