package llm

import (
	"testing"
)

func TestGeminiModelAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"},
	}
	for _, tt := range tests {
		if got := aliasOrID(tt.alias, geminiModels); got != tt.want {
			t.Errorf("aliasOrID(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestGeminiSchemaTranslation(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"child":  map[string]any{"type": "string"},
			"solved": map[string]any{"type": "integer"},
			"trend":  map[string]any{"type": "string", "enum": []any{"up", "flat", "down"}},
			"comments": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"child", "solved"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("root type = %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["child"].Type != "STRING" {
		t.Errorf("child type = %s", schema.Properties["child"].Type)
	}
	if schema.Properties["solved"].Type != "INTEGER" {
		t.Errorf("solved type = %s", schema.Properties["solved"].Type)
	}
	if len(schema.Properties["trend"].Enum) != 3 {
		t.Errorf("trend enum = %d values", len(schema.Properties["trend"].Enum))
	}
	if schema.Properties["comments"].Items == nil || schema.Properties["comments"].Items.Type != "STRING" {
		t.Errorf("comments items = %+v", schema.Properties["comments"].Items)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %d fields", len(schema.Required))
	}
}
