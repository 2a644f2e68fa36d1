package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures a model backend. The coach is the only
// consumer; when nothing is configured the app degrades to template
// output, so every field here is optional.
type Config struct {
	// Provider is one of "anthropic", "openai", "gemini", "mock".
	Provider string

	Anthropic AnthropicConfig
	OpenAI    OpenAIConfig
	Gemini    GeminiConfig
	Retry     RetryConfig

	// Timeout bounds one request including retries. Default 30s.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

// OpenAIConfig also covers OpenRouter and other OpenAI-compatible
// gateways via BaseURL.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// RetryConfig shapes the backoff applied to transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig picks the cheap model tier on every backend.
func DefaultConfig() Config {
	return Config{
		Provider:  "anthropic",
		Anthropic: AnthropicConfig{Model: "claude-haiku"},
		OpenAI:    OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:    GeminiConfig{Model: "gemini-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// envStr overwrites *dst when the variable is set and non-empty.
func envStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// ConfigFromEnv layers NUMBOND_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	envStr(&cfg.Provider, "NUMBOND_LLM_PROVIDER")
	envStr(&cfg.Anthropic.APIKey, "NUMBOND_ANTHROPIC_API_KEY")
	envStr(&cfg.Anthropic.Model, "NUMBOND_ANTHROPIC_MODEL")
	envStr(&cfg.OpenAI.APIKey, "NUMBOND_OPENAI_API_KEY")
	envStr(&cfg.OpenAI.Model, "NUMBOND_OPENAI_MODEL")
	envStr(&cfg.OpenAI.BaseURL, "NUMBOND_OPENAI_BASE_URL")
	envStr(&cfg.Gemini.APIKey, "NUMBOND_GEMINI_API_KEY")
	envStr(&cfg.Gemini.Model, "NUMBOND_GEMINI_MODEL")

	return cfg
}

// DiscoverConfig probes the vendors' own key variables, in priority
// order, and returns a ready Config for the first one present. The
// second return is false when no key is found.
func DiscoverConfig() (Config, bool) {
	probes := []struct {
		env      string
		provider string
		key      func(*Config) *string
	}{
		{"GEMINI_API_KEY", "gemini", func(c *Config) *string { return &c.Gemini.APIKey }},
		{"OPENAI_API_KEY", "openai", func(c *Config) *string { return &c.OpenAI.APIKey }},
		{"ANTHROPIC_API_KEY", "anthropic", func(c *Config) *string { return &c.Anthropic.APIKey }},
	}

	for _, p := range probes {
		k := os.Getenv(p.env)
		if k == "" {
			continue
		}
		cfg := DefaultConfig()
		cfg.Provider = p.provider
		*p.key(&cfg) = k
		return cfg, true
	}
	return Config{}, false
}

// aliasOrID resolves a friendly model alias against the per-provider
// alias table, passing unrecognized names through as literal model IDs.
func aliasOrID(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// Validate checks that the selected provider has the key it needs.
func (c Config) Validate() error {
	required := map[string]struct {
		key string
		env string
	}{
		"anthropic": {c.Anthropic.APIKey, "NUMBOND_ANTHROPIC_API_KEY"},
		"openai":    {c.OpenAI.APIKey, "NUMBOND_OPENAI_API_KEY"},
		"gemini":    {c.Gemini.APIKey, "NUMBOND_GEMINI_API_KEY"},
	}

	if c.Provider == "mock" {
		return nil
	}
	req, ok := required[c.Provider]
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if req.key == "" {
		return fmt.Errorf("%s is required for the %s provider", req.env, c.Provider)
	}
	return nil
}
