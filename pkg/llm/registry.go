package llm

import (
	"fmt"
	"os"
	"sort"
)

// Factory creates providers.
type Factory func(cfg Config) (Provider, error)

// DefaultModels maps provider names to their default models.
var DefaultModels = map[string]string{
	"gemini": "gemini-2.0-flash",
	"groq":   "llama3-70b-8192",
	"openai": "gpt-4o-mini",
}

var registry = map[string]Factory{
	"gemini": func(cfg Config) (Provider, error) {
		return NewGeminiProvider(cfg)
	},
	"groq": func(cfg Config) (Provider, error) {
		return NewGroqProvider(cfg)
	},
	"openai": func(cfg Config) (Provider, error) {
		return NewOpenAIProvider(cfg)
	},
}

// New creates a provider by name.
func New(name string, cfg Config) (Provider, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("invalid provider: %s (available: gemini, groq, openai)", name)
	}
	return factory(cfg)
}

// Register adds a custom provider factory. Intended for tests and embedders.
func Register(name string, factory Factory) {
	registry[name] = factory
}

// Available returns the registered provider names, sorted.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// keyEnvVars maps provider names to their conventional credential
// environment variables.
var keyEnvVars = map[string]string{
	"gemini": "GEMINI_API_KEY",
	"groq":   "GROQ_API_KEY",
	"openai": "OPENAI_API_KEY",
}

// KeyFromEnv resolves the conventional credential environment variable for a
// provider. Unknown providers resolve to the empty string.
func KeyFromEnv(name string) string {
	env, ok := keyEnvVars[name]
	if !ok {
		return ""
	}
	return os.Getenv(env)
}

// DefaultModel returns the default model for a provider.
func DefaultModel(name string) string {
	return DefaultModels[name]
}
