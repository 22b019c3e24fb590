// Package llm abstracts the hosted text-generation services behind a single
// completion capability so the rest of the backend never branches on which
// provider is configured.
package llm

import (
	"context"
	"errors"
	"log"
	"os"
)

// Provider turns a prompt into generated text. Implementations fail with a
// provider error; callers decide whether to fall back or surface it.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrProviderDisabled is returned when no provider credential is configured.
// Features degrade to pass-through instead of failing the whole service.
var ErrProviderDisabled = errors.New("text generation provider disabled")

// Disabled is the no-credential provider.
type Disabled struct{}

// Complete always fails with ErrProviderDisabled.
func (Disabled) Complete(ctx context.Context, prompt string) (string, error) {
	return "", ErrProviderDisabled
}

// FromEnv selects a provider from the environment. LLM_PROVIDER picks one
// explicitly ("gemini", "openai"); otherwise whichever API key is present
// wins, Gemini first. A missing credential yields Disabled, never an error.
func FromEnv(ctx context.Context) Provider {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	openaiKey := os.Getenv("OPENAI_API_KEY")

	switch os.Getenv("LLM_PROVIDER") {
	case "openai":
		if openaiKey == "" {
			log.Println("Warning: LLM_PROVIDER=openai but OPENAI_API_KEY not set, text generation disabled")
			return Disabled{}
		}
		return NewOpenAIProvider(openaiKey)
	case "gemini":
		if geminiKey == "" {
			log.Println("Warning: LLM_PROVIDER=gemini but GEMINI_API_KEY not set, text generation disabled")
			return Disabled{}
		}
		return geminiOrDisabled(ctx, geminiKey)
	case "":
		if geminiKey != "" {
			return geminiOrDisabled(ctx, geminiKey)
		}
		if openaiKey != "" {
			return NewOpenAIProvider(openaiKey)
		}
		log.Println("Warning: no LLM credential set, text generation disabled")
		return Disabled{}
	default:
		log.Printf("Warning: unknown LLM_PROVIDER %q, text generation disabled", os.Getenv("LLM_PROVIDER"))
		return Disabled{}
	}
}

func geminiOrDisabled(ctx context.Context, apiKey string) Provider {
	provider, err := NewGeminiProvider(ctx, apiKey)
	if err != nil {
		log.Printf("Warning: failed to initialize Gemini client, text generation disabled: %v", err)
		return Disabled{}
	}
	return provider
}
