package llm

import (
	"log"
	"os"
	"time"
)

const (
	// EnvDashboardMode is the environment variable name for mode selection.
	EnvDashboardMode = "DASHBOARD_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewLLMClient creates an LLM client based on the DASHBOARD_MODE
// environment variable. If DASHBOARD_MODE=MOCK, returns a MockClient;
// otherwise returns a real Client.
func NewLLMClient(baseURL, apiKey string, timeout time.Duration) LLMClient {
	mode := os.Getenv(EnvDashboardMode)

	if mode == ModeMock {
		log.Println("DASHBOARD_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}

	return NewClient(baseURL, apiKey, timeout)
}
