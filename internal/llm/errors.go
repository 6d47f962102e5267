package llm

import "fmt"

// ConfigError indicates the provider credential is absent. It is detected
// lazily, at call time, so the server can start without a key and surface the
// problem per request.
type ConfigError struct {
	Provider string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("llm: %s API key is not configured", e.Provider)
}

// ProviderError wraps a failure from the provider SDK or the network. It is
// never retried locally.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("llm: %s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
