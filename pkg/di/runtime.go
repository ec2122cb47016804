// Package di wires the edit session's collaborators together through a
// samber/do injector.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency injection container used across the CLI.
type Injector = do.Injector

// Provider registers one or more services on the injector.
type Provider func(injector Injector) error

// Runtime holds the providers applied to every invocation's injector.
type Runtime struct {
	providers []Provider
}

// New creates a runtime with the given providers.
func New(providers ...Provider) *Runtime {
	return &Runtime{providers: providers}
}

// Invoke runs the handler against a fresh injector with all providers
// applied. The injector is shut down when the handler returns.
func (r *Runtime) Invoke(handler func(injector Injector) error) error {
	injector := do.New()

	defer func() {
		_ = injector.Shutdown()
	}()

	for _, provider := range r.providers {
		err := provider(injector)
		if err != nil {
			return fmt.Errorf("register provider: %w", err)
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts an injector-aware handler into a Cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
