// Package envstore abstracts where the target environment variable lives.
// The process store mutates this process's environment; the machine store
// (Windows only) edits the system-wide value that new processes inherit.
package envstore

import "github.com/arthur-debert/pathgroup/pkg/errors"

// Scope identifies which environment a store targets.
type Scope string

const (
	// ScopeProcess targets the current process environment.
	ScopeProcess Scope = "process"

	// ScopeMachine targets the machine-wide environment (Windows only).
	ScopeMachine Scope = "machine"
)

// Store reads and writes one environment variable's raw value.
type Store interface {
	// Get returns the current raw value, or "" when the variable is unset.
	Get(name string) (string, error)

	// Set replaces the raw value. Writes are visible per the store's scope.
	Set(name, value string) error
}

// ForScope returns the store implementation for the given scope.
func ForScope(scope Scope) (Store, error) {
	switch scope {
	case ScopeProcess:
		return NewProcess(), nil
	case ScopeMachine:
		return newMachine()
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown environment scope %q", scope)
	}
}
