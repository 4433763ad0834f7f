package envstore

import (
	"os"

	"github.com/arthur-debert/pathgroup/pkg/errors"
)

// processStore implements Store against the current process environment.
type processStore struct{}

// NewProcess creates a store over this process's environment. Changes are
// inherited by child processes but invisible to the rest of the system.
func NewProcess() Store {
	return &processStore{}
}

func (processStore) Get(name string) (string, error) {
	return os.Getenv(name), nil
}

func (processStore) Set(name, value string) error {
	if err := os.Setenv(name, value); err != nil {
		return errors.Wrapf(err, errors.ErrEnvWrite, "failed to set %s", name)
	}
	return nil
}
