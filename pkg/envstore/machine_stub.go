//go:build !windows

package envstore

import "github.com/arthur-debert/pathgroup/pkg/errors"

func newMachine() (Store, error) {
	return nil, errors.New(errors.ErrEnvWrite, "machine scope is only supported on Windows")
}
