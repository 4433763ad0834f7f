// Package envsync applies add/remove sets of paths against the live
// PATH-like variable, idempotently. Writes are skipped entirely when an
// operation changes nothing, so no-op calls never trigger environment
// change broadcasts.
package envsync

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathgroup/pkg/envstore"
	"github.com/arthur-debert/pathgroup/pkg/errors"
	"github.com/arthur-debert/pathgroup/pkg/logging"
	"github.com/arthur-debert/pathgroup/pkg/pathlist"
)

// Sync reads and edits one variable through an envstore.Store.
type Sync struct {
	store    envstore.Store
	variable string
	log      zerolog.Logger
}

// New creates a Sync over the given store and variable name.
func New(store envstore.Store, variable string) *Sync {
	return &Sync{
		store:    store,
		variable: variable,
		log:      logging.GetLogger("envsync"),
	}
}

// Variable returns the name of the variable this Sync targets.
func (s *Sync) Variable() string {
	return s.variable
}

// ReadCurrent returns the variable's entries in order, normalized.
func (s *Sync) ReadCurrent() ([]string, error) {
	raw, err := s.store.Get(s.variable)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEnvRead, "failed to read %s", s.variable)
	}
	return pathlist.NormalizeAll(pathlist.Split(raw)), nil
}

// AddPaths appends every path not already present to the end of the list,
// preserving the order of existing entries. Nothing is written when every
// path is already present.
func (s *Sync) AddPaths(paths []string) error {
	current, err := s.ReadCurrent()
	if err != nil {
		return err
	}

	updated := current
	added := 0
	for _, p := range paths {
		p = pathlist.Normalize(p)
		if pathlist.Contains(updated, p) {
			continue
		}
		updated = append(updated, p)
		added++
	}

	if added == 0 {
		s.log.Debug().Str("variable", s.variable).Msg("All paths already present, skipping write")
		return nil
	}

	if err := s.store.Set(s.variable, pathlist.Join(updated)); err != nil {
		return err
	}
	s.log.Info().Str("variable", s.variable).Int("added", added).Msg("Appended paths")
	return nil
}

// RemovePaths excises every matching entry from the list, closing the gap
// in place. Paths that are not present are silently skipped; nothing is
// written when no entry matched.
func (s *Sync) RemovePaths(paths []string) error {
	current, err := s.ReadCurrent()
	if err != nil {
		return err
	}

	targets := pathlist.NormalizeAll(paths)
	kept := current[:0:0]
	removed := 0
	for _, entry := range current {
		if pathlist.Contains(targets, entry) {
			removed++
			continue
		}
		kept = append(kept, entry)
	}

	if removed == 0 {
		s.log.Debug().Str("variable", s.variable).Msg("No matching paths, skipping write")
		return nil
	}

	if err := s.store.Set(s.variable, pathlist.Join(kept)); err != nil {
		return err
	}
	s.log.Info().Str("variable", s.variable).Int("removed", removed).Msg("Removed paths")
	return nil
}
