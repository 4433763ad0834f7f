// Package groups orchestrates the registry and the environment sync into
// the user-facing operations: register a path under a group, and add or
// remove whole groups of registered paths against the live variable.
package groups

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathgroup/pkg/envsync"
	"github.com/arthur-debert/pathgroup/pkg/logging"
	"github.com/arthur-debert/pathgroup/pkg/pathlist"
	"github.com/arthur-debert/pathgroup/pkg/registry"
)

// Operations bundles the two stores behind the command surface.
type Operations struct {
	registry *registry.Registry
	env      *envsync.Sync
	log      zerolog.Logger
}

// New creates an Operations over the given registry and environment sync.
func New(reg *registry.Registry, env *envsync.Sync) *Operations {
	return &Operations{
		registry: reg,
		env:      env,
		log:      logging.GetLogger("groups"),
	}
}

// AddToPath registers path under group and, unless addToSystemPath is
// false, appends it to the live variable. The environment is updated
// first: if that write fails the registry is left untouched. The reverse
// failure (environment updated, registry write failed) leaves the stores
// inconsistent; there is no rollback.
func (o *Operations) AddToPath(group, path string, addToSystemPath bool) error {
	if addToSystemPath {
		if err := o.env.AddPaths([]string{path}); err != nil {
			return err
		}
	}
	if err := o.registry.Upsert(path, group); err != nil {
		return err
	}
	o.log.Info().Str("group", group).Str("path", pathlist.Normalize(path)).
		Bool("systemPath", addToSystemPath).Msg("Path registered")
	return nil
}

// AddGroupsToPath appends every path registered under the named groups to
// the live variable. With no names, every registered path is added. Fails
// before touching the environment when the registry is absent or any
// named group is unknown.
func (o *Operations) AddGroupsToPath(groups []string) error {
	paths, err := o.resolve(groups)
	if err != nil {
		return err
	}
	return o.env.AddPaths(paths)
}

// RemoveGroupsFromPath removes every path registered under the named
// groups from the live variable. With no names, every registered path is
// removed. Unknown groups fail the whole call with the environment left
// unchanged; an empty resolution returns without side effects.
func (o *Operations) RemoveGroupsFromPath(groups []string) error {
	paths, err := o.resolve(groups)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return nil
	}
	return o.env.RemovePaths(paths)
}

func (o *Operations) resolve(groups []string) ([]string, error) {
	m, err := o.registry.LoadStrict()
	if err != nil {
		return nil, err
	}
	return registry.GroupsOf(m, groups)
}

// Entry is one registered path and whether it is currently on the live
// variable.
type Entry struct {
	Path   string
	OnPath bool
}

// GroupStatus is one group's registered paths.
type GroupStatus struct {
	Name    string
	Entries []Entry
}

// List reports every registered group with its paths and their presence
// in the live variable. Read-only; an absent registry yields an empty
// report.
func (o *Operations) List() ([]GroupStatus, error) {
	m, err := o.registry.Load()
	if err != nil {
		return nil, err
	}
	current, err := o.env.ReadCurrent()
	if err != nil {
		return nil, err
	}

	byGroup := make(map[string][]Entry)
	for p, g := range m {
		byGroup[g] = append(byGroup[g], Entry{Path: p, OnPath: pathlist.Contains(current, p)})
	}

	statuses := make([]GroupStatus, 0, len(byGroup))
	for name, entries := range byGroup {
		sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
		statuses = append(statuses, GroupStatus{Name: name, Entries: entries})
	}
	sort.Slice(statuses, func(i, j int) bool { return statuses[i].Name < statuses[j].Name })
	return statuses, nil
}
