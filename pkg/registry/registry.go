// Package registry persists the mapping from normalized path to group
// name. The on-disk format is a single flat JSON object; every save
// rewrites the whole document via a temp file and rename so readers never
// observe a partial write.
package registry

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/pathgroup/pkg/errors"
	"github.com/arthur-debert/pathgroup/pkg/logging"
	"github.com/arthur-debert/pathgroup/pkg/pathlist"
	"github.com/arthur-debert/pathgroup/pkg/types"
)

// Mapping is the registry content: normalized path -> group name.
type Mapping map[string]string

// Registry owns the persisted mapping file.
type Registry struct {
	fs   types.FS
	path string
	log  zerolog.Logger
}

// New creates a Registry backed by the given filesystem and file path.
func New(fs types.FS, path string) *Registry {
	return &Registry{
		fs:   fs,
		path: path,
		log:  logging.GetLogger("registry"),
	}
}

// Path returns the registry file location.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the mapping. An absent file yields an empty mapping; a file
// that exists but does not parse is always an error, never silently
// treated as empty.
func (r *Registry) Load() (Mapping, error) {
	return r.load(false)
}

// LoadStrict is Load, except an absent file is an error. Bulk operations
// use it so that "no registry yet" surfaces instead of behaving like an
// empty group set.
func (r *Registry) LoadStrict() (Mapping, error) {
	return r.load(true)
}

func (r *Registry) load(strict bool) (Mapping, error) {
	data, err := r.fs.ReadFile(r.path)
	if os.IsNotExist(err) {
		if strict {
			return nil, errors.Newf(errors.ErrConfigNotFound, "no path group registry at %s", r.path).
				WithDetail("path", r.path)
		}
		r.log.Debug().Str("path", r.path).Msg("Registry file absent, starting empty")
		return Mapping{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read registry at %s", r.path)
	}

	var m Mapping
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "registry at %s is not valid JSON", r.path).
			WithDetail("path", r.path)
	}
	if m == nil {
		m = Mapping{}
	}
	return m, nil
}

// Save serializes the full mapping and replaces the registry file,
// creating parent directories as needed.
func (r *Registry) Save(m Mapping) error {
	dir := filepath.Dir(r.path)
	if err := r.fs.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create registry directory %s", dir)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to serialize registry")
	}
	data = append(data, '\n')

	tmp := r.path + ".tmp"
	if err := r.fs.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write registry temp file %s", tmp)
	}
	if err := r.fs.Rename(tmp, r.path); err != nil {
		_ = r.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace registry at %s", r.path)
	}

	r.log.Debug().Str("path", r.path).Int("entries", len(m)).Msg("Registry saved")
	return nil
}

// Upsert registers path under group, normalizing first. A path already
// registered moves to the new group; last write wins. Not isolated from
// concurrent external writers.
func (r *Registry) Upsert(path, group string) error {
	m, err := r.Load()
	if err != nil {
		return err
	}
	m[pathlist.Normalize(path)] = group
	return r.Save(m)
}

// GroupsOf resolves the paths selected by the given group names, sorted.
// An empty selector means every registered path. Any requested group with
// zero members fails the whole call; every missing name is collected into
// one error.
func GroupsOf(m Mapping, groups []string) ([]string, error) {
	if len(groups) == 0 {
		paths := make([]string, 0, len(m))
		for p := range m {
			paths = append(paths, p)
		}
		sort.Strings(paths)
		return paths, nil
	}

	wanted := make(map[string]bool, len(groups))
	for _, g := range groups {
		wanted[g] = false
	}

	var paths []string
	for p, g := range m {
		if _, ok := wanted[g]; ok {
			wanted[g] = true
			paths = append(paths, p)
		}
	}

	var missing []string
	for g, found := range wanted {
		if !found {
			missing = append(missing, g)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.Newf(errors.ErrUnknownGroup, "unknown path groups: %s", strings.Join(missing, ", ")).
			WithDetail("groups", missing)
	}

	sort.Strings(paths)
	return paths, nil
}
