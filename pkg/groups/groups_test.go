package groups_test

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/pathgroup/pkg/envstore"
	"github.com/arthur-debert/pathgroup/pkg/envsync"
	"github.com/arthur-debert/pathgroup/pkg/errors"
	"github.com/arthur-debert/pathgroup/pkg/filesystem"
	"github.com/arthur-debert/pathgroup/pkg/groups"
	"github.com/arthur-debert/pathgroup/pkg/pathlist"
	"github.com/arthur-debert/pathgroup/pkg/registry"
)

const testVar = "PATHGROUP_TEST_PATH"

type fixture struct {
	ops   *groups.Operations
	reg   *registry.Registry
	store *envstore.Memory
	env   *envsync.Sync
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg := registry.New(filesystem.NewAferoFS(afero.NewMemMapFs()), "/data/pathgroup/groups.json")
	store := envstore.NewMemory()
	env := envsync.New(store, testVar)
	return &fixture{
		ops:   groups.New(reg, env),
		reg:   reg,
		store: store,
		env:   env,
	}
}

func (f *fixture) envList(t *testing.T) []string {
	t.Helper()
	got, err := f.env.ReadCurrent()
	require.NoError(t, err)
	return got
}

func TestAddToPath_Idempotent(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ops.AddToPath("dev", "/dev/tools", true))
	require.NoError(t, f.ops.AddToPath("dev", "/dev/tools", true))

	m, err := f.reg.Load()
	require.NoError(t, err)
	assert.Len(t, m, 1)
	assert.Equal(t, "dev", m[filepath.FromSlash("/dev/tools")])

	assert.Equal(t, []string{filepath.FromSlash("/dev/tools")}, f.envList(t))
}

func TestAddToPath_NoSystemPath(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.ops.AddToPath("dev", "/special", false))

	m, err := f.reg.Load()
	require.NoError(t, err)
	assert.Equal(t, "dev", m[filepath.FromSlash("/special")])

	assert.Empty(t, f.envList(t))
	assert.Equal(t, 0, f.store.SetCalls)
}

// failingStore rejects writes so tests can observe partial-failure order.
type failingStore struct{}

func (failingStore) Get(name string) (string, error) { return "", nil }
func (failingStore) Set(name, value string) error {
	return errors.New(errors.ErrEnvWrite, "access denied")
}

func TestAddToPath_EnvFailureLeavesRegistryUntouched(t *testing.T) {
	reg := registry.New(filesystem.NewAferoFS(afero.NewMemMapFs()), "/data/pathgroup/groups.json")
	env := envsync.New(failingStore{}, testVar)
	ops := groups.New(reg, env)

	err := ops.AddToPath("dev", "/dev/tools", true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEnvWrite))

	m, err := reg.Load()
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestAddGroupsToPath_StrictLoad(t *testing.T) {
	f := newFixture(t)

	err := f.ops.AddGroupsToPath(nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigNotFound))
}

func TestAddGroupsToPath_EmptySelectorAddsAll(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", false))
	require.NoError(t, f.ops.AddToPath("dev", "/dev/tools", false))
	require.NoError(t, f.ops.AddToPath("python", "/python39", false))

	require.NoError(t, f.ops.AddGroupsToPath(nil))

	assert.ElementsMatch(t,
		pathlist.NormalizeAll([]string{"/dev", "/dev/tools", "/python39"}),
		f.envList(t))
}

func TestAddGroupsToPath_SelectedGroupOnly(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", false))
	require.NoError(t, f.ops.AddToPath("python", "/python39", false))

	require.NoError(t, f.ops.AddGroupsToPath([]string{"python"}))

	assert.Equal(t, []string{filepath.FromSlash("/python39")}, f.envList(t))
}

func TestRemoveGroupsFromPath_GroupIsolation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", true))
	require.NoError(t, f.ops.AddToPath("dev", "/dev/tools", true))
	require.NoError(t, f.ops.AddToPath("python", "/python39", true))

	require.NoError(t, f.ops.RemoveGroupsFromPath([]string{"dev"}))

	assert.Equal(t, []string{filepath.FromSlash("/python39")}, f.envList(t))
}

func TestRemoveGroupsFromPath_UnknownGroup(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", true))
	before := f.store.Values[testVar]
	writes := f.store.SetCalls

	err := f.ops.RemoveGroupsFromPath([]string{"doesnotexist"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownGroup))
	assert.Contains(t, err.Error(), "doesnotexist")

	// The environment list is completely unchanged
	assert.Equal(t, before, f.store.Values[testVar])
	assert.Equal(t, writes, f.store.SetCalls)
}

func TestRemoveGroupsFromPath_EmptySelectorRemovesAll(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", true))
	require.NoError(t, f.ops.AddToPath("python", "/python39", true))

	require.NoError(t, f.ops.RemoveGroupsFromPath(nil))

	assert.Empty(t, f.envList(t))
}

func TestRemoveGroupsFromPath_EmptyResolutionNoSideEffects(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.reg.Save(registry.Mapping{}))
	writes := f.store.SetCalls

	require.NoError(t, f.ops.RemoveGroupsFromPath(nil))
	assert.Equal(t, writes, f.store.SetCalls)
}

func TestRemoveGroupsFromPath_PathsNotOnList(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", false))
	writes := f.store.SetCalls

	// Registered but never added to the variable: silent no-op
	require.NoError(t, f.ops.RemoveGroupsFromPath([]string{"dev"}))
	assert.Equal(t, writes, f.store.SetCalls)
}

func TestList(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.ops.AddToPath("dev", "/dev", true))
	require.NoError(t, f.ops.AddToPath("dev", "/dev/tools", false))
	require.NoError(t, f.ops.AddToPath("python", "/python39", true))

	statuses, err := f.ops.List()
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.Equal(t, "dev", statuses[0].Name)
	assert.Equal(t, []groups.Entry{
		{Path: filepath.FromSlash("/dev"), OnPath: true},
		{Path: filepath.FromSlash("/dev/tools"), OnPath: false},
	}, statuses[0].Entries)

	assert.Equal(t, "python", statuses[1].Name)
	assert.Equal(t, []groups.Entry{
		{Path: filepath.FromSlash("/python39"), OnPath: true},
	}, statuses[1].Entries)
}

func TestList_EmptyRegistry(t *testing.T) {
	f := newFixture(t)

	statuses, err := f.ops.List()
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
