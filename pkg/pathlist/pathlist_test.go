package pathlist

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty_value",
			raw:  "",
			want: nil,
		},
		{
			name: "single_entry",
			raw:  "/usr/bin",
			want: []string{"/usr/bin"},
		},
		{
			name: "multiple_entries",
			raw:  "/usr/bin" + Delimiter + "/usr/local/bin",
			want: []string{"/usr/bin", "/usr/local/bin"},
		},
		{
			name: "drops_empty_entries",
			raw:  Delimiter + "/usr/bin" + Delimiter + Delimiter + "/opt/bin" + Delimiter,
			want: []string{"/usr/bin", "/opt/bin"},
		},
		{
			name: "only_delimiters",
			raw:  Delimiter + Delimiter,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.raw))
		})
	}
}

func TestJoinRoundTrip(t *testing.T) {
	paths := []string{"/usr/bin", "/usr/local/bin", "/opt/tools/bin"}
	assert.Equal(t, paths, Split(Join(paths)))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, filepath.FromSlash("c:/dev/forward/slash"), Normalize("c:/dev/forward/slash"))
	assert.Equal(t, filepath.FromSlash("/usr/bin"), Normalize("/usr/bin"))
}

func TestNormalizeAll(t *testing.T) {
	got := NormalizeAll([]string{"a/b", "c/d"})
	assert.Equal(t, []string{filepath.FromSlash("a/b"), filepath.FromSlash("c/d")}, got)

	assert.Nil(t, NormalizeAll(nil))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("/usr/bin", "/usr/bin"))
	assert.False(t, Equal("/usr/bin", "/usr/local/bin"))

	// Forward slashes normalize before comparing
	assert.True(t, Equal("a/b/c", filepath.FromSlash("a/b/c")))

	// Case sensitivity follows the platform's path semantics
	wantFold := runtime.GOOS == "windows"
	assert.Equal(t, wantFold, Equal("/Usr/Bin", "/usr/bin"))
}

func TestContains(t *testing.T) {
	paths := []string{"/usr/bin", "/opt/bin"}
	assert.True(t, Contains(paths, "/opt/bin"))
	assert.False(t, Contains(paths, "/sbin"))
	assert.False(t, Contains(nil, "/usr/bin"))
}
