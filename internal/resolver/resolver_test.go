package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"releasecraft/internal/errors"
	"releasecraft/internal/manifest"
)

type stubSource struct {
	name    string
	version string
	err     error
	calls   int
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Resolve(_ context.Context) (string, error) {
	s.calls++
	return s.version, s.err
}

func TestCurrentVersion_FirstSourceWins(t *testing.T) {
	first := &stubSource{name: "first", version: "1.2.3"}
	second := &stubSource{name: "second", version: "9.9.9"}
	r := New(first, second)

	version, source, err := r.CurrentVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, "first", source)
	assert.Equal(t, 0, second.calls, "later sources should not be queried")
}

func TestCurrentVersion_SkipsFailingSource(t *testing.T) {
	failing := &stubSource{name: "failing", err: errors.ErrIndexRequest}
	fallback := &stubSource{name: "fallback", version: "2.0.0"}
	r := New(failing, fallback)

	version, source, err := r.CurrentVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", version)
	assert.Equal(t, "fallback", source)
}

func TestCurrentVersion_SkipsEmptySource(t *testing.T) {
	empty := &stubSource{name: "empty", version: ""}
	fallback := &stubSource{name: "fallback", version: "0.5.0"}
	r := New(empty, fallback)

	version, _, err := r.CurrentVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.5.0", version)
}

func TestCurrentVersion_AllSourcesFail(t *testing.T) {
	r := New(
		&stubSource{name: "a", err: errors.ErrIndexRequest},
		&stubSource{name: "b", version: ""},
	)

	_, _, err := r.CurrentVersion(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrNoVersionSource)
}

func TestCurrentVersion_NoSources(t *testing.T) {
	r := New()

	_, _, err := r.CurrentVersion(context.Background())

	assert.ErrorIs(t, err, errors.ErrNoVersionSource)
}

func TestRecordSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "VERSION.json")
	content := `{"current_release": "3.1.4", "current_testpypi": "3.1.5"}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	source := &RecordSource{Path: path}
	version, err := source.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "3.1.4", version)
}

func TestRecordSource_MissingFile(t *testing.T) {
	source := &RecordSource{Path: filepath.Join(t.TempDir(), "missing.json")}

	_, err := source.Resolve(context.Background())

	assert.Error(t, err)
}

func TestManifestSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	content := "[project]\nname = \"demo\"\nversion = \"0.9.2\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	source := &ManifestSource{Reader: manifest.NewReader(path)}
	version, err := source.Resolve(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "0.9.2", version)
}
