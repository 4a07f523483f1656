package icons

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirResolve(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "zeus.png"), []byte("png"), 0o644))

	d := Dir{Root: root}

	got, err := d.Resolve("zeus.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "zeus.png"), got)

	_, err = d.Resolve("missing.png")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = d.Resolve("")
	assert.ErrorIs(t, err, ErrNotFound)

	// Traversal attempts stay inside the root.
	_, err = d.Resolve("../../etc/passwd")
	assert.ErrorIs(t, err, ErrNotFound)
}

type panickyRegistry struct{}

func (panickyRegistry) Resolve(string) (string, error) { panic("registry exploded") }

func TestResolveOrPlaceholder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "zeus.png"), []byte("png"), 0o644))
	d := Dir{Root: root}

	hit := ResolveOrPlaceholder(d, "zeus.png", "Zeus")
	assert.Empty(t, hit.Text)
	assert.NotEmpty(t, hit.Path)

	miss := ResolveOrPlaceholder(d, "nope.png", "Rod of Tahuti")
	assert.Equal(t, "RO", miss.Text)
	assert.Empty(t, miss.Path)

	// A panicking registry degrades instead of propagating.
	blown := ResolveOrPlaceholder(panickyRegistry{}, "zeus.png", "Zeus")
	assert.Equal(t, "Z", blown.Text)

	nilReg := ResolveOrPlaceholder(nil, "zeus.png", "")
	assert.Equal(t, "?", nilReg.Text)
}
