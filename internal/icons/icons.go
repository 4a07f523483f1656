// Package icons resolves the opaque icon paths the dataset carries.
// The path format is owned by whoever built the asset bundle; this
// package only checks that something servable exists and otherwise
// degrades to a text placeholder, so a missing or broken asset never
// aborts a listing or detail view.
package icons

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound signals that no asset exists for a path.
var ErrNotFound = errors.New("icons: asset not found")

// Registry resolves an opaque icon path to a servable asset location.
type Registry interface {
	Resolve(path string) (string, error)
}

// Dir is a Registry over a directory of bundled assets.
type Dir struct {
	Root string
}

// Resolve maps an icon path to a file under the root. Paths escaping
// the root resolve to not-found rather than an error.
func (d Dir) Resolve(path string) (string, error) {
	if path == "" {
		return "", ErrNotFound
	}
	clean := filepath.Clean("/" + path)
	full := filepath.Join(d.Root, clean)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return full, nil
}

// Icon is a resolved asset or its fallback. Exactly one of Path and
// Text is set.
type Icon struct {
	Path string `json:"path,omitempty"`
	Text string `json:"text,omitempty"`
}

// ResolveOrPlaceholder resolves path through the registry, degrading
// to a text placeholder built from the display name when the registry
// misses, errors, or panics. Registries are external collaborators;
// their failures stay contained here.
func ResolveOrPlaceholder(reg Registry, path, name string) (icon Icon) {
	icon = Icon{Text: Placeholder(name)}
	if reg == nil {
		return icon
	}
	defer func() {
		if r := recover(); r != nil {
			icon = Icon{Text: Placeholder(name)}
		}
	}()
	resolved, err := reg.Resolve(path)
	if err != nil {
		return icon
	}
	return Icon{Path: resolved}
}

// Placeholder returns up to two initial letters of the display name,
// upper-cased, or "?" when there is nothing to draw from.
func Placeholder(name string) string {
	fields := strings.Fields(name)
	var b strings.Builder
	for i, f := range fields {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(string([]rune(f)[0])))
	}
	if b.Len() == 0 {
		return "?"
	}
	return b.String()
}
