// Package lookup resolves free-text item names against the loaded
// item corpus. Component references inside the dataset were written
// by hand over several patches, so a reference rarely matches its
// target byte for byte; resolution therefore runs three normalized
// forms in strict priority order and picks the best class achieved
// anywhere in the corpus, not the first hit in scan order.
package lookup

import (
	"strings"
	"unicode"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Match classes, best first.
const (
	classExact = iota
	classAlnum
	classNoSpace
	classNone
)

// forms holds the three normalized shapes of one name.
type forms struct {
	exact   string // lowercased, trimmed
	alnum   string // exact with every non-alphanumeric stripped
	noSpace string // exact with whitespace removed
}

func normalize(name string) forms {
	exact := strings.ToLower(strings.TrimSpace(name))
	return forms{
		exact:   exact,
		alnum:   stripNonAlnum(exact),
		noSpace: stripSpace(exact),
	}
}

func stripNonAlnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// Resolver resolves item names against a fixed corpus.
type Resolver struct {
	corpus []models.Item
}

// New creates a resolver over the full item corpus. The corpus may
// contain duplicate or shapeless records; non-candidates are skipped
// during resolution.
func New(corpus []models.Item) *Resolver {
	return &Resolver{corpus: corpus}
}

// Resolve finds the item matching name. Candidates are records with
// an internal name, a name, or the active flag. Both of a candidate's
// names are tested in each form; the candidate achieving the best
// match class wins, ties going to the earliest corpus entry. The
// second return is false when nothing matches in any class.
func (r *Resolver) Resolve(name string) (models.Item, bool) {
	query := normalize(name)
	if query.exact == "" {
		return models.Item{}, false
	}

	best := classNone
	bestIdx := -1
	for i, it := range r.corpus {
		if it.InternalName == "" && it.Name == "" && !it.Active {
			continue
		}
		class := matchClass(query, it)
		if class < best {
			best = class
			bestIdx = i
			if best == classExact {
				break
			}
		}
	}
	if bestIdx < 0 {
		return models.Item{}, false
	}
	return r.corpus[bestIdx], true
}

// matchClass returns the best class the candidate achieves against
// the query, comparing internal name first, then name, per form.
func matchClass(query forms, it models.Item) int {
	internal := normalize(it.InternalName)
	name := normalize(it.Name)

	if query.exact == internal.exact || query.exact == name.exact {
		return classExact
	}
	if query.alnum != "" && (query.alnum == internal.alnum || query.alnum == name.alnum) {
		return classAlnum
	}
	if query.noSpace != "" && (query.noSpace == internal.noSpace || query.noSpace == name.noSpace) {
		return classNoSpace
	}
	return classNone
}
