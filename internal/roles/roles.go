// Package roles infers normalized lane tags for a god from its role
// metadata and attached community builds. The dataset stores roles as
// free text ("Middle Lane", "Great jungler", "Carry/ADC"), so tags
// are derived by keyword matching rather than trusted verbatim.
package roles

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/YungSonix/Smite2Mastery-sub002/internal/models"
)

// Canonical lane tags, in render order.
const (
	RoleADC     = "ADC"
	RoleSolo    = "Solo"
	RoleSupport = "Support"
	RoleMid     = "Mid"
	RoleJungle  = "Jungle"
)

var canonicalOrder = []string{RoleADC, RoleSolo, RoleSupport, RoleMid, RoleJungle}

// Word-boundary patterns used when scanning build text blobs.
var buildPatterns = []struct {
	tag string
	re  *regexp.Regexp
}{
	{RoleADC, regexp.MustCompile(`\b(adc|carry)\b`)},
	{RoleSolo, regexp.MustCompile(`\bsolo(\s+lane)?\b`)},
	{RoleSupport, regexp.MustCompile(`\bsupport\b`)},
	{RoleMid, regexp.MustCompile(`\b(mid|middle)\b`)},
	{RoleJungle, regexp.MustCompile(`\bjungle\b`)},
}

// Derive returns the god's deduplicated role tags: canonical tags
// first in fixed order, then any custom tags alphabetically.
//
// The god-level role entries seed the set via substring rules, with
// unmatched entries kept as title-cased custom tags. Build text then
// augments the set via word-boundary patterns; an explicit build role
// re-runs the substring rules but, unlike the seed step, drops
// entries that match nothing.
func Derive(god models.God) []string {
	set := make(map[string]bool)

	for _, entry := range god.Roles {
		if tag, ok := substringTag(entry); ok {
			set[tag] = true
		} else if custom := titleCase(entry); custom != "" {
			set[custom] = true
		}
	}

	for _, build := range god.Builds {
		blob := strings.ToLower(buildBlob(build))
		for _, p := range buildPatterns {
			if p.re.MatchString(blob) {
				set[p.tag] = true
			}
		}
		if build.Role != "" {
			if tag, ok := substringTag(build.Role); ok {
				set[tag] = true
			}
		}
	}

	return ordered(set)
}

// substringTag maps a free-text role entry to a canonical tag.
func substringTag(entry string) (string, bool) {
	s := strings.ToLower(entry)
	switch {
	case strings.Contains(s, "adc") || strings.Contains(s, "carry"):
		return RoleADC, true
	case strings.Contains(s, "solo"):
		return RoleSolo, true
	case strings.Contains(s, "support"):
		return RoleSupport, true
	case strings.Contains(s, "mid") || strings.Contains(s, "middle"):
		return RoleMid, true
	case strings.Contains(s, "jungle"):
		return RoleJungle, true
	}
	return "", false
}

// buildBlob concatenates a build's free-text fields, skipping the
// absent ones.
func buildBlob(b models.BuildRef) string {
	var parts []string
	for _, f := range []string{b.Role, b.Lane, b.Notes, b.Title, b.Name} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}

// titleCase upper-cases the first character and lower-cases the rest.
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func ordered(set map[string]bool) []string {
	var out []string
	for _, tag := range canonicalOrder {
		if set[tag] {
			out = append(out, tag)
			delete(set, tag)
		}
	}
	var custom []string
	for tag := range set {
		custom = append(custom, tag)
	}
	sort.Strings(custom)
	return append(out, custom...)
}
