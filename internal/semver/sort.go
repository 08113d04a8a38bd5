package semver

import (
	"regexp"
	"sort"
)

var prereleasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)-alpha`),
	regexp.MustCompile(`(?i)-beta`),
	regexp.MustCompile(`(?i)-rc`),
	regexp.MustCompile(`(?i)-dev`),
	regexp.MustCompile(`(?i)\da\d`),
	regexp.MustCompile(`(?i)\db\d`),
	regexp.MustCompile(`(?i)rc\d`),
}

// IsPrerelease reports whether a raw version string carries a pre-release
// marker (alpha/beta/rc/dev variants, PEP 440 a/b/rc shorthands included).
func IsPrerelease(version string) bool {
	for _, p := range prereleasePatterns {
		if p.MatchString(version) {
			return true
		}
	}
	return false
}

// sortKey mirrors the ordering an index applies to published versions:
// numeric triple first, then pre-releases before finals, raw string last.
// Malformed versions collapse to 0.0.0 so they never win "latest".
type sortKey struct {
	v   Version
	pre bool
	raw string
}

func keyFor(raw string) sortKey {
	v, err := Parse(raw)
	if err != nil {
		v = Version{}
	}
	return sortKey{v: v.Base(), pre: IsPrerelease(raw), raw: raw}
}

func (a sortKey) less(b sortKey) bool {
	if c := Compare(a.v, b.v); c != 0 {
		return c < 0
	}
	if a.pre != b.pre {
		// final releases rank above pre-releases of the same triple
		return a.pre
	}
	return a.raw < b.raw
}

// SortDescending orders raw version strings newest-first.
func SortDescending(versions []string) []string {
	sorted := make([]string, len(versions))
	copy(sorted, versions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return keyFor(sorted[j]).less(keyFor(sorted[i]))
	})
	return sorted
}

// Latest picks the newest version from raw strings. With includePrereleases
// false, pre-release versions are filtered out first. Returns "" when
// nothing remains.
func Latest(versions []string, includePrereleases bool) string {
	eligible := versions
	if !includePrereleases {
		eligible = make([]string, 0, len(versions))
		for _, v := range versions {
			if !IsPrerelease(v) {
				eligible = append(eligible, v)
			}
		}
	}
	sorted := SortDescending(eligible)
	if len(sorted) == 0 {
		return ""
	}
	return sorted[0]
}
