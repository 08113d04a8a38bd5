package semver

import (
	"fmt"
	"regexp"
	"strconv"

	"releasecraft/internal/errors"
)

// Version is an immutable semantic version triple with an optional
// pre-release suffix ("beta.1"). Build metadata is kept inside Pre as-is.
type Version struct {
	Major int
	Minor int
	Patch int
	Pre   string
}

// leadingTriple matches the start of a version string. Anything after the
// third numeric group is not validated: downstream code appends its own
// pre-release suffixes, so the parser stays permissive.
var leadingTriple = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)`)

// Parse extracts the leading X.Y.Z triple from text. A "-suffix" after the
// triple is preserved in Pre; any other trailing text is ignored.
func Parse(text string) (Version, error) {
	m := leadingTriple.FindStringSubmatch(text)
	if m == nil {
		return Version{}, errors.ErrInvalidVersionFormat.WithContext("input", text)
	}

	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])

	v := Version{Major: major, Minor: minor, Patch: patch}

	rest := text[len(m[0]):]
	if len(rest) > 1 && rest[0] == '-' {
		v.Pre = rest[1:]
	}
	return v, nil
}

func (v Version) String() string {
	if v.Pre != "" {
		return fmt.Sprintf("%d.%d.%d-%s", v.Major, v.Minor, v.Patch, v.Pre)
	}
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Base returns the version with any pre-release suffix stripped.
func (v Version) Base() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch}
}

func (v Version) NextPatch() Version {
	return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}
}

func (v Version) NextMinor() Version {
	return Version{Major: v.Major, Minor: v.Minor + 1, Patch: 0}
}

func (v Version) NextMajor() Version {
	return Version{Major: v.Major + 1, Minor: 0, Patch: 0}
}

// Candidates holds the three possible next versions for a release.
type Candidates struct {
	Patch Version
	Minor Version
	Major Version
}

// Next derives all valid next versions from the current one. Pure and total:
// no failure path once parsing succeeded.
func Next(current Version) Candidates {
	return Candidates{
		Patch: current.NextPatch(),
		Minor: current.NextMinor(),
		Major: current.NextMajor(),
	}
}

// DefaultNext is used when no version has ever been published.
func DefaultNext() Candidates {
	return Candidates{
		Patch: Version{Major: 0, Minor: 1, Patch: 1},
		Minor: Version{Major: 0, Minor: 2, Patch: 0},
		Major: Version{Major: 1, Minor: 0, Patch: 0},
	}
}

// Compare returns -1, 0 or 1 ordering a before b. A pre-release sorts before
// the release with the same triple.
func Compare(a, b Version) int {
	switch {
	case a.Major != b.Major:
		return sign(a.Major - b.Major)
	case a.Minor != b.Minor:
		return sign(a.Minor - b.Minor)
	case a.Patch != b.Patch:
		return sign(a.Patch - b.Patch)
	case a.Pre == b.Pre:
		return 0
	case a.Pre != "" && b.Pre == "":
		return -1
	case a.Pre == "" && b.Pre != "":
		return 1
	case a.Pre < b.Pre:
		return -1
	default:
		return 1
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
