package models

// ChangeType is the semantic-versioning category of a release.
type ChangeType string

const (
	PatchChange ChangeType = "patch"
	MinorChange ChangeType = "minor"
	MajorChange ChangeType = "major"
)

// ChangeTypes lists the valid change types in bump order.
var ChangeTypes = []ChangeType{PatchChange, MinorChange, MajorChange}

type (
	// ReleaseCandidate is the identity of a draft release, derived fresh on
	// each run from (change type, computed version, beta flag).
	ReleaseCandidate struct {
		ChangeType  ChangeType
		ReleaseType string // "minor" or "beta-minor", keys the notes template
		Version     string // decorated version, e.g. "2.6.0-beta.1"
		BaseVersion string // bare next version, e.g. "2.6.0"
		TagName     string
		Title       string
		Prerelease  bool
	}

	// Commit is one entry of the commit summary, most-recent-first.
	Commit struct {
		SHA     string
		Message string
		Author  string
		Date    string
	}

	// DraftRelease mirrors the fields returned by `gh release list`.
	DraftRelease struct {
		TagName string `json:"tagName"`
		Name    string `json:"name"`
		IsDraft bool   `json:"isDraft"`
	}

	// VersionStatus is the report shown by the status command.
	VersionStatus struct {
		ProductionVersion string
		StagingVersion    string
		RecordProduction  string
		RecordStaging     string
		ProductionSynced  bool
		StagingSynced     bool
		NeedsSync         bool
		NextVersions      map[ChangeType]string
		Recommendations   []string
	}
)

// ParseChangeType validates a user-supplied change type string.
func ParseChangeType(s string) (ChangeType, bool) {
	switch ChangeType(s) {
	case PatchChange, MinorChange, MajorChange:
		return ChangeType(s), true
	}
	return "", false
}
