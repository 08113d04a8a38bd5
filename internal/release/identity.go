// Package release derives the deterministic identity of a draft release:
// tag name, human title and pre-release flag.
package release

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
	"releasecraft/internal/semver"
)

var titleCaser = cases.Title(language.English)

var changeTypeEmoji = map[models.ChangeType]string{
	models.PatchChange: "🔧",
	models.MinorChange: "🚀",
	models.MajorChange: "💥",
}

// BuildCandidate derives the release identity for one change type. The beta
// suffix is literal "-beta.1" by contract: repeated beta runs of the same
// base version converge on the same tag instead of minting beta.2.
func BuildCandidate(changeType models.ChangeType, base semver.Version, beta bool, project string) (*models.ReleaseCandidate, error) {
	if _, ok := models.ParseChangeType(string(changeType)); !ok {
		return nil, errors.ErrInvalidChangeType.WithContext("change_type", string(changeType))
	}

	typeLabel := titleCaser.String(string(changeType))
	baseVersion := base.String()

	if beta {
		releaseType := "beta-" + string(changeType)
		version := baseVersion + "-beta.1"
		return &models.ReleaseCandidate{
			ChangeType:  changeType,
			ReleaseType: releaseType,
			Version:     version,
			BaseVersion: baseVersion,
			// the tag keys off the base version, not the decorated one
			TagName:    fmt.Sprintf("candidate-%s-v%s", releaseType, baseVersion),
			Title:      fmt.Sprintf("🧪 %s v%s - Beta %s (DRAFT)", project, version, typeLabel),
			Prerelease: true,
		}, nil
	}

	emoji, ok := changeTypeEmoji[changeType]
	if !ok {
		emoji = "📦"
	}

	return &models.ReleaseCandidate{
		ChangeType:  changeType,
		ReleaseType: string(changeType),
		Version:     baseVersion,
		BaseVersion: baseVersion,
		TagName:     fmt.Sprintf("candidate-%s-v%s", changeType, baseVersion),
		Title:       fmt.Sprintf("%s %s v%s - %s Release (DRAFT)", emoji, project, baseVersion, typeLabel),
		Prerelease:  false,
	}, nil
}

// CandidateFor picks the right next version for changeType and builds the
// identity. Validation happens before any version arithmetic.
func CandidateFor(changeType models.ChangeType, next semver.Candidates, beta bool, project string) (*models.ReleaseCandidate, error) {
	if _, ok := models.ParseChangeType(string(changeType)); !ok {
		return nil, errors.ErrInvalidChangeType.WithContext("change_type", string(changeType))
	}

	var base semver.Version
	switch changeType {
	case models.PatchChange:
		base = next.Patch
	case models.MinorChange:
		base = next.Minor
	case models.MajorChange:
		base = next.Major
	}

	return BuildCandidate(changeType, base, beta, project)
}
