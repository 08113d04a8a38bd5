// Package notes renders release notes from a per-release-type template,
// filling in the computed version, a human description of the change type
// and a bounded summary of recent commits.
package notes

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
)

const (
	// commitPreviewLimit bounds how many commits appear in the notes.
	commitPreviewLimit = 8
	// messages longer than maxMessageLen are cut to truncateLen plus "..."
	maxMessageLen = 60
	truncateLen   = 57
)

var titleCaser = cases.Title(language.English)

var releaseDescriptions = map[string]string{
	"patch":      "Production Release (Patch) - Bug fixes and minor improvements",
	"minor":      "Production Release (Minor) - New features, backward compatible",
	"major":      "Production Release (Major) - Breaking changes and major updates",
	"beta-patch": "Beta Release (Patch) - Testing bug fixes",
	"beta-minor": "Beta Release (Minor) - Testing new features",
	"beta-major": "Beta Release (Major) - Testing breaking changes",
}

const defaultDescription = "Production Release"

// Description maps a release type to its human description. Unknown keys
// fall back to a generic description; this never fails.
func Description(releaseType string) string {
	if d, ok := releaseDescriptions[releaseType]; ok {
		return d
	}
	return defaultDescription
}

// CommitSummary renders the bounded commit preview. Commits are assumed
// already ordered most-recent-first by the source.
func CommitSummary(commits []models.Commit) string {
	if len(commits) == 0 {
		return "• See commit history for detailed changes"
	}

	preview := commits
	if len(preview) > commitPreviewLimit {
		preview = preview[:commitPreviewLimit]
	}

	lines := make([]string, 0, len(preview))
	for _, commit := range preview {
		msg := commit.Message
		if runes := []rune(msg); len(runes) > maxMessageLen {
			msg = string(runes[:truncateLen]) + "..."
		}
		lines = append(lines, fmt.Sprintf("• %s (%s)", msg, commit.SHA))
	}

	summary := "Recent Changes:\n\n" + strings.Join(lines, "\n")
	if len(commits) > commitPreviewLimit {
		summary += fmt.Sprintf("\n• ... and %d more commits", len(commits)-commitPreviewLimit)
	}
	return summary
}

// Renderer loads templates by release-type key from templatesDir, falling
// back to the built-in default when no file exists for that key.
type Renderer struct {
	templatesDir string
}

func NewRenderer(templatesDir string) *Renderer {
	return &Renderer{templatesDir: templatesDir}
}

// Render produces the final notes body for a candidate. previousVersion may
// be empty; it renders as the literal "None".
func (r *Renderer) Render(candidate *models.ReleaseCandidate, previousVersion string, commits []models.Commit) (string, error) {
	if previousVersion == "" {
		previousVersion = "None"
	}

	template, err := r.loadTemplate(strings.ReplaceAll(candidate.ReleaseType, "-", "_"))
	if err != nil {
		return "", err
	}

	typeLabel := titleCaser.String(strings.ReplaceAll(candidate.ReleaseType, "-", " "))

	return expand(template, map[string]string{
		"version":             candidate.Version,
		"release_type":        typeLabel,
		"release_description": Description(candidate.ReleaseType),
		"previous_version":    previousVersion,
		"commit_summary":      CommitSummary(commits),
	})
}

func (r *Renderer) loadTemplate(key string) (string, error) {
	path := filepath.Join(r.templatesDir, key+".md")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultTemplate, nil
		}
		return "", errors.ErrTemplateRead.WithError(err).WithContext("path", path)
	}
	return string(data), nil
}

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// expand substitutes {name} placeholders. A placeholder this component does
// not supply is a template error, not a silent drop.
func expand(template string, values map[string]string) (string, error) {
	var unknown []string

	rendered := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := values[name]
		if !ok {
			unknown = append(unknown, name)
			return match
		}
		return value
	})

	if len(unknown) > 0 {
		return "", errors.ErrUnknownPlaceholder.WithContext("placeholders", strings.Join(unknown, ", "))
	}
	return rendered, nil
}
