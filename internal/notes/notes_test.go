package notes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "releasecraft/internal/errors"
	"releasecraft/internal/models"
)

func TestDescription(t *testing.T) {
	assert.Equal(t, "Production Release (Minor) - New features, backward compatible", Description("minor"))
	assert.Equal(t, "Beta Release (Major) - Testing breaking changes", Description("beta-major"))
	assert.Equal(t, "Production Release", Description("hotfix"))
}

func TestCommitSummary_Truncation(t *testing.T) {
	long := strings.Repeat("x", 70)
	summary := CommitSummary([]models.Commit{{SHA: "abc12345", Message: long}})

	line := strings.Split(summary, "\n")[2]
	msg := strings.TrimSuffix(strings.TrimPrefix(line, "• "), " (abc12345)")
	assert.Len(t, msg, 60)
	assert.Equal(t, strings.Repeat("x", 57)+"...", msg)
}

func TestCommitSummary_ExactlySixtyCharsNotTruncated(t *testing.T) {
	msg := strings.Repeat("y", 60)
	summary := CommitSummary([]models.Commit{{SHA: "abc12345", Message: msg}})
	assert.Contains(t, summary, "• "+msg+" (abc12345)")
}

func TestCommitSummary_OverflowCounter(t *testing.T) {
	commits := make([]models.Commit, 11)
	for i := range commits {
		commits[i] = models.Commit{SHA: fmt.Sprintf("sha%05d", i), Message: fmt.Sprintf("commit %d", i)}
	}

	summary := CommitSummary(commits)
	assert.Contains(t, summary, "• ... and 3 more commits")
	assert.Contains(t, summary, "commit 7")
	assert.NotContains(t, summary, "commit 8 (")
}

func TestCommitSummary_Empty(t *testing.T) {
	assert.Equal(t, "• See commit history for detailed changes", CommitSummary(nil))
}

func TestRender_DefaultTemplate(t *testing.T) {
	renderer := NewRenderer(filepath.Join(t.TempDir(), "missing"))

	candidate := &models.ReleaseCandidate{
		ReleaseType: "beta-minor",
		Version:     "2.6.0-beta.1",
	}
	commits := []models.Commit{{SHA: "abc12345", Message: "Add new validator"}}

	body, err := renderer.Render(candidate, "2.5.9", commits)
	require.NoError(t, err)

	assert.Contains(t, body, "v2.6.0-beta.1 - Beta Minor Release")
	assert.Contains(t, body, "Beta Release (Minor) - Testing new features")
	assert.Contains(t, body, "Previous Version: 2.5.9")
	assert.Contains(t, body, "• Add new validator (abc12345)")
}

func TestRender_TemplateFileOverridesDefault(t *testing.T) {
	dir := t.TempDir()
	custom := "Version {version}, previously {previous_version}.\n{commit_summary}"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patch.md"), []byte(custom), 0644))

	renderer := NewRenderer(dir)
	candidate := &models.ReleaseCandidate{ReleaseType: "patch", Version: "1.0.1"}

	body, err := renderer.Render(candidate, "1.0.0", nil)
	require.NoError(t, err)
	assert.Equal(t, "Version 1.0.1, previously 1.0.0.\n• See commit history for detailed changes", body)
}

func TestRender_MissingPreviousVersion(t *testing.T) {
	renderer := NewRenderer(t.TempDir())
	candidate := &models.ReleaseCandidate{ReleaseType: "major", Version: "1.0.0"}

	body, err := renderer.Render(candidate, "", nil)
	require.NoError(t, err)
	assert.Contains(t, body, "Previous Version: None")
}

func TestRender_UnknownPlaceholderFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "minor.md"), []byte("{version} {installation_command}"), 0644))

	renderer := NewRenderer(dir)
	candidate := &models.ReleaseCandidate{ReleaseType: "minor", Version: "1.1.0"}

	_, err := renderer.Render(candidate, "1.0.0", nil)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.TypeRender, appErr.Type)
}
