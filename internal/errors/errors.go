package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeFormat        ErrorType = "FORMAT"
	TypeResolution    ErrorType = "RESOLUTION"
	TypeIndex         ErrorType = "INDEX"
	TypeVCS           ErrorType = "VCS"
	TypeRender        ErrorType = "RENDER"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// Version errors
var (
	ErrInvalidVersionFormat = NewAppError(TypeFormat, "Version does not start with a numeric X.Y.Z triple", nil).
				WithSuggestion("Use semantic versioning: 1.0.0, 2.1.3-beta.1, etc.")

	ErrInvalidChangeType = NewAppError(TypeInternal, "Invalid change type", nil).
				WithSuggestion("Valid change types are: patch, minor, major")

	ErrNoVersionSource = NewAppError(TypeResolution, "No version could be determined from any source", nil).
				WithSuggestion("Check network access to the package index, or declare a version in the project manifest")
)

// Package index errors
var (
	ErrIndexRequest = NewAppError(TypeIndex, "Package index request failed", nil).
			WithSuggestion("Check your network connection and the configured index URL")

	ErrPackageNotFound = NewAppError(TypeIndex, "Package not found on the index", nil).
				WithSuggestion("Verify the package name in your configuration")

	ErrIndexResponse = NewAppError(TypeIndex, "Package index returned an invalid response", nil)

	ErrRecordSync = NewAppError(TypeIndex, "Failed to synchronize the version record", nil).
			WithSuggestion("Check that the version record file is writable")

	ErrRecordNotFound = NewAppError(TypeIndex, "Version record file not found", nil).
				WithSuggestion("Create a VERSION.json in the project root, or configure version_record")
)

// Hosting CLI errors
var (
	ErrGHNotFound = NewAppError(TypeVCS, "GitHub CLI (gh) not found", nil).
			WithSuggestion("Install it from https://cli.github.com and run: gh auth login")

	ErrGHNotAuthenticated = NewAppError(TypeVCS, "GitHub CLI not authenticated", nil).
				WithSuggestion("Run: gh auth login")

	ErrGHCommand = NewAppError(TypeVCS, "GitHub CLI command failed", nil).
			WithSuggestion("Re-run the same gh command manually to inspect the failure")

	ErrListReleases = NewAppError(TypeVCS, "Failed to list releases", nil).
			WithSuggestion("Verify repository access: gh release list")

	ErrCreateDraft = NewAppError(TypeVCS, "Failed to create draft release", nil).
			WithSuggestion("Check your gh authentication has 'repo' scope")

	ErrUpdateDraft = NewAppError(TypeVCS, "Failed to update draft release", nil).
			WithSuggestion("Verify the draft still exists: gh release list")

	ErrDeleteRelease = NewAppError(TypeVCS, "Failed to delete release", nil)

	ErrGetCommits = NewAppError(TypeVCS, "Failed to get commit history", nil).
			WithSuggestion("Make sure you have commits in your repository: git log")

	ErrGetRepoURL = NewAppError(TypeVCS, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")
)

// Manifest errors
var (
	ErrManifestNotFound = NewAppError(TypeResolution, "Project manifest not found", nil).
				WithSuggestion("Run from the project root, or configure manifest_path")

	ErrManifestNoVersion = NewAppError(TypeResolution, "No version declared in the project manifest", nil).
				WithSuggestion("Add a version field under [project] in the manifest")
)

// Render errors
var (
	ErrUnknownPlaceholder = NewAppError(TypeRender, "Template references an unknown placeholder", nil).
				WithSuggestion("Supported placeholders: {version}, {release_type}, {release_description}, {previous_version}, {commit_summary}")

	ErrTemplateRead = NewAppError(TypeRender, "Failed to read release notes template", nil)
)

// Configuration errors
var (
	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("A default config is created on first run under ~/.releasecraft")
)
