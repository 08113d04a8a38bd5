// Package manifest extracts the declared project version from a local
// manifest file (pyproject.toml). Parsing is an ordered list of strategies
// tried in sequence; the first one that yields a version wins.
package manifest

import (
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"releasecraft/internal/errors"
)

type strategy struct {
	name    string
	extract func(data []byte) (string, bool)
}

type Reader struct {
	path       string
	strategies []strategy
}

func NewReader(path string) *Reader {
	return &Reader{
		path: path,
		strategies: []strategy{
			{name: "project-table", extract: projectTableVersion},
			{name: "poetry-table", extract: poetryTableVersion},
			{name: "line-scan", extract: lineScanVersion},
		},
	}
}

// Version returns the declared version, or a resolution error when the file
// is missing or no strategy finds one.
func (r *Reader) Version() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.ErrManifestNotFound.WithContext("path", r.path)
		}
		return "", errors.ErrManifestNotFound.WithError(err).WithContext("path", r.path)
	}

	for _, s := range r.strategies {
		if version, ok := s.extract(data); ok {
			return version, nil
		}
	}

	return "", errors.ErrManifestNoVersion.WithContext("path", r.path)
}

func projectTableVersion(data []byte) (string, bool) {
	var doc struct {
		Project struct {
			Version string `toml:"version"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", false
	}
	return doc.Project.Version, doc.Project.Version != ""
}

func poetryTableVersion(data []byte) (string, bool) {
	var doc struct {
		Tool struct {
			Poetry struct {
				Version string `toml:"version"`
			} `toml:"poetry"`
		} `toml:"tool"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return "", false
	}
	return doc.Tool.Poetry.Version, doc.Tool.Poetry.Version != ""
}

// lineScanVersion is the last-resort strategy for manifests the TOML parser
// rejects. It looks for the first `version = "..."` line.
func lineScanVersion(data []byte) (string, bool) {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, `version = "`) {
			continue
		}
		parts := strings.Split(trimmed, `"`)
		if len(parts) >= 2 && parts[1] != "" {
			return parts[1], true
		}
	}
	return "", false
}
