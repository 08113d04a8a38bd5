package index

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"releasecraft/internal/errors"
	"releasecraft/internal/logger"
	"releasecraft/internal/models"
	"releasecraft/internal/semver"
)

// Record is the local VERSION.json audit file kept in sync with the index.
type Record struct {
	CurrentRelease string            `json:"current_release"`
	CurrentStaging string            `json:"current_testpypi"`
	NextAllowed    map[string]string `json:"next_allowed,omitempty"`
	Metadata       RecordMetadata    `json:"metadata"`
}

type RecordMetadata struct {
	LastUpdated string `json:"last_updated,omitempty"`
	SyncSource  string `json:"sync_source,omitempty"`
}

func LoadRecord(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrRecordNotFound.WithContext("path", path)
		}
		return nil, errors.ErrRecordNotFound.WithError(err).WithContext("path", path)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.ErrRecordSync.WithError(err).WithContext("path", path)
	}
	return &record, nil
}

func (r *Record) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.ErrRecordSync.WithError(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.ErrRecordSync.WithError(err).WithContext("path", path)
	}
	return nil
}

// FieldChange describes one record field a sync run updated.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// SyncRecord reconciles the record file with what the index actually
// published. Index lookup failures are warnings; the remaining fields still
// sync. With dryRun the changes are reported but not written.
func SyncRecord(ctx context.Context, client *Client, path string, dryRun bool) ([]FieldChange, error) {
	record, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}

	production, err := client.ProductionVersion(ctx)
	if err != nil {
		logger.Warn(ctx, "Could not get production version from index", "error", err)
		production = ""
	}

	staging, err := client.StagingVersion(ctx)
	if err != nil {
		logger.Warn(ctx, "Could not get staging version from index", "error", err)
		staging = ""
	}

	var changes []FieldChange

	if production != "" && record.CurrentRelease != production {
		changes = append(changes, FieldChange{Field: "current_release", Old: record.CurrentRelease, New: production})
		if !dryRun {
			record.CurrentRelease = production
		}
	}

	if staging != "" && record.CurrentStaging != staging {
		changes = append(changes, FieldChange{Field: "current_testpypi", Old: record.CurrentStaging, New: staging})
		if !dryRun {
			record.CurrentStaging = staging
		}
	}

	if production != "" {
		if next, changed := nextAllowedFor(production, record.NextAllowed); changed {
			changes = append(changes, FieldChange{
				Field: "next_allowed",
				Old:   formatNextAllowed(record.NextAllowed),
				New:   formatNextAllowed(next),
			})
			if !dryRun {
				record.NextAllowed = next
			}
		}
	}

	if !dryRun && len(changes) > 0 {
		record.Metadata.LastUpdated = time.Now().UTC().Format(time.RFC3339)
		record.Metadata.SyncSource = "package index"
		if err := record.Save(path); err != nil {
			return nil, err
		}
	}

	return changes, nil
}

func nextAllowedFor(production string, current map[string]string) (map[string]string, bool) {
	version, err := semver.Parse(production)
	if err != nil {
		return nil, false
	}

	next := semver.Next(version)
	allowed := map[string]string{
		string(models.PatchChange): next.Patch.String(),
		string(models.MinorChange): next.Minor.String(),
		string(models.MajorChange): next.Major.String(),
	}

	if len(current) != len(allowed) {
		return allowed, true
	}
	for k, v := range allowed {
		if current[k] != v {
			return allowed, true
		}
	}
	return allowed, false
}

func formatNextAllowed(m map[string]string) string {
	if m == nil {
		return "none"
	}
	return "patch=" + m["patch"] + " minor=" + m["minor"] + " major=" + m["major"]
}
