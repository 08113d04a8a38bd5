// Package cli wires the release service into the command line surface.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"releasecraft/internal/errors"
	"releasecraft/internal/i18n"
	"releasecraft/internal/index"
	"releasecraft/internal/models"
)

// PreparerService is the slice of the release service the commands need.
type PreparerService interface {
	PrepareByType(ctx context.Context, changeType string, beta, sync bool) (*models.ReleaseCandidate, error)
	PrepareAll(ctx context.Context, sync bool) ([]*models.ReleaseCandidate, error)
	Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error)
	StatusReport(ctx context.Context) (*models.VersionStatus, error)
}

// ServiceBuilder constructs the release service once the flags are known.
// The index integration is part of the construction, so the builder gets the
// no-pypi flag instead of the service.
type ServiceBuilder func(ctx context.Context, noIndex bool) (PreparerService, error)

type AppFactory struct {
	build   ServiceBuilder
	project string
	out     io.Writer
}

func NewAppFactory(build ServiceBuilder, project string, out io.Writer) *AppFactory {
	return &AppFactory{build: build, project: project, out: out}
}

func (f *AppFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:        "releasecraft",
		Usage:       t.GetMessage("app_usage", 0, nil),
		Description: t.GetMessage("app_description", 0, nil),
		Flags:       f.createFlags(t),
		Action:      f.createAction(t),
	}
}

func (f *AppFactory) createFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "type",
			Aliases: []string{"t"},
			Usage:   t.GetMessage("flag_type_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:    "beta",
			Aliases: []string{"b"},
			Usage:   t.GetMessage("flag_beta_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "status",
			Usage: t.GetMessage("flag_status_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "sync",
			Usage: t.GetMessage("flag_sync_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-sync",
			Usage: t.GetMessage("flag_no_sync_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: t.GetMessage("flag_dry_run_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "no-pypi",
			Usage: t.GetMessage("flag_no_index_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("flag_verbose_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("flag_debug_usage", 0, nil),
		},
	}
}

func (f *AppFactory) createAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		changeType := command.String("type")
		beta := command.Bool("beta")
		if beta && changeType == "" {
			return errors.ErrInvalidChangeType.WithContext("reason", "--beta requires --type")
		}

		svc, err := f.build(ctx, command.Bool("no-pypi"))
		if err != nil {
			return err
		}

		switch {
		case command.Bool("status"):
			status, err := svc.StatusReport(ctx)
			if err != nil {
				return err
			}
			f.printStatus(t, status)
			return nil

		case command.Bool("sync"):
			_, err := svc.Sync(ctx, command.Bool("dry-run"))
			return err

		case changeType != "":
			candidate, err := svc.PrepareByType(ctx, changeType, beta, !command.Bool("no-sync"))
			if err != nil {
				return err
			}
			f.printOutputs(candidate)
			return nil

		default:
			_, err := svc.PrepareAll(ctx, !command.Bool("no-sync"))
			return err
		}
	}
}

// printOutputs writes the machine-readable lines consumed by CI jobs that
// invoke the tool with --type.
func (f *AppFactory) printOutputs(candidate *models.ReleaseCandidate) {
	fmt.Fprintf(f.out, "VERSION=%s\n", candidate.Version)
	fmt.Fprintf(f.out, "TAG_NAME=%s\n", candidate.TagName)
	fmt.Fprintf(f.out, "IS_PRERELEASE=%t\n", candidate.Prerelease)
	fmt.Fprintf(f.out, "RELEASE_TYPE=%s\n", candidate.ReleaseType)
}

func (f *AppFactory) printStatus(t *i18n.Translations, status *models.VersionStatus) {
	line := func(id string, data map[string]interface{}) {
		fmt.Fprintln(f.out, t.GetMessage(id, 0, data))
	}

	line("status.header", map[string]interface{}{"Project": f.project})
	line("status.production", map[string]interface{}{"Version": orNone(status.ProductionVersion)})
	line("status.staging", map[string]interface{}{"Version": orNone(status.StagingVersion)})
	line("status.record_production", map[string]interface{}{"Version": orNone(status.RecordProduction)})
	line("status.record_staging", map[string]interface{}{"Version": orNone(status.RecordStaging)})

	if status.NeedsSync {
		line("status.needs_sync", nil)
		if !status.ProductionSynced {
			line("status.out_of_sync_entry", map[string]interface{}{
				"Platform": "production", "Record": orNone(status.RecordProduction), "Index": orNone(status.ProductionVersion),
			})
		}
		if !status.StagingSynced {
			line("status.out_of_sync_entry", map[string]interface{}{
				"Platform": "staging", "Record": orNone(status.RecordStaging), "Index": orNone(status.StagingVersion),
			})
		}
	} else {
		line("status.synced", nil)
	}

	line("status.next_header", nil)
	for _, ct := range models.ChangeTypes {
		line("status.next_entry", map[string]interface{}{"Type": string(ct), "Version": status.NextVersions[ct]})
	}

	if len(status.Recommendations) > 0 {
		line("status.recommendations_header", nil)
		for _, rec := range status.Recommendations {
			line("status.recommendation_entry", map[string]interface{}{"Text": rec})
		}
	}
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}
