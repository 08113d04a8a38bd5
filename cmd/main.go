package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	clilib "github.com/urfave/cli/v3"

	appcli "releasecraft/internal/cli"
	cfg "releasecraft/internal/config"
	"releasecraft/internal/errors"
	"releasecraft/internal/ghcli"
	"releasecraft/internal/git"
	"releasecraft/internal/i18n"
	"releasecraft/internal/index"
	"releasecraft/internal/logger"
	"releasecraft/internal/manifest"
	"releasecraft/internal/notes"
	"releasecraft/internal/publisher"
	"releasecraft/internal/resolver"
	"releasecraft/internal/service"
	"releasecraft/internal/ui"
	vcsgithub "releasecraft/internal/vcs/github"
)

const interruptExitCode = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, translations, err := initializeApp()
	if err != nil {
		fatal(err)
	}

	if err := app.Run(ctx, os.Args); err != nil {
		if ctx.Err() != nil || goerrors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, translations.GetMessage("interrupted", 0, nil))
			os.Exit(interruptExitCode)
		}
		fatal(err)
	}
}

func initializeApp() (*clilib.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not determine the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, err
	}

	// persist defaults applied during load so the file stays editable
	if err := cfg.SaveConfig(cfgApp); err != nil {
		return nil, nil, err
	}

	logger.Initialize(
		slices.Contains(os.Args, "--debug"),
		slices.Contains(os.Args, "--verbose"),
	)

	builder := func(ctx context.Context, noIndex bool) (appcli.PreparerService, error) {
		return buildReleaseService(ctx, cfgApp, translations, noIndex)
	}
	factory := appcli.NewAppFactory(builder, cfgApp.Project(), os.Stdout)
	return factory.CreateCommand(translations), translations, nil
}

func buildReleaseService(ctx context.Context, cfgApp *cfg.Config, translations *i18n.Translations, noIndex bool) (appcli.PreparerService, error) {
	if cfgApp.PackageName == "" {
		return nil, errors.ErrConfigMissing.WithContext("field", "package_name")
	}

	ghClient := ghcli.NewClient()
	spin := ui.NewSmartSpinner("Checking GitHub CLI authentication...")
	spin.Start()
	err := ghClient.CheckAuth(ctx)
	spin.Stop()
	if err != nil {
		return nil, err
	}

	gitService := git.NewGitService()

	var commitSources []service.CommitSource
	if cfgApp.GitHubToken != "" {
		if source := apiCommitSource(ctx, gitService, cfgApp.GitHubToken); source != nil {
			commitSources = append(commitSources, source)
		}
	}
	commitSources = append(commitSources,
		&service.CLICommitSource{Client: ghClient},
		&service.LocalCommitSource{Service: gitService},
	)

	var versionSources []resolver.Source
	deps := service.Deps{
		Commits:    commitSources,
		Renderer:   notes.NewRenderer(cfgApp.TemplatesDir),
		Publisher:  publisher.New(ghClient, cfgApp.Project()),
		RecordPath: cfgApp.VersionRecord,
		Project:    cfgApp.Project(),
		Trans:      translations,
		Out:        os.Stdout,
	}

	if !noIndex {
		indexClient := index.NewClient(
			cfgApp.IndexURL,
			cfgApp.StagingIndexURL,
			cfgApp.PackageName,
			time.Duration(cfgApp.CacheTTLMinutes)*time.Minute,
		)
		versionSources = append(versionSources,
			&resolver.ProductionIndexSource{Client: indexClient},
			&resolver.StagingIndexSource{Client: indexClient},
		)
		deps.Index = indexClient
		deps.Syncer = &service.IndexRecordSyncer{Client: indexClient, Path: cfgApp.VersionRecord}
	}
	versionSources = append(versionSources,
		&resolver.RecordSource{Path: cfgApp.VersionRecord},
		&resolver.ManifestSource{Reader: manifest.NewReader(cfgApp.ManifestPath)},
	)
	deps.Resolver = resolver.New(versionSources...)

	return service.NewReleaseService(deps), nil
}

// repoInfoProvider yields (host, owner, repo) for the current working copy.
type repoInfoProvider interface {
	GetRepoInfo(ctx context.Context) (string, string, string, error)
}

// apiCommitSource builds the token-backed REST commit source, or nil when
// the repository cannot be determined locally.
func apiCommitSource(ctx context.Context, repoInfo repoInfoProvider, token string) *service.APICommitSource {
	_, owner, repo, err := repoInfo.GetRepoInfo(ctx)
	if err != nil {
		logger.Warn(ctx, "Could not determine repository, skipping the API commit source", "error", err)
		return nil
	}
	return &service.APICommitSource{Client: vcsgithub.NewClient(owner, repo, token)}
}

func fatal(err error) {
	ui.PrintError(os.Stderr, err.Error())

	var appErr *errors.AppError
	if goerrors.As(err, &appErr) && appErr.Suggestion != "" {
		fmt.Fprintln(os.Stderr, ui.Dim.Sprintf("💡 %s", appErr.Suggestion))
	}
	os.Exit(1)
}
