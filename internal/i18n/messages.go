package i18n

var defaultMessages = `
	[app_usage]
	other = "Prepare draft releases from change types, with the package index as the source of truth"

	[app_description]
	other = "releasecraft discovers the current published version, computes the next one for a given change type, renders templated release notes from recent commits and creates or updates a draft release through the GitHub CLI."

	[flag_type_usage]
	other = "create a draft for a specific change type (patch, minor, major)"

	[flag_beta_usage]
	other = "mark the draft as a beta pre-release"

	[flag_status_usage]
	other = "show current version status across platforms, without writing anything"

	[flag_sync_usage]
	other = "synchronize the local version record with the package index and exit"

	[flag_no_sync_usage]
	other = "skip version record synchronization"

	[flag_dry_run_usage]
	other = "with --sync, report the record changes without writing them"

	[flag_no_index_usage]
	other = "disable package index integration (resolve from the manifest only)"

	[flag_verbose_usage]
	other = "enable informational logging"

	[flag_debug_usage]
	other = "enable debug logging"

	[prepare.starting]
	other = "🚀 Preparing {{.Project}} {{.Type}} release..."

	[prepare.starting_all]
	other = "🚀 Preparing {{.Project}} release drafts..."

	[prepare.current_version]
	other = "📋 Current version: {{.Version}}"

	[prepare.commit_count]
	one = "📝 Found {{.Count}} commit since last release"
	other = "📝 Found {{.Count}} commits since last release"

	[prepare.creating_candidate]
	other = "🎯 Creating {{.Type}} release candidate..."

	[prepare.completed]
	other = "Release preparation completed!"

	[prepare.created_draft]
	other = "📦 Created draft: {{.Title}}"

	[prepare.tag]
	other = "🏷️ Tag: {{.Tag}}"

	[prepare.version]
	other = "📋 Version: {{.Version}}"

	[prepare.check_releases]
	other = "📋 Check the repository releases page for updated drafts"

	[prepare.next_steps]
	other = "🎯 Next steps:"

	[prepare.step_review]
	other = "   1. Open the releases page and review the draft notes"

	[prepare.step_edit]
	other = "   2. Edit the notes where the template left placeholdery sections"

	[prepare.step_publish]
	other = "   3. Publish the release to trigger deployment"

	[publish.updating_draft]
	other = "📝 Updating existing draft: {{.Title}}"

	[publish.creating_draft]
	other = "✨ Creating new draft: {{.Title}}"

	[cleanup.deleting]
	other = "🧹 Cleaning up old draft: {{.Name}}"

	[sync.started]
	other = "🔄 Synchronizing version record with the package index..."

	[sync.updated]
	other = "✅ Version record synchronized"

	[sync.field_change]
	other = "  • {{.Field}}: {{.Old}} → {{.New}}"

	[sync.in_sync]
	other = "✅ Version record already synchronized"

	[sync.unavailable]
	other = "⚠️ Version record synchronization not available or failed"

	[resolve.index_production]
	other = "📦 Current production version from index: {{.Version}}"

	[resolve.index_staging]
	other = "🧪 Current version from staging index: {{.Version}}"

	[resolve.record_fallback]
	other = "📋 Using version record as fallback"

	[resolve.manifest_fallback]
	other = "📋 Using manifest version as fallback"

	[status.header]
	other = "📊 {{.Project}} Version Status Report:"

	[status.production]
	other = "Production index: {{.Version}}"

	[status.staging]
	other = "Staging index: {{.Version}}"

	[status.record_production]
	other = "Version record (production): {{.Version}}"

	[status.record_staging]
	other = "Version record (staging): {{.Version}}"

	[status.synced]
	other = "✅ All versions synchronized"

	[status.needs_sync]
	other = "⚠️ Synchronization issues found:"

	[status.out_of_sync_entry]
	other = "  • {{.Platform}}: record has {{.Record}}, index has {{.Index}}"

	[status.next_header]
	other = "📈 Next available versions:"

	[status.next_entry]
	other = "  • {{.Type}}: {{.Version}}"

	[status.recommendations_header]
	other = "💡 Recommendations:"

	[status.recommendation_entry]
	other = "  • {{.Text}}"

	[interrupted]
	other = "🛑 Operation cancelled by user"
	`
