package cli

// Command descriptions
const (
	MsgRootShort = "Course-scoped template scaffolding"
	MsgRootLong  = `unii keeps one directory per course and renders reusable templates into them.

A template is a directory name, a tree of files and a shell command, each
written as Go template source. Rendering one creates
<course>/<pluralized-name>/<directory-name>, runs the command inside it and
writes the files.`

	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	MsgCourseShort       = "Manage courses"
	MsgCourseNewShort    = "Create a course"
	MsgCourseListShort   = "List courses"
	MsgCourseDeleteShort = "Delete a course and everything in it"
	MsgCourseEditShort   = "Change the information stored for a course"

	MsgTemplateShort        = "Manage and render templates"
	MsgTemplateNewShort     = "Create an empty template definition"
	MsgTemplateListShort    = "List templates"
	MsgTemplateShowShort    = "Describe a template"
	MsgTemplateRenderShort  = "Render a template into a course"
	MsgTemplateCheckShort   = "Render a template without side effects and check its command"
	MsgTemplateFiltersShort = "List the case-conversion filters available to templates"
)

// Output
const (
	MsgVersionFormat = "unii version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	MsgCourseCreated  = "Created course %s at %s"
	MsgCourseDeleted  = "Deleted course %s"
	MsgCourseUpdated  = "Updated course %s"
	MsgTemplateCreate = "Created template %s at %s"
	MsgRendered       = "Rendered %s into %s"
	MsgDryRunNotice   = "Dry run: nothing was written"
	MsgCheckPassed    = "Template %s renders cleanly"
	MsgFiltersUsage   = "Use an alias in a pipeline, {{ .name | PascalCase }}, or through case, {{ .name | case \"kebab-case\" }}."
)

// Flag descriptions
const (
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSettingsFile = "Settings file (default $XDG_CONFIG_HOME/unii/settings.toml)"
	MsgFlagDirectory    = "Root directory, overriding the settings path"
	MsgFlagName         = "Course name"
	MsgFlagDescription  = "Course description"
	MsgFlagURL          = "Course website"
	MsgFlagCourse       = "Course code"
	MsgFlagTemplateIn   = "Store the template in this course instead of globally"
	MsgFlagDryRun       = "Show what would be rendered without writing anything"
	MsgFlagAdopt        = "Write an empty course record into every directory that lacks one"
)
