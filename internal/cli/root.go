package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/unii/internal/version"
	"github.com/arthur-debert/unii/pkg/config"
	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/filters"
	"github.com/arthur-debert/unii/pkg/logging"
	"github.com/arthur-debert/unii/pkg/paths"
	"github.com/arthur-debert/unii/pkg/render"
	"github.com/arthur-debert/unii/pkg/style"
	tmpl "github.com/arthur-debert/unii/pkg/template"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	verbosity    int
	settingsFile string
	directory    string
}

// app holds everything a command needs, built from the settings
type app struct {
	settings  *config.Settings
	paths     paths.Paths
	courses   *course.Store
	templates *tmpl.Store
	engine    *render.Engine
	out       *style.Printer
}

func (o *globalOptions) load(cmd *cobra.Command) (*app, error) {
	file := config.DefaultSettingsFile()
	if o.settingsFile != "" {
		normalized, err := paths.Normalize(o.settingsFile)
		if err != nil {
			return nil, err
		}
		file = normalized
	}

	settings, err := config.OpenOrCreate(file)
	if err != nil {
		return nil, err
	}
	if o.directory != "" {
		settings.Path = o.directory
	}

	p, err := paths.New(settings.Path)
	if err != nil {
		return nil, err
	}
	pattern, err := settings.CourseCodeRegexp()
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("settings", file).
		Str("root", p.Root()).
		Msg("Settings loaded")

	fsys := filesystem.NewOS()
	return &app{
		settings:  settings,
		paths:     p,
		courses:   course.NewStore(fsys, p, pattern),
		templates: tmpl.NewStore(fsys, p),
		engine:    render.NewEngine(fsys, p, render.NewShellRunner(), filters.New()),
		out:       style.NewPrinter(cmd.OutOrStdout(), detectFormat(cmd.OutOrStdout())),
	}, nil
}

func detectFormat(w io.Writer) style.Format {
	if f, ok := w.(*os.File); ok {
		return style.DetectFormat(f)
	}
	return style.FormatText
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "unii",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.settingsFile, "settings-file", "", MsgFlagSettingsFile)
	rootCmd.PersistentFlags().StringVarP(&opts.directory, "directory", "C", "", MsgFlagDirectory)

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newCourseCmd(opts))
	rootCmd.AddCommand(newTemplateCmd(opts))

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(unii completion bash)

Zsh:
  $ unii completion zsh > "${fpath[1]}/_unii"

Fish:
  $ unii completion fish | source

PowerShell:
  PS> unii completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(root *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported shell %q", shell)
	}
}
