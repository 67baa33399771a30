package cli

import (
	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/filters"
	"github.com/arthur-debert/unii/pkg/render"
	tmpl "github.com/arthur-debert/unii/pkg/template"
	"github.com/spf13/cobra"
)

func newTemplateCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates", "tmpl"},
		Short:   MsgTemplateShort,
	}

	cmd.AddCommand(newTemplateNewCmd(opts))
	cmd.AddCommand(newTemplateListCmd(opts))
	cmd.AddCommand(newTemplateShowCmd(opts))
	cmd.AddCommand(newTemplateRenderCmd(opts))
	cmd.AddCommand(newTemplateCheckCmd(opts))
	cmd.AddCommand(newTemplateFiltersCmd())
	return cmd
}

// scopeFor returns the template scope of code, checking the course exists
func (a *app) scopeFor(code string) (tmpl.Scope, error) {
	if code == "" {
		return tmpl.Global, nil
	}
	if _, err := a.courses.Get(code); err != nil {
		return tmpl.Scope{}, err
	}
	return tmpl.CourseScope(code), nil
}

// renderInputs is everything resolved from a render-style command line
type renderInputs struct {
	template *tmpl.Template
	course   *course.Course
	params   *render.Context
}

func (a *app) resolveRender(args []string, courseFlag string) (*renderInputs, error) {
	ref := parseTemplateRef(args[0])

	target, err := targetCourse(ref, courseFlag)
	if err != nil {
		return nil, err
	}

	scope, err := a.scopeFor(ref.source)
	if err != nil {
		return nil, err
	}

	c, err := a.courses.Get(target)
	if err != nil {
		return nil, err
	}

	t, err := a.templates.Get(scope, ref.name)
	if err != nil {
		return nil, err
	}

	params, err := render.ParseParams(args[1:])
	if err != nil {
		return nil, err
	}

	return &renderInputs{template: t, course: c, params: params}, nil
}

func newTemplateNewCmd(opts *globalOptions) *cobra.Command {
	var courseCode string

	cmd := &cobra.Command{
		Use:     "new NAME [PLURALIZED_NAME]",
		Aliases: []string{"create", "add"},
		Short:   MsgTemplateNewShort,
		Example: `  unii template new lab
  unii template new quiz quizzes --course COMP1511`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			scope, err := a.scopeFor(courseCode)
			if err != nil {
				return err
			}

			plural := ""
			if len(args) == 2 {
				plural = args[1]
			}

			t, err := a.templates.Create(scope, args[0], plural)
			if err != nil {
				return err
			}
			a.out.Success(MsgTemplateCreate, t.Name(), a.templates.Path(scope, t.Name()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&courseCode, "course", "c", "", MsgFlagTemplateIn)
	return cmd
}

func newTemplateListCmd(opts *globalOptions) *cobra.Command {
	var courseCode string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgTemplateListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			scope, err := a.scopeFor(courseCode)
			if err != nil {
				return err
			}

			seq, err := a.templates.All(scope)
			if err != nil {
				return err
			}

			var templates []*tmpl.Template
			for t, err := range seq {
				if err != nil {
					a.out.Warning("%s", err.Error())
					continue
				}
				templates = append(templates, t)
			}
			a.out.Templates(scope, templates)
			return nil
		},
	}
	cmd.Flags().StringVarP(&courseCode, "course", "c", "", MsgFlagCourse)
	return cmd
}

func newTemplateShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show [SOURCE:]NAME",
		Short: MsgTemplateShowShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			ref := parseTemplateRef(args[0])
			scope, err := a.scopeFor(ref.source)
			if err != nil {
				return err
			}

			t, err := a.templates.Get(scope, ref.name)
			if err != nil {
				return err
			}
			a.out.Markdown(t.Describe())
			return nil
		},
	}
}

func newTemplateRenderCmd(opts *globalOptions) *cobra.Command {
	var (
		courseCode string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:     "render [SOURCE:]NAME [KEY=VALUE...]",
		Aliases: []string{"generate", "gen", "run", "use", "make"},
		Short:   MsgTemplateRenderShort,
		Long: MsgTemplateRenderShort + `.

SOURCE names the course whose private templates hold NAME; without it the
global templates are used. The render goes into --course, or into SOURCE
when --course is not given.

Each VALUE is read as JSON when it is valid JSON (numbers, booleans, quoted
strings, arrays, objects) and as plain text otherwise.`,
		Example: `  unii template render lab name=intro week=1 --course COMP1511
  unii template render COMP1511:assignment name=ass1
  unii template render lab name=intro --course COMP1511 --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			in, err := a.resolveRender(args, courseCode)
			if err != nil {
				return err
			}

			if dryRun {
				plan, err := a.engine.Plan(in.template, in.course, in.params)
				if err != nil {
					return err
				}
				a.out.Plan(plan)
				a.out.Line(MsgDryRunNotice)
				return nil
			}

			result, err := a.engine.Render(cmd.Context(), in.template, in.course, in.params)
			if err != nil {
				return err
			}
			a.out.Success(MsgRendered, in.template.Name(), result.Target)
			return nil
		},
	}
	cmd.Flags().StringVarP(&courseCode, "course", "c", "", MsgFlagCourse)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	return cmd
}

func newTemplateCheckCmd(opts *globalOptions) *cobra.Command {
	var courseCode string

	cmd := &cobra.Command{
		Use:   "check [SOURCE:]NAME [KEY=VALUE...]",
		Short: MsgTemplateCheckShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			in, err := a.resolveRender(args, courseCode)
			if err != nil {
				return err
			}

			plan, err := a.engine.Plan(in.template, in.course, in.params)
			if err != nil {
				return err
			}
			a.out.Plan(plan)

			if err := plan.CheckCommand(); err != nil {
				return err
			}
			a.out.Success(MsgCheckPassed, in.template.Name())
			return nil
		},
	}
	cmd.Flags().StringVarP(&courseCode, "course", "c", "", MsgFlagCourse)
	return cmd
}

func newTemplateFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: MsgTemplateFiltersShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = out.Write([]byte(filters.New().String()))
			_, _ = out.Write([]byte("\n" + MsgFiltersUsage + "\n"))
		},
	}
}
