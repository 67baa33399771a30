package cli

import (
	"github.com/arthur-debert/unii/pkg/course"
	"github.com/spf13/cobra"
)

func newCourseCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "course",
		Aliases: []string{"courses"},
		Short:   MsgCourseShort,
	}

	cmd.AddCommand(newCourseNewCmd(opts))
	cmd.AddCommand(newCourseListCmd(opts))
	cmd.AddCommand(newCourseEditCmd(opts))
	cmd.AddCommand(newCourseDeleteCmd(opts))
	return cmd
}

func addInformationFlags(cmd *cobra.Command, info *course.Information) {
	cmd.Flags().StringVar(&info.Name, "name", "", MsgFlagName)
	cmd.Flags().StringVar(&info.Description, "description", "", MsgFlagDescription)
	cmd.Flags().StringVar(&info.URL, "url", "", MsgFlagURL)
}

func newCourseNewCmd(opts *globalOptions) *cobra.Command {
	var info course.Information

	cmd := &cobra.Command{
		Use:     "new CODE",
		Aliases: []string{"create", "add"},
		Short:   MsgCourseNewShort,
		Example: `  unii course new COMP1511 --name "Programming Fundamentals"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			c, err := a.courses.Create(args[0], info)
			if err != nil {
				return err
			}
			a.out.Success(MsgCourseCreated, c.Code(), c.Dir(a.paths))
			return nil
		},
	}
	addInformationFlags(cmd, &info)
	return cmd
}

func newCourseListCmd(opts *globalOptions) *cobra.Command {
	var adopt bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgCourseListShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			list := a.courses.All
			if adopt {
				list = a.courses.Adopt
			}
			seq, err := list()
			if err != nil {
				return err
			}

			var courses []*course.Course
			for c, err := range seq {
				if err != nil {
					a.out.Warning("%s", err.Error())
					continue
				}
				courses = append(courses, c)
			}
			a.out.Courses(courses)
			return nil
		},
	}
	cmd.Flags().BoolVar(&adopt, "adopt", false, MsgFlagAdopt)
	return cmd
}

func newCourseEditCmd(opts *globalOptions) *cobra.Command {
	var info course.Information

	cmd := &cobra.Command{
		Use:   "edit CODE",
		Short: MsgCourseEditShort,
		Long:  MsgCourseEditShort + ". Only the flags given are changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			c, err := a.courses.Get(args[0])
			if err != nil {
				return err
			}

			updated := c.Info
			if cmd.Flags().Changed("name") {
				updated.Name = info.Name
			}
			if cmd.Flags().Changed("description") {
				updated.Description = info.Description
			}
			if cmd.Flags().Changed("url") {
				updated.URL = info.URL
			}

			if err := a.courses.SetInfo(c, updated); err != nil {
				return err
			}
			a.out.Success(MsgCourseUpdated, c.Code())
			return nil
		},
	}
	addInformationFlags(cmd, &info)
	return cmd
}

func newCourseDeleteCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete CODE",
		Aliases: []string{"rm", "remove"},
		Short:   MsgCourseDeleteShort,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.load(cmd)
			if err != nil {
				return err
			}

			if err := a.courses.Delete(args[0]); err != nil {
				return err
			}
			a.out.Success(MsgCourseDeleted, args[0])
			return nil
		},
	}
}
