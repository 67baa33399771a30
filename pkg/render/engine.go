package render

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/unii/pkg/course"
	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/filesystem"
	"github.com/arthur-debert/unii/pkg/filters"
	"github.com/arthur-debert/unii/pkg/logging"
	"github.com/arthur-debert/unii/pkg/paths"
	tmpl "github.com/arthur-debert/unii/pkg/template"
)

// File is a rendered file, its path relative to the target
type File struct {
	Path    string
	Content string
}

// Result is everything a render produced, or would produce for a plan
type Result struct {
	Target        string
	DirectoryName string
	Command       string
	Files         []File

	// TargetExists is only meaningful for a plan
	TargetExists bool
}

// CheckCommand fails when the command rendered to blank text
func (r *Result) CheckCommand() error {
	if strings.TrimSpace(r.Command) == "" {
		return errors.TemplateCommandIsEmpty()
	}
	return nil
}

// Engine renders templates into courses
type Engine struct {
	fs      filesystem.FS
	paths   paths.Paths
	runner  Runner
	filters *filters.Registry
}

// NewEngine returns an engine writing through fs and running commands with
// runner
func NewEngine(fs filesystem.FS, p paths.Paths, runner Runner, registry *filters.Registry) *Engine {
	return &Engine{fs: fs, paths: p, runner: runner, filters: registry}
}

// Render instantiates t into c
func (e *Engine) Render(ctx context.Context, t *tmpl.Template, c *course.Course, params *Context) (*Result, error) {
	logger := logging.GetLogger("render")
	done := logging.LogOperationStart(logger, "render "+t.Name())
	defer done()

	if err := params.Validate(t); err != nil {
		return nil, err
	}

	sources, err := compile(t, e.filters)
	if err != nil {
		return nil, err
	}
	data := params.Map()

	result, err := e.target(sources, t, c, data)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("target", result.Target).Msg("Directory name rendered")

	exists, err := filesystem.Exists(e.fs, result.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", result.Target)
	}
	if exists {
		return nil, errors.RenderAlreadyExists(result.DirectoryName)
	}

	if err := e.fs.MkdirAll(result.Target, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", result.Target)
	}
	logger.Debug().Str("target", result.Target).Msg("Target created")

	if result.Command, err = sources.execute(commandSource, data); err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.Command) != "" {
		if err := e.runner.Run(ctx, result.Target, result.Command); err != nil {
			return nil, err
		}
		logger.Debug().Str("command", result.Command).Msg("Command succeeded")
	}

	if result.Files, err = renderFiles(sources, data); err != nil {
		return nil, err
	}

	for _, f := range result.Files {
		full := filepath.Join(result.Target, filepath.FromSlash(f.Path))
		if err := e.fs.MkdirAll(filepath.Dir(full), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory for %s", f.Path)
		}
		if err := e.fs.WriteFile(full, []byte(f.Content), 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", f.Path)
		}
	}

	logger.Info().
		Str("template", t.Name()).
		Str("course", c.Code()).
		Str("target", result.Target).
		Int("files", len(result.Files)).
		Msg("Template rendered")
	return result, nil
}

// Plan renders every template string of t without touching the filesystem
// or running the command
func (e *Engine) Plan(t *tmpl.Template, c *course.Course, params *Context) (*Result, error) {
	if err := params.Validate(t); err != nil {
		return nil, err
	}

	sources, err := compile(t, e.filters)
	if err != nil {
		return nil, err
	}
	data := params.Map()

	result, err := e.target(sources, t, c, data)
	if err != nil {
		return nil, err
	}

	if result.TargetExists, err = filesystem.Exists(e.fs, result.Target); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to check %s", result.Target)
	}
	if result.Command, err = sources.execute(commandSource, data); err != nil {
		return nil, err
	}
	if result.Files, err = renderFiles(sources, data); err != nil {
		return nil, err
	}
	return result, nil
}

// target renders the directory name and resolves where the render goes
func (e *Engine) target(sources *compiled, t *tmpl.Template, c *course.Course, data map[string]any) (*Result, error) {
	name, err := sources.execute(directoryNameSource, data)
	if err != nil {
		return nil, err
	}
	if err := paths.ValidateName("directory name", name); err != nil {
		return nil, errors.RenderPathInvalid(name, errors.GetErrorMessage(err))
	}
	if err := paths.ValidateName("pluralized name", t.PluralizedName); err != nil {
		return nil, errors.RenderPathInvalid(t.PluralizedName, errors.GetErrorMessage(err))
	}

	return &Result{
		Target:        filepath.Join(c.Dir(e.paths), t.PluralizedName, name),
		DirectoryName: name,
	}, nil
}

// renderFiles renders every path and content. All paths are checked before
// the caller writes anything.
func renderFiles(sources *compiled, data map[string]any) ([]File, error) {
	files := make([]File, 0, len(sources.paths))
	for _, p := range sources.paths {
		path, err := sources.execute(filePathSource(p), data)
		if err != nil {
			return nil, err
		}
		if err := paths.ValidateRelativePath(path); err != nil {
			return nil, errors.RenderPathInvalid(path, errors.GetErrorMessage(err))
		}

		content, err := sources.execute(fileContentSource(p), data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: path, Content: content})
	}
	return files, nil
}
