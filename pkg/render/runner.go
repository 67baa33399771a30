package render

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/logging"
)

// Runner runs a rendered command line in dir
type Runner interface {
	Run(ctx context.Context, dir, command string) error
}

// ShellRunner runs commands with `<Shell> -c`
type ShellRunner struct {
	Shell string
}

// NewShellRunner returns a runner using the POSIX sh
func NewShellRunner() *ShellRunner {
	return &ShellRunner{Shell: "sh"}
}

// Run blocks until the command exits. A non-zero exit is reported as
// TEMPLATE_COMMAND_FAILED carrying the captured stderr.
func (r *ShellRunner) Run(ctx context.Context, dir, command string) error {
	logger := logging.GetLogger("render.shell")
	logging.LogCommand(logger, command, dir)

	cmd := exec.CommandContext(ctx, r.Shell, "-c", command)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			logger.Debug().
				Int("exitCode", exitErr.ExitCode()).
				Str("stderr", stderr.String()).
				Msg("Command failed")
			return errors.TemplateCommandFailed(command, stderr.String()).
				WithDetail("exitCode", exitErr.ExitCode())
		}
		return errors.Wrapf(err, errors.ErrCommandExecute, "failed to start %s", r.Shell).
			WithDetail("command", command)
	}

	if out := strings.TrimSpace(stdout.String()); out != "" {
		logger.Debug().Str("stdout", out).Msg("Command output")
	}
	return nil
}
