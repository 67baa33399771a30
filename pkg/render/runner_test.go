package render

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		wantCode errors.ErrorCode
		exitCode int
	}{
		{name: "success", command: "echo hello > out.txt"},
		{name: "non-zero exit", command: "exit 3", wantCode: errors.ErrTemplateCommandFailed, exitCode: 3},
		{name: "unknown program", command: "definitely-not-a-program-unii", wantCode: errors.ErrTemplateCommandFailed, exitCode: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			err := NewShellRunner().Run(context.Background(), dir, tt.command)

			if tt.wantCode == "" {
				require.NoError(t, err)
				content, err := os.ReadFile(filepath.Join(dir, "out.txt"))
				require.NoError(t, err)
				assert.Equal(t, "hello\n", string(content))
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, errors.GetErrorCode(err))
			details := errors.GetErrorDetails(err)
			assert.Equal(t, tt.command, details["command"])
			assert.Equal(t, tt.exitCode, details["exitCode"])
		})
	}
}

func TestShellRunnerMissingShell(t *testing.T) {
	runner := &ShellRunner{Shell: filepath.Join(t.TempDir(), "no-such-shell")}

	err := runner.Run(context.Background(), t.TempDir(), "true")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCommandExecute))
}
