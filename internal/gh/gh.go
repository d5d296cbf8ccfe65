package gh

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/gorewood/snitch/internal/output"
)

// Run executes a gh command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure.
func Run(ctx context.Context, args ...string) (string, error) {
	return run(ctx, nil, args)
}

// WithEnv returns a Runner that adds env (KEY=VALUE pairs) to the
// environment gh inherits.
func WithEnv(env []string) Runner {
	if len(env) == 0 {
		return Run
	}
	return func(ctx context.Context, args ...string) (string, error) {
		return run(ctx, env, args)
	}
}

func run(ctx context.Context, env []string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, "gh", args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError("gh not found: ensure the GitHub CLI is installed and in PATH")
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("gh command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}
