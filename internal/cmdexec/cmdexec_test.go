package cmdexec_test

import (
	"context"
	"os/exec"
	"testing"

	"github.com/hbjs97/cloudctx/internal/cmdexec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealCommander_Run(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	c := &cmdexec.RealCommander{}

	t.Run("stdout", func(t *testing.T) {
		out, err := c.Run(context.Background(), "git", "--version")
		require.NoError(t, err)
		assert.Contains(t, string(out), "git version")
	})

	t.Run("stderr in error", func(t *testing.T) {
		out, err := c.Run(context.Background(), "git", "-C", t.TempDir(), "rev-parse", "--show-toplevel")
		require.Error(t, err)
		assert.Empty(t, out)
		assert.Contains(t, err.Error(), "cmdexec.Run git")
		assert.Contains(t, err.Error(), "not a git repository")
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.Run(ctx, "git", "--version")
		assert.Error(t, err)
	})
}
