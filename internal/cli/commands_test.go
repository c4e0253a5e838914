package cli_test

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hbjs97/cloudctx/internal/cli"
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/setup"
	"github.com/hbjs97/cloudctx/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv bundles an App wired to a fake git and a mock API server.
type testEnv struct {
	app     *cli.App
	fc      *testutil.FakeCommander
	repoDir string
	out     *bytes.Buffer
}

// newTestEnv creates an App whose repo has the given remotes and whose config
// points at an API server serving pages.
func newTestEnv(t *testing.T, handler http.Handler, remotes ...string) *testEnv {
	t.Helper()
	t.Setenv(config.EnvEndpoint, "")
	t.Setenv(config.EnvAPIToken, "")

	url := testutil.MockAPIServer(t, handler)
	repoDir := t.TempDir()

	fc := testutil.NewFakeCommander()
	fc.RegisterRemotes(repoDir, remotes...)

	out := new(bytes.Buffer)
	app := &cli.App{
		Commander: fc,
		CfgPath:   testutil.TempConfigFile(t, testutil.ConfigFor(url)),
		RepoDir:   repoDir,
		Out:       out,
		Err:       io.Discard,
	}
	return &testEnv{app: app, fc: fc, repoDir: repoDir, out: out}
}

func (e *testEnv) run(args ...string) error {
	cmd := e.app.NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

// --- resolve ---

func TestResolveCmd_ByRemote(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)

	require.NoError(t, env.run("resolve"))
	assert.Equal(t, "acme/staging/app1\n", env.out.String())
	assert.True(t, env.fc.Called("git -C "+env.repoDir+" remote -v"))
}

func TestResolveCmd_AmbiguousRemote(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...), testutil.App1URL)

	err := env.run("resolve")
	require.Error(t, err)
	assert.Equal(t, cli.ExitAmbiguous, cli.MapExitCode(err))

	msg := cli.Message(err)
	assert.Contains(t, msg, "Please use -e <envname>")
	assert.Contains(t, msg, "\tproduction (acme)\n\tstaging (acme)\n")
	assert.NotContains(t, msg, "resolver.Resolve")
}

func TestResolveCmd_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"environment and account", []string{"-e", "production", "-c", "globex"}, "globex/production/app2\n"},
		{"environment narrows remote", []string{"-e", "staging"}, "acme/staging/app1\n"},
		{"app name", []string{"-a", "app2"}, "globex/production/app2\n"},
		{"long flags", []string{"--environment", "production", "--account", "acme"}, "acme/production/app1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...), testutil.App1URL)

			require.NoError(t, env.run(append([]string{"resolve"}, tt.args...)...))
			assert.Equal(t, tt.want, env.out.String())
		})
	}
}

func TestResolveCmd_AmbiguousName(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))

	err := env.run("resolve", "-e", "production")
	require.Error(t, err)
	assert.Equal(t, cli.ExitAmbiguous, cli.MapExitCode(err))
	assert.Contains(t, cli.Message(err), "Multiple environments named 'production' were found.")
	assert.Contains(t, cli.Message(err), "Please use -c <account>")
}

func TestResolveCmd_RepoHints(t *testing.T) {
	t.Run("file only", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))
		testutil.WriteRepoHints(t, env.repoDir, "environment: production\naccount: globex\n")

		require.NoError(t, env.run("resolve"))
		assert.Equal(t, "globex/production/app2\n", env.out.String())
	})

	t.Run("flag overrides file", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))
		testutil.WriteRepoHints(t, env.repoDir, "environment: production\naccount: globex\n")

		require.NoError(t, env.run("resolve", "-c", "acme"))
		assert.Equal(t, "acme/production/app1\n", env.out.String())
	})

	t.Run("read from top level", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))
		top := t.TempDir()
		testutil.WriteRepoHints(t, top, "environment: staging\n")
		env.fc.Register("git -C "+env.repoDir+" rev-parse --show-toplevel", top+"\n", nil)
		env.fc.RegisterRemotes(top)

		require.NoError(t, env.run("resolve"))
		assert.Equal(t, "acme/staging/app1\n", env.out.String())
		assert.True(t, env.fc.Called("git -C "+top+" remote -v"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))
		testutil.WriteRepoHints(t, env.repoDir, "environment: [unclosed\n")

		err := env.run("resolve")
		require.Error(t, err)
		assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
	})
}

func TestResolveCmd_NoRemotes(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))

	err := env.run("resolve")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.MapExitCode(err))
	assert.Contains(t, cli.Message(err), "No remotes found.")
}

func TestResolveCmd_NotAGitRepo(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))
	env.fc.Register("git -C "+env.repoDir+" remote -v", "", assert.AnError)

	err := env.run("resolve")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.MapExitCode(err))
	assert.Contains(t, cli.Message(err), "No remotes found.")
}

func TestResolveCmd_Single(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))

	require.NoError(t, env.run("resolve", "--single"))
	assert.Equal(t, "acme/staging/app1\n", env.out.String())
}

func TestResolveCmd_UnknownApp(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))

	err := env.run("resolve", "-a", "nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotFound, cli.MapExitCode(err))
	assert.Equal(t, `There is no app configured with the name "nope"`, cli.Message(err))
}

func TestResolveCmd_RejectsArgs(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))

	err := env.run("resolve", "extra")
	require.Error(t, err)
	assert.Equal(t, cli.ExitGeneral, cli.MapExitCode(err))
}

// --- API / config failures ---

func TestCommands_InvalidToken(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)
	url := testutil.MockAPIServer(t, testutil.InventoryHandler(testutil.SingleAppJSON))
	env.app.CfgPath = testutil.TempConfigFile(t, "endpoint = \""+url+"\"\napi_token = \"wrong\"\n")

	err := env.run("resolve")
	require.Error(t, err)
	assert.Equal(t, cli.ExitAuthFail, cli.MapExitCode(err))
}

func TestCommands_MissingToken(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)
	env.app.CfgPath = filepath.Join(t.TempDir(), "missing.toml")

	err := env.run("environments")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
	assert.Equal(t, "Attribute 'api_token' is required for this action.", cli.Message(err))
}

func TestCommands_BadEndpoint(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)
	env.app.CfgPath = testutil.TempConfigFile(t, "endpoint = \"cloud.example.com\"\napi_token = \"x\"\n")

	err := env.run("resolve")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.MapExitCode(err))
	assert.Contains(t, cli.Message(err), "is not a valid endpoint URI")
}

func TestCommands_ServerError(t *testing.T) {
	env := newTestEnv(t, testutil.StatusResponse(http.StatusInternalServerError, `{}`), testutil.App1URL)

	err := env.run("environments")
	require.Error(t, err)
	assert.Equal(t, cli.ExitRequestFailed, cli.MapExitCode(err))
}

// --- environments ---

func TestEnvironmentsCmd(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.TwoAccountPages...))

	require.NoError(t, env.run("environments"))
	assert.Equal(t, "production (acme) app1\nstaging (acme) app1\nproduction (globex) app2\n", env.out.String())
	assert.False(t, env.fc.Called("git"))
}

// --- status ---

func TestStatusCmd_Running(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)

	require.NoError(t, env.run("status"))
	out := env.out.String()
	assert.Contains(t, out, "environment: acme/staging")
	assert.Contains(t, out, "application: app1")
	assert.Contains(t, out, "ec2-1.example (running)")
}

func TestStatusCmd_StoppedMaster(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.StoppedMasterJSON), testutil.App1URL)

	err := env.run("status")
	require.Error(t, err)
	assert.Equal(t, cli.ExitNotOperable, cli.MapExitCode(err))
	assert.Contains(t, cli.Message(err), `it is "red"`)
	assert.Empty(t, env.out.String())
}

// --- instances ---

func TestInstancesCmd(t *testing.T) {
	t.Run("all", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)

		require.NoError(t, env.run("instances"))
		assert.Equal(t, 3, strings.Count(env.out.String(), "\n"))
	})

	t.Run("role filter", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)

		require.NoError(t, env.run("instances", "--role", "db_master"))
		assert.Contains(t, env.out.String(), "ec2-3.example")
		assert.NotContains(t, env.out.String(), "ec2-2.example")
	})

	t.Run("no match", func(t *testing.T) {
		env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)

		err := env.run("instances", "--role", "util")
		require.Error(t, err)
		assert.Equal(t, cli.ExitNotOperable, cli.MapExitCode(err))
		assert.Contains(t, cli.Message(err), "does not have any matching instances")
	})
}

// --- doctor ---

func TestDoctorCmd(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON), testutil.App1URL)
	env.fc.Register("git --version", "git version 2.43.0\n", nil)

	require.NoError(t, env.run("doctor"))
	out := env.out.String()
	assert.Contains(t, out, "[OK] git: git version 2.43.0")
	assert.Contains(t, out, "[OK] git_remotes: "+testutil.App1URL)
	assert.Contains(t, out, "[OK] api:")
	assert.NotContains(t, out, "FAIL")
}

// --- setup ---

type stubForms struct {
	input setup.CredentialsInput
}

func (s *stubForms) RunCredentialsForm(setup.CredentialsInput) (*setup.CredentialsInput, error) {
	in := s.input
	return &in, nil
}

func (s *stubForms) RunConfirm(string) (bool, error) { return true, nil }

func TestSetupCmd(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))
	url := testutil.MockAPIServer(t, testutil.InventoryHandler(testutil.SingleAppJSON))
	env.app.CfgPath = filepath.Join(t.TempDir(), "cloudctx", "config.toml")
	env.app.Forms = &stubForms{input: setup.CredentialsInput{Endpoint: url, APIToken: testutil.TestToken}}

	require.NoError(t, env.run("setup"))
	assert.Contains(t, env.out.String(), "환경 1개")

	info, err := os.Stat(env.app.CfgPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	env.out.Reset()
	require.NoError(t, env.run("resolve", "--single"))
	assert.Equal(t, "acme/staging/app1\n", env.out.String())
}

func TestSetupCmd_NoVerify(t *testing.T) {
	env := newTestEnv(t, testutil.InventoryHandler(testutil.SingleAppJSON))
	env.app.CfgPath = filepath.Join(t.TempDir(), "config.toml")
	env.app.Forms = &stubForms{input: setup.CredentialsInput{Endpoint: "https://unreachable.invalid/", APIToken: "x"}}

	require.NoError(t, env.run("setup", "--no-verify"))
	assert.FileExists(t, env.app.CfgPath)
}
