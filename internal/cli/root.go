package cli

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/hbjs97/cloudctx/internal/cmdexec"
	"github.com/hbjs97/cloudctx/internal/logger"
	"github.com/hbjs97/cloudctx/internal/setup"
	"github.com/spf13/cobra"
)

// App은 CLI 명령들이 공유하는 의존성이다. 테스트에서는 fake를 주입한다.
type App struct {
	Commander  cmdexec.Commander
	CfgPath    string
	RepoDir    string       // 비어있으면 현재 디렉토리
	HTTPClient *http.Client // nil이면 설정의 timeout으로 생성
	Forms      setup.FormRunner
	Out        io.Writer
	Err        io.Writer

	verbose bool
}

// NewRootCmd는 실제 의존성으로 cloudctx 루트 명령을 생성한다.
func NewRootCmd() *cobra.Command {
	app := &App{
		Commander: &cmdexec.RealCommander{},
		Forms:     &setup.HuhFormRunner{},
	}
	return app.NewRootCmd()
}

// NewRootCmd는 cloudctx CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cloudctx",
		Short:         "클라우드 배포 대상(계정/환경/애플리케이션) 판정기",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if a.Out != nil {
		cmd.SetOut(a.Out)
	}
	if a.Err != nil {
		cmd.SetErr(a.Err)
	}

	defaultCfg := a.CfgPath
	if defaultCfg == "" {
		defaultCfg = filepath.Join(homeDir(), ".config", "cloudctx", "config.toml")
	}
	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", defaultCfg, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&a.verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newResolveCmd(),
		a.newEnvironmentsCmd(),
		a.newStatusCmd(),
		a.newInstancesCmd(),
		a.newDoctorCmd(),
		a.newSetupCmd(),
	)
	return cmd
}

func (a *App) logger(cmd *cobra.Command) logger.Logger {
	return logger.New(cmd.ErrOrStderr(), a.verbose)
}

func (a *App) repoDir() (string, error) {
	if a.RepoDir != "" {
		return a.RepoDir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("cli.repoDir: %w", err)
	}
	return cwd, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
