package cli

import (
	"context"

	"github.com/hbjs97/cloudctx/internal/cloud"
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/git"
	"github.com/hbjs97/cloudctx/internal/inventory"
	"github.com/hbjs97/cloudctx/internal/logger"
	"github.com/hbjs97/cloudctx/internal/resolver"
	"github.com/spf13/cobra"
)

// hintFlags는 -e/-c/-a 플래그 값이다.
type hintFlags struct {
	environment string
	account     string
	app         string
}

func (f *hintFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.environment, "environment", "e", "", "환경 이름")
	cmd.Flags().StringVarP(&f.account, "account", "c", "", "계정 이름")
	cmd.Flags().StringVarP(&f.app, "app", "a", "", "애플리케이션 이름")
}

// merge는 플래그 값을 우선하고 비어있는 항목만 파일 힌트로 채운다.
func (f *hintFlags) merge(file config.RepoHints) resolver.Hints {
	h := resolver.Hints{Environment: f.environment, Account: f.account, App: f.app}
	if h.Environment == "" {
		h.Environment = file.Environment
	}
	if h.Account == "" {
		h.Account = file.Account
	}
	if h.App == "" {
		h.App = file.App
	}
	return h
}

func (a *App) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(a.CfgPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.RequireToken(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *App) newClient(cfg *config.Config, log logger.Logger) *cloud.Client {
	return cloud.NewClient(cfg.Endpoint, cfg.APIToken,
		cloud.WithTimeout(cfg.Timeout()),
		cloud.WithHTTPClient(a.HTTPClient),
		cloud.WithLogger(log),
	)
}

func (a *App) fetchInventory(ctx context.Context, cmd *cobra.Command) (*inventory.Inventory, *config.Config, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	inv, err := a.newClient(cfg, a.logger(cmd)).FetchInventory(ctx)
	if err != nil {
		return nil, nil, err
	}
	return inv, cfg, nil
}

// resolveTarget은 설정, 리포 힌트, git remote, inventory를 모아 배포 대상을 판정한다.
func (a *App) resolveTarget(ctx context.Context, cmd *cobra.Command, flags *hintFlags, single bool) (*resolver.Result, error) {
	log := a.logger(cmd)

	dir, err := a.repoDir()
	if err != nil {
		return nil, err
	}
	gitAdapter := git.NewAdapter(a.Commander)
	if top, err := gitAdapter.TopLevel(ctx, dir); err == nil && top != "" {
		dir = top
	} else if err != nil {
		log.Logf("git 워킹 트리가 아님: %s", dir)
	}

	fileHints, err := config.LoadRepoHints(dir)
	if err != nil {
		return nil, err
	}
	hints := flags.merge(fileHints)

	remotes, err := gitAdapter.Remotes(ctx, dir)
	if err != nil {
		log.Logf("remote 조회 실패: %v", err)
		remotes = git.NewRemoteURLSet()
	}
	log.Logf("remote %d개: %v", remotes.Len(), remotes.URLs())

	inv, cfg, err := a.fetchInventory(ctx, cmd)
	if err != nil {
		return nil, err
	}

	r := resolver.New(inv, cfg.Endpoint)
	var result *resolver.Result
	if single {
		result, err = r.ResolveSingle(hints, remotes)
	} else {
		result, err = r.Resolve(hints, remotes)
	}
	if err != nil {
		return nil, err
	}
	log.Logf("판정: %s (%s)", result, result.Reason)
	return result, nil
}
