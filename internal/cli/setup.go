package cli

import (
	"github.com/hbjs97/cloudctx/internal/config"
	"github.com/hbjs97/cloudctx/internal/setup"
	"github.com/spf13/cobra"
)

func (a *App) newSetupCmd() *cobra.Command {
	var noVerify bool
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "API endpoint와 토큰을 설정한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			forms := a.Forms
			if forms == nil {
				forms = &setup.HuhFormRunner{}
			}
			r := &setup.Runner{
				CfgPath:    a.CfgPath,
				FormRunner: forms,
				Out:        cmd.OutOrStdout(),
			}
			if !noVerify {
				log := a.logger(cmd)
				r.NewFetcher = func(cfg *config.Config) setup.Fetcher { return a.newClient(cfg, log) }
			}
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "저장 전 API 인증 확인을 건너뛴다")
	return cmd
}
