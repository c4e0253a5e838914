package cli

import (
	"fmt"
	"strings"

	"github.com/hbjs97/cloudctx/internal/match"
	"github.com/spf13/cobra"
)

func (a *App) newEnvironmentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "environments",
		Aliases: []string{"envs"},
		Short:   "접근 가능한 모든 환경을 나열한다",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, _, err := a.fetchInventory(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, env := range match.SortEnvironments(inv.Environments()) {
				line := fmt.Sprintf("%s (%s)", env.Name, env.AccountName())
				if apps := env.AppNames(); len(apps) > 0 {
					line += " " + strings.Join(apps, " ")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
