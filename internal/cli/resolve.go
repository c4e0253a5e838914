package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newResolveCmd() *cobra.Command {
	var (
		flags  hintFlags
		single bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "현재 리포의 배포 대상을 판정한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolveTarget(cmd.Context(), cmd, &flags, single)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().BoolVar(&single, "single", false, "remote와 무관하게 유일한 환경을 사용")
	return cmd
}
