package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newStatusCmd() *cobra.Command {
	var flags hintFlags
	cmd := &cobra.Command{
		Use:   "status",
		Short: "판정된 환경의 master 상태를 표시한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolveTarget(cmd.Context(), cmd, &flags, false)
			if err != nil {
				return err
			}
			master, err := result.RunningMaster()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "environment: %s/%s\n", result.Account.Name, result.Environment.Name)
			fmt.Fprintf(out, "application: %s\n", result.Application.Name)
			fmt.Fprintf(out, "master:      %s (%s)\n", master.Hostname, master.Status)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}
