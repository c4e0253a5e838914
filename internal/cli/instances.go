package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) newInstancesCmd() *cobra.Command {
	var (
		flags hintFlags
		roles []string
	)
	cmd := &cobra.Command{
		Use:   "instances",
		Short: "판정된 환경의 인스턴스를 나열한다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.resolveTarget(cmd.Context(), cmd, &flags, false)
			if err != nil {
				return err
			}
			instances, err := result.Instances(roles...)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, inst := range instances {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", inst.Role, inst.Hostname, inst.Status)
			}
			return tw.Flush()
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringSliceVar(&roles, "role", nil, "역할 필터 (app_master, app, solo, db_master, db_slave, util)")
	return cmd
}
