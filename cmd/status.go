package cmd

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"

	"github.com/ckscontracting/demo-request/pkg/api"
)

func newStatusCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print whether email delivery is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(api.NewDeliveryStatus(root.cfg, time.Now()))
		},
	}
}
