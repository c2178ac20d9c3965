package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result map[string]string
			if err := client.Get("/api/v1/health", &result); err != nil {
				return err
			}
			fmt.Printf("Server status: %s\n", result["status"])
			return nil
		},
	}
}
