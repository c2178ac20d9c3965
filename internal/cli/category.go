package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Auction category management commands",
	}

	cmd.AddCommand(newCategoryCreateCmd())
	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryGetCmd())
	cmd.AddCommand(newCategoryDeleteCmd())
	cmd.AddCommand(newCategoryAddPlayerCmd())
	cmd.AddCommand(newCategoryRemovePlayerCmd())
	cmd.AddCommand(newCategoryMembersCmd())

	return cmd
}

func newCategoryCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new category",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": name}
			var result CategoryResult

			if err := client.Post("/api/v1/categories", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Category name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []CategoryResult
			if err := client.Get("/api/v1/categories", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCategoryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <category-id>",
		Short: "Show a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryResult
			if err := client.Get("/api/v1/categories/"+args[0], &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCategoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category-id>",
		Short: "Delete a category (player records are untouched)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/categories/"+args[0], nil); err != nil {
				return err
			}
			fmt.Println("Category deleted")
			return nil
		},
	}
}

func newCategoryAddPlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <category-id> <player-id>",
		Short: "Add a player to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"player_id": args[1]}
			var result CategoryResult

			if err := client.Post("/api/v1/categories/"+args[0]+"/players", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCategoryRemovePlayerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <category-id> <player-id>",
		Short: "Remove a player from a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryResult
			if err := client.Delete("/api/v1/categories/"+args[0]+"/players/"+args[1], &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newCategoryMembersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "members <category-id>",
		Short: "Show a category's resolved player records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CategoryMembersResult
			if err := client.Get("/api/v1/categories/"+args[0]+"/players", &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}
