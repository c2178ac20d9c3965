package cli

import (
	"encoding/base64"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registration and browsing commands",
	}

	cmd.AddCommand(newPlayerRegisterCmd())
	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerGetCmd())
	cmd.AddCommand(newPlayerUpdateCmd())

	return cmd
}

func newPlayerRegisterCmd() *cobra.Command {
	var name, dob, photoPath string
	var size int

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new player",
		RunE: func(cmd *cobra.Command, args []string) error {
			photo, contentType, err := readPhoto(photoPath)
			if err != nil {
				return err
			}

			req := map[string]any{
				"name":               name,
				"tshirt_size":        size,
				"dob":                dob,
				"photo":              photo,
				"photo_content_type": contentType,
			}
			var result PlayerResult

			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name (required)")
	cmd.Flags().IntVar(&size, "size", 0, "T-shirt size, 10-50 (required)")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&photoPath, "photo", "", "Path to photo file (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("size")
	_ = cmd.MarkFlagRequired("dob")
	_ = cmd.MarkFlagRequired("photo")

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List players, optionally filtered by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if search != "" {
				path += "?search=" + url.QueryEscape(search)
			}

			var result []PlayerResult
			if err := client.Get(path, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")

	return cmd
}

func newPlayerGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <player-id>",
		Short: "Show a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PlayerResult
			if err := client.Get("/api/v1/players/"+args[0], &result); err != nil {
				return err
			}
			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newPlayerUpdateCmd() *cobra.Command {
	var name, dob, photoPath string
	var size int

	cmd := &cobra.Command{
		Use:   "update <player-id>",
		Short: "Edit a player (only supplied fields change)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("size") {
				req["tshirt_size"] = size
			}
			if cmd.Flags().Changed("dob") {
				req["dob"] = dob
			}
			if photoPath != "" {
				photo, contentType, err := readPhoto(photoPath)
				if err != nil {
					return err
				}
				req["photo"] = photo
				req["photo_content_type"] = contentType
			}

			var result PlayerResult
			if err := client.Patch("/api/v1/players/"+args[0], req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Player name")
	cmd.Flags().IntVar(&size, "size", 0, "T-shirt size, 10-50")
	cmd.Flags().StringVar(&dob, "dob", "", "Date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&photoPath, "photo", "", "Path to replacement photo file")

	return cmd
}

// readPhoto loads an image file and returns its base64 encoding and
// content type inferred from the extension
func readPhoto(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read photo: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "image/jpeg"
	}

	return base64.StdEncoding.EncodeToString(data), contentType, nil
}
