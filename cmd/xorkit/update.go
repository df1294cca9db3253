package xorkit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xorkit/xorkit/internal/update"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check whether a newer release is available",
		RunE: func(_ *cobra.Command, _ []string) error {
			latest, newer, err := update.Check(version, false)
			if err != nil {
				return fmt.Errorf("update check: %w", err)
			}
			switch {
			case latest == "":
				fmt.Println("update check skipped or no release information available")
			case newer:
				fmt.Printf("new version available: v%s (current v%s)\n", latest, version)
			default:
				fmt.Printf("up to date (v%s)\n", version)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
