package xorkit

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List registered transform commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Printf("package %s %s\n", commands.Package(), commands.Version())
			for _, name := range commands.Names() {
				fmt.Println(" ", name)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
