package xorkit

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/xorkit/xorkit/internal/config"
)

var (
	cfgOutput    string
	cfgKeyFile   string
	cfgIn        string
	cfgKeyEnc    string
	cfgOut       string
	cfgNoColor   bool
	cfgAudit     bool
	cfgAuditPath string
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .xorkit.yml with the selected defaults",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".xorkit.yml", "output file path")
	initCmd.Flags().StringVar(&cfgKeyFile, "key-file", "", "default key file for the xor command")
	initCmd.Flags().StringVar(&cfgIn, "in", "", "default data operand encoding (raw|hex|base64)")
	initCmd.Flags().StringVar(&cfgKeyEnc, "key-enc", "", "default key operand encoding (raw|hex|base64)")
	initCmd.Flags().StringVar(&cfgOut, "out", "", "default result encoding (raw|hex|base64)")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgAudit, "audit", false, "enable the transform audit log by default")
	initCmd.Flags().StringVar(&cfgAuditPath, "audit-path", "", "audit log location")
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		KeyFile:   optStrPtr(cfgKeyFile),
		In:        optStrPtr(cfgIn),
		KeyEnc:    optStrPtr(cfgKeyEnc),
		Out:       optStrPtr(cfgOut),
		NoColor:   boolPtr(cfgNoColor),
		Audit:     boolPtr(cfgAudit),
		AuditPath: optStrPtr(cfgAuditPath),
	}

	b, err := yaml.Marshal(&fc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	fmt.Println("Wrote", cfgOutput)
	return nil
}
