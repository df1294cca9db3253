package xorkit

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/xorkit/xorkit/internal/audit"
	"github.com/xorkit/xorkit/pkg/core"
)

var (
	auditListJSON bool
	auditLogPath  string
)

func init() {
	auditCmd := &cobra.Command{Use: "audit", Short: "Inspect the transform audit log"}
	rootCmd.AddCommand(auditCmd)
	auditCmd.PersistentFlags().StringVar(&auditLogPath, "audit-path", "", "audit log location (default "+audit.DefaultFileName+")")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show recorded transforms, newest first",
		RunE:  runAuditList,
	}
	listCmd.Flags().BoolVar(&auditListJSON, "json", false, "emit JSON")
	auditCmd.AddCommand(listCmd)

	rmCmd := &cobra.Command{
		Use:   "rm <index>",
		Short: "Delete the record at the given index",
		Args:  cobra.ExactArgs(1),
		RunE:  runAuditRm,
	}
	auditCmd.AddCommand(rmCmd)
}

func runAuditList(_ *cobra.Command, _ []string) error {
	log := audit.NewAuditLog(auditLogPath)
	records, err := log.LoadHistory()
	if err != nil {
		return err
	}
	if auditListJSON {
		return core.MarshalHistory(os.Stdout, records)
	}
	if len(records) == 0 {
		fmt.Println("no recorded transforms")
		return nil
	}
	for i, r := range records {
		fmt.Printf("%3d  %s  %-4s  data=%dB key=%dB out=%dB  %s  %s\n",
			i, r.Timestamp.Format("2006-01-02 15:04:05"), r.Command,
			r.DataLen, r.KeyLen, r.ResultLen, r.OutDigest, r.Duration)
	}
	return nil
}

func runAuditRm(_ *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	log := audit.NewAuditLog(auditLogPath)
	if err := log.DeleteRecord(index); err != nil {
		return err
	}
	fmt.Println("deleted record", index)
	return nil
}
