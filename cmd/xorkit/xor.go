package xorkit

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/xorkit/xorkit/internal/audit"
	"github.com/xorkit/xorkit/internal/codec"
	"github.com/xorkit/xorkit/internal/config"
	"github.com/xorkit/xorkit/internal/registry"
	"github.com/xorkit/xorkit/internal/update"
)

var (
	flagDataFile  string
	flagKeyFile   string
	flagInEnc     string
	flagKeyEnc    string
	flagOutEnc    string
	flagOutput    string
	flagCopy      bool
	flagAudit     bool
	flagAuditPath string
)

func init() {
	cmd := &cobra.Command{
		Use:   "xor [<data>] [<key>]",
		Short: "XOR data with a cyclically repeated key",
		Long: "Transforms the data operand by XOR-ing each byte with the key byte at the\n" +
			"cyclically wrapped key position. Operands are positional; either can come\n" +
			"from a file instead (--data-file, --key-file), with '-' reading data from\n" +
			"stdin. Exactly two operands are required in total.",
		Args: cobra.ArbitraryArgs, // arity is checked by hand for the fixed usage message
		RunE: runXor,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagDataFile, "data-file", "", "read the data operand from this file ('-' = stdin)")
	cmd.Flags().StringVar(&flagKeyFile, "key-file", "", "read the key operand from this file")
	cmd.Flags().StringVar(&flagInEnc, "in", "", "data operand encoding: raw|hex|base64 (default raw)")
	cmd.Flags().StringVar(&flagKeyEnc, "key-enc", "", "key operand encoding: raw|hex|base64 (default raw)")
	cmd.Flags().StringVar(&flagOutEnc, "out", "", "result encoding: raw|hex|base64 (default hex on a terminal, raw otherwise)")
	cmd.Flags().StringVar(&flagOutput, "output", "", "write the result to this file instead of stdout")
	cmd.Flags().BoolVar(&flagCopy, "copy", false, "copy the encoded result to the clipboard")
	cmd.Flags().BoolVar(&flagAudit, "audit", false, "append a record to the transform audit log")
	cmd.Flags().StringVar(&flagAuditPath, "audit-path", "", "audit log location (default "+audit.DefaultFileName+")")
}

func runXor(_ *cobra.Command, args []string) error {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.LoadLocal(wd); err == nil {
			lcfg = c
		}
	}

	// Resolve operand sources before touching any bytes: a wrong operand
	// count fails with the fixed usage message and does no work.
	keyFile := pickString(flagKeyFile, lcfg.KeyFile, gcfg.KeyFile)
	var dataArg, keyArg string
	rest := args
	if flagDataFile == "" {
		if len(rest) == 0 {
			return usageError()
		}
		dataArg, rest = rest[0], rest[1:]
	}
	switch {
	case len(rest) == 1 && flagKeyFile == "":
		// an explicit positional key beats any configured key file
		keyFile = ""
		keyArg, rest = rest[0], rest[1:]
	case len(rest) == 0 && keyFile != "":
	default:
		return usageError()
	}
	if len(rest) != 0 {
		return usageError()
	}

	if !flagNoUpdateCheck && !pickBool(false, lcfg.NoUpdateCheck, gcfg.NoUpdateCheck) {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			_, _ = fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'xorkit update' for details\n", latest)
		}
	}

	inEnc := pickString(flagInEnc, lcfg.In, gcfg.In)
	if inEnc == "" {
		inEnc = codec.Raw
	}
	keyEnc := pickString(flagKeyEnc, lcfg.KeyEnc, gcfg.KeyEnc)
	if keyEnc == "" {
		keyEnc = codec.Raw
	}

	dataRaw, err := readOperand(flagDataFile, dataArg)
	if err != nil {
		return fmt.Errorf("data operand: %w", err)
	}
	keyRaw, err := readOperand(keyFile, keyArg)
	if err != nil {
		return fmt.Errorf("key operand: %w", err)
	}

	data, err := codec.Decode(inEnc, dataRaw)
	if err != nil {
		return err
	}
	key, err := codec.Decode(keyEnc, keyRaw)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := commands.Invoke("xor", data, key)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	outEnc := pickString(flagOutEnc, lcfg.Out, gcfg.Out)
	if outEnc == "" {
		// raw bytes go to files and pipes; terminals get hex
		if flagOutput == "" && stdoutTTY {
			outEnc = codec.Hex
		} else {
			outEnc = codec.Raw
		}
	}
	encoded, err := codec.Encode(outEnc, result)
	if err != nil {
		return err
	}

	switch {
	case flagOutput != "":
		if err := os.WriteFile(flagOutput, encoded, 0644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	default:
		if outEnc == codec.Raw && stdoutTTY {
			_, _ = fmt.Fprintln(os.Stderr, "warning: writing raw bytes to a terminal; use --out hex for a readable result")
		}
		if _, err := os.Stdout.Write(encoded); err != nil {
			return err
		}
		if outEnc != codec.Raw {
			_, _ = fmt.Fprintln(os.Stdout)
		}
	}

	// Clipboard copy is best effort: headless environments have no clipboard.
	if flagCopy {
		if err := clipboard.WriteAll(string(encoded)); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, "clipboard warning:", err)
		}
	}

	if pickBool(flagAudit, lcfg.Audit, gcfg.Audit) {
		log := audit.NewAuditLog(pickString(flagAuditPath, lcfg.AuditPath, gcfg.AuditPath))
		rec := audit.CreateTransformRecord("xor", data, result, len(key), inEnc, outEnc, elapsed)
		if err := log.LogTransform(rec); err != nil {
			return fmt.Errorf("audit error: %w", err)
		}
	}
	return nil
}

// usageError returns the xor command's fixed wrong-arity failure.
func usageError() error {
	cmd, _ := commands.Lookup("xor")
	return &registry.UsageError{Command: cmd.Name, Usage: cmd.Usage}
}

// readOperand reads from path when set ('-' = stdin for data), otherwise
// returns the literal argument bytes untouched.
func readOperand(path, literal string) ([]byte, error) {
	if path == "" {
		return []byte(literal), nil
	}
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
