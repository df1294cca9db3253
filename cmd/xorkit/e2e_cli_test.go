package xorkit

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runCLI executes the tool as a subprocess to avoid os.Exit in-process.
func runCLI(t *testing.T, stdin []byte, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := exec.Command("go", append([]string{"run", "."}, args...)...)
	cmd.Dir = filepath.Clean(filepath.Join("..", ".."))
	cmd.Env = append(os.Environ(), "CI=1") // keep the update check out of test runs
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}
	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return out.String(), errBuf.String(), err
}

func TestCLI_HexRoundTrip(t *testing.T) {
	enc, stderr, err := runCLI(t, nil, "xor", "--out", "hex", "Hello World", "secret")
	if err != nil {
		t.Fatalf("encrypt: %v\n%s", err, stderr)
	}
	hexOut := strings.TrimSpace(enc)
	if hexOut == "" || hexOut == "Hello World" {
		t.Fatalf("unexpected encrypted output: %q", hexOut)
	}

	dec, stderr, err := runCLI(t, nil, "xor", "--in", "hex", "--out", "raw", hexOut, "secret")
	if err != nil {
		t.Fatalf("decrypt: %v\n%s", err, stderr)
	}
	if dec != "Hello World" {
		t.Fatalf("round trip mismatch: %q", dec)
	}
}

func TestCLI_StdinAndOutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "result.bin")
	data := []byte{0x00, 0x41, 0xFF, 0x00} // embedded NULs survive the pipe

	_, stderr, err := runCLI(t, data, "xor", "--data-file", "-", "--output", outPath, "key")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	enc, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != len(data) {
		t.Fatalf("length not preserved: %d != %d", len(enc), len(data))
	}

	backPath := filepath.Join(dir, "back.bin")
	_, stderr, err = runCLI(t, enc, "xor", "--data-file", "-", "--output", backPath, "key")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	back, err := os.ReadFile(backPath)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("round trip mismatch: % x", back)
	}
}

func TestCLI_UsageError(t *testing.T) {
	for _, args := range [][]string{
		{"xor"},
		{"xor", "only-data"},
		{"xor", "data", "key", "extra"},
	} {
		_, stderr, err := runCLI(t, nil, args...)
		if err == nil {
			t.Fatalf("%v: expected failure", args)
		}
		if !strings.Contains(stderr, "Invalid command count, use: xor <string> <salt>") {
			t.Fatalf("%v: missing usage message, stderr=%q", args, stderr)
		}
	}
}

func TestCLI_EmptyKey(t *testing.T) {
	_, stderr, err := runCLI(t, nil, "xor", "--in", "hex", "--key-enc", "hex", "41", "")
	if err == nil {
		t.Fatal("expected empty key failure")
	}
	if !strings.Contains(stderr, "empty key") {
		t.Fatalf("missing empty key message, stderr=%q", stderr)
	}
}

func TestCLI_CommandsListing(t *testing.T) {
	out, stderr, err := runCLI(t, nil, "commands")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}
	if !strings.Contains(out, "package xorkit") || !strings.Contains(out, "xorkit::xor") {
		t.Fatalf("unexpected listing:\n%s", out)
	}
}

func TestCLI_AuditTrail(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "audit.jsonl")

	_, stderr, err := runCLI(t, nil, "xor", "--out", "hex", "--audit", "--audit-path", logPath, "Hello World", "secret")
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, stderr)
	}

	out, stderr, err := runCLI(t, nil, "audit", "list", "--json", "--audit-path", logPath)
	if err != nil {
		t.Fatalf("audit list: %v\n%s", err, stderr)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("json unmarshal: %v\n%s", err, out)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["data_len"] != float64(11) || records[0]["key_len"] != float64(6) {
		t.Fatalf("unexpected record: %v", records[0])
	}
	if strings.Contains(out, "secret") {
		t.Fatal("key material leaked into the audit log")
	}
}
