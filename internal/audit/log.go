package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	xxhash "github.com/cespare/xxhash/v2"
)

// DefaultFileName is where the audit log lives when no path is configured.
const DefaultFileName = ".xorkit_audit.jsonl"

// TransformRecord is one JSONL line describing a completed transform. It
// carries lengths and content digests only; key material never appears here
// in any form, not even hashed.
type TransformRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	RecordID   string    `json:"record_id"`
	Command    string    `json:"command"`
	DataLen    int       `json:"data_len"`
	KeyLen     int       `json:"key_len"`
	ResultLen  int       `json:"result_len"`
	DataDigest string    `json:"data_digest"`
	OutDigest  string    `json:"out_digest"`
	InEnc      string    `json:"in_enc,omitempty"`
	OutEnc     string    `json:"out_enc,omitempty"`
	Duration   string    `json:"duration"`
}

type AuditLog struct {
	logPath string
}

// NewAuditLog returns a log writing to path, or to DefaultFileName in the
// working directory when path is empty.
func NewAuditLog(path string) *AuditLog {
	if path == "" {
		path = DefaultFileName
	}
	return &AuditLog{logPath: path}
}

// Path returns the file the log appends to.
func (a *AuditLog) Path() string { return a.logPath }

// LoadHistory returns recorded transforms, newest first. Unparseable lines
// are skipped rather than failing the whole read.
func (a *AuditLog) LoadHistory() ([]TransformRecord, error) {
	f, err := os.Open(a.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []TransformRecord
	decoder := json.NewDecoder(f)
	for decoder.More() {
		var record TransformRecord
		if err := decoder.Decode(&record); err != nil {
			continue
		}
		records = append(records, record)
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// LogTransform appends a record.
func (a *AuditLog) LogTransform(record TransformRecord) error {
	if record.RecordID == "" {
		record.RecordID = fmt.Sprintf("xfrm_%d", time.Now().UnixNano())
	}

	// Owner-only permissions: digests and lengths still leak usage patterns.
	f, err := os.OpenFile(a.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// DeleteRecord removes the record at the given newest-first index and
// rewrites the log.
func (a *AuditLog) DeleteRecord(index int) error {
	records, err := a.LoadHistory()
	if err != nil {
		return err
	}

	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}

	records = append(records[:index], records[index+1:]...)

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	f, err := os.Create(a.logPath)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	for _, record := range records {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to write audit record: %w", err)
		}
	}
	return nil
}

// CreateTransformRecord builds a record from the raw operands and result.
// Only data and result are digested; the key contributes its length alone.
func CreateTransformRecord(
	command string,
	data, result []byte,
	keyLen int,
	inEnc, outEnc string,
	duration time.Duration,
) TransformRecord {
	return TransformRecord{
		Timestamp:  time.Now(),
		Command:    command,
		DataLen:    len(data),
		KeyLen:     keyLen,
		ResultLen:  len(result),
		DataDigest: digest(data),
		OutDigest:  digest(result),
		InEnc:      inEnc,
		OutEnc:     outEnc,
		Duration:   duration.String(),
	}
}

func digest(b []byte) string {
	return fmt.Sprintf("xxh64:%016x", xxhash.Sum64(b))
}
