package core

import (
	"encoding/json"
	"io"

	"github.com/xorkit/xorkit/internal/audit"
)

// TransformRecord is the audit record shape, re-exported for integrators
// that ingest xorkit audit logs.
type TransformRecord = audit.TransformRecord

// MarshalHistory pretty-prints audit records as JSON for humans or pipelines.
func MarshalHistory(w io.Writer, records []TransformRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// UnmarshalHistory decodes audit record JSON, useful for ingestion tests.
func UnmarshalHistory(r io.Reader) ([]TransformRecord, error) {
	var rs []TransformRecord
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}
