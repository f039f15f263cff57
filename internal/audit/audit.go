package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"saltpass/internal/store"
)

// Entry represents a single audit log entry. Entries record which catalog
// operations happened and when; they never contain the master secret, a
// derived password, or anything derived from either.
type Entry struct {
	Timestamp string `json:"ts"`    // RFC3339 with microseconds.
	StoreUUID string `json:"store"` // UUID of the store being operated on.
	Operation string `json:"op"`    // Operation name.

	// Optional fields depending on operation.
	Identifier string `json:"identifier,omitempty"` // For add/remove/generate/set-algorithm.
	Algorithm  string `json:"algorithm,omitempty"`  // For add/generate/set-algorithm.
	Length     int    `json:"length,omitempty"`     // For generate.
	Count      int    `json:"count,omitempty"`      // For encrypt/decrypt.
}

// Log appends an entry to the audit log at $SALTPASS_HOME/audit.jsonl.
// If logging fails it returns silently. Operations should not fail just
// because audit logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	dir, err := store.HomeDir()
	if err != nil {
		return
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return
	}

	logPath := filepath.Join(dir, "audit.jsonl")

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}
