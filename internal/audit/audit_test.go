package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_CreatesFileAndAppends(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SALTPASS_HOME", tmpDir)

	Log(Entry{
		StoreUUID:  "test-store-uuid",
		Operation:  "generate",
		Identifier: "github.com",
		Algorithm:  "hmac-sha256",
		Length:     16,
	})
	Log(Entry{
		StoreUUID: "test-store-uuid",
		Operation: "encrypt",
		Count:     3,
	})

	logPath := filepath.Join(tmpDir, "audit.jsonl")
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 log lines, got %d", len(lines))
	}

	var first Entry
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("First line is not valid JSON: %v", err)
	}
	if first.Operation != "generate" {
		t.Errorf("Operation = %q, want generate", first.Operation)
	}
	if first.Identifier != "github.com" {
		t.Errorf("Identifier = %q, want github.com", first.Identifier)
	}
	if first.Timestamp == "" {
		t.Errorf("Timestamp should be filled in when left empty")
	}

	var second Entry
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("Second line is not valid JSON: %v", err)
	}
	if second.Count != 3 {
		t.Errorf("Count = %d, want 3", second.Count)
	}
}

func TestLog_OmitsEmptyOptionalFields(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SALTPASS_HOME", tmpDir)

	Log(Entry{
		StoreUUID: "test-store-uuid",
		Operation: "list",
	})

	data, err := os.ReadFile(filepath.Join(tmpDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	line := string(data)
	for _, field := range []string{"identifier", "algorithm", "length", "count"} {
		if strings.Contains(line, field) {
			t.Errorf("Entry for list should omit %q, got: %s", field, line)
		}
	}
}

func TestLog_KeepsExplicitTimestamp(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("SALTPASS_HOME", tmpDir)

	Log(Entry{
		Timestamp: "2026-01-02T03:04:05.000000Z",
		StoreUUID: "test-store-uuid",
		Operation: "add",
	})

	data, err := os.ReadFile(filepath.Join(tmpDir, "audit.jsonl"))
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}
	var entry Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}
	if entry.Timestamp != "2026-01-02T03:04:05.000000Z" {
		t.Errorf("Timestamp was rewritten: %q", entry.Timestamp)
	}
}
