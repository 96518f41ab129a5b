package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/PolarWolf314/enigma/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp   string `json:"ts"`                    // RFC3339 with microseconds.
	Operation   string `json:"op"`                    // encode, decode, config-init, ...
	Source      string `json:"source,omitempty"`      // Where the configuration came from.
	KeyID       string `json:"key_id,omitempty"`      // Machine config key id, if any.
	Fingerprint string `json:"fingerprint,omitempty"` // configs.Fingerprint of the configuration.
	InputBytes  int    `json:"input_bytes,omitempty"`
	OutputBytes int    `json:"output_bytes,omitempty"`
	File        string `json:"file,omitempty"` // Input file, when not reading text or stdin.
}

// NewEntry returns an entry for op.
func NewEntry(op string) Entry {
	return Entry{Operation: op}
}

// timestampLayout keeps microseconds so entries written in the same second
// still sort.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Log appends entry to the audit log. Auditing never fails an operation, so
// errors are dropped.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampLayout)
	}
	_ = appendEntry(LogPath(), entry)
}

func appendEntry(path string, entry Entry) error {
	line, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// LogPath is the audit log inside the settings directory.
func LogPath() string {
	return configs.EnigmaSettings.AuditLogPath
}

// ReadEntries returns every entry in the audit log, oldest first. A missing
// log has no entries.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read audit log: %w", err)
	}

	return ParseEntries(data), nil
}

// ParseEntries decodes JSON Lines data. Lines that are blank or not valid
// JSON are skipped, so a truncated final write does not hide the rest.
func ParseEntries(data []byte) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if json.Unmarshal(line, &entry) == nil {
			entries = append(entries, entry)
		}
	}

	return entries
}
