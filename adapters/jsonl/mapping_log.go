// Package jsonl holds file-backed adapters for running without a
// database.
package jsonl

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"context"

	"leadhub/domain/lead"
	"leadhub/domain/schema"
	"leadhub/internal/errors"
	"leadhub/ports"
)

// MappingLog is the append-only file form of the mapping-frequency log:
// one JSON object per line, appended without locking. Concurrent writers
// can interleave and very occasionally clobber a line; a lost line costs
// one future suggestion, so the log is not locked on purpose.
type MappingLog struct {
	path string
}

// NewMappingLog creates a log at path. The file is created lazily on the
// first write.
func NewMappingLog(path string) *MappingLog {
	return &MappingLog{path: path}
}

var _ ports.MappingRepository = (*MappingLog)(nil)

type logEntry struct {
	HeaderKey string       `json:"header_key"`
	Field     schema.Field `json:"field"`
	At        time.Time    `json:"at"`
}

// RecordMapping appends one confirmation line.
func (l *MappingLog) RecordMapping(ctx context.Context, headerKey string, field schema.Field) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.StorageError("failed to create mapping log directory", err)
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.StorageError("failed to open mapping log", err)
	}
	defer f.Close()

	line, err := json.Marshal(logEntry{HeaderKey: headerKey, Field: field, At: time.Now()})
	if err != nil {
		return errors.Wrap(err, "failed to encode mapping entry")
	}
	_, err = f.Write(append(line, '\n'))
	return err
}

// Suggest replays the log and returns the most frequent field for the
// key. The log is small (one line per human confirmation); a full scan
// per lookup is fine.
func (l *MappingLog) Suggest(ctx context.Context, headerKey string) (*lead.ConfirmedMapping, bool, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.StorageError("failed to open mapping log", err)
	}
	defer f.Close()

	counts := make(map[schema.Field]int)
	lastSeen := make(map[schema.Field]time.Time)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry logEntry
		// Torn lines from unlocked concurrent appends are skipped.
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		if entry.HeaderKey != headerKey {
			continue
		}
		counts[entry.Field]++
		if entry.At.After(lastSeen[entry.Field]) {
			lastSeen[entry.Field] = entry.At
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, false, errors.StorageError("failed to read mapping log", err)
	}

	best := &lead.ConfirmedMapping{HeaderKey: headerKey}
	for field, count := range counts {
		if count > best.Count || (count == best.Count && lastSeen[field].After(best.LastSeen)) {
			best.Field = field
			best.Count = count
			best.LastSeen = lastSeen[field]
		}
	}
	if best.Count == 0 {
		return nil, false, nil
	}
	return best, true, nil
}
