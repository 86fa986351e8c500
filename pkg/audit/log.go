package audit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/utkarsh5026/Explain/pkg/explain"
)

// Entry is one persisted audit record: when the error was logged and its
// snapshot.
type Entry struct {
	Time   time.Time `json:"time"`
	Report Snapshot  `json:"report"`
}

// Log appends error reports to a writer as JSON lines, one entry per line.
// Log is not safe for concurrent use; callers owning a shared audit file
// must serialize access themselves.
type Log struct {
	enc *json.Encoder
	now func() time.Time
}

// NewLog creates an audit log writing to w.
func NewLog(w io.Writer) *Log {
	return &Log{enc: json.NewEncoder(w), now: time.Now}
}

// Append captures the report and writes it as one timestamped entry.
func (l *Log) Append(r explain.Report) error {
	entry := Entry{Time: l.now().UTC(), Report: Capture(r)}
	if err := l.enc.Encode(entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}

// ReadLog decodes every entry from a JSON-lines audit stream, in order.
func ReadLog(r io.Reader) ([]Entry, error) {
	dec := json.NewDecoder(r)
	var entries []Entry
	for {
		var e Entry
		err := dec.Decode(&e)
		if errors.Is(err, io.EOF) {
			return entries, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read audit entry %d: %w", len(entries)+1, err)
		}
		entries = append(entries, e)
	}
}
