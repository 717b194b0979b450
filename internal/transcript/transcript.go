// Package transcript records the per-file outcomes of a batch run as JSONL.
//
// Each line is one Event. A run opens with RUN_STARTED and closes with
// RUN_FINISHED; between them every candidate file gets exactly one of
// FILE_WRITTEN, FILE_SKIPPED or FILE_FAILED. Written files carry SHA-256 and
// BLAKE3 digests of the bytes put on disk.
package transcript

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/blake3"
)

// Event is a single line of a transcript.
type Event struct {
	Type       string         `json:"t"`
	Seq        int            `json:"seq"`
	RunID      string         `json:"run_id,omitempty"`
	Pass       string         `json:"pass,omitempty"`
	Dir        string         `json:"dir,omitempty"`
	File       string         `json:"file,omitempty"`
	OldName    string         `json:"old_name,omitempty"`
	SHA256     string         `json:"sha256,omitempty"`
	BLAKE3     string         `json:"blake3,omitempty"`
	Bytes      int64          `json:"bytes,omitempty"`
	Message    string         `json:"message,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Known event types
const (
	EventRunStarted  = "RUN_STARTED"
	EventFileWritten = "FILE_WRITTEN"
	EventFileSkipped = "FILE_SKIPPED"
	EventFileFailed  = "FILE_FAILED"
	EventRunFinished = "RUN_FINISHED"
)

// Digests returns the hex SHA-256 and BLAKE3 digests of data.
func Digests(data []byte) (sha string, b3 string) {
	s := sha256.Sum256(data)
	b := blake3.Sum256(data)
	return hex.EncodeToString(s[:]), hex.EncodeToString(b[:])
}

// Writer appends events to a transcript. A nil *Writer discards everything,
// so callers need not check whether a transcript was requested.
type Writer struct {
	w      io.Writer
	closer io.Closer
	runID  string
	seq    int
	err    error
}

// Create opens a transcript file at path, truncating any previous run.
func Create(path, runID string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript: %w", err)
	}
	w := NewWriter(f, runID)
	w.closer = f
	return w, nil
}

// NewWriter writes events for runID to w.
func NewWriter(w io.Writer, runID string) *Writer {
	return &Writer{w: w, runID: runID}
}

func (w *Writer) emit(ev Event) {
	if w == nil || w.err != nil {
		return
	}
	w.seq++
	ev.Seq = w.seq
	ev.RunID = w.runID

	data, err := json.Marshal(ev)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal event: %w", err)
		return
	}
	data = append(data, '\n')
	if _, err := w.w.Write(data); err != nil {
		w.err = fmt.Errorf("failed to write event: %w", err)
	}
}

// RunStarted records the start of a pass over dir.
func (w *Writer) RunStarted(pass, dir string, files int) {
	w.emit(Event{
		Type:       EventRunStarted,
		Pass:       pass,
		Dir:        dir,
		Attributes: map[string]any{"files": files},
	})
}

// FileWritten records the bytes written for file, formerly named oldName.
func (w *Writer) FileWritten(file, oldName string, data []byte) {
	if w == nil {
		return
	}
	ev := Event{
		Type:  EventFileWritten,
		File:  file,
		Bytes: int64(len(data)),
	}
	if oldName != file {
		ev.OldName = oldName
	}
	ev.SHA256, ev.BLAKE3 = Digests(data)
	w.emit(ev)
}

// FileSkipped records a file left untouched.
func (w *Writer) FileSkipped(file string, reason error) {
	w.emit(Event{Type: EventFileSkipped, File: file, Message: reason.Error()})
}

// FileFailed records a per-file failure.
func (w *Writer) FileFailed(file string, err error) {
	w.emit(Event{Type: EventFileFailed, File: file, Message: err.Error()})
}

// RunFinished records the final counts.
func (w *Writer) RunFinished(counts map[string]int) {
	attrs := make(map[string]any, len(counts))
	for k, v := range counts {
		attrs[k] = v
	}
	w.emit(Event{Type: EventRunFinished, Attributes: attrs})
}

// Close reports the first write error, closing the file if Create opened it.
func (w *Writer) Close() error {
	if w == nil {
		return nil
	}
	if w.closer != nil {
		if err := w.closer.Close(); err != nil && w.err == nil {
			w.err = err
		}
	}
	return w.err
}

// Parse parses a transcript JSONL file and returns all events.
func Parse(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transcript: %w", err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		var event Event
		if err := json.Unmarshal([]byte(line), &event); err != nil {
			return nil, fmt.Errorf("failed to parse line %d: %w", lineNum, err)
		}

		events = append(events, event)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transcript: %w", err)
	}

	return events, nil
}

// Transcript represents a parsed transcript with helper methods.
type Transcript struct {
	Events []Event
	Path   string
}

// Load loads a transcript from a file.
func Load(path string) (*Transcript, error) {
	events, err := Parse(path)
	if err != nil {
		return nil, err
	}
	return &Transcript{
		Events: events,
		Path:   path,
	}, nil
}

// Written returns the FILE_WRITTEN events.
func (t *Transcript) Written() []Event {
	return t.ofType(EventFileWritten)
}

// Failures returns the FILE_FAILED events.
func (t *Transcript) Failures() []Event {
	return t.ofType(EventFileFailed)
}

// Pass returns the pass named by RUN_STARTED, or "" if the run never started.
func (t *Transcript) Pass() string {
	for _, event := range t.Events {
		if event.Type == EventRunStarted {
			return event.Pass
		}
	}
	return ""
}

// Finished reports whether the run reached RUN_FINISHED.
func (t *Transcript) Finished() bool {
	return len(t.Events) > 0 && t.Events[len(t.Events)-1].Type == EventRunFinished
}

func (t *Transcript) ofType(typ string) []Event {
	var out []Event
	for _, event := range t.Events {
		if event.Type == typ {
			out = append(out, event)
		}
	}
	return out
}
