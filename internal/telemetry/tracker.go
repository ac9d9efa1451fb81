package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Tracker logs events
type Tracker interface {
	Track(event event)
	Close()
}

type noopTracker struct{}

func (tracker *noopTracker) Track(event event) {}

func (tracker *noopTracker) Close() {}

// stdoutTracker prints every event as a JSON line
type stdoutTracker struct {
	logger zerolog.Logger
}

func newStdoutTracker(w io.Writer) *stdoutTracker {
	return &stdoutTracker{zerolog.New(w)}
}

func (tracker *stdoutTracker) Track(event event) {
	logEvent(tracker.logger, event)
}

func (tracker *stdoutTracker) Close() {}

// fileTracker appends every event as a JSON line to a local file,
// events are dropped when the file cannot be opened
type fileTracker struct {
	file   *os.File
	logger zerolog.Logger
}

func newFileTracker(path string) Tracker {
	if path == "" {
		return &noopTracker{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return &noopTracker{}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return &noopTracker{}
	}
	return &fileTracker{f, zerolog.New(f)}
}

func (tracker *fileTracker) Track(event event) {
	logEvent(tracker.logger, event)
}

func (tracker *fileTracker) Close() {
	tracker.file.Close()
}

func logEvent(logger zerolog.Logger, event event) {
	e := logger.Log().
		Str("id", event.id).
		Str("type", string(event.eventType)).
		Str("user_id", event.userID).
		Time("time", event.time).
		Str("execution_id", event.executionID).
		Str("command", event.command).
		Str("version", event.version)

	if len(event.data) > 0 {
		data := zerolog.Dict()
		for _, datum := range event.data {
			switch v := datum.Value.(type) {
			case error:
				data.Str(string(datum.Key), v.Error())
			default:
				data.Str(string(datum.Key), fmt.Sprint(v))
			}
		}
		e.Dict("data", data)
	}

	e.Send()
}
