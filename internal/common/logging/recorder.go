// Copyright 2026 The JReleaser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"fmt"
	"sync"

	"github.com/bep/logg"
)

// Recorder is a logg.Handler that keeps the log entries in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []RecordedEntry
}

// RecordedEntry is a log entry captured by a Recorder.
type RecordedEntry struct {
	Level   logg.Level
	Message string
	Fields  map[string]string
}

// NewRecorder creates a new Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// HandleLog implements logg.Handler.
func (r *Recorder) HandleLog(e *logg.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	fields := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		fields[f.Name] = fmt.Sprint(f.Value)
	}
	r.entries = append(r.entries, RecordedEntry{Level: e.Level, Message: e.Message, Fields: fields})
	return nil
}

// Entries returns the entries logged at level or above.
func (r *Recorder) Entries(level logg.Level) []RecordedEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var entries []RecordedEntry
	for _, e := range r.entries {
		if e.Level >= level {
			entries = append(entries, e)
		}
	}
	return entries
}

// NewLevelLoggers creates info and warn loggers writing to h.
func NewLevelLoggers(h logg.Handler) (info, warn logg.LevelLogger) {
	l := logg.New(
		logg.Options{
			Level:   logg.LevelInfo,
			Handler: h,
		},
	)
	return l.WithLevel(logg.LevelInfo), l.WithLevel(logg.LevelWarn)
}
