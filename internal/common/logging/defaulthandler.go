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

// Package logging contains the log handlers and helpers used by the commands.
package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/bep/logg"

	"github.com/fatih/color"
)

// DefaultHandler writes coloured log lines to a terminal.
// Based on https://github.com/apex/log/blob/master/handlers/cli/cli.go
type DefaultHandler struct {
	mu        sync.Mutex
	outWriter io.Writer // Defaults to os.Stdout.
	errWriter io.Writer // Defaults to os.Stderr.

	Padding int
}

// NewDefaultHandler handler.
func NewDefaultHandler(outWriter, errWriter io.Writer) logg.Handler {
	return &DefaultHandler{
		outWriter: outWriter,
		errWriter: errWriter,
		Padding:   3,
	}
}

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	logg.LevelDebug: color.New(color.FgWhite),
	logg.LevelInfo:  color.New(color.FgBlue),
	logg.LevelWarn:  color.New(color.FgYellow),
	logg.LevelError: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	logg.LevelDebug: "•",
	logg.LevelInfo:  "•",
	logg.LevelWarn:  "•",
	logg.LevelError: "⨯",
}

// HandleLog implements logg.Handler.
func (h *DefaultHandler) HandleLog(e *logg.Entry) error {
	color := Colors[e.Level]
	level := Strings[e.Level]

	h.mu.Lock()
	defer h.mu.Unlock()

	w := h.outWriter
	if e.Level > logg.LevelInfo {
		w = h.errWriter
	}

	color.Fprintf(w, "%s %s%s", bold.Sprintf("%*s", h.Padding+1, level), color.Sprint(entryPrefix(e)), e.Message)

	for _, field := range e.Fields {
		if isPrefixField(field.Name) {
			continue
		}
		name, value, _ := strings.Cut(formatField(field.Name, field.Value), "=")
		fmt.Fprintf(w, " %s=%s", color.Sprint(name), value)
	}

	fmt.Fprintln(w)

	return nil
}
