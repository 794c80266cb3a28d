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

// Package mailtypes contains the enumerations used by the SMTP announcer.
package mailtypes

import (
	"fmt"
	"strings"

	"github.com/jreleaser/jreleaser/internal/common/mapsh"
)

const (
	InvalidTransport Transport = iota
	SMTP
	SMTPS
)

var transportString = map[Transport]string{
	SMTP:  "SMTP",
	SMTPS: "SMTPS",
}

var stringTransport = map[string]Transport{}

const (
	InvalidMimeType MimeType = iota
	Text
	HTML
)

var mimeTypeString = map[MimeType]string{
	Text: "TEXT",
	HTML: "HTML",
}

var mimeTypeCode = map[MimeType]string{
	Text: "text/plain",
	HTML: "text/html",
}

var stringMimeType = map[string]MimeType{}

func init() {
	for k, v := range transportString {
		stringTransport[v] = k
	}
	for k, v := range mimeTypeString {
		stringMimeType[v] = k
	}
}

// Transport is the mail transport.
type Transport int

func (t Transport) String() string {
	return transportString[t]
}

// IsZero reports whether t is not set.
func (t Transport) IsZero() bool {
	return t == InvalidTransport
}

// MarshalText implements encoding.TextMarshaler.
func (t Transport) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Transport) UnmarshalText(text []byte) error {
	v, err := ParseTransport(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseTransport parses a string into a Transport.
func ParseTransport(s string) (Transport, error) {
	t := stringTransport[strings.ToUpper(strings.TrimSpace(s))]
	if t == InvalidTransport {
		return t, fmt.Errorf("invalid mail transport %q, must be one of %s", s, mapsh.KeysSorted(stringTransport))
	}
	return t, nil
}

// MimeType is the mime type of the mail body.
type MimeType int

func (m MimeType) String() string {
	return mimeTypeString[m]
}

// Code returns the mime type code, e.g. text/plain.
func (m MimeType) Code() string {
	return mimeTypeCode[m]
}

// IsZero reports whether m is not set.
func (m MimeType) IsZero() bool {
	return m == InvalidMimeType
}

// MarshalText implements encoding.TextMarshaler.
func (m MimeType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MimeType) UnmarshalText(text []byte) error {
	v, err := ParseMimeType(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMimeType parses a string into a MimeType.
func ParseMimeType(s string) (MimeType, error) {
	m := stringMimeType[strings.ToUpper(strings.TrimSpace(s))]
	if m == InvalidMimeType {
		return m, fmt.Errorf("invalid mime type %q, must be one of %s", s, mapsh.KeysSorted(stringMimeType))
	}
	return m, nil
}
