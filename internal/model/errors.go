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

package model

import (
	"errors"
	"fmt"
)

// Message keys for configuration errors.
const (
	KeyBlankName                 = "ERROR_blank_name"
	KeyNotFound                  = "ERROR_not_found"
	KeyUnsupportedAnnouncer      = "ERROR_unsupported_announcer"
	KeyUnsupportedUploader       = "ERROR_unsupported_uploader"
	KeyUnsupportedDownloader     = "ERROR_unsupported_downloader"
	KeyUnsupportedPackager       = "ERROR_unsupported_packager"
	KeyUnexpectedReadingTemplate = "ERROR_unexpected_reading_template"
	KeyInvalidValue              = "ERROR_invalid_value"
	KeyMultipleGitServices       = "ERROR_multiple_git_services"
)

// bundle holds the message formats for the keys above.
var bundle = map[string]string{
	KeyBlankName:                 "%s name must not be blank",
	KeyNotFound:                  "%s %q not found",
	KeyUnsupportedAnnouncer:      "unsupported announcer %q",
	KeyUnsupportedUploader:       "unsupported uploader %q",
	KeyUnsupportedDownloader:     "unsupported downloader %q",
	KeyUnsupportedPackager:       "unsupported packager %q",
	KeyUnexpectedReadingTemplate: "unexpected error reading template %s",
	KeyInvalidValue:              "invalid value for %s",
	KeyMultipleGitServices:       "only one of %s can be configured",
}

var (
	ErrBlankName             = &ConfigError{Key: KeyBlankName}
	ErrNotFound              = &ConfigError{Key: KeyNotFound}
	ErrUnsupportedAnnouncer  = &ConfigError{Key: KeyUnsupportedAnnouncer}
	ErrUnsupportedUploader   = &ConfigError{Key: KeyUnsupportedUploader}
	ErrUnsupportedDownloader = &ConfigError{Key: KeyUnsupportedDownloader}
	ErrUnsupportedPackager   = &ConfigError{Key: KeyUnsupportedPackager}
	ErrReadingTemplate       = &ConfigError{Key: KeyUnexpectedReadingTemplate}
	ErrInvalidValue          = &ConfigError{Key: KeyInvalidValue}
)

// ConfigError is a user facing configuration error.
// Two ConfigErrors are considered equal by errors.Is if they share the same Key.
type ConfigError struct {
	Key  string
	Args []any
	Err  error
}

func newConfigError(key string, err error, args ...any) *ConfigError {
	return &ConfigError{Key: key, Args: args, Err: err}
}

func (e *ConfigError) Error() string {
	format, found := bundle[e.Key]
	var msg string
	if found {
		msg = fmt.Sprintf(format, e.Args...)
	} else {
		msg = e.Key
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is implements the interface used by errors.Is.
func (e *ConfigError) Is(target error) bool {
	var t *ConfigError
	if !errors.As(target, &t) {
		return false
	}
	return t.Key == e.Key
}

// IsConfigError reports whether err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
