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

// Package api contains the read-only views of the release configuration model.
//
// The views are live: they reflect the current state of the entity they were created from,
// but there is no way to modify the entity through them.
package api

// List is a read-only list.
type List[T any] interface {
	Len() int
	At(i int) T

	// All returns a copy of the elements.
	All() []T
}

// Map is a read-only map with ordered keys.
type Map[K comparable, V any] interface {
	Len() int
	Get(k K) (V, bool)

	// Keys returns a copy of the keys in order.
	Keys() []K

	// Range calls f for each entry in order until f returns false.
	Range(f func(k K, v V) bool)
}

// Activatable is implemented by entities that can be switched on and off.
type Activatable interface {
	// Active returns the configured activation, e.g. ALWAYS, or an empty string if unset.
	Active() string
}

// Extra is implemented by entities with extra properties.
type Extra interface {
	ExtraProperties() Map[string, any]
}

// Timeouts holds network timeouts in seconds, 0 means not set.
type Timeouts interface {
	ConnectTimeout() int
	ReadTimeout() int
}

// Environment holds the environment of the model.
type Environment interface {
	Variables() string
	Properties() Map[string, string]
}

// Project holds the project information.
type Project interface {
	Extra
	Name() string
	Version() string
	VersionPattern() string
	SnapshotPattern() string
	Description() string
	LongDescription() string
	Website() string
	License() string
	InceptionYear() string
	Stereotype() string
	Authors() List[string]
	Tags() List[string]
}

// Signing holds the signing configuration.
type Signing interface {
	Activatable
	Armored() bool
	Mode() string
	PublicKey() string
	SecretKey() string
	Passphrase() string
}

// Model is the root of the configuration model.
type Model interface {
	Environment() Environment
	Project() Project
	Release() Release
	Signing() Signing
	Announce() Announce
	Upload() Upload
	Download() Download
	Packagers() Packagers
}
