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
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

type decodeFunc func(input, output any) error

// mapDecoder is implemented by types that need to control how they are decoded from a map,
// e.g. to keep the entries ordered.
type mapDecoder interface {
	decodeMap(m map[string]any, decode decodeFunc) error
}

var mapDecoderType = reflect.TypeOf((*mapDecoder)(nil)).Elem()

// Initializer is implemented by entities that need to be initialized and validated after decoding.
type Initializer interface {
	// Init initializes a config struct, that could be parsing of strings into Go objects, compiling of Glob patterns etc.
	// It returns an error if the initialization failed.
	Init() error
}

// FromMap decodes m into a new model.
// Keys are normalized with NormalizeKeys and unknown keys are errors.
// See https://pkg.go.dev/github.com/mitchellh/mapstructure#section-readme
func FromMap(m map[string]any) (*JReleaserModel, error) {
	mm := &JReleaserModel{}
	if err := Decode(NormalizeKeys(m), mm); err != nil {
		return nil, err
	}
	return mm, nil
}

// Decode decodes input into output, which must be a pointer.
func Decode(input, output any) error {
	var decode decodeFunc
	decode = func(input, output any) error {
		d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			TagName:          "json",
			Squash:           true,
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           output,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapDecoderHook(&decode),
				mapstructure.TextUnmarshallerHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		})
		if err != nil {
			return err
		}
		return d.Decode(input)
	}
	if err := decode(input, output); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

func mapDecoderHook(decode *decodeFunc) mapstructure.DecodeHookFuncValue {
	return func(from, to reflect.Value) (any, error) {
		if !from.IsValid() {
			return nil, nil
		}
		if from.Kind() != reflect.Map || !to.IsValid() {
			return from.Interface(), nil
		}
		if !reflect.PtrTo(to.Type()).Implements(mapDecoderType) {
			return from.Interface(), nil
		}
		m, err := toStringMap(from)
		if err != nil {
			return nil, err
		}
		p := reflect.New(to.Type())
		if err := p.Interface().(mapDecoder).decodeMap(m, *decode); err != nil {
			return nil, err
		}
		return p.Elem().Interface(), nil
	}
}

func toStringMap(v reflect.Value) (map[string]any, error) {
	m := make(map[string]any, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k := iter.Key()
		if k.Kind() == reflect.Interface {
			k = k.Elem()
		}
		if k.Kind() != reflect.String {
			return nil, fmt.Errorf("invalid key %v: keys must be strings", k)
		}
		m[k.String()] = iter.Value().Interface()
	}
	return m, nil
}
