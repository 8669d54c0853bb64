// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
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
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"reflect"

	"github.com/inhies/go-bytesize"
	"github.com/rs/zerolog"

	"github.com/dadrus/makestem/internal/x"
)

func logLevelDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(zerolog.Level(0)) {
		return data, nil
	}

	// nolint: forcetypeassert
	level, err := zerolog.ParseLevel(data.(string))
	if err != nil {
		return zerolog.InfoLevel, nil //nolint:nilerr
	}

	return level, nil
}

func logFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(LogFormat(0)) {
		return x.IfThenElse(data == "gelf", LogGelfFormat, LogTextFormat), nil
	}

	return data, nil
}

func outputFormatDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() == reflect.String && to == reflect.TypeOf(OutputFormat(0)) {
		// nolint: forcetypeassert
		return ParseOutputFormat(data.(string)), nil
	}

	return data, nil
}

func byteSizeDecodeHookFunc(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf(bytesize.ByteSize(0)) {
		return data, nil
	}

	// nolint: forcetypeassert
	return bytesize.Parse(data.(string))
}
