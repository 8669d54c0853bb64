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

// Package benchmark compares the trie with a linear scan over the same randomly
// generated keys. Both containers must resolve every query to the same key.
package benchmark

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dadrus/makestem/internal/baseline"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/x/errorchain"
	"github.com/dadrus/makestem/trie"
)

const (
	minKeyLength        = 8
	defaultMaxKeyLength = 32

	// printable characters without the ones having a meaning in keys
	alphabet = "!\"#$&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[]^_`" +
		"abcdefghijklmnopqrstuvwxyz{|}~"
)

type Report struct {
	Keys    int `json:"keys"`
	Chars   int `json:"chars"`
	Queries int `json:"queries"`
	Hits    int `json:"hits"`

	TrieBuild    time.Duration `json:"trie_build"`
	TrieLookup   time.Duration `json:"trie_lookup"`
	LinearBuild  time.Duration `json:"linear_build"`
	LinearLookup time.Duration `json:"linear_lookup"`
}

// Run generates keys random keys, about half of them patterns, and resolves the configured
// number of queries with the trie and with a linear scan.
func Run(ctx context.Context, keys int, options ...Option) (*Report, error) {
	if keys <= 0 {
		return nil, errorchain.NewWithMessagef(makestem.ErrArgument, "number of keys must be positive, got %d", keys)
	}

	conf := opts{queries: keys, maxKeyLength: defaultMaxKeyLength, logger: zerolog.Nop()}
	for _, opt := range options {
		opt(&conf)
	}

	rnd := rand.New(rand.NewPCG(conf.seed, conf.seed^0x9e3779b97f4a7c15)) //nolint:gosec

	generated := generateKeys(rnd, keys, conf.maxKeyLength)
	queries := generateQueries(rnd, generated, conf.queries, conf.maxKeyLength)

	report := &Report{Queries: len(queries)}
	for _, key := range generated {
		report.Chars += len(key)
	}

	conf.logger.Debug().
		Int("_keys", len(generated)).
		Int("_chars", report.Chars).
		Int("_queries", len(queries)).
		Msg("Running benchmark")

	tr := trie.New[int](len(generated), report.Chars)
	defer tr.Release()

	linear := baseline.New[int](len(generated))

	start := time.Now()

	for idx, key := range generated {
		if err := pushUnique(tr.Push, key, idx); err != nil {
			return nil, err
		}
	}

	report.TrieBuild = time.Since(start)
	report.Keys = tr.Size()

	start = time.Now()

	for idx, key := range generated {
		if err := pushUnique(linear.Push, key, idx); err != nil {
			return nil, err
		}
	}

	report.LinearBuild = time.Since(start)

	if tr.Size() != linear.Size() {
		return nil, errorchain.NewWithMessagef(makestem.ErrInternal,
			"trie holds %d keys, linear scan %d", tr.Size(), linear.Size())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()

	for _, query := range queries {
		tr.Find(query)
	}

	report.TrieLookup = time.Since(start)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()

	for _, query := range queries {
		linear.Find(query)
	}

	report.LinearLookup = time.Since(start)

	hits, err := verify(tr, linear, queries)
	if err != nil {
		return nil, err
	}

	report.Hits = hits

	conf.logger.Debug().
		Dur("_trie_lookup", report.TrieLookup).
		Dur("_linear_lookup", report.LinearLookup).
		Int("_hits", hits).
		Msg("Benchmark finished")

	return report, nil
}

func pushUnique(push func(key string, value int) error, key string, value int) error {
	err := push(key, value)
	if err == nil || errors.Is(err, trie.ErrDuplicateKey) {
		return nil
	}

	return errorchain.NewWithMessagef(makestem.ErrInternal, "failed pushing generated key %q", key).
		CausedBy(err)
}

func verify(tr *trie.Trie[int], linear *baseline.Linear[int], queries []string) (int, error) {
	hits := 0

	for _, query := range queries {
		fromLinear, expected := linear.Find(query)
		fromTrie, found := tr.Find(query)

		if expected != found {
			return 0, errorchain.NewWithMessagef(makestem.ErrInternal,
				"containers disagree on presence of %q", query)
		}

		if !found {
			continue
		}

		if fromTrie.Key != fromLinear.Key {
			return 0, errorchain.NewWithMessagef(makestem.ErrInternal,
				"%q resolved to %q by the trie, but to %q by the linear scan",
				query, fromTrie.Key, fromLinear.Key)
		}

		hits++
	}

	return hits, nil
}

func randomText(rnd *rand.Rand, length int) string {
	var sb strings.Builder

	sb.Grow(length)

	for range length {
		sb.WriteByte(alphabet[rnd.IntN(len(alphabet))])
	}

	return sb.String()
}

func randomLength(rnd *rand.Rand, maxLength int) int {
	return minKeyLength + rnd.IntN(maxLength-minKeyLength+1)
}

// generateKeys creates groups of keys sharing a common prefix, so that the trie
// branches the way it does for real file names.
func generateKeys(rnd *rand.Rand, count, maxLength int) []string {
	const groupSize = 5

	keys := make([]string, 0, count)

	for len(keys) < count {
		base := randomText(rnd, randomLength(rnd, maxLength))

		for variant := 0; variant < groupSize && len(keys) < count; variant++ {
			key := base
			if variant != 0 {
				cut := minKeyLength/2 + rnd.IntN(len(base)-minKeyLength/2)
				key = base[:cut] + randomText(rnd, len(base)-cut)
			}

			if rnd.IntN(2) == 0 {
				pos := rnd.IntN(len(key) + 1)
				key = key[:pos] + "%" + key[pos:]
			}

			keys = append(keys, key)
		}
	}

	return keys
}

// generateQueries mixes names derived from the keys, which are likely to hit, with
// random names, which are likely to miss.
func generateQueries(rnd *rand.Rand, keys []string, count, maxLength int) []string {
	queries := make([]string, count)

	for idx := range queries {
		if rnd.IntN(2) == 0 {
			queries[idx] = randomText(rnd, randomLength(rnd, maxLength))

			continue
		}

		key := keys[rnd.IntN(len(keys))]
		queries[idx] = strings.Replace(key, "%", randomText(rnd, 1+rnd.IntN(4)), 1)
	}

	return queries
}
