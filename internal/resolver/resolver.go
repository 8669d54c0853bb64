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

package resolver

import (
	"errors"

	"github.com/DmitriyVTitov/size"
	"github.com/inhies/go-bytesize"
	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog"

	"github.com/dadrus/makestem/internal/config"
	"github.com/dadrus/makestem/internal/makestem"
	"github.com/dadrus/makestem/internal/ruleset"
	"github.com/dadrus/makestem/internal/x/errorchain"
	"github.com/dadrus/makestem/trie"
)

// Match is a rule matching a target.
type Match struct {
	Pattern       string   `json:"pattern"`
	Recipe        string   `json:"recipe,omitempty"`
	Stem          string   `json:"stem,omitempty"`
	Exact         bool     `json:"exact"`
	Prerequisites []string `json:"prerequisites,omitempty"`
}

type Stats struct {
	Usage        trie.Usage        `json:"usage"`
	Footprint    bytesize.ByteSize `json:"footprint"`
	Memory       bytesize.ByteSize `json:"memory"`
	CacheEntries int               `json:"cache_entries"`
	CacheHits    uint64            `json:"cache_hits"`
	CacheMisses  uint64            `json:"cache_misses"`
}

type entry struct {
	rule    *ruleset.Rule
	pattern trie.Pattern
	prereqs []trie.Pattern
}

// Resolver finds the rules building given targets. It is not safe for concurrent use.
type Resolver struct {
	trie   *trie.Trie[*entry]
	cache  *ttlcache.Cache[string, []Match]
	conf   config.TrieConfig
	logger zerolog.Logger
}

// New builds a resolver from the rules of the given rule set. Rules with a pattern
// already defined by an earlier rule are ignored.
func New(rs *ruleset.RuleSet, conf config.TrieConfig, opts ...Option) (*Resolver, error) {
	o := defaultOptions()

	for _, opt := range opts {
		opt(&o)
	}

	if len(rs.Rules) > conf.MaxKeys {
		return nil, errorchain.NewWithMessagef(makestem.ErrConfiguration,
			"rule set %s has %d rules, at most %d are supported", rs.Name, len(rs.Rules), conf.MaxKeys)
	}

	if chars := rs.CharCount(); chars > conf.MaxChars {
		return nil, errorchain.NewWithMessagef(makestem.ErrConfiguration,
			"patterns of rule set %s have %d characters, at most %d are supported", rs.Name, chars, conf.MaxChars)
	}

	res := &Resolver{
		trie: trie.New[*entry](conf.MaxKeys, conf.MaxChars,
			trie.WithLogger[*entry](o.logger),
			trie.WithDebugSink[*entry](o.out),
		),
		conf:   conf,
		logger: o.logger,
	}

	if o.maxEntries != 0 {
		res.cache = ttlcache.New[string, []Match](
			ttlcache.WithTTL[string, []Match](ttlcache.NoTTL),
			ttlcache.WithCapacity[string, []Match](o.maxEntries),
			ttlcache.WithDisableTouchOnHit[string, []Match](),
		)
	}

	for idx := range rs.Rules {
		if err := res.add(&rs.Rules[idx]); err != nil {
			res.trie.Release()

			return nil, errorchain.NewWithMessagef(makestem.ErrConfiguration,
				"rule %d of rule set %s is invalid", idx, rs.Name).CausedBy(err)
		}
	}

	o.logger.Debug().
		Str("_rule_set", rs.Name).
		Int("_rules", res.trie.Size()).
		Msg("Rule set loaded")

	return res, nil
}

func (r *Resolver) add(rule *ruleset.Rule) error {
	pattern, err := trie.ParsePattern(rule.Pattern)
	if err != nil {
		return err
	}

	ent := &entry{rule: rule, pattern: pattern, prereqs: make([]trie.Pattern, len(rule.Prerequisites))}

	for idx, prereq := range rule.Prerequisites {
		if ent.prereqs[idx], err = trie.ParsePattern(prereq); err != nil {
			return errorchain.NewWithMessagef(makestem.ErrConfiguration,
				"prerequisite %q", prereq).CausedBy(err)
		}
	}

	if err = r.trie.Push(rule.Pattern, ent); err != nil {
		if !errors.Is(err, trie.ErrDuplicateKey) {
			return err
		}

		r.logger.Warn().
			Str("_pattern", rule.Pattern).
			Msg("Pattern defined multiple times, keeping the first definition")
	}

	return nil
}

// Resolve returns the most specific rule for target.
func (r *Resolver) Resolve(target string) (Match, bool) {
	matches := r.ResolveAll(target)
	if len(matches) == 0 {
		return Match{}, false
	}

	return matches[0], true
}

// ResolveAll returns all rules matching target, the most specific first. The returned
// slice must not be modified.
func (r *Resolver) ResolveAll(target string) []Match {
	if r.cache != nil {
		if item := r.cache.Get(target); item != nil {
			return item.Value()
		}
	}

	found := r.trie.FindAll(target)
	matches := make([]Match, len(found))

	for idx, res := range found {
		matches[idx] = newMatch(res, target)
	}

	if r.cache != nil {
		r.cache.Set(target, matches, ttlcache.DefaultTTL)
	}

	return matches
}

// Has reports whether any rule matches target.
func (r *Resolver) Has(target string, preferFuzzy bool) bool {
	return r.trie.Has(target, preferFuzzy)
}

// Patterns returns the distinct patterns in the order Dump writes them.
func (r *Resolver) Patterns() []string { return r.trie.Keys() }

// Dump writes every distinct pattern to the configured output, one per line.
func (r *Resolver) Dump() error {
	if err := r.trie.Print(); err != nil {
		return errorchain.NewWithMessage(makestem.ErrInternal, "failed to dump patterns").CausedBy(err)
	}

	return nil
}

func (r *Resolver) Stats() Stats {
	stats := Stats{
		Usage:     r.trie.Usage(),
		Footprint: r.conf.Footprint(),
	}

	if memory := size.Of(r.trie); memory > 0 {
		stats.Memory = bytesize.ByteSize(memory)
	}

	if r.cache != nil {
		metrics := r.cache.Metrics()
		stats.CacheEntries = r.cache.Len()
		stats.CacheHits = metrics.Hits
		stats.CacheMisses = metrics.Misses
	}

	return stats
}

// Close releases the trie. The resolver must not be used afterwards.
func (r *Resolver) Close() {
	r.trie.Release()

	if r.cache != nil {
		r.cache.DeleteAll()
	}
}

func newMatch(res *trie.Result[*entry], target string) Match {
	ent := res.Value
	stem, fuzzy := ent.pattern.Stem(target)

	match := Match{
		Pattern: res.Key,
		Recipe:  ent.rule.Recipe,
		Stem:    stem,
		Exact:   !fuzzy,
	}

	// prerequisites of explicit rules are taken literally
	if fuzzy && len(ent.prereqs) != 0 {
		match.Prerequisites = make([]string, len(ent.prereqs))

		for idx, prereq := range ent.prereqs {
			match.Prerequisites[idx] = prereq.Expand(stem)
		}
	} else if len(ent.rule.Prerequisites) != 0 {
		match.Prerequisites = ent.rule.Prerequisites
	}

	return match
}
