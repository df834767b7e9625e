// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package intent

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jeredhiggins/keyintent/core"
	"gopkg.in/yaml.v3"
)

// Classifier maps a keyword to its search intent via ordered substring rules.
// It is deterministic, total, and side-effect free: every input yields
// exactly one label from the closed enumeration, with no failure mode.
type Classifier struct {
	rules []Rule
}

// Option configures a Classifier.
type Option func(*Classifier) error

// WithRules replaces the built-in rule table. Rule order is significant:
// earlier rules take priority when a keyword triggers more than one.
func WithRules(rules []Rule) Option {
	return func(c *Classifier) error {
		if len(rules) == 0 {
			return ErrNoRules
		}
		for _, rule := range rules {
			if !rule.Label.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownLabel, rule.Label)
			}
		}
		c.rules = rules
		return nil
	}
}

// NewClassifier creates a classifier, defaulting to the built-in rule table.
func NewClassifier(opts ...Option) (*Classifier, error) {
	c := &Classifier{rules: DefaultRules()}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Classify returns the intent label for a keyword. Matching is
// case-insensitive substring search against each rule's phrases, rules
// evaluated in table order, first hit wins. Keywords triggering no rule
// classify as IntentOther.
func (c *Classifier) Classify(keyword string) core.IntentLabel {
	lowered := strings.ToLower(keyword)
	for _, rule := range c.rules {
		for _, phrase := range rule.Phrases {
			if strings.Contains(lowered, phrase) {
				return rule.Label
			}
		}
	}
	return core.IntentOther
}

// ParseRules reads a YAML rule table: a list of {intent, phrases} entries
// in priority order.
func ParseRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("parsing rule table: %w", err)
	}
	if len(rules) == 0 {
		return nil, ErrNoRules
	}
	for _, rule := range rules {
		if !rule.Label.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, rule.Label)
		}
		if len(rule.Phrases) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoPhrases, rule.Label)
		}
	}
	return rules, nil
}

// LoadRules reads a YAML rule table from a file.
func LoadRules(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rule table: %w", err)
	}
	defer f.Close()
	return ParseRules(f)
}
