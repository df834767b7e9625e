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


package taxonomy

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Store holds the ordered category vocabulary used as topic-matching
// targets. The backing file is read once, on first use. The result is
// cached for the process lifetime and never retried, including a failed
// read, which yields an empty list. Category order is significant: it
// defines the row alignment for EmbeddingSet.
type Store struct {
	path   string
	once   sync.Once
	cats   []string
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLogger sets a custom logger.
// Default is slog.Default().
func WithStoreLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewStore creates a store backed by a newline-delimited category file,
// one category name per line. The file is not touched until first use.
func NewStore(path string, opts ...StoreOption) *Store {
	s := &Store{
		path:   path,
		logger: slog.Default().With("component", "taxonomy"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Categories returns the ordered category list, loading it on first call.
// A read failure degrades to an empty list rather than an error: callers
// must tolerate an empty taxonomy, which downgrades topic matching to
// per-keyword error results instead of failing the run.
func (s *Store) Categories() []string {
	s.once.Do(s.load)
	return s.cats
}

// Len returns the number of categories, loading them on first call.
func (s *Store) Len() int {
	return len(s.Categories())
}

func (s *Store) load() {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Warn("cannot read category file, continuing with empty taxonomy",
			"path", s.path, "err", err)
		return
	}
	defer f.Close()

	var cats []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cats = append(cats, line)
	}
	if err := scanner.Err(); err != nil {
		s.logger.Warn("error while reading category file, continuing with empty taxonomy",
			"path", s.path, "err", err)
		return
	}

	s.cats = cats
	s.logger.Info("loaded category taxonomy", "path", s.path, "categories", len(cats))
}
