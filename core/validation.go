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


package core

import (
	"fmt"
	"strings"
)

// Validate checks that an EntityResult is internally consistent.
func (r EntityResult) Validate() error {
	switch r.Outcome {
	case EntitiesFound:
		if len(r.Entities) == 0 {
			return ErrEmptyEntityList
		}
	case EntitiesNone, EntitiesError:
		// Sentinels carry no entities; a populated list here is tolerated
		// but never rendered.
	default:
		return fmt.Errorf("%w: %d", ErrInvalidEntityOutcome, int(r.Outcome))
	}
	return nil
}

// Validate checks that a KeywordRecord satisfies the output invariants:
// a non-empty trimmed keyword, a label from the closed enumeration, and a
// consistent entity result.
func (rec *KeywordRecord) Validate() error {
	if strings.TrimSpace(rec.Keyword) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidKeywordRecord, ErrEmptyKeyword)
	}
	if !rec.Intent.Valid() {
		return fmt.Errorf("%w: %w: %q", ErrInvalidKeywordRecord, ErrInvalidIntentLabel, rec.Intent)
	}
	if err := rec.Entities.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidKeywordRecord, err)
	}
	return nil
}
