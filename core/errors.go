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

import "errors"

// Domain validation errors
var (
	// ErrInvalidKeywordRecord indicates a KeywordRecord failed validation.
	ErrInvalidKeywordRecord = errors.New("invalid keyword record")

	// ErrEmptyKeyword indicates the Keyword field is empty.
	ErrEmptyKeyword = errors.New("keyword cannot be empty")

	// ErrInvalidIntentLabel indicates an IntentLabel outside the enumeration.
	ErrInvalidIntentLabel = errors.New("invalid intent label")

	// ErrInvalidEntityOutcome indicates an EntityOutcome outside the enumeration.
	ErrInvalidEntityOutcome = errors.New("invalid entity outcome")

	// ErrEmptyEntityList indicates a found-entities result with no entities.
	ErrEmptyEntityList = errors.New("found-entities result must carry at least one entity")
)
