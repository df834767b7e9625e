package core

import (
	"encoding/binary"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for cached derived data.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// IntentLabel classifies the search intent behind a keyword.
type IntentLabel string

const (
	// IntentInformational marks keywords looking for knowledge or answers.
	IntentInformational IntentLabel = "informational"
	// IntentNavigational marks keywords trying to reach a specific site or page.
	IntentNavigational IntentLabel = "navigational"
	// IntentLocal marks keywords with geographic proximity intent.
	IntentLocal IntentLabel = "local"
	// IntentCommercial marks keywords researching a purchase decision.
	IntentCommercial IntentLabel = "commercial_investigation"
	// IntentTransactional marks keywords ready to buy or act.
	IntentTransactional IntentLabel = "transactional"
	// IntentOther is the fallback when no trigger phrase matches.
	IntentOther IntentLabel = "other"
)

// IntentLabels lists every valid label in classifier priority order,
// with the fallback last.
var IntentLabels = []IntentLabel{
	IntentInformational,
	IntentNavigational,
	IntentLocal,
	IntentCommercial,
	IntentTransactional,
	IntentOther,
}

// Valid reports whether the label is a member of the closed enumeration.
func (l IntentLabel) Valid() bool {
	switch l {
	case IntentInformational, IntentNavigational, IntentLocal,
		IntentCommercial, IntentTransactional, IntentOther:
		return true
	}
	return false
}

// Entity is a named entity recognized in a keyword.
type Entity struct {
	Text       string  // Surface text as it appears in the keyword
	Type       string  // Type tag from the configured entity vocabulary
	Confidence float64 // Model confidence, already threshold-filtered upstream
}

// String renders the entity for display as "text (type)".
func (e Entity) String() string {
	return e.Text + " (" + e.Type + ")"
}

// EntityOutcome distinguishes the three possible results of entity extraction.
// Zero entities and a failed extraction are different outcomes and must not
// collapse into one another.
type EntityOutcome int

const (
	// EntitiesFound means extraction succeeded with at least one entity.
	EntitiesFound EntityOutcome = iota + 1
	// EntitiesNone means extraction succeeded but recognized nothing.
	EntitiesNone
	// EntitiesError means the extraction call itself failed.
	EntitiesError
)

// Display sentinels for entity and topic outcomes.
const (
	NoEntitiesMessage  = "No specific entities found"
	EntityErrorMessage = "Error extracting entities"
	TopicErrorMessage  = "Error in topic modeling"
)

// EntityResult is the outcome of extracting entities from one keyword.
// Entities is populated only when Outcome is EntitiesFound.
type EntityResult struct {
	Outcome  EntityOutcome
	Entities []Entity
}

// FoundEntities wraps a non-empty entity list in a successful result.
func FoundEntities(entities []Entity) EntityResult {
	return EntityResult{Outcome: EntitiesFound, Entities: entities}
}

// NoEntities returns the "nothing recognized" sentinel result.
func NoEntities() EntityResult {
	return EntityResult{Outcome: EntitiesNone}
}

// EntityError returns the "extraction failed" sentinel result.
func EntityError() EntityResult {
	return EntityResult{Outcome: EntitiesError}
}

// String renders the result for display. Real entities render as
// "text (type)" joined by ", "; sentinels render as their literal message.
func (r EntityResult) String() string {
	switch r.Outcome {
	case EntitiesFound:
		parts := make([]string, len(r.Entities))
		for i, e := range r.Entities {
			parts[i] = e.String()
		}
		return strings.Join(parts, ", ")
	case EntitiesNone:
		return NoEntitiesMessage
	default:
		return EntityErrorMessage
	}
}

// TopicResult is the outcome of matching one keyword against the taxonomy.
// Topic holds either a single category name or two names joined as "A , B"
// when no category dominates. Err marks a failed match.
type TopicResult struct {
	Topic string
	Err   bool
}

// AssignedTopic wraps a successful topic assignment.
func AssignedTopic(topic string) TopicResult {
	return TopicResult{Topic: topic}
}

// TopicError returns the "topic modeling failed" sentinel result.
func TopicError() TopicResult {
	return TopicResult{Err: true}
}

// String renders the assignment, or the error sentinel for failed matches.
func (r TopicResult) String() string {
	if r.Err {
		return TopicErrorMessage
	}
	return r.Topic
}

// KeywordRecord is the unit of pipeline output: one analyzed keyword.
type KeywordRecord struct {
	Keyword  string
	Intent   IntentLabel
	Entities EntityResult
	Topic    TopicResult
}
