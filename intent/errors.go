package intent

import "errors"

var (
	// ErrNoRules is returned when a rule table is empty.
	ErrNoRules = errors.New("rule table must contain at least one rule")

	// ErrUnknownLabel is returned when a rule names a label outside the enumeration.
	ErrUnknownLabel = errors.New("unknown intent label")

	// ErrNoPhrases is returned when a rule has no trigger phrases.
	ErrNoPhrases = errors.New("rule must contain at least one phrase")
)
