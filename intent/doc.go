// Package intent classifies search keywords into intent labels.
//
// Classification is a pure function over an ordered table of trigger
// phrases. The table order encodes the tie-break contract: a keyword like
// "best local plumber near me" triggers both the local and the
// commercial_investigation groups, and resolves to whichever group the
// table checks first. The built-in table checks informational,
// navigational, local, commercial_investigation, then transactional.
//
// The table is data: it can be swapped at construction time or loaded from
// a YAML file, keeping the evaluation semantics fixed.
package intent
