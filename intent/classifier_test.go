package intent

import (
	"strings"
	"testing"

	"github.com/jeredhiggins/keyintent/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	classifier, err := NewClassifier()
	require.NoError(t, err)

	tests := []struct {
		keyword string
		want    core.IntentLabel
	}{
		{"how to fix a leaky faucet", core.IntentInformational},
		{"facebook marketplace", core.IntentNavigational},
		{"plumber near me", core.IntentLocal},
		{"top rated dishwashers", core.IntentCommercial},
		{"flight ticket paris", core.IntentTransactional},
		{"blue heron", core.IntentOther},
		{"HOW TO TIE A TIE", core.IntentInformational}, // case-insensitive
		{"", core.IntentOther},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.keyword))
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	classifier, err := NewClassifier()
	require.NoError(t, err)

	// Triggers both the local group ("local", "near me") and the
	// commercial group ("best"); local is checked first and must win.
	assert.Equal(t, core.IntentLocal, classifier.Classify("best local plumber near me"))

	// Triggers informational ("how to") and transactional ("buy");
	// informational is checked first and must win.
	assert.Equal(t, core.IntentInformational, classifier.Classify("how to buy a house"))

	// The built-in table order is the documented contract.
	rules := DefaultRules()
	require.Len(t, rules, 5)
	assert.Equal(t, core.IntentInformational, rules[0].Label)
	assert.Equal(t, core.IntentNavigational, rules[1].Label)
	assert.Equal(t, core.IntentLocal, rules[2].Label)
	assert.Equal(t, core.IntentCommercial, rules[3].Label)
	assert.Equal(t, core.IntentTransactional, rules[4].Label)
}

func TestClassify_DeterministicAndTotal(t *testing.T) {
	classifier, err := NewClassifier()
	require.NoError(t, err)

	keywords := []string{
		"cheap flights",
		"weather",
		"login chase bank",
		"\t odd \n input \x00",
		strings.Repeat("x", 10_000),
	}

	for _, kw := range keywords {
		first := classifier.Classify(kw)
		assert.Equal(t, first, classifier.Classify(kw), "repeated calls must agree for %q", kw)
		assert.True(t, first.Valid(), "label must be in the enumeration for %q", kw)
	}
}

func TestNewClassifier_WithRules(t *testing.T) {
	t.Run("custom table order wins", func(t *testing.T) {
		classifier, err := NewClassifier(WithRules([]Rule{
			{Label: core.IntentTransactional, Phrases: []string{"best"}},
		}))
		require.NoError(t, err)

		assert.Equal(t, core.IntentTransactional, classifier.Classify("best value laptop"))
		assert.Equal(t, core.IntentOther, classifier.Classify("how to cook rice"))
	})

	t.Run("empty table rejected", func(t *testing.T) {
		_, err := NewClassifier(WithRules(nil))
		assert.ErrorIs(t, err, ErrNoRules)
	})

	t.Run("unknown label rejected", func(t *testing.T) {
		_, err := NewClassifier(WithRules([]Rule{
			{Label: "promotional", Phrases: []string{"sale"}},
		}))
		assert.ErrorIs(t, err, ErrUnknownLabel)
	})
}

func TestLoadRules(t *testing.T) {
	rules, err := LoadRules("testdata/rules.yml")
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, core.IntentTransactional, rules[0].Label)
	assert.Equal(t, []string{"buy", "order"}, rules[0].Phrases)
	assert.Equal(t, core.IntentInformational, rules[1].Label)

	// Loaded order becomes evaluation priority.
	classifier, err := NewClassifier(WithRules(rules))
	require.NoError(t, err)
	assert.Equal(t, core.IntentTransactional, classifier.Classify("how to buy a car"))
}

func TestParseRules_Invalid(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := ParseRules(strings.NewReader("[]"))
		assert.ErrorIs(t, err, ErrNoRules)
	})

	t.Run("rule without phrases", func(t *testing.T) {
		_, err := ParseRules(strings.NewReader("- intent: local\n  phrases: []\n"))
		assert.ErrorIs(t, err, ErrNoPhrases)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseRules(strings.NewReader("{not yaml"))
		assert.Error(t, err)
	})
}
