package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityResult_Validate(t *testing.T) {
	assert.NoError(t, FoundEntities([]Entity{{Text: "x", Type: "misc"}}).Validate())
	assert.NoError(t, NoEntities().Validate())
	assert.NoError(t, EntityError().Validate())

	assert.ErrorIs(t, EntityResult{Outcome: EntitiesFound}.Validate(), ErrEmptyEntityList)
	assert.ErrorIs(t, EntityResult{}.Validate(), ErrInvalidEntityOutcome)
	assert.ErrorIs(t, EntityResult{Outcome: EntityOutcome(42)}.Validate(), ErrInvalidEntityOutcome)
}

func TestKeywordRecord_Validate(t *testing.T) {
	valid := KeywordRecord{
		Keyword:  "buy shoes",
		Intent:   IntentTransactional,
		Entities: NoEntities(),
		Topic:    AssignedTopic("/Shopping"),
	}
	assert.NoError(t, valid.Validate())

	empty := valid
	empty.Keyword = ""
	assert.ErrorIs(t, empty.Validate(), ErrEmptyKeyword)

	badIntent := valid
	badIntent.Intent = "shopping"
	assert.ErrorIs(t, badIntent.Validate(), ErrInvalidIntentLabel)

	badEntities := valid
	badEntities.Entities = EntityResult{}
	assert.ErrorIs(t, badEntities.Validate(), ErrInvalidEntityOutcome)
}
