package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		SourceID:    "cpr_001",
		Content:     "CPR kompresyon oranı 30:2'dir, derinlik 5-6 cm olmalıdır.",
		Category:    "cpr",
		Reliability: 0.9,
		Urgency:     UrgencyNormal,
		Source:      "AHA Guidelines",
	}
}

func TestValidateDocument(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		require.NoError(t, ValidateDocument(validDocument()))
	})

	t.Run("nil document", func(t *testing.T) {
		err := ValidateDocument(nil)
		assert.ErrorIs(t, err, ErrInvalidDocument)
	})

	t.Run("empty content", func(t *testing.T) {
		doc := validDocument()
		doc.Content = ""
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrInvalidDocument)
		assert.ErrorIs(t, err, ErrEmptyContent)
	})

	t.Run("empty category", func(t *testing.T) {
		doc := validDocument()
		doc.Category = ""
		err := ValidateDocument(doc)
		assert.ErrorIs(t, err, ErrEmptyCategory)
	})

	t.Run("negative reliability", func(t *testing.T) {
		doc := validDocument()
		doc.Reliability = -0.1
		assert.ErrorIs(t, ValidateDocument(doc), ErrInvalidReliability)
	})

	t.Run("reliability above one", func(t *testing.T) {
		doc := validDocument()
		doc.Reliability = 1.2
		assert.ErrorIs(t, ValidateDocument(doc), ErrInvalidReliability)
	})

	t.Run("zero reliability is allowed", func(t *testing.T) {
		doc := validDocument()
		doc.Reliability = 0
		require.NoError(t, ValidateDocument(doc))
	})

	t.Run("invalid urgency", func(t *testing.T) {
		doc := validDocument()
		doc.Urgency = Urgency(99)
		assert.ErrorIs(t, ValidateDocument(doc), ErrInvalidUrgency)
	})
}

func TestValidateUrgency(t *testing.T) {
	assert.NoError(t, ValidateUrgency(UrgencyNormal))
	assert.NoError(t, ValidateUrgency(UrgencyHigh))
	assert.NoError(t, ValidateUrgency(UrgencyCritical))
	assert.ErrorIs(t, ValidateUrgency(Urgency(0)), ErrInvalidUrgency)
	assert.ErrorIs(t, ValidateUrgency(Urgency(7)), ErrInvalidUrgency)
}
