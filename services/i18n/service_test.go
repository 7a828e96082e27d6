package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	de := NewTranslator("de")
	assert.Equal(t, "Herr", de.Translate("mshop/code", "mr"))
	assert.Equal(t, "Frau", de.Translate("mshop/code", "ms"))
	assert.Equal(t, "Rechnung zu Ihrer Bestellung %s", de.Translate("lexoffice", "Invoice for your order %s"))

	en := NewTranslator("en")
	assert.Equal(t, "Mr", en.Translate("mshop/code", "mr"))

	// unknown keys and languages echo the key
	assert.Equal(t, "dr", de.Translate("mshop/code", "dr"))
	assert.Equal(t, "mr", NewTranslator("fr").Translate("mshop/code", "mr"))
	assert.Equal(t, "Invoice for your order %s", en.Translate("lexoffice", "Invoice for your order %s"))
}
