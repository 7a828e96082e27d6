package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = []*ConfigAttr{
	{Code: "lexoffice.apikey", Label: "API key", Type: "string", Required: true},
	{Code: "lexoffice.shipping-days", Label: "Shipping days", Type: "integer", Default: 3},
	{Code: "lexoffice.payment-days", Label: "Payment days", Type: "integer", Default: 3},
}

func TestCheckConfig(t *testing.T) {
	errs := CheckConfig(testSchema, map[string]interface{}{
		"lexoffice.apikey":        "secret",
		"lexoffice.shipping-days": 5,
	})
	assert.Empty(t, errs)

	errs = CheckConfig(testSchema, map[string]interface{}{})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs, "lexoffice.apikey")

	errs = CheckConfig(testSchema, map[string]interface{}{
		"lexoffice.apikey":       123,
		"lexoffice.payment-days": "soon",
	})
	assert.Len(t, errs, 2)

	// JSON decoded numbers arrive as float64
	errs = CheckConfig(testSchema, map[string]interface{}{
		"lexoffice.apikey":        "secret",
		"lexoffice.shipping-days": float64(7),
	})
	assert.Empty(t, errs)

	errs = CheckConfig(testSchema, map[string]interface{}{
		"lexoffice.apikey":        "secret",
		"lexoffice.shipping-days": 7.5,
	})
	assert.Len(t, errs, 1)
}

func TestConfigValue(t *testing.T) {
	attrs := map[string]interface{}{"lexoffice.shipping-days": 1}

	assert.Equal(t, 1, ConfigValue(testSchema, attrs, "lexoffice.shipping-days"))
	assert.Equal(t, 3, ConfigValue(testSchema, attrs, "lexoffice.payment-days"))
	assert.Nil(t, ConfigValue(testSchema, attrs, "lexoffice.unknown"))
}

func TestValueCoercion(t *testing.T) {
	assert.Equal(t, 5, IntValue(5, 3))
	assert.Equal(t, 5, IntValue(int64(5), 3))
	assert.Equal(t, 5, IntValue(float64(5), 3))
	assert.Equal(t, 5, IntValue("5", 3))
	assert.Equal(t, 3, IntValue("many", 3))
	assert.Equal(t, 3, IntValue(nil, 3))

	assert.Equal(t, "abc", StringValue("abc"))
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "7", StringValue(7))
}
