package provider

import (
	"fmt"
)

// ConfigAttr describes one provider setting the shop owner can enter in
// the administration interface.
type ConfigAttr struct {
	Code     string
	Label    string
	Type     string // "string", "integer" or "boolean"
	Default  interface{}
	Required bool
}

// CheckConfig validates the given attributes against the schema and
// returns a map from attribute code to error message. Attributes not
// listed in the schema are ignored, a valid configuration yields an
// empty map.
func CheckConfig(schema []*ConfigAttr, attrs map[string]interface{}) map[string]string {
	errs := map[string]string{}

	for _, attr := range schema {
		value, ok := attrs[attr.Code]
		if !ok || value == nil {
			if attr.Required {
				errs[attr.Code] = "configuration value is required"
			}
			continue
		}
		if msg := checkType(attr.Type, value); msg != "" {
			errs[attr.Code] = msg
		}
	}

	return errs
}

// ConfigValue returns the configured value for the given code or the
// schema default if it is absent.
func ConfigValue(schema []*ConfigAttr, attrs map[string]interface{}, code string) interface{} {
	if value, ok := attrs[code]; ok && value != nil {
		return value
	}
	for _, attr := range schema {
		if attr.Code == code {
			return attr.Default
		}
	}
	return nil
}

func checkType(expected string, value interface{}) string {
	switch expected {
	case "string":
		if _, ok := value.(string); !ok {
			return fmt.Sprintf("not a string: %v", value)
		}
	case "integer":
		switch value.(type) {
		case int, int32, int64:
		case float64: // JSON decoded numbers
			if value.(float64) != float64(int64(value.(float64))) {
				return fmt.Sprintf("not an integer: %v", value)
			}
		default:
			return fmt.Sprintf("not an integer: %v", value)
		}
	case "boolean":
		if _, ok := value.(bool); !ok {
			return fmt.Sprintf("not a boolean: %v", value)
		}
	}
	return ""
}

// IntValue coerces a configured value to int, falling back to def for
// absent or unusable values.
func IntValue(value interface{}, def int) int {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n
		}
	}
	return def
}

// StringValue coerces a configured value to string.
func StringValue(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%v", value)
}
