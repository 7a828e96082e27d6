package mshop

// AttrType marks how a service attribute is shown to the customer.
type AttrType string

const (
	AttrDefault AttrType = ""
	AttrHidden  AttrType = "hidden"
)

// Attribute is a key/value pair attached to an order service item.
type Attribute struct {
	Code  string   `json:"code"`
	Value string   `json:"value"`
	Type  AttrType `json:"type,omitempty"`
}

// Service is a payment or delivery service line of an order. The config
// map carries the provider settings entered by the shop owner, the
// attribute list carries per-order values written back by providers.
type Service struct {
	Code       string                 `json:"code"`
	Type       ItemType               `json:"type"`
	Name       string                 `json:"name"`
	Price      Price                  `json:"price"`
	Config     map[string]interface{} `json:"config,omitempty"`
	Attributes []*Attribute           `json:"attributes,omitempty"`
}

// SetAttribute adds an attribute to the service item, replacing an
// existing one with the same code and type.
func (s *Service) SetAttribute(code, value string, t AttrType) *Service {
	for _, attr := range s.Attributes {
		if attr.Code == code && attr.Type == t {
			attr.Value = value
			return s
		}
	}
	s.Attributes = append(s.Attributes, &Attribute{Code: code, Value: value, Type: t})
	return s
}

// Attribute returns the value of the attribute with the given code and
// type or an empty string.
func (s *Service) Attribute(code string, t AttrType) string {
	for _, attr := range s.Attributes {
		if attr.Code == code && attr.Type == t {
			return attr.Value
		}
	}
	return ""
}
