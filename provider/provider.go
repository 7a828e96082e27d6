package provider

import (
	"context"

	"github.com/aimeos/ai-lexoffice/mshop"
)

type Provider string

func (p Provider) Match(in Provider) bool {
	return p == in
}

const (
	UNKNOWN_PROVIDER Provider = ""
	INTERNAL         Provider = "internal"
)

// Delivery is the contract every delivery service provider implements.
// Push synchronizes the given orders with the remote fulfillment or
// accounting system and returns them with the delivery status and
// service attributes updated. The caller persists the result.
type Delivery interface {
	Push(ctx context.Context, orders []*mshop.Order) ([]*mshop.Order, error)
	CheckConfig(attrs map[string]interface{}) map[string]string
	ConfigSchema() []*ConfigAttr
}
