package lexoffice

import (
	"context"

	"go.uber.org/zap"

	"github.com/aimeos/ai-lexoffice/mshop"
)

type Command string

const (
	SUBJECT       = "provider_lexoffice_subject"
	EVENT_SUBJECT = "provider_lexoffice_pushed"

	PushOrder Command = "push_order"
)

type MessageToLexoffice struct {
	Command Command
	Order   *mshop.Order
}

// OrderPushedEvent is published after an order has been synchronized.
type OrderPushedEvent struct {
	OrderID   string
	InvoiceID string
}

// NatsHandler returns the subscription callback processing push
// commands, one order at a time.
func (p *Provider) NatsHandler() func(m *MessageToLexoffice) {
	return func(m *MessageToLexoffice) {
		switch m.Command {
		case PushOrder:
			if m.Order == nil {
				p.l.Warn("Push command without order.")
				return
			}
			if _, err := p.Push(context.Background(), []*mshop.Order{m.Order}); err != nil {
				p.l.Error(
					"Failed push order.",
					zap.String("order_id", m.Order.ID),
					zap.Error(err),
				)
				return
			}
			p.l.Info("Order pushed.", zap.String("order_id", m.Order.ID))
		default:
			p.l.Warn("Unknown command.", zap.String("command", string(m.Command)))
		}
	}
}
