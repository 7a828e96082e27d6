package mshop

import (
	"time"
)

// DeliveryStatus mirrors the order delivery states of the shop frontend.
type DeliveryStatus int

const (
	StatUnfinished DeliveryStatus = iota - 1
	StatDeleted
	StatPending
	StatProgress
	StatDispatched
	StatDelivered
	StatLost
	StatRefused
	StatReturned
)

func (s DeliveryStatus) String() string {
	switch s {
	case StatUnfinished:
		return "unfinished"
	case StatDeleted:
		return "deleted"
	case StatPending:
		return "pending"
	case StatProgress:
		return "progress"
	case StatDispatched:
		return "dispatched"
	case StatDelivered:
		return "delivered"
	case StatLost:
		return "lost"
	case StatRefused:
		return "refused"
	case StatReturned:
		return "returned"
	default:
		return ""
	}
}

// ItemType distinguishes payment from delivery addresses and services.
type ItemType string

const (
	ItemPayment  ItemType = "payment"
	ItemDelivery ItemType = "delivery"
)

// Order is the confirmed basket as handed over by the shop frontend.
// Providers only mutate the delivery status and the service attributes,
// the caller persists the result.
type Order struct {
	ID             string         `json:"id"`
	LanguageID     string         `json:"language_id"`
	Price          Price          `json:"price"`
	Products       []*Product     `json:"products"`
	ServiceItems   []*Service     `json:"services"`
	AddressItems   []*Address     `json:"addresses"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
	Created        time.Time      `json:"created_at"`
}

// Addresses returns the order addresses of the given type, in the
// order they were added.
func (o *Order) Addresses(t ItemType) []*Address {
	var list []*Address
	for _, addr := range o.AddressItems {
		if addr.Type == t {
			list = append(list, addr)
		}
	}
	return list
}

// PaymentAddress returns the first payment address or nil.
func (o *Order) PaymentAddress() *Address {
	if list := o.Addresses(ItemPayment); len(list) > 0 {
		return list[0]
	}
	return nil
}

// Services returns the order service items of the given type.
func (o *Order) Services(t ItemType) []*Service {
	var list []*Service
	for _, s := range o.ServiceItems {
		if s.Type == t {
			list = append(list, s)
		}
	}
	return list
}

// Service returns the first order service item of the given type or nil.
func (o *Order) Service(t ItemType) *Service {
	if list := o.Services(t); len(list) > 0 {
		return list[0]
	}
	return nil
}

func (o *Order) SetDeliveryStatus(s DeliveryStatus) *Order {
	o.DeliveryStatus = s
	return o
}
