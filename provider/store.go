package provider

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/reform.v1"

	"github.com/aimeos/ai-lexoffice/mshop"
)

type Store struct {
	DB *reform.DB
}

const (
	prefixOrderId = "aimeos"
)

// SavePushed records that the order has been pushed to the remote
// system together with the returned invoice id.
func (s *Store) SavePushed(ord *mshop.Order, providerName Provider, invoiceID string) error {
	return s.DB.Insert(&DeliveryExtOrders{
		OrderNumber:    formatOrderID(providerName, ord.ID),
		ProviderName:   providerName,
		InvoiceID:      invoiceID,
		DeliveryStatus: ord.DeliveryStatus.String(),
	})
}

func (s *Store) GetByOrderID(ordID string, providerName Provider) (*DeliveryExtOrders, error) {
	so := &DeliveryExtOrders{OrderNumber: formatOrderID(providerName, ordID)}
	err := s.DB.Reload(so)
	if err != nil {
		if err == reform.ErrNoRows {
			return nil, err
		}
		return nil, errors.Wrap(err, "Failed get delivery ext orders")
	}
	return so, nil
}

func (s *Store) SetDeliveryStatus(ordID string, providerName Provider, newStatus string) error {
	o := &DeliveryExtOrders{OrderNumber: formatOrderID(providerName, ordID)}
	err := s.DB.Reload(o)
	if err != nil {
		return err
	}
	o.DeliveryStatus = newStatus
	return s.DB.Save(o)
}

func (s *Store) SetInvoiceID(ordID string, providerName Provider, invoiceID string) error {
	o := &DeliveryExtOrders{OrderNumber: formatOrderID(providerName, ordID)}
	err := s.DB.Reload(o)
	if err != nil {
		return err
	}
	o.InvoiceID = invoiceID
	return s.DB.Save(o)
}

//go:generate reform

//reform:aimeos.delivery_ext_orders
type DeliveryExtOrders struct {
	OrderNumber    string    `reform:"order_number,pk"`
	ProviderName   Provider  `reform:"provider_name"`
	InvoiceID      string    `reform:"invoice_id"`
	DeliveryStatus string    `reform:"delivery_status"`
	CreatedAt      time.Time `reform:"created_at"`
	UpdatedAt      time.Time `reform:"updated_at"`
}

func (o *DeliveryExtOrders) BeforeInsert() error {
	o.UpdatedAt = time.Now()
	o.CreatedAt = time.Now()
	return nil
}

func (o *DeliveryExtOrders) BeforeUpdate() error {
	o.UpdatedAt = time.Now()
	return nil
}

func formatOrderID(p Provider, extOrderID string) string {
	return prefixOrderId + fmt.Sprintf("-%s-%s", p, extOrderID)
}
