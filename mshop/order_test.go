package mshop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAccessors(t *testing.T) {
	ord := &Order{
		AddressItems: []*Address{
			{Type: ItemDelivery, City: "Hamburg"},
			{Type: ItemPayment, City: "Berlin"},
			{Type: ItemPayment, City: "Munich"},
		},
		ServiceItems: []*Service{
			{Type: ItemPayment, Code: "paypal"},
			{Type: ItemDelivery, Code: "dhl"},
		},
	}

	require.NotNil(t, ord.PaymentAddress())
	assert.Equal(t, "Berlin", ord.PaymentAddress().City)
	assert.Len(t, ord.Addresses(ItemPayment), 2)
	assert.Len(t, ord.Addresses(ItemDelivery), 1)

	require.NotNil(t, ord.Service(ItemDelivery))
	assert.Equal(t, "dhl", ord.Service(ItemDelivery).Code)
	assert.Nil(t, (&Order{}).Service(ItemPayment))
	assert.Nil(t, (&Order{}).PaymentAddress())

	ord.SetDeliveryStatus(StatProgress)
	assert.Equal(t, StatProgress, ord.DeliveryStatus)
	assert.Equal(t, "progress", ord.DeliveryStatus.String())
}

func TestServiceSetAttribute(t *testing.T) {
	s := &Service{Code: "dhl", Type: ItemDelivery}

	s.SetAttribute("lexoffice-invoiceid", "inv-1", AttrHidden)
	require.Len(t, s.Attributes, 1)
	assert.Equal(t, "inv-1", s.Attribute("lexoffice-invoiceid", AttrHidden))

	// same code and type replaces the value
	s.SetAttribute("lexoffice-invoiceid", "inv-2", AttrHidden)
	require.Len(t, s.Attributes, 1)
	assert.Equal(t, "inv-2", s.Attribute("lexoffice-invoiceid", AttrHidden))

	// same code, other type is a separate attribute
	s.SetAttribute("lexoffice-invoiceid", "visible", AttrDefault)
	require.Len(t, s.Attributes, 2)
	assert.Equal(t, "", s.Attribute("missing", AttrHidden))
}

func TestAddressName(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want string
	}{
		{
			"company wins",
			Address{Company: "ACME", Firstname: "Jane", Lastname: "Doe"},
			"ACME",
		},
		{
			"person fallback",
			Address{Firstname: "Jane", Lastname: "Doe"},
			"Jane Doe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.addr.Name(); got != tt.want {
				t.Errorf("Address.Name() = %v, want %v", got, tt.want)
			}
		})
	}
}
