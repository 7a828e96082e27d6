package lexoffice

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/reform.v1"

	"github.com/aimeos/ai-lexoffice/mshop"
	"github.com/aimeos/ai-lexoffice/provider"
	"github.com/aimeos/ai-lexoffice/services/i18n"
)

const (
	LEXOFFICE provider.Provider = "lexoffice"

	// EntrypointURL is the production Lexoffice API base.
	EntrypointURL = "https://api.lexoffice.io/"

	// InvoiceIDAttr is the hidden order service attribute carrying the
	// remote invoice id.
	InvoiceIDAttr = "lexoffice-invoiceid"
)

var (
	ErrProviderNotSet = errors.New("Provider not set")
)

// Lexoffice expects Berlin local timestamps with a fixed +01:00 offset
// and zero milliseconds. The offset ignores DST on purpose, it matches
// what the shop frontend has always sent.
const (
	timeLayout = "2006-01-02T15:04:05"
	timeSuffix = ".000+01:00"
)

var beconfig = []*provider.ConfigAttr{
	{
		Code:     "lexoffice.apikey",
		Label:    "Lexoffice API key",
		Type:     "string",
		Required: true,
	},
	{
		Code:    "lexoffice.shipping-days",
		Label:   "Max. days until order is shipped",
		Type:    "integer",
		Default: 3,
	},
	{
		Code:    "lexoffice.payment-days",
		Label:   "Days until payment is overdue",
		Type:    "integer",
		Default: 3,
	},
}

type Config struct {
	EntrypointURL string // defaults to EntrypointURL
	APIKey        string
	ServiceCode   string // code of the delivery service item handled by this provider
	ShippingDays  int    // days until the order is shipped, default 3
	PaymentDays   int    // payment term duration in days, default 3
}

// ConfigFromAttrs builds the provider config from the settings of the
// delivery service item with the given code.
func ConfigFromAttrs(code string, attrs map[string]interface{}) Config {
	return Config{
		APIKey:       provider.StringValue(provider.ConfigValue(beconfig, attrs, "lexoffice.apikey")),
		ServiceCode:  code,
		ShippingDays: provider.IntValue(provider.ConfigValue(beconfig, attrs, "lexoffice.shipping-days"), 3),
		PaymentDays:  provider.IntValue(provider.ConfigValue(beconfig, attrs, "lexoffice.payment-days"), 3),
	}
}

func NewProvider(db *reform.DB, cfg Config, nc *nats.EncodedConn, tr i18n.Translator) *Provider {
	if cfg.EntrypointURL == "" {
		cfg.EntrypointURL = EntrypointURL
	}
	if cfg.ShippingDays == 0 {
		cfg.ShippingDays = 3
	}
	if cfg.PaymentDays == 0 {
		cfg.PaymentDays = 3
	}
	var c *client
	if cfg.APIKey != "" {
		c = newClient(cfg.EntrypointURL, cfg.APIKey)
	}
	return &Provider{
		db:  db,
		nc:  nc,
		cfg: cfg,
		c:   c,
		tr:  tr,
		now: time.Now,
		l:   zap.L().Named("lexoffice_provider"),
	}
}

type Provider struct {
	cfg Config
	db  *reform.DB
	nc  *nats.EncodedConn
	c   *client
	tr  i18n.Translator
	now func() time.Time
	l   *zap.Logger
}

var _ provider.Delivery = (*Provider)(nil)

// ConfigSchema returns the configuration attribute definitions.
func (p *Provider) ConfigSchema() []*provider.ConfigAttr {
	return beconfig
}

// CheckConfig validates the backend configuration attributes.
func (p *Provider) CheckConfig(attrs map[string]interface{}) map[string]string {
	return provider.CheckConfig(beconfig, attrs)
}

// Push sends each order to the Lexoffice API: the billing contact is
// looked up or created, then a finalized invoice is issued. The invoice
// id is stored as hidden attribute on the matching delivery service
// item and the order delivery status is set to progress. A failing
// invoice submission aborts the whole push, orders processed before the
// failure keep their updates.
func (p *Provider) Push(ctx context.Context, orders []*mshop.Order) ([]*mshop.Order, error) {
	if p.c == nil {
		return nil, ErrProviderNotSet
	}

	for _, ord := range orders {
		if err := p.push(ctx, ord); err != nil {
			pushedOrders.WithLabelValues("failed").Inc()
			return nil, err
		}
		pushedOrders.WithLabelValues("ok").Inc()
	}

	return orders, nil
}

func (p *Provider) push(ctx context.Context, ord *mshop.Order) error {
	contactID, err := p.contact(ctx, ord)
	if err != nil {
		return err
	}

	invoiceID, err := p.invoice(ctx, ord, contactID)
	if err != nil {
		return err
	}

	for _, svc := range ord.Services(mshop.ItemDelivery) {
		if svc.Code == p.cfg.ServiceCode {
			svc.SetAttribute(InvoiceIDAttr, invoiceID, mshop.AttrHidden)
			break
		}
	}

	ord.SetDeliveryStatus(mshop.StatProgress)

	if p.db != nil {
		store := &provider.Store{DB: p.db}
		if err := store.SavePushed(ord, LEXOFFICE, invoiceID); err != nil {
			p.l.Warn(
				"Failed save pushed order.",
				zap.String("order_id", ord.ID),
				zap.Error(err),
			)
		}
	}

	if p.nc != nil {
		ev := &OrderPushedEvent{OrderID: ord.ID, InvoiceID: invoiceID}
		if err := p.nc.Publish(EVENT_SUBJECT, ev); err != nil {
			p.l.Warn(
				"Failed publish pushed event.",
				zap.String("order_id", ord.ID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// contact returns the Lexoffice contact id for the payment address,
// creating or updating the remote record on the way. An empty id means
// the order has no payment address or the upsert was not accepted, the
// invoice falls back to an inline address then.
func (p *Provider) contact(ctx context.Context, ord *mshop.Order) (string, error) {
	addr := ord.PaymentAddress()
	if addr == nil {
		return "", nil
	}

	var id string
	var version int

	result, status, err := p.c.send(ctx, "v1/contacts?email="+url.QueryEscape(addr.Email), nil, "GET")
	if err != nil {
		return "", err
	}

	if status == http.StatusOK {
		var page ContactPage
		if err := json.Unmarshal(result, &page); err == nil && len(page.Content) > 0 {
			id = page.Content[0].ID
			version = page.Content[0].Version
		}
	}

	body := p.contactBody(ord, addr, version)

	method, path := "POST", "v1/contacts/"
	if id != "" {
		method, path = "PUT", "v1/contacts/"+id
	}

	result, status, err = p.c.send(ctx, path, body, method)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK && status != http.StatusCreated {
		p.l.Warn(
			"Unexpected contact upsert status.",
			zap.String("order_id", ord.ID),
			zap.Int("status", status),
			zap.ByteString("response", result),
		)
		return "", nil
	}

	var res ResourceRepresentation
	if err := json.Unmarshal(result, &res); err != nil || res.ID == "" {
		return "", nil
	}

	return res.ID, nil
}

// contactBody assembles the contact upsert payload from the payment
// address and the delivery addresses of the order.
func (p *Provider) contactBody(ord *mshop.Order, addr *mshop.Address, version int) *ContactRequest {
	body := &ContactRequest{
		Version:        version,
		EmailAddresses: EmailAddresses{Business: []string{addr.Email}},
		Note:           "Aimeos",
	}
	p.contactPerson(body, addr)
	body.Addresses = contactAddresses(addr, ord.Addresses(mshop.ItemDelivery))

	return body
}

// contactPerson fills either the company block with one contact person
// or the person block, never both.
func (p *Provider) contactPerson(body *ContactRequest, addr *mshop.Address) {
	if addr.Company != "" {
		body.Company = &Company{
			Name:              addr.Company,
			VatRegistrationID: addr.VatID,
		}
		body.ContactPersons = []ContactPerson{{
			FirstName:    addr.Firstname,
			LastName:     addr.Lastname,
			EmailAddress: addr.Email,
			PhoneNumber:  addr.Telephone,
		}}
		return
	}

	body.Person = &Person{
		Salutation: p.tr.Translate("mshop/code", addr.Salutation),
		FirstName:  addr.Firstname,
		LastName:   addr.Lastname,
	}
}

// contactAddresses maps the payment address to the billing entry and
// every delivery address to one shipping entry, in the given order.
func contactAddresses(addr *mshop.Address, shipping []*mshop.Address) *ContactAddresses {
	out := &ContactAddresses{Billing: []ContactAddress{contactAddress(addr)}}
	for _, a := range shipping {
		out.Shipping = append(out.Shipping, contactAddress(a))
	}
	return out
}

func contactAddress(a *mshop.Address) ContactAddress {
	return ContactAddress{
		Street:      a.Address1,
		Supplement:  a.Address2,
		Zip:         a.Postal,
		City:        a.City,
		CountryCode: a.CountryID,
	}
}

// invoice creates a finalized invoice for the order and returns the
// remote invoice id. Unlike the contact upsert, a rejected submission
// is fatal: the invoice call is not retried and not safe to repeat.
func (p *Provider) invoice(ctx context.Context, ord *mshop.Order, contactID string) (string, error) {
	body := p.invoiceBody(ord, contactID)

	result, status, err := p.c.send(ctx, "v1/invoices?finalize=true", body, "POST")
	if err != nil {
		return "", err
	}

	var res ResourceRepresentation
	if status != http.StatusCreated || json.Unmarshal(result, &res) != nil || res.ID == "" {
		return "", errors.Errorf("Unable to create invoice: status %d: %s", status, result)
	}

	return res.ID, nil
}

// invoiceBody assembles the invoice payload from the order price, line
// items and service terms. Apart from the shipping date the result only
// depends on its inputs.
func (p *Provider) invoiceBody(ord *mshop.Order, contactID string) *InvoiceRequest {
	intro := p.tr.Translate("lexoffice", "Invoice for your order %s")

	body := &InvoiceRequest{
		VoucherDate:   ord.Created.Format(timeLayout) + timeSuffix,
		Language:      ord.LanguageID,
		TotalPrice:    TotalPrice{Currency: ord.Price.CurrencyID},
		TaxConditions: TaxConditions{TaxType: taxType(ord.Price.TaxFlag)},
		Introduction:  fmt.Sprintf(intro, ord.ID),
	}

	if addr := ord.PaymentAddress(); contactID == "" && addr != nil {
		body.Address = orderAddress(addr)
	} else if contactID != "" {
		body.Address = &InvoiceAddress{ContactID: contactID}
	}

	body.LineItems = orderItems(ord.Products)
	p.orderPayment(body, ord.Service(mshop.ItemPayment))
	p.orderShipping(body, ord.Service(mshop.ItemDelivery), ord.Price)

	return body
}

// orderAddress is the inline fallback used when no contact id exists.
func orderAddress(addr *mshop.Address) *InvoiceAddress {
	return &InvoiceAddress{
		Name:        addr.Name(),
		Street:      addr.Address1,
		Supplement:  addr.Address2,
		Zip:         addr.Postal,
		City:        addr.City,
		CountryCode: addr.CountryID,
	}
}

// orderItems maps every ordered product to one line item. Exactly one
// of grossAmount/netAmount is set, selected by the product tax flag.
func orderItems(products []*mshop.Product) []LineItem {
	list := make([]LineItem, 0, len(products))

	for _, prod := range products {
		item := LineItem{
			Type:        "custom",
			Name:        prod.Name,
			Description: prod.Description,
			Quantity:    prod.Quantity,
			UnitName:    "x",
			UnitPrice: UnitPrice{
				Currency:          prod.Price.CurrencyID,
				TaxRatePercentage: prod.Price.Taxrate.InexactFloat64(),
			},
		}

		amount := prod.Price.Value.InexactFloat64()
		if prod.Price.TaxFlag {
			item.UnitPrice.GrossAmount = &amount
		} else {
			item.UnitPrice.NetAmount = &amount
		}

		list = append(list, item)
	}

	return list
}

// orderPayment appends the payment conditions if the order carries a
// payment service. Without one the key stays absent.
func (p *Provider) orderPayment(body *InvoiceRequest, svc *mshop.Service) {
	if svc == nil {
		return
	}

	body.PaymentConditions = &PaymentConditions{
		PaymentTermLabel:    svc.Name,
		PaymentTermDuration: p.cfg.PaymentDays,
	}
}

// orderShipping appends the synthetic shipping line item and the
// shipping conditions if the order carries a delivery service. The
// gross/net choice follows the order price tax flag, the amount is the
// order shipping costs, the tax rate the one of the service.
func (p *Provider) orderShipping(body *InvoiceRequest, svc *mshop.Service, price mshop.Price) {
	if svc == nil {
		return
	}

	item := LineItem{
		Type:     "custom",
		Name:     svc.Name,
		Quantity: 1,
		UnitName: "x",
		UnitPrice: UnitPrice{
			Currency:          svc.Price.CurrencyID,
			TaxRatePercentage: svc.Price.Taxrate.InexactFloat64(),
		},
	}

	costs := price.Costs.InexactFloat64()
	if price.TaxFlag {
		item.UnitPrice.GrossAmount = &costs
	} else {
		item.UnitPrice.NetAmount = &costs
	}

	shippingDate := p.now().Add(time.Duration(p.cfg.ShippingDays) * 24 * time.Hour)

	body.LineItems = append(body.LineItems, item)
	body.ShippingConditions = &ShippingConditions{
		ShippingType: "delivery",
		ShippingDate: shippingDate.Format(timeLayout) + timeSuffix,
	}
}

func taxType(taxflag bool) string {
	if taxflag {
		return "gross"
	}
	return "net"
}
