package lexoffice

// Request and response models of the Lexoffice REST API,
// https://developers.lexoffice.io/docs/. Only the fields the provider
// needs are mapped.

type ContactRequest struct {
	Version        int               `json:"version"`
	Roles          Roles             `json:"roles"`
	Company        *Company          `json:"company,omitempty"`
	ContactPersons []ContactPerson   `json:"contactPersons,omitempty"`
	Person         *Person           `json:"person,omitempty"`
	Addresses      *ContactAddresses `json:"addresses,omitempty"`
	EmailAddresses EmailAddresses    `json:"emailAddresses"`
	Note           string            `json:"note,omitempty"`
}

// Roles marks the contact as customer, the value is an empty object.
type Roles struct {
	Customer struct{} `json:"customer"`
}

type Company struct {
	Name              string `json:"name"`
	VatRegistrationID string `json:"vatRegistrationId,omitempty"`
}

type ContactPerson struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	EmailAddress string `json:"emailAddress,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
}

type Person struct {
	Salutation string `json:"salutation,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

type ContactAddresses struct {
	Billing  []ContactAddress `json:"billing"`
	Shipping []ContactAddress `json:"shipping,omitempty"`
}

type ContactAddress struct {
	Street      string `json:"street,omitempty"`
	Supplement  string `json:"supplement,omitempty"`
	Zip         string `json:"zip,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type EmailAddresses struct {
	Business []string `json:"business,omitempty"`
}

// ContactPage is the paged result of the contact search endpoint.
type ContactPage struct {
	Content []ContactRepresentation `json:"content"`
}

type ContactRepresentation struct {
	ID      string `json:"id"`      // UUID of the contact
	Version int    `json:"version"` // optimistic concurrency token, required on update
}

// ResourceRepresentation is the minimal create/update response shape.
type ResourceRepresentation struct {
	ID string `json:"id"`
}

type InvoiceRequest struct {
	VoucherDate        string              `json:"voucherDate"`
	Language           string              `json:"language,omitempty"`
	TotalPrice         TotalPrice          `json:"totalPrice"`
	TaxConditions      TaxConditions       `json:"taxConditions"`
	Introduction       string              `json:"introduction,omitempty"`
	Address            *InvoiceAddress     `json:"address,omitempty"`
	LineItems          []LineItem          `json:"lineItems"`
	PaymentConditions  *PaymentConditions  `json:"paymentConditions,omitempty"`
	ShippingConditions *ShippingConditions `json:"shippingConditions,omitempty"`
}

type TotalPrice struct {
	Currency string `json:"currency"`
}

type TaxConditions struct {
	TaxType string `json:"taxType"` // "gross" or "net"
}

// InvoiceAddress either references an existing contact by id or carries
// the inline address fields, never both.
type InvoiceAddress struct {
	ContactID   string `json:"contactId,omitempty"`
	Name        string `json:"name,omitempty"`
	Street      string `json:"street,omitempty"`
	Supplement  string `json:"supplement,omitempty"`
	Zip         string `json:"zip,omitempty"`
	City        string `json:"city,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type LineItem struct {
	Type        string    `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	UnitName    string    `json:"unitName"`
	UnitPrice   UnitPrice `json:"unitPrice"`
}

// UnitPrice carries exactly one of GrossAmount/NetAmount, selected by
// the price tax flag.
type UnitPrice struct {
	Currency          string   `json:"currency"`
	TaxRatePercentage float64  `json:"taxRatePercentage"`
	GrossAmount       *float64 `json:"grossAmount,omitempty"`
	NetAmount         *float64 `json:"netAmount,omitempty"`
}

type PaymentConditions struct {
	PaymentTermLabel    string `json:"paymentTermLabel,omitempty"`
	PaymentTermDuration int    `json:"paymentTermDuration"`
}

type ShippingConditions struct {
	ShippingType string `json:"shippingType"`
	ShippingDate string `json:"shippingDate"`
}
