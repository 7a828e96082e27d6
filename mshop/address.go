package mshop

// Address is a billing or delivery address attached to an order.
// Read-only for providers.
type Address struct {
	Type       ItemType `json:"type"`
	Salutation string   `json:"salutation,omitempty"`
	Company    string   `json:"company,omitempty"`
	VatID      string   `json:"vatid,omitempty"`
	Firstname  string   `json:"firstname,omitempty"`
	Lastname   string   `json:"lastname,omitempty"`
	Address1   string   `json:"address1,omitempty"` // street
	Address2   string   `json:"address2,omitempty"` // supplement
	Postal     string   `json:"postal,omitempty"`
	City       string   `json:"city,omitempty"`
	CountryID  string   `json:"countryid,omitempty"`
	LanguageID string   `json:"languageid,omitempty"`
	Telephone  string   `json:"telephone,omitempty"`
	Email      string   `json:"email,omitempty"`
}

// Name returns the company name if set, the "first last" combination
// otherwise.
func (a *Address) Name() string {
	if a.Company != "" {
		return a.Company
	}
	return a.Firstname + " " + a.Lastname
}
