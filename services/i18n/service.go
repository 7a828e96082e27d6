package i18n

// Translator resolves a translation key within a domain. Unknown keys
// are returned unchanged, gettext style, so callers can always use the
// result directly.
type Translator interface {
	Translate(domain, key string) string
}

type catalog map[string]map[string]string

var catalogs = map[string]catalog{
	"de": {
		"mshop/code": {
			"mr":      "Herr",
			"ms":      "Frau",
			"mrs":     "Frau",
			"miss":    "Frau",
			"company": "Firma",
		},
		"lexoffice": {
			"Invoice for your order %s": "Rechnung zu Ihrer Bestellung %s",
		},
	},
	"en": {
		"mshop/code": {
			"mr":   "Mr",
			"ms":   "Ms",
			"mrs":  "Mrs",
			"miss": "Miss",
		},
	},
}

func NewTranslator(languageID string) *MapTranslator {
	return &MapTranslator{lang: languageID}
}

// MapTranslator is a catalog backed translator for the few shop domains
// the providers need.
type MapTranslator struct {
	lang string
}

func (t *MapTranslator) Translate(domain, key string) string {
	if c, ok := catalogs[t.lang]; ok {
		if msg, ok := c[domain][key]; ok {
			return msg
		}
	}
	return key
}
