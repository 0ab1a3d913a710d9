package models

// CoverField is a single labelled value discovered on the cover sheet.
type CoverField struct {
	// Key is the canonical field name (e.g. "Quotation #").
	Key string `json:"key"`
	// Value is the cell text found next to the label.
	Value string `json:"value"`
}

// CoverDetails holds cover fields in discovery order.
type CoverDetails []CoverField

// Get returns the value for a canonical key and whether it was discovered.
func (c CoverDetails) Get(key string) (string, bool) {
	for _, f := range c {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
