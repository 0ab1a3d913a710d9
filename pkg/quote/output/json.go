package output

import (
	"encoding/json"

	"quotewatch/pkg/quote/models"
)

// ToJSON serializes an extracted quotation, for inspection via the CLI.
func ToJSON(q *models.Quotation, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(q, "", "  ")
	}
	return json.Marshal(q)
}
