package models

import "github.com/shopspring/decimal"

// LineItem represents one accepted row of a sheet's data table.
type LineItem struct {
	// ModelNumber is the model identifier, never blank.
	ModelNumber string `json:"model_number"`
	// Quantity is the ordered quantity, always > 0.
	Quantity decimal.Decimal `json:"quantity"`
	// NetPrice is the per-line net price.
	NetPrice decimal.Decimal `json:"net_price"`
	// Row is the 1-based source row index within the sheet.
	Row int `json:"row"`
}
