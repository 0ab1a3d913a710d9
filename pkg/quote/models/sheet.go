package models

// SheetItems groups the accepted line items of one visible sheet.
type SheetItems struct {
	// Name is the sheet tab name.
	Name string `json:"name"`
	// Items contains accepted rows in original row order.
	Items []LineItem `json:"items"`
}
