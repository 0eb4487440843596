package application

// CardQuery carries the four path parameters of a card-info request. The
// fields are echoed back to the caller verbatim; validation happens in the
// validation package, not here.
type CardQuery struct {
	BIN         string
	CardNumber  string
	ExpiryMonth string
	ExpiryYear  string
}

// ValidationResult holds both structural checks. Both are always computed,
// even when the first one fails.
type ValidationResult struct {
	LuhnValid   bool
	ExpiryValid bool
}

// BinRecord mirrors the upstream BIN-lookup document. Every field is
// optional on the wire, so pointers distinguish "absent" from zero values.
type BinRecord struct {
	Scheme  *string        `json:"scheme"`
	Brand   *string        `json:"brand"`
	Type    *string        `json:"type"`
	Prepaid *bool          `json:"prepaid"`
	Number  *NumberDetails `json:"number"`
	Country *CountryInfo   `json:"country"`
	Bank    *BankInfo      `json:"bank"`
}

type NumberDetails struct {
	Length *int  `json:"length"`
	Luhn   *bool `json:"luhn"`
}

type CountryInfo struct {
	Name      *string  `json:"name"`
	Alpha2    *string  `json:"alpha2"`
	Numeric   *string  `json:"numeric"`
	Currency  *string  `json:"currency"`
	Emoji     *string  `json:"emoji"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type BankInfo struct {
	Name  *string `json:"name"`
	URL   *string `json:"url"`
	Phone *string `json:"phone"`
	City  *string `json:"city"`
}
