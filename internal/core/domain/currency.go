package domain

import "fmt"

const (
	USD Currency = iota
	JPY
	EUR
	GBP
	CNY
	KRW
	CAD
	AUD
)

var (
	ErrUnknownCurrency = fmt.Errorf("unknown currency")

	currencyCodes = map[Currency]string{
		USD: "USD",
		JPY: "JPY",
		EUR: "EUR",
		GBP: "GBP",
		CNY: "CNY",
		KRW: "KRW",
		CAD: "CAD",
		AUD: "AUD",
	}
	currencyNames = map[Currency]string{
		USD: "US Dollar",
		JPY: "Japanese Yen",
		EUR: "Euro",
		GBP: "British Pound",
		CNY: "Chinese Yuan",
		KRW: "South Korean Won",
		CAD: "Canadian Dollar",
		AUD: "Australian Dollar",
	}
)

// Currency is the fiat currency selected by the user to display values.
// The ISO 4217 code is its serialization form.
type Currency int

// Code returns the ISO 4217 code of the currency.
func (c Currency) Code() string {
	return currencyCodes[c]
}

// Name returns the human readable name of the currency.
func (c Currency) Name() string {
	return currencyNames[c]
}

func (c Currency) String() string {
	return c.Code()
}

func (c Currency) IsValid() bool {
	_, ok := currencyCodes[c]
	return ok
}

// Currencies returns all the supported currencies in declaration order.
func Currencies() []Currency {
	return []Currency{USD, JPY, EUR, GBP, CNY, KRW, CAD, AUD}
}

// ParseCurrency decodes the given code. Unknown codes are reported as absent
// rather than as an error.
func ParseCurrency(code string) (Currency, bool) {
	for c, cc := range currencyCodes {
		if cc == code {
			return c, true
		}
	}
	return -1, false
}
