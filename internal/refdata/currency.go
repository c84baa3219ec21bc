package refdata

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultCurrencyCode is used whenever a code is unknown.
const DefaultCurrencyCode = "BDT"

type Currency struct {
	Code          string `json:"code"`
	Symbol        string `json:"symbol"`
	Name          string `json:"name"`
	NameBn        string `json:"nameBn"`
	Locale        string `json:"locale"`
	Flag          string `json:"flag"`
	DecimalPlaces int32  `json:"decimalPlaces"`
}

var currencyOrder = []string{"BDT", "INR", "USD", "EUR", "GBP", "PKR", "LKR", "NPR", "MYR", "SGD"}

var currencies = map[string]Currency{
	"BDT": {Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka", NameBn: "বাংলাদেশী টাকা", Locale: "bn-BD", Flag: "🇧🇩", DecimalPlaces: 0},
	"INR": {Code: "INR", Symbol: "₹", Name: "Indian Rupee", NameBn: "ভারতীয় রুপি", Locale: "en-IN", Flag: "🇮🇳", DecimalPlaces: 0},
	"USD": {Code: "USD", Symbol: "$", Name: "US Dollar", NameBn: "মার্কিন ডলার", Locale: "en-US", Flag: "🇺🇸", DecimalPlaces: 2},
	"EUR": {Code: "EUR", Symbol: "€", Name: "Euro", NameBn: "ইউরো", Locale: "en-EU", Flag: "🇪🇺", DecimalPlaces: 2},
	"GBP": {Code: "GBP", Symbol: "£", Name: "British Pound", NameBn: "ব্রিটিশ পাউন্ড", Locale: "en-GB", Flag: "🇬🇧", DecimalPlaces: 2},
	"PKR": {Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee", NameBn: "পাকিস্তানি রুপি", Locale: "en-PK", Flag: "🇵🇰", DecimalPlaces: 0},
	"LKR": {Code: "LKR", Symbol: "රු", Name: "Sri Lankan Rupee", NameBn: "শ্রীলঙ্কান রুপি", Locale: "en-LK", Flag: "🇱🇰", DecimalPlaces: 2},
	"NPR": {Code: "NPR", Symbol: "रू", Name: "Nepalese Rupee", NameBn: "নেপালি রুপি", Locale: "en-NP", Flag: "🇳🇵", DecimalPlaces: 2},
	"MYR": {Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit", NameBn: "মালয়েশিয়ান রিংগিট", Locale: "en-MY", Flag: "🇲🇾", DecimalPlaces: 2},
	"SGD": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar", NameBn: "সিঙ্গাপুর ডলার", Locale: "en-SG", Flag: "🇸🇬", DecimalPlaces: 2},
}

// exchangeRates are units of each currency per 1 BDT. Static sample values.
var exchangeRates = map[string]decimal.Decimal{
	"BDT": decimal.NewFromInt(1),
	"INR": decimal.RequireFromString("0.75"),
	"USD": decimal.RequireFromString("0.0083"),
	"EUR": decimal.RequireFromString("0.0076"),
	"GBP": decimal.RequireFromString("0.0065"),
	"PKR": decimal.RequireFromString("2.35"),
	"LKR": decimal.RequireFromString("2.75"),
	"NPR": decimal.RequireFromString("1.20"),
	"MYR": decimal.RequireFromString("0.039"),
	"SGD": decimal.RequireFromString("0.011"),
}

// CurrencyByCode falls back to BDT for unknown codes.
func CurrencyByCode(code string) Currency {
	if c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return currencies[DefaultCurrencyCode]
}

// IsKnownCurrency reports whether code is in the supported list.
func IsKnownCurrency(code string) bool {
	_, ok := currencies[code]
	return ok
}

func AllCurrencies() []Currency {
	out := make([]Currency, 0, len(currencyOrder))
	for _, code := range currencyOrder {
		out = append(out, currencies[code])
	}
	return out
}

// ExchangeRate returns the units of code per 1 BDT.
func ExchangeRate(code string) (decimal.Decimal, bool) {
	r, ok := exchangeRates[code]
	return r, ok
}

// ConvertCurrency goes through BDT and rounds to the target's decimal places.
// A missing rate counts as 1.
func ConvertCurrency(amount decimal.Decimal, from, to string) decimal.Decimal {
	if from == to {
		return amount
	}
	fromRate := rateOrOne(from)
	toRate := rateOrOne(to)
	converted := amount.Div(fromRate).Mul(toRate)
	return converted.Round(CurrencyByCode(to).DecimalPlaces)
}

func rateOrOne(code string) decimal.Decimal {
	if r, ok := exchangeRates[code]; ok && !r.IsZero() {
		return r
	}
	return decimal.NewFromInt(1)
}

// FormatCurrency renders e.g. "৳5,200" or "$1,234.50".
func FormatCurrency(amount decimal.Decimal, code string) string {
	c := CurrencyByCode(code)
	sign, digits := formatDigits(amount, c.DecimalPlaces)
	return sign + c.Symbol + digits
}

// FormatCurrencySymbol renders the symbol and the number separated by a space,
// e.g. "৳ 5,200".
func FormatCurrencySymbol(amount decimal.Decimal, code string) string {
	c := CurrencyByCode(code)
	sign, digits := formatDigits(amount, c.DecimalPlaces)
	return sign + c.Symbol + " " + digits
}

// FormatNumber groups thousands with commas at the given precision.
func FormatNumber(amount decimal.Decimal, places int32) string {
	sign, digits := formatDigits(amount, places)
	return sign + digits
}

func formatDigits(amount decimal.Decimal, places int32) (string, string) {
	rounded := amount.Round(places)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign, humanize.FormatFloat("#,###."+strings.Repeat("#", int(places)), rounded.InexactFloat64())
}
