// Package currency formats prices for the bilingual storefront. Each region
// sells in its own currency (Oman in OMR, Saudi Arabia in SAR); amounts are
// formatted per display language, never converted between currencies.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/spirithubcafe/spirithub/internal/domain"
)

// Lang selects the display language for formatting.
type Lang string

const (
	LangEnglish Lang = "en"
	LangArabic  Lang = "ar"
)

// IsLang reports whether s is a supported display language.
func IsLang(s string) bool {
	switch Lang(s) {
	case LangEnglish, LangArabic:
		return true
	}
	return false
}

var printers = map[Lang]*message.Printer{
	LangEnglish: message.NewPrinter(language.English),
	LangArabic:  message.NewPrinter(language.Arabic),
}

// fractionDigits returns the ISO 4217 minor-unit count for a regional
// currency. The Omani rial is one of the few currencies with three.
func fractionDigits(code string) int {
	if code == "OMR" {
		return 3
	}
	return 2
}

// Format renders an amount in a region's currency for the given language.
// English output carries the ISO code ("OMR 1.500"); Arabic output places
// the localized symbol after the amount, as the storefront displays it.
// Unknown languages fall back to English.
func Format(amount float64, region domain.Region, lang Lang) string {
	p, ok := printers[lang]
	if !ok {
		p = printers[LangEnglish]
		lang = LangEnglish
	}

	digits := fractionDigits(region.CurrencyCode)
	n := p.Sprintf("%v", number.Decimal(amount,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))

	if lang == LangArabic {
		return n + " " + region.CurrencySymbol
	}
	return region.CurrencyCode + " " + n
}
