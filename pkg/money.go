package pkg

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatBRL renders an amount the way Brazilian invoices show it: R$ 1.234,56.
func FormatBRL(v float64) string {
	p := message.NewPrinter(language.BrazilianPortuguese)
	return p.Sprintf("R$ %.2f", v)
}

// FormatDate is the dd/mm/yyyy form used on screens and documents.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
