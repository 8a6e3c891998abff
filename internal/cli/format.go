package cli

import (
	"strconv"
	"strings"
	"time"
)

// FormatCurrency renders a value as Brazilian currency, e.g.
// "R$ 1.234,56". Negative values get a leading minus.
func FormatCurrency(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	s := strconv.FormatFloat(value, 'f', 2, 64)
	whole, cents, _ := strings.Cut(s, ".")

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	b.WriteByte(',')
	b.WriteString(cents)
	return b.String()
}

// FormatDate renders a date in the Brazilian DD/MM/YYYY form. Zero
// dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
