package pdf

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const vatRate = 0.20

// Derive returns a copy of row extended with bookkeeping fields
// (record_number, total_records, generation_date) and the computed
// money columns. Formatted values carry Russian number formatting, the
// *_numeric twins hold raw machine-readable values.
func Derive(row map[string]string, index, total int, now time.Time) map[string]string {
	out := make(map[string]string, len(row)+10)
	for k, v := range row {
		out[k] = v
	}

	out["record_number"] = strconv.Itoa(index)
	out["total_records"] = strconv.Itoa(total)
	out["generation_date"] = now.Format("02.01.2006 15:04")

	price := parsePrice(row["price"])
	qty := parseQty(row["qty"])
	subtotal := round2(price * float64(qty))
	vat := round2(subtotal * vatRate)
	grand := round2(subtotal + vat)

	out["subtotal"] = FormatCurrency(subtotal)
	out["vat"] = FormatCurrency(vat)
	out["total"] = FormatCurrency(grand)
	out["price_numeric"] = formatNumeric(round2(price))
	out["qty_numeric"] = strconv.Itoa(qty)
	out["subtotal_numeric"] = formatNumeric(subtotal)
	out["vat_numeric"] = formatNumeric(vat)
	out["total_numeric"] = formatNumeric(grand)
	return out
}

// parsePrice reads prices like "1 000,50" or "1000.50". Anything
// unparseable counts as zero.
func parsePrice(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseQty(s string) int {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return 0
	}
	return n
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func formatNumeric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCurrency renders a value as "1 234 567,89": space-separated
// thousands, comma decimal point, always two decimals.
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	cents := int64(math.Round(v * 100))

	digits := strconv.FormatInt(cents/100, 10)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	s := strings.Join(groups, " ") + "," + strconv.FormatInt(cents%100+100, 10)[1:]
	if neg {
		s = "-" + s
	}
	return s
}
