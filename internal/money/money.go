package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

const Places = 2

var hundred = decimal.NewFromInt(100)

func Round(value decimal.Decimal) decimal.Decimal {
	return value.Round(Places)
}

func FromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(Places)
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Percent returns part/whole*100 rounded to two places, or zero when whole is zero.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred).Round(Places)
}

// FormatINR renders an amount with Indian digit grouping, e.g. ₹12,34,567.89.
func FormatINR(value decimal.Decimal) string {
	negative := value.IsNegative()
	fixed := value.Abs().StringFixed(Places)
	whole, frac, _ := strings.Cut(fixed, ".")

	var grouped string
	if len(whole) <= 3 {
		grouped = whole
	} else {
		head, tail := whole[:len(whole)-3], whole[len(whole)-3:]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		grouped = strings.Join(parts, ",") + "," + tail
	}

	formatted := "₹" + grouped + "." + frac
	if negative {
		return "-" + formatted
	}
	return formatted
}
