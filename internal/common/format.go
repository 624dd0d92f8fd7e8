package common

import (
	"fmt"
	"strings"
)

// FormatMoney renders a monetary amount with thousands separators and two
// decimal places, e.g. 1950000 -> "1,950,000.00".
func FormatMoney(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var sb strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	out := sb.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
