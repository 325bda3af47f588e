package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatMinutes renders a minute count the way the studio staff read coupon
// balances: "10시간", "1시간 30분", "45분". Negative values keep a leading "-".
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%s%d분", sign, m)
	case m == 0:
		return fmt.Sprintf("%s%d시간", sign, h)
	default:
		return fmt.Sprintf("%s%d시간 %d분", sign, h, m)
	}
}

// HoursToMinutes converts a coupon size in hours to minutes.
func HoursToMinutes(hours int) int {
	return hours * 60
}

const maxPhoneDigits = 11

// DigitsOnly strips every non-digit rune.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone hyphenates a Korean phone number while it is being typed.
// Seoul numbers (02) split 2-3-4 or 2-4-4, everything else 3-3-4 or 3-4-4.
// Input is truncated to 11 digits.
func FormatPhone(s string) string {
	d := DigitsOnly(s)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}
	if strings.HasPrefix(d, "02") {
		switch {
		case len(d) <= 2:
			return d
		case len(d) <= 5:
			return d[:2] + "-" + d[2:]
		case len(d) <= 9:
			return d[:2] + "-" + d[2:5] + "-" + d[5:]
		default:
			return d[:2] + "-" + d[2:6] + "-" + d[6:]
		}
	}
	switch {
	case len(d) <= 3:
		return d
	case len(d) <= 6:
		return d[:3] + "-" + d[3:]
	case len(d) <= 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	default:
		return d[:3] + "-" + d[3:7] + "-" + d[7:]
	}
}

// FormatAmount renders won amounts with thousands separators: 15000 -> "15,000".
func FormatAmount(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
