package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe   = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// FormatPrice renders a whole-rupee amount with Indian digit grouping,
// e.g. ₹1,23,456.
func FormatPrice(price float64) string {
	n := int64(math.Round(price))
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return "₹" + s
}

// CalculateDiscount returns the percentage off originalPrice at
// currentPrice, rounded to the nearest whole percent.
func CalculateDiscount(originalPrice, currentPrice float64) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round((originalPrice - currentPrice) / originalPrice * 100))
}

// FormatDate renders a timestamp the way order views display it,
// e.g. "29 Aug 2026, 07:45 PM".
func FormatDate(t time.Time) string {
	return t.Format("2 Jan 2006, 03:04 PM")
}

// ValidateEmail reports whether email looks like an email address.
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidatePhone reports whether phone is a valid 10-digit Indian mobile
// number.
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}

// ValidatePincode reports whether pincode is a valid 6-digit Indian
// pincode.
func ValidatePincode(pincode string) bool {
	return pincodeRe.MatchString(pincode)
}
