package utils

import (
	"fmt"
	"math/rand"
	"time"
)

const referralChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferralCode returns "RINKU" plus 5 random alphanumerics.
func GenerateReferralCode() string {
	b := make([]byte, 5)
	for i := range b {
		b[i] = referralChars[rand.Intn(len(referralChars))]
	}
	return "RINKU" + string(b)
}

// OrderNumber returns "RH" plus the last 8 digits of the current unix millis.
func OrderNumber(now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	if len(ms) > 8 {
		ms = ms[len(ms)-8:]
	}
	return "RH" + ms
}
