package utils

import (
	"strings"
	"testing"
	"time"
)

func TestGenerateReferralCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateReferralCode()
		if len(code) != 10 || !strings.HasPrefix(code, "RINKU") {
			t.Fatalf("bad referral code %q", code)
		}
		for _, ch := range code[5:] {
			if !strings.ContainsRune(referralChars, ch) {
				t.Fatalf("referral code %q contains invalid character %q", code, ch)
			}
		}
	}
}

func TestOrderNumber(t *testing.T) {
	now := time.UnixMilli(1735689600123)
	num := OrderNumber(now)
	if !strings.HasPrefix(num, "RH") {
		t.Fatalf("order number %q missing RH prefix", num)
	}
	if len(num) != 10 {
		t.Fatalf("order number %q has length %d, want 10", num, len(num))
	}
	if num != "RH89600123" {
		t.Fatalf("order number = %q, want RH89600123", num)
	}
}
