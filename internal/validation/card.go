package validation

import (
	"strconv"
	"strings"
	"time"
)

// Validator performs the two structural card checks. The clock is injectable
// because the expiry check is evaluated against the current calendar month.
type Validator struct {
	now func() time.Time
}

func New() *Validator {
	return &Validator{now: time.Now}
}

func NewWithClock(now func() time.Time) *Validator {
	return &Validator{now: now}
}

// CardNumberValid reports whether cardNumber passes the mod-10 checksum.
// Spaces and hyphens are stripped first; any other non-digit makes the
// number invalid rather than an error. No brand-specific length or prefix
// rules are applied.
func (v *Validator) CardNumberValid(cardNumber string) bool {
	stripped := strings.NewReplacer(" ", "", "-", "").Replace(cardNumber)
	if stripped == "" {
		return false
	}

	var sum int
	double := false
	for i := len(stripped) - 1; i >= 0; i-- {
		c := stripped[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ExpiryValid reports whether month/year name the current calendar month or
// a later one. Month may be zero-padded; a two-digit year is read as 2000+yy.
// Anything that fails to parse is invalid, not an error.
func (v *Validator) ExpiryValid(month, year string) bool {
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil || m < 1 || m > 12 {
		return false
	}

	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil || y < 0 {
		return false
	}
	if y < 100 {
		y += 2000
	}

	now := v.now()
	if y < now.Year() {
		return false
	}
	if y == now.Year() && m < int(now.Month()) {
		return false
	}
	return true
}
