package pricing

import (
	"errors"
	"regexp"
	"strings"

	"sjsm-storefront/internal/domain"
)

var (
	ErrUPIMissingAt      = errors.New("invalid UPI ID format, must contain @")
	ErrUPIPrefixNotPhone = errors.New("the UPI ID prefix before @ must be a 10-digit mobile number")
	ErrCardNumber        = errors.New("card number must be 16 digits")
	ErrCardExpiry        = errors.New("card expiry must be in MM/YY format")
	ErrCardCVV           = errors.New("card CVV must be 3 digits")
	ErrCardHolderName    = errors.New("cardholder name is required")
	ErrPaymentMethod     = errors.New("unsupported payment method")

	ErrAddressIncomplete = errors.New("all address fields are required")
	ErrAddressPhone      = errors.New("phone number must be exactly 10 digits")
	ErrAddressZip        = errors.New("zip code must be exactly 6 digits")
)

var (
	tenDigits  = regexp.MustCompile(`^\d{10}$`)
	sixDigits  = regexp.MustCompile(`^\d{6}$`)
	cardDigits = regexp.MustCompile(`^\d{16}$`)
	expiryMMYY = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvDigits  = regexp.MustCompile(`^\d{3}$`)
)

// CardDetails are the raw card fields entered at checkout. The number may
// contain grouping spaces; they are stripped before validation.
type CardDetails struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

// Payment carries the instrument for one checkout attempt.
type Payment struct {
	Method domain.PaymentMethod `json:"method"`
	UPIID  string               `json:"upi_id,omitempty"`
	Card   CardDetails          `json:"card,omitempty"`
}

// ValidateUPI applies the strict rule: the identifier must contain @ and the
// segment before it must be exactly a 10-digit mobile number.
func ValidateUPI(upiID string) error {
	if !strings.Contains(upiID, "@") {
		return ErrUPIMissingAt
	}
	prefix := strings.SplitN(upiID, "@", 2)[0]
	if !tenDigits.MatchString(prefix) {
		return ErrUPIPrefixNotPhone
	}
	return nil
}

// ValidateCard checks the card fields: exactly 16 digits after stripping
// spaces, MM/YY expiry, 3-digit CVV, non-empty holder name.
func ValidateCard(c CardDetails) error {
	number := strings.ReplaceAll(c.Number, " ", "")
	if !cardDigits.MatchString(number) {
		return ErrCardNumber
	}
	if !expiryMMYY.MatchString(c.Expiry) {
		return ErrCardExpiry
	}
	if !cvvDigits.MatchString(c.CVV) {
		return ErrCardCVV
	}
	if strings.TrimSpace(c.HolderName) == "" {
		return ErrCardHolderName
	}
	return nil
}

// Validate checks the payment instrument for the selected method.
func (p Payment) Validate() error {
	switch p.Method {
	case domain.PaymentMethodUPI:
		return ValidateUPI(p.UPIID)
	case domain.PaymentMethodCard:
		return ValidateCard(p.Card)
	default:
		return ErrPaymentMethod
	}
}

// ValidateAddress checks the delivery address collected before payment.
func ValidateAddress(a domain.Address) error {
	if strings.TrimSpace(a.FullName) == "" ||
		strings.TrimSpace(a.Street) == "" ||
		strings.TrimSpace(a.City) == "" ||
		a.Phone == "" || a.Zip == "" {
		return ErrAddressIncomplete
	}
	if !tenDigits.MatchString(a.Phone) {
		return ErrAddressPhone
	}
	if !sixDigits.MatchString(a.Zip) {
		return ErrAddressZip
	}
	return nil
}
