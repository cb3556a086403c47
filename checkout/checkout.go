package checkout

import (
	"fmt"
	"regexp"
	"strings"
)

// Payment methods the store accepts.
const (
	MethodCard   = "card"
	MethodPix    = "pix"
	MethodBoleto = "boleto"
)

// Address is the shipping form.
type Address struct {
	FullName   string `json:"fullName" form:"fullName"`
	Email      string `json:"email" form:"email"`
	Phone      string `json:"phone" form:"phone"`
	Street     string `json:"street" form:"street"`
	Number     string `json:"number" form:"number"`
	Complement string `json:"complement" form:"complement"`
	District   string `json:"district" form:"district"`
	City       string `json:"city" form:"city"`
	State      string `json:"state" form:"state"`
	PostalCode string `json:"postalCode" form:"postalCode"`
}

// Payment is the payment form. Card fields only matter for MethodCard.
type Payment struct {
	Method     string `json:"method" form:"method"`
	CardNumber string `json:"cardNumber" form:"cardNumber"`
	CardName   string `json:"cardName" form:"cardName"`
	CardExpiry string `json:"cardExpiry" form:"cardExpiry"`
	CardCVV    string `json:"cardCvv" form:"cardCvv"`
}

var (
	emailRe  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	cepRe    = regexp.MustCompile(`^\d{5}-?\d{3}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
)

// ValidateAddress returns field-keyed messages for everything wrong with the
// shipping form. An empty map means the form is good.
func ValidateAddress(a Address) map[string]string {
	problems := map[string]string{}
	if strings.TrimSpace(a.FullName) == "" {
		problems["fullName"] = "Informe seu nome completo"
	}
	if !emailRe.MatchString(strings.TrimSpace(a.Email)) {
		problems["email"] = "Informe um e-mail válido"
	}
	if strings.TrimSpace(a.Street) == "" {
		problems["street"] = "Informe a rua"
	}
	if strings.TrimSpace(a.Number) == "" {
		problems["number"] = "Informe o número"
	}
	if strings.TrimSpace(a.City) == "" {
		problems["city"] = "Informe a cidade"
	}
	if len(strings.TrimSpace(a.State)) != 2 {
		problems["state"] = "Informe a UF com 2 letras"
	}
	if !cepRe.MatchString(strings.TrimSpace(a.PostalCode)) {
		problems["postalCode"] = "Informe um CEP válido"
	}
	return problems
}

// ValidatePayment checks the payment form. Pix and boleto need only the
// method; cards need the full card block.
func ValidatePayment(p Payment) map[string]string {
	problems := map[string]string{}
	switch p.Method {
	case MethodPix, MethodBoleto:
		return problems
	case MethodCard:
	default:
		problems["method"] = "Escolha uma forma de pagamento"
		return problems
	}

	digits := strings.ReplaceAll(strings.ReplaceAll(p.CardNumber, " ", ""), "-", "")
	if len(digits) < 13 || len(digits) > 19 || !allDigits(digits) {
		problems["cardNumber"] = "Informe um número de cartão válido"
	}
	if strings.TrimSpace(p.CardName) == "" {
		problems["cardName"] = "Informe o nome impresso no cartão"
	}
	if !expiryRe.MatchString(p.CardExpiry) {
		problems["cardExpiry"] = "Informe a validade no formato MM/AA"
	}
	if l := len(p.CardCVV); l < 3 || l > 4 || !allDigits(p.CardCVV) {
		problems["cardCvv"] = "Informe o código de segurança"
	}
	return problems
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Handoff returns the hosted-checkout URL for a non-empty cart.
func Handoff(checkoutURL string, itemCount int) (string, error) {
	if itemCount == 0 {
		return "", fmt.Errorf("checkout: cart is empty")
	}
	if checkoutURL == "" {
		return "", fmt.Errorf("checkout: cart has no checkout url")
	}
	return checkoutURL, nil
}
