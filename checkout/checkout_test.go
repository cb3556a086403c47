package checkout

import "testing"

func goodAddress() Address {
	return Address{
		FullName:   "Maria Silva",
		Email:      "maria@example.com",
		Street:     "Rua das Flores",
		Number:     "123",
		City:       "São Paulo",
		State:      "SP",
		PostalCode: "01310-100",
	}
}

func TestValidateAddress_Good(t *testing.T) {
	if problems := ValidateAddress(goodAddress()); len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}

func TestValidateAddress_Problems(t *testing.T) {
	a := goodAddress()
	a.Email = "sem-arroba"
	a.PostalCode = "1234"
	a.State = "São Paulo"

	problems := ValidateAddress(a)
	for _, field := range []string{"email", "postalCode", "state"} {
		if problems[field] == "" {
			t.Errorf("no problem reported for %s", field)
		}
	}
	if len(problems) != 3 {
		t.Errorf("problems = %v, want exactly 3", problems)
	}
}

func TestValidateAddress_CEPWithoutDash(t *testing.T) {
	a := goodAddress()
	a.PostalCode = "01310100"
	if problems := ValidateAddress(a); problems["postalCode"] != "" {
		t.Errorf("CEP without dash rejected: %v", problems)
	}
}

func TestValidatePayment_PixNeedsNoCard(t *testing.T) {
	if problems := ValidatePayment(Payment{Method: MethodPix}); len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}
}

func TestValidatePayment_CardFields(t *testing.T) {
	p := Payment{
		Method:     MethodCard,
		CardNumber: "4111 1111 1111 1111",
		CardName:   "MARIA SILVA",
		CardExpiry: "12/27",
		CardCVV:    "123",
	}
	if problems := ValidatePayment(p); len(problems) != 0 {
		t.Errorf("problems = %v, want none", problems)
	}

	p.CardNumber = "42"
	p.CardExpiry = "13/27"
	problems := ValidatePayment(p)
	if problems["cardNumber"] == "" || problems["cardExpiry"] == "" {
		t.Errorf("problems = %v, want cardNumber and cardExpiry", problems)
	}
}

func TestValidatePayment_UnknownMethod(t *testing.T) {
	if problems := ValidatePayment(Payment{Method: "cheque"}); problems["method"] == "" {
		t.Error("unknown method accepted")
	}
}

func TestHandoff(t *testing.T) {
	if _, err := Handoff("https://checkout.example/c/1", 0); err == nil {
		t.Error("handoff allowed for empty cart")
	}
	if _, err := Handoff("", 2); err == nil {
		t.Error("handoff allowed without url")
	}
	url, err := Handoff("https://checkout.example/c/1", 2)
	if err != nil || url != "https://checkout.example/c/1" {
		t.Errorf("Handoff = %q, %v", url, err)
	}
}
