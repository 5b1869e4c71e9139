package domain

import "testing"

func TestFormatCardNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"full 16 digits", "1234567812345678", "1234 5678 1234 5678"},
		{"already spaced", "1234 5678 1234 5678", "1234 5678 1234 5678"},
		{"partial input", "12345", "1234 5"},
		{"strips non-digits", "1234-5678-9012", "1234 5678 9012"},
		{"caps at 16 digits", "12345678123456789999", "1234 5678 1234 5678"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCardNumber(tt.input); got != tt.want {
				t.Errorf("FormatCardNumber(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatExpiry(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"single digit", "1", "1"},
		{"two digits insert slash", "12", "12/"},
		{"full expiry", "1225", "12/25"},
		{"keeps digits only", "12/25", "12/25"},
		{"caps at four digits", "122534", "12/25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatExpiry(tt.input); got != tt.want {
				t.Errorf("FormatExpiry(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func validShippingForm() CheckoutForm {
	return CheckoutForm{
		Email:    "a@b.co",
		FullName: "Juan Perez",
		Address:  "Calle 123",
		City:     "Madrid",
		ZipCode:  "28001",
		Country:  "ES",
	}
}

func TestCheckoutForm_ValidateShipping(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*CheckoutForm)
		wantField string
	}{
		{"valid form", func(f *CheckoutForm) {}, ""},
		{"empty email", func(f *CheckoutForm) { f.Email = "" }, "email"},
		{"malformed email", func(f *CheckoutForm) { f.Email = "foo" }, "email"},
		{"missing name", func(f *CheckoutForm) { f.FullName = "" }, "full_name"},
		{"missing address", func(f *CheckoutForm) { f.Address = "" }, "address"},
		{"missing city", func(f *CheckoutForm) { f.City = "" }, "city"},
		{"missing zip", func(f *CheckoutForm) { f.ZipCode = "" }, "zip_code"},
		{"missing country", func(f *CheckoutForm) { f.Country = "" }, "country"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validShippingForm()
			tt.mutate(&form)
			errs := form.ValidateShipping()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestCheckoutForm_ValidatePayment(t *testing.T) {
	valid := CheckoutForm{
		CardNumber: "1234 5678 1234 5678",
		CardName:   "JUAN PEREZ",
		ExpiryDate: "12/25",
		CVV:        "123",
	}

	tests := []struct {
		name      string
		mutate    func(*CheckoutForm)
		wantField string
	}{
		{"valid form", func(f *CheckoutForm) {}, ""},
		{"15 digit card", func(f *CheckoutForm) { f.CardNumber = "1234 5678 1234 567" }, "card_number"},
		{"empty card", func(f *CheckoutForm) { f.CardNumber = "" }, "card_number"},
		{"missing cardholder", func(f *CheckoutForm) { f.CardName = "" }, "card_name"},
		{"bad expiry shape", func(f *CheckoutForm) { f.ExpiryDate = "122" }, "expiry_date"},
		{"two digit cvv", func(f *CheckoutForm) { f.CVV = "12" }, "cvv"},
		{"four digit cvv ok", func(f *CheckoutForm) { f.CVV = "1234" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			errs := form.ValidatePayment()

			if tt.wantField == "" {
				if len(errs) != 0 {
					t.Errorf("expected no errors, got %v", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantField, errs)
			}
		})
	}
}

func TestCheckoutForm_SetField(t *testing.T) {
	var form CheckoutForm

	if !form.SetField("card_number", "1234567812345678") {
		t.Fatal("card_number should be a known field")
	}
	if form.CardNumber != "1234 5678 1234 5678" {
		t.Errorf("card number not formatted on write: %q", form.CardNumber)
	}

	if !form.SetField("expiry_date", "1225") {
		t.Fatal("expiry_date should be a known field")
	}
	if form.ExpiryDate != "12/25" {
		t.Errorf("expiry not formatted on write: %q", form.ExpiryDate)
	}

	if form.SetField("unknown_field", "x") {
		t.Error("unknown field should be rejected")
	}
}
