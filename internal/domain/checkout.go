package domain

import (
	"regexp"
	"strings"
)

// 表单校验使用的正则
var (
	emailPattern  = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
	digitsOnly    = regexp.MustCompile(`\D`)
)

// CheckoutForm 表示结算流程收集的收货信息和支付信息
// 字段逐个填写，按步骤校验；字段名与JSON标签一致，供 SetField 使用
type CheckoutForm struct {
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	Address    string `json:"address"`
	City       string `json:"city"`
	ZipCode    string `json:"zip_code"`
	Country    string `json:"country"`
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// SetField 按字段名设置表单值，返回字段是否存在
// 卡号和有效期在写入时做输入整形
func (f *CheckoutForm) SetField(name, value string) bool {
	switch name {
	case "email":
		f.Email = value
	case "full_name":
		f.FullName = value
	case "address":
		f.Address = value
	case "city":
		f.City = value
	case "zip_code":
		f.ZipCode = value
	case "country":
		f.Country = value
	case "card_number":
		f.CardNumber = FormatCardNumber(value)
	case "card_name":
		f.CardName = value
	case "expiry_date":
		f.ExpiryDate = FormatExpiry(value)
	case "cvv":
		f.CVV = digitsOnly.ReplaceAllString(value, "")
	default:
		return false
	}
	return true
}

// ValidateShipping 校验第一步的收货信息字段
// 返回字段级错误表，空表表示校验通过
func (f *CheckoutForm) ValidateShipping() map[string]string {
	errs := make(map[string]string)

	if f.Email == "" {
		errs["email"] = "email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "invalid email"
	}
	if f.FullName == "" {
		errs["full_name"] = "full name is required"
	}
	if f.Address == "" {
		errs["address"] = "address is required"
	}
	if f.City == "" {
		errs["city"] = "city is required"
	}
	if f.ZipCode == "" {
		errs["zip_code"] = "zip code is required"
	}
	if f.Country == "" {
		errs["country"] = "country is required"
	}

	return errs
}

// ValidatePayment 校验第二步的支付信息字段
// 卡号要求去除空格后恰好16位数字；有效期为 MM/YY；CVV为3-4位数字
func (f *CheckoutForm) ValidatePayment() map[string]string {
	errs := make(map[string]string)

	if f.CardNumber == "" {
		errs["card_number"] = "card number is required"
	} else {
		digits := strings.ReplaceAll(f.CardNumber, " ", "")
		if len(digits) != 16 || digitsOnly.MatchString(digits) {
			errs["card_number"] = "card number must have 16 digits"
		}
	}
	if f.CardName == "" {
		errs["card_name"] = "cardholder name is required"
	}
	if f.ExpiryDate == "" {
		errs["expiry_date"] = "expiry date is required"
	} else if !expiryPattern.MatchString(f.ExpiryDate) {
		errs["expiry_date"] = "invalid format (MM/YY)"
	}
	if f.CVV == "" {
		errs["cvv"] = "cvv is required"
	} else if !cvvPattern.MatchString(f.CVV) {
		errs["cvv"] = "invalid cvv"
	}

	return errs
}

// FormatCardNumber 对卡号输入做整形：去掉非数字字符，
// 每4位一组用空格分隔，最多保留16位数字
func FormatCardNumber(value string) string {
	digits := digitsOnly.ReplaceAllString(value, "")
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var parts []string
	for i := 0; i < len(digits); i += 4 {
		end := i + 4
		if end > len(digits) {
			end = len(digits)
		}
		parts = append(parts, digits[i:end])
	}

	return strings.Join(parts, " ")
}

// FormatExpiry 对有效期输入做整形：只保留数字，
// 满两位后自动插入斜杠，格式为 MM/YY
func FormatExpiry(value string) string {
	digits := digitsOnly.ReplaceAllString(value, "")
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) < 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}
