package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCPF wires the "cpf" rule into gin's binding engine so request DTOs
// can declare `binding:"cpf"` on CPF fields.
func RegisterCPF() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return IsValidCPF(fl.Field().String())
		})
	}
	return nil
}

// IsValidCPF validates a Brazilian CPF: eleven digits (punctuation tolerated)
// with both verification digits correct. Sequences of a single repeated digit
// are rejected even though their check digits match.
func IsValidCPF(cpf string) bool {
	digits := make([]int, 0, 11)
	for _, r := range cpf {
		switch {
		case r >= '0' && r <= '9':
			digits = append(digits, int(r-'0'))
		case r == '.' || r == '-' || r == ' ':
			// punctuation is tolerated
		default:
			return false
		}
	}

	if len(digits) != 11 {
		return false
	}

	allSame := true
	for _, d := range digits[1:] {
		if d != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(digits[:9], 10) != digits[9] {
		return false
	}
	return checkDigit(digits[:10], 11) == digits[10]
}

func checkDigit(digits []int, startWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (startWeight - i)
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}
