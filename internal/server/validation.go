package server

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/lucascresencio/leet-test/internal/payment"
)

// registerValidators wires custom binding rules into gin's validator.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		switch payment.PaymentMethod(fl.Field().String()) {
		case payment.MethodCreditCard, payment.MethodBoleto, payment.MethodPix:
			return true
		}
		return false
	})
}
