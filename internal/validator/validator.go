// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains ISO 4217 currency codes.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "BRL": true, "CAD": true, "CHF": true,
	"CNY": true, "CZK": true, "DKK": true, "EUR": true, "GBP": true,
	"HKD": true, "HUF": true, "IDR": true, "ILS": true, "INR": true,
	"JPY": true, "KRW": true, "MXN": true, "MYR": true, "NOK": true,
	"NZD": true, "PHP": true, "PLN": true, "RON": true, "SEK": true,
	"SGD": true, "THB": true, "TRY": true, "TWD": true, "USD": true,
	"ZAR": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("payment_frequency", validatePaymentFrequency)
		_ = v.RegisterValidation("asset_type", validateAssetType)
		_ = v.RegisterValidation("liability_type", validateLiabilityType)
		_ = v.RegisterValidation("income_category", validateIncomeCategory)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validatePaymentFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "monthly", "quarterly", "annually", "custom", "none":
		return true
	}
	return false
}

func validateAssetType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "stock", "bond", "real_estate", "crypto", "cash", "other":
		return true
	}
	return false
}

func validateLiabilityType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "mortgage", "loan", "credit_card", "other":
		return true
	}
	return false
}

func validateIncomeCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "active", "passive":
		return true
	}
	return false
}
