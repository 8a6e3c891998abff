// Package rules implements the business-rule validation engine. Every
// function is pure: it reads its inputs, returns a Result and touches
// nothing else, so the rules are safe to call from any context.
//
// Error messages are the product's user-facing Portuguese strings;
// callers surface them verbatim.
package rules

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"moneytracker/internal/model"
)

// Business limits.
const (
	MaxPersonNameLength          = 200
	MaxCategoryDescriptionLength = 400
	MinimumAgeForIncome          = 18
)

// Result is the outcome of a single rule check. Error is empty when
// Valid is true.
type Result struct {
	Error string
	Valid bool
}

// Valid returns a passing Result.
func Valid() Result {
	return Result{Valid: true}
}

// Invalid returns a failing Result carrying a user-facing message.
func Invalid(msg string) Result {
	return Result{Error: msg}
}

// ValidatePersonName checks that a person's name is present and within
// the 200 character limit.
func ValidatePersonName(name string) Result {
	if strings.TrimSpace(name) == "" {
		return Invalid("Nome é obrigatório")
	}
	if utf8.RuneCountInString(name) > MaxPersonNameLength {
		return Invalid(fmt.Sprintf("Nome deve ter no máximo %d caracteres", MaxPersonNameLength))
	}
	return Valid()
}

// ValidateBirthDate checks that a birth date is present and not in the
// future relative to now.
func ValidateBirthDate(birthDate, now time.Time) Result {
	if birthDate.IsZero() {
		return Invalid("Data de nascimento é obrigatória")
	}
	if birthDate.After(now) {
		return Invalid("Data de nascimento não pode ser futura")
	}
	return Valid()
}

// CalculateAge returns the age in whole years at now. The year
// difference is decremented while the birthday has not yet occurred
// this year, so the comparison is on month and day, not year alone.
func CalculateAge(birthDate, now time.Time) int {
	age := now.Year() - birthDate.Year()
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// IsMinor reports whether the person is younger than 18 at now.
func IsMinor(birthDate, now time.Time) bool {
	return CalculateAge(birthDate, now) < MinimumAgeForIncome
}

// ValidateCategoryDescription checks that a category description is
// present and within the 400 character limit.
func ValidateCategoryDescription(description string) Result {
	if strings.TrimSpace(description) == "" {
		return Invalid("Descrição é obrigatória")
	}
	if utf8.RuneCountInString(description) > MaxCategoryDescriptionLength {
		return Invalid(fmt.Sprintf("Descrição deve ter no máximo %d caracteres", MaxCategoryDescriptionLength))
	}
	return Valid()
}

// ValidateTransactionAmount checks that an amount is strictly positive.
// Zero is invalid.
func ValidateTransactionAmount(amount float64) Result {
	if amount <= 0 {
		return Invalid("Valor deve ser positivo")
	}
	return Valid()
}

// ValidateCategoryType checks that a transaction's type matches the
// type of its category. Exact match only, no coercion.
func ValidateCategoryType(transactionType, categoryType model.TransactionType) Result {
	if transactionType != categoryType {
		return Invalid(fmt.Sprintf(
			"Categoria do tipo %q não é compatível com transação do tipo %q",
			typeName(categoryType), typeName(transactionType)))
	}
	return Valid()
}

// ValidateMinorTransaction enforces that a person younger than 18 may
// only register expenses.
func ValidateMinorTransaction(birthDate, now time.Time, transactionType model.TransactionType) Result {
	if IsMinor(birthDate, now) && transactionType == model.TypeIncome {
		return Invalid("Pessoa menor de 18 anos só pode cadastrar despesas")
	}
	return Valid()
}

func typeName(t model.TransactionType) string {
	if t == model.TypeIncome {
		return "receita"
	}
	return "despesa"
}
