// Package claim реализует расчёт законного требования по просроченной
// коммерческой задолженности согласно Late Payment of Commercial Debts (Interest) Act 1998.
package claim

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtclear/intake-service/internal/model"
)

// Terms содержит ставки и пороги, по которым считается требование.
// Базовая ставка Банка Англии меняется со временем и задаётся конфигурацией.
type Terms struct {
	StatutoryRatePercent   decimal.Decimal
	BaseRatePercent        decimal.Decimal
	SmallDebtCompensation  decimal.Decimal
	MediumDebtCompensation decimal.Decimal
	LargeDebtCompensation  decimal.Decimal
	MediumDebtThreshold    decimal.Decimal
	LargeDebtThreshold     decimal.Decimal
}

var (
	statutoryRatePercent = decimal.NewFromInt(8)

	smallDebtCompensation  = decimal.NewFromInt(40)
	mediumDebtCompensation = decimal.NewFromInt(70)
	largeDebtCompensation  = decimal.NewFromInt(100)

	mediumDebtThreshold = decimal.NewFromInt(1000)
	largeDebtThreshold  = decimal.NewFromInt(10000)

	hundred     = decimal.NewFromInt(100)
	daysPerYear = decimal.NewFromInt(365)
)

// DefaultTerms возвращает действующие условия с указанной базовой ставкой
// Банка Англии в процентах годовых.
func DefaultTerms(baseRatePercent decimal.Decimal) Terms {
	return Terms{
		StatutoryRatePercent:   statutoryRatePercent,
		BaseRatePercent:        baseRatePercent,
		SmallDebtCompensation:  smallDebtCompensation,
		MediumDebtCompensation: mediumDebtCompensation,
		LargeDebtCompensation:  largeDebtCompensation,
		MediumDebtThreshold:    mediumDebtThreshold,
		LargeDebtThreshold:     largeDebtThreshold,
	}
}

// AnnualRatePercent возвращает суммарную годовую ставку в процентах.
func (t Terms) AnnualRatePercent() decimal.Decimal {
	return t.StatutoryRatePercent.Add(t.BaseRatePercent)
}

// Compensation возвращает фиксированную компенсацию для указанной суммы долга.
func (t Terms) Compensation(principal decimal.Decimal) decimal.Decimal {
	switch {
	case principal.LessThan(t.MediumDebtThreshold):
		return t.SmallDebtCompensation
	case principal.LessThan(t.LargeDebtThreshold):
		return t.MediumDebtCompensation
	default:
		return t.LargeDebtCompensation
	}
}

// DaysOverdue возвращает число полных дней просрочки между датой оплаты и
// отчётной датой. Если срок оплаты ещё не наступил, просрочка равна нулю.
func DaysOverdue(dueDate, referenceDate time.Time) int {
	diff := referenceDate.Sub(dueDate)
	if diff <= 0 {
		return 0
	}
	return int(diff / (24 * time.Hour))
}

// Calculate считает проценты, компенсацию и итоговую сумму требования.
// Функция чистая: результат полностью определяется аргументами, текущее время
// передаётся явно через referenceDate.
//
// Проценты округляются до пенса по правилу half-up (половина — от нуля).
func Calculate(terms Terms, principal decimal.Decimal, dueDate, referenceDate time.Time) (model.ClaimResult, error) {
	if principal.IsNegative() {
		return model.ClaimResult{}, fmt.Errorf("principal must be non-negative, got %s", principal)
	}

	days := DaysOverdue(dueDate, referenceDate)

	dailyRate := terms.AnnualRatePercent().Div(hundred).Div(daysPerYear)
	interest := principal.Mul(dailyRate).Mul(decimal.NewFromInt(int64(days))).Round(2)

	compensation := terms.Compensation(principal)
	total := principal.Add(interest).Add(compensation)

	return model.ClaimResult{
		DaysOverdue:  days,
		Interest:     interest,
		Compensation: compensation,
		Total:        total,
	}, nil
}
