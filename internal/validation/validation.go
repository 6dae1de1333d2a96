// Package validation содержит проверку входных данных заявки.
package validation

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtclear/intake-service/internal/model"
)

// FieldError описывает ошибку валидации с указанием поля, в котором она найдена.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Intake содержит сырые поля заявки до валидации.
type Intake struct {
	ClientEmail    string
	ClientName     string
	ClientBusiness string
	DebtorName     string
	DebtorAddress  string
	DebtorType     string
	AmountOwedGBP  float64
	InvoiceDate    string
	DueDate        string
	Description    string
	ConsentGiven   bool
}

// ParseSubmission проверяет поля заявки и возвращает доменную модель.
// При первой найденной ошибке возвращается *FieldError с именем поля.
func ParseSubmission(in Intake) (*model.Submission, error) {
	required := []struct {
		field string
		value string
	}{
		{"client_email", in.ClientEmail},
		{"client_name", in.ClientName},
		{"client_business", in.ClientBusiness},
		{"debtor_name", in.DebtorName},
		{"debtor_address", in.DebtorAddress},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, &FieldError{Field: r.field, Reason: "must not be empty"}
		}
	}

	if _, err := mail.ParseAddress(in.ClientEmail); err != nil {
		return nil, &FieldError{Field: "client_email", Reason: "must be a valid email address"}
	}

	debtorType, err := parseDebtorType(in.DebtorType)
	if err != nil {
		return nil, err
	}

	if in.AmountOwedGBP <= 0 {
		return nil, &FieldError{Field: "amount_owed_gbp", Reason: "must be a positive amount"}
	}
	amount := decimal.NewFromFloat(in.AmountOwedGBP).Round(2)

	invoiceDate, ferr := parseDate("invoice_date", in.InvoiceDate)
	if ferr != nil {
		return nil, ferr
	}
	dueDate, ferr := parseDate("due_date", in.DueDate)
	if ferr != nil {
		return nil, ferr
	}

	return &model.Submission{
		ClientEmail:    strings.TrimSpace(in.ClientEmail),
		ClientName:     strings.TrimSpace(in.ClientName),
		ClientBusiness: strings.TrimSpace(in.ClientBusiness),
		DebtorName:     strings.TrimSpace(in.DebtorName),
		DebtorAddress:  strings.TrimSpace(in.DebtorAddress),
		DebtorType:     debtorType,
		AmountOwed:     amount,
		InvoiceDate:    invoiceDate,
		DueDate:        dueDate,
		Description:    strings.TrimSpace(in.Description),
		ConsentGiven:   in.ConsentGiven,
	}, nil
}

func parseDebtorType(value string) (model.DebtorType, *FieldError) {
	switch model.DebtorType(strings.TrimSpace(value)) {
	case model.DebtorTypeBusiness:
		return model.DebtorTypeBusiness, nil
	case model.DebtorTypeIndividual:
		return model.DebtorTypeIndividual, nil
	default:
		return "", &FieldError{Field: "debtor_type", Reason: `must be "business" or "individual"`}
	}
}

func parseDate(field, value string) (time.Time, *FieldError) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Reason: "must be a date in YYYY-MM-DD format"}
	}
	return t, nil
}
