package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtclear/intake-service/internal/model"
)

func validIntake() Intake {
	return Intake{
		ClientEmail:    "client@example.com",
		ClientName:     "Jane Smith",
		ClientBusiness: "Smith Consulting Ltd",
		DebtorName:     "Acme Trading Ltd",
		DebtorAddress:  "1 High Street, London",
		DebtorType:     "business",
		AmountOwedGBP:  5000,
		InvoiceDate:    "2026-06-01",
		DueDate:        "2026-07-01",
		Description:    "Unpaid invoice INV-042",
		ConsentGiven:   true,
	}
}

func TestParseSubmission_Valid(t *testing.T) {
	sub, err := ParseSubmission(validIntake())
	if err != nil {
		t.Fatalf("ParseSubmission error: %v", err)
	}

	if sub.DebtorType != model.DebtorTypeBusiness {
		t.Fatalf("DebtorType = %q, want business", sub.DebtorType)
	}
	if !sub.AmountOwed.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("AmountOwed = %s, want 5000", sub.AmountOwed)
	}
	if !sub.DueDate.Equal(time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("DueDate = %v, want 2026-07-01", sub.DueDate)
	}
	if !sub.ConsentGiven {
		t.Fatalf("ConsentGiven must carry through")
	}
}

func TestParseSubmission_FieldErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Intake)
		wantField string
	}{
		{"missing email", func(in *Intake) { in.ClientEmail = "" }, "client_email"},
		{"invalid email", func(in *Intake) { in.ClientEmail = "not-an-email" }, "client_email"},
		{"missing client name", func(in *Intake) { in.ClientName = " " }, "client_name"},
		{"missing business name", func(in *Intake) { in.ClientBusiness = "" }, "client_business"},
		{"missing debtor name", func(in *Intake) { in.DebtorName = "" }, "debtor_name"},
		{"missing debtor address", func(in *Intake) { in.DebtorAddress = "" }, "debtor_address"},
		{"unknown debtor type", func(in *Intake) { in.DebtorType = "charity" }, "debtor_type"},
		{"zero amount", func(in *Intake) { in.AmountOwedGBP = 0 }, "amount_owed_gbp"},
		{"negative amount", func(in *Intake) { in.AmountOwedGBP = -5 }, "amount_owed_gbp"},
		{"bad invoice date", func(in *Intake) { in.InvoiceDate = "01/06/2026" }, "invoice_date"},
		{"bad due date", func(in *Intake) { in.DueDate = "not-a-date" }, "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validIntake()
			tt.mutate(&in)

			_, err := ParseSubmission(in)
			if err == nil {
				t.Fatalf("expected error")
			}

			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Fatalf("Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}

func TestParseSubmission_IndividualDebtorPassesValidation(t *testing.T) {
	// Тип "individual" корректен на уровне формы; его отклоняет бизнес-проверка.
	in := validIntake()
	in.DebtorType = "individual"

	sub, err := ParseSubmission(in)
	if err != nil {
		t.Fatalf("ParseSubmission error: %v", err)
	}
	if sub.DebtorType != model.DebtorTypeIndividual {
		t.Fatalf("DebtorType = %q, want individual", sub.DebtorType)
	}
}
