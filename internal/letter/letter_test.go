package letter

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/debtclear/intake-service/internal/claim"
	"github.com/debtclear/intake-service/internal/model"
)

func testRenderer() *Renderer {
	return NewRenderer(claim.DefaultTerms(decimal.NewFromFloat(4.75)))
}

func testCase() *model.Case {
	return &model.Case{
		CaseID:    "DC-20260831-a1b2c3-0f9e8d",
		Status:    model.CaseStatusLBAPrepared,
		CreatedAt: time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC),
		Submission: model.Submission{
			ClientEmail:    "client@example.com",
			ClientName:     "Jane Smith",
			ClientBusiness: "Smith Consulting Ltd",
			DebtorName:     "Acme Trading Ltd",
			DebtorAddress:  "1 High Street, London",
			DebtorType:     model.DebtorTypeBusiness,
			AmountOwed:     decimal.RequireFromString("5000.00"),
			Description:    "Unpaid invoice INV-042",
			ConsentGiven:   true,
		},
		Claim: model.ClaimResult{
			DaysOverdue:  40,
			Interest:     decimal.RequireFromString("69.86"),
			Compensation: decimal.RequireFromString("70"),
			Total:        decimal.RequireFromString("5139.86"),
		},
	}
}

func TestLetter_MandatoryContent(t *testing.T) {
	text, err := testRenderer().Letter(testCase())
	if err != nil {
		t.Fatalf("Letter error: %v", err)
	}

	mandatory := []string{
		"LETTER BEFORE ACTION",
		"Reference: DC-20260831-a1b2c3-0f9e8d",
		"Date: 31 August 2026",
		"Smith Consulting Ltd",
		"client@example.com",
		"Acme Trading Ltd",
		"1 High Street, London",
		"Unpaid invoice INV-042",
		"Principal Amount: £5,000.00",
		"Statutory Interest (12.75% p.a.): £69.86",
		"Fixed Compensation: £70.00",
		"TOTAL AMOUNT DUE: £5,139.86",
		"Late Payment of Commercial Debts (Interest) Act",
		"Combined rate: 12.75% per annum",
		"40 days overdue",
		"within 30 days of this letter",
		"by 30 September 2026",
		"County Court Judgment",
		"This is not legal advice.",
	}

	for _, fragment := range mandatory {
		if !strings.Contains(text, fragment) {
			t.Fatalf("letter is missing %q\n\n%s", fragment, text)
		}
	}
}

func TestEmailBody(t *testing.T) {
	body, err := testRenderer().EmailBody(testCase())
	if err != nil {
		t.Fatalf("EmailBody error: %v", err)
	}

	for _, fragment := range []string{
		"Hello Jane Smith",
		"DC-20260831-a1b2c3-0f9e8d",
		"£5,139.86",
	} {
		if !strings.Contains(body, fragment) {
			t.Fatalf("email body is missing %q\n\n%s", fragment, body)
		}
	}
}

func TestFormatGBP(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"40", "40.00"},
		{"999.99", "999.99"},
		{"1000", "1,000.00"},
		{"5139.86", "5,139.86"},
		{"1234567.5", "1,234,567.50"},
		{"-1234.56", "-1,234.56"},
	}

	for _, tt := range tests {
		if got := FormatGBP(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Fatalf("FormatGBP(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
