// Package model содержит доменные сущности сервиса взыскания задолженности.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtorType описывает тип должника.
type DebtorType string

const (
	DebtorTypeBusiness   DebtorType = "business"
	DebtorTypeIndividual DebtorType = "individual"
)

// CaseStatus описывает статус обработки дела.
type CaseStatus string

// CaseStatusLBAPrepared означает, что досудебная претензия подготовлена и сохранена.
const CaseStatusLBAPrepared CaseStatus = "LBA_PREPARED"

// Submission представляет заявку кредитора на подготовку досудебной претензии.
type Submission struct {
	ClientEmail    string          `json:"client_email"`
	ClientName     string          `json:"client_name"`
	ClientBusiness string          `json:"client_business"`
	DebtorName     string          `json:"debtor_name"`
	DebtorAddress  string          `json:"debtor_address"`
	DebtorType     DebtorType      `json:"debtor_type"`
	AmountOwed     decimal.Decimal `json:"amount_owed_gbp"`
	InvoiceDate    time.Time       `json:"invoice_date"`
	DueDate        time.Time       `json:"due_date"`
	Description    string          `json:"description_of_debt"`
	ConsentGiven   bool            `json:"dpa_accepted"`
}

// ClaimResult содержит результат расчёта требования по просроченной задолженности.
type ClaimResult struct {
	DaysOverdue  int             `json:"days_overdue"`
	Interest     decimal.Decimal `json:"statutory_interest_gbp"`
	Compensation decimal.Decimal `json:"compensation_gbp"`
	Total        decimal.Decimal `json:"total_claim_gbp"`
}

// Case описывает дело, созданное по принятой заявке. После создания дело не изменяется.
type Case struct {
	CaseID    string     `json:"case_id"`
	Status    CaseStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	Submission
	Claim        ClaimResult `json:"claim"`
	DocumentPath string      `json:"document_path"`

	// NotificationSent отражает исход доставки уведомления в рамках запроса
	// и не входит в сохраняемую запись дела.
	NotificationSent bool `json:"-"`
}
