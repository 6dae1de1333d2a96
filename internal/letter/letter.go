// Package letter формирует текст досудебной претензии (Letter Before Action)
// и HTML-уведомление для клиента.
package letter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"

	"github.com/debtclear/intake-service/internal/claim"
	"github.com/debtclear/intake-service/internal/model"
)

// paymentDeadlineDays — срок оплаты, отсчитываемый от даты письма.
const paymentDeadlineDays = 30

const letterDateFormat = "02 January 2006"

// Renderer формирует документы дела по шаблонам.
type Renderer struct {
	terms      claim.Terms
	letterTmpl *template.Template
	emailTmpl  *template.Template
}

// NewRenderer создаёт рендерер документов с указанными условиями расчёта.
func NewRenderer(terms claim.Terms) *Renderer {
	funcs := template.FuncMap{"gbp": FormatGBP}
	return &Renderer{
		terms:      terms,
		letterTmpl: template.Must(template.New("letter").Funcs(funcs).Parse(letterTemplate)),
		emailTmpl:  template.Must(template.New("email").Funcs(funcs).Parse(emailTemplate)),
	}
}

type letterData struct {
	CaseID         string
	Date           string
	Deadline       string
	ClientName     string
	ClientBusiness string
	ClientEmail    string
	DebtorName     string
	DebtorAddress  string
	Description    string
	Principal      decimal.Decimal
	Interest       decimal.Decimal
	Compensation   decimal.Decimal
	Total          decimal.Decimal
	DaysOverdue    int
	StatutoryRate  string
	BaseRate       string
	AnnualRate     string
}

func (r *Renderer) data(c *model.Case) letterData {
	return letterData{
		CaseID:         c.CaseID,
		Date:           c.CreatedAt.Format(letterDateFormat),
		Deadline:       c.CreatedAt.AddDate(0, 0, paymentDeadlineDays).Format(letterDateFormat),
		ClientName:     c.ClientName,
		ClientBusiness: c.ClientBusiness,
		ClientEmail:    c.ClientEmail,
		DebtorName:     c.DebtorName,
		DebtorAddress:  c.DebtorAddress,
		Description:    c.Description,
		Principal:      c.AmountOwed,
		Interest:       c.Claim.Interest,
		Compensation:   c.Claim.Compensation,
		Total:          c.Claim.Total,
		DaysOverdue:    c.Claim.DaysOverdue,
		StatutoryRate:  r.terms.StatutoryRatePercent.String(),
		BaseRate:       r.terms.BaseRatePercent.String(),
		AnnualRate:     r.terms.AnnualRatePercent().String(),
	}
}

// Letter возвращает текст досудебной претензии для дела.
func (r *Renderer) Letter(c *model.Case) (string, error) {
	var buf bytes.Buffer
	if err := r.letterTmpl.Execute(&buf, r.data(c)); err != nil {
		return "", fmt.Errorf("execute letter template: %w", err)
	}
	return buf.String(), nil
}

// EmailBody возвращает HTML-уведомление клиенту о подготовленной претензии.
func (r *Renderer) EmailBody(c *model.Case) (string, error) {
	var buf bytes.Buffer
	if err := r.emailTmpl.Execute(&buf, r.data(c)); err != nil {
		return "", fmt.Errorf("execute email template: %w", err)
	}
	return buf.String(), nil
}

// FormatGBP форматирует сумму с двумя знаками после запятой и разделителями
// тысяч: 5139.8 -> "5,139.80".
func FormatGBP(d decimal.Decimal) string {
	s := d.StringFixed(2)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}

	out := b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

const letterTemplate = `LETTER BEFORE ACTION
Reference: {{.CaseID}}
Date: {{.Date}}

FROM:
{{.ClientBusiness}}
{{.ClientEmail}}

TO:
{{.DebtorName}}
{{.DebtorAddress}}

RE: FORMAL DEMAND FOR PAYMENT - UNPAID INVOICE

Dear {{.DebtorName}},

This is a formal letter before action. This letter is issued in accordance with
the Pre-Action Protocol for Debt Claims under the Civil Procedure Rules.
{{if .Description}}
DEBT:
{{.Description}}
{{end}}
AMOUNT OWED:
Principal Amount: £{{gbp .Principal}}
Statutory Interest ({{.AnnualRate}}% p.a.): £{{gbp .Interest}}
Fixed Compensation: £{{gbp .Compensation}}
──────────────────────────────
TOTAL AMOUNT DUE: £{{gbp .Total}}

LEGAL BASIS:
This claim is made under the Late Payment of Commercial Debts (Interest) Act
1998, which automatically entitles us to statutory interest and compensation
for late payment of commercial debts.

STATUTORY INTEREST:
- Statutory rate: {{.StatutoryRate}}% per annum
- Bank of England base rate: {{.BaseRate}}%
- Combined rate: {{.AnnualRate}}% per annum
- Interest calculated from the due date: {{.DaysOverdue}} days overdue

WHAT YOU MUST DO:
You must pay the full amount of £{{gbp .Total}} within 30 days of this letter,
that is by {{.Deadline}}.

If you do not pay within 30 days, we will consider this a failure to respond
to a letter before action and will commence proceedings at court without
further notice. This will result in:
- County Court Judgment against you
- Damage to your business credit rating (lasting 6 years)
- Additional court fees and legal costs
- Enforcement proceedings

ALTERNATIVE RESOLUTION:
If you dispute this debt or have difficulty paying, please contact us within
7 days to discuss.

This letter is a formal notice. Failure to respond or pay will be used as
evidence of your failure to comply with the Pre-Action Protocol.

Yours faithfully,

{{.ClientBusiness}}

---
This letter has been prepared by DebtClear Ltd, a legal document preparation
service. This is not legal advice. Please seek independent legal counsel if
required.
`

const emailTemplate = `<h2>Your Letter Before Action has been prepared</h2>
<p>Hello {{.ClientName}},</p>
<p>Your Letter Before Action (LBA) for £{{gbp .Total}} has been prepared.</p>
<p><strong>Case ID:</strong> {{.CaseID}}</p>
<p><strong>Total Amount Claimed:</strong> £{{gbp .Total}}</p>
<p>The LBA document is ready for download.</p>
<p>Best regards,<br>DebtClear</p>
`
