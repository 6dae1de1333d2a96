// Package handler содержит HTTP-обработчики API сервиса взыскания задолженности.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/debtclear/intake-service/internal/model"
	"github.com/debtclear/intake-service/internal/repository"
	"github.com/debtclear/intake-service/internal/service"
	"github.com/debtclear/intake-service/internal/validation"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	ProcessIntake(ctx context.Context, sub model.Submission) (*model.Case, error)
	GetCase(ctx context.Context, id string) (*model.Case, error)
}

// Handler реализует HTTP-обработчики API сервиса.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

type intakeRequest struct {
	ClientEmail    string  `json:"client_email"`
	ClientName     string  `json:"client_name"`
	ClientBusiness string  `json:"client_business"`
	DebtorName     string  `json:"debtor_name"`
	DebtorAddress  string  `json:"debtor_address"`
	DebtorType     string  `json:"debtor_type"`
	AmountOwedGBP  float64 `json:"amount_owed_gbp"`
	InvoiceDate    string  `json:"invoice_date"`
	DueDate        string  `json:"due_date"`
	Description    string  `json:"description_of_debt"`
	DPAAccepted    bool    `json:"dpa_accepted"`
}

type intakeResponse struct {
	Status               string  `json:"status"`
	CaseID               string  `json:"case_id"`
	ClientEmail          string  `json:"client_email"`
	AmountOwedGBP        float64 `json:"amount_owed_gbp"`
	StatutoryInterestGBP float64 `json:"statutory_interest_gbp"`
	CompensationGBP      float64 `json:"compensation_gbp"`
	TotalClaimGBP        float64 `json:"total_claim_gbp"`
	LBAGenerated         bool    `json:"lba_generated"`
	EmailSent            bool    `json:"email_sent"`
	Message              string  `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Intake принимает заявку, проводит её через обработку и возвращает итог по делу.
func (h *Handler) Intake(w http.ResponseWriter, r *http.Request) {
	var req intakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "malformed JSON payload", "")
		return
	}

	sub, err := validation.ParseSubmission(validation.Intake{
		ClientEmail:    req.ClientEmail,
		ClientName:     req.ClientName,
		ClientBusiness: req.ClientBusiness,
		DebtorName:     req.DebtorName,
		DebtorAddress:  req.DebtorAddress,
		DebtorType:     req.DebtorType,
		AmountOwedGBP:  req.AmountOwedGBP,
		InvoiceDate:    req.InvoiceDate,
		DueDate:        req.DueDate,
		Description:    req.Description,
		ConsentGiven:   req.DPAAccepted,
	})
	if err != nil {
		var fieldErr *validation.FieldError
		if errors.As(err, &fieldErr) {
			h.writeError(w, http.StatusBadRequest, fieldErr.Reason, fieldErr.Field)
			return
		}
		h.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	c, err := h.service.ProcessIntake(r.Context(), *sub)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedDebtorType), errors.Is(err, service.ErrConsentRequired):
			h.writeError(w, http.StatusUnprocessableEntity, err.Error(), "")
		default:
			h.logger.Error("process intake error", zap.Error(err), zap.String("clientEmail", sub.ClientEmail))
			h.writeError(w, http.StatusInternalServerError, "case processing failed", "")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, intakeResponse{
		Status:               "success",
		CaseID:               c.CaseID,
		ClientEmail:          c.ClientEmail,
		AmountOwedGBP:        c.AmountOwed.InexactFloat64(),
		StatutoryInterestGBP: c.Claim.Interest.InexactFloat64(),
		CompensationGBP:      c.Claim.Compensation.InexactFloat64(),
		TotalClaimGBP:        c.Claim.Total.InexactFloat64(),
		LBAGenerated:         true,
		EmailSent:            c.NotificationSent,
		Message:              fmt.Sprintf("Case %s created successfully. LBA prepared.", c.CaseID),
	})
}

type caseResponse struct {
	CaseID   string `json:"case_id"`
	Status   string `json:"status"`
	Document string `json:"document"`
}

// GetCase возвращает статус дела и ссылку на его документ.
func (h *Handler) GetCase(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "caseID")

	c, err := h.service.GetCase(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrCaseNotFound) {
			h.writeError(w, http.StatusNotFound, "case not found", "")
			return
		}
		h.logger.Error("get case error", zap.Error(err), zap.String("caseID", id))
		h.writeError(w, http.StatusInternalServerError, "case retrieval failed", "")
		return
	}

	h.writeJSON(w, http.StatusOK, caseResponse{
		CaseID:   c.CaseID,
		Status:   string(c.Status),
		Document: c.DocumentPath,
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Health сообщает о работоспособности сервиса. Зависимости не проверяются.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   "debtclear-intake",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg, field string) {
	h.writeJSON(w, status, errorResponse{Error: msg, Field: field})
}
