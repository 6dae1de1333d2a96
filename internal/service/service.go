// Package service реализует бизнес-логику обработки заявок на взыскание задолженности.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/debtclear/intake-service/internal/caseid"
	"github.com/debtclear/intake-service/internal/claim"
	"github.com/debtclear/intake-service/internal/model"
)

// ErrUnsupportedDebtorType возвращается для заявок по долгам, не относящимся к B2B.
var (
	ErrUnsupportedDebtorType = errors.New("B2B (business-to-business) debt only: consumer debt uses a different legal framework")
	// ErrConsentRequired возвращается, если клиент не принял соглашение об обработке данных.
	ErrConsentRequired = errors.New("data processing agreement must be accepted to proceed")
	// ErrDocumentRenderingFailed возвращается, если претензию не удалось подготовить или сохранить.
	ErrDocumentRenderingFailed = errors.New("LBA generation failed")
)

// CaseStore описывает контракт хранилища дел, используемый сервисом.
type CaseStore interface {
	SaveCase(ctx context.Context, c *model.Case, letterText string) (string, error)
	GetCase(ctx context.Context, id string) (*model.Case, error)
}

// Renderer описывает контракт формирования документов дела.
type Renderer interface {
	Letter(c *model.Case) (string, error)
	EmailBody(c *model.Case) (string, error)
}

// Mailer описывает контракт отправки почтовых уведомлений.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Service содержит бизнес-логику сервиса взыскания задолженности.
type Service struct {
	store    CaseStore
	renderer Renderer
	mailer   Mailer
	terms    claim.Terms
	logger   *zap.Logger
	now      func() time.Time
}

// NewService создаёт сервис с указанными хранилищем, рендерером и почтовым
// клиентом. mailer может быть nil — тогда уведомления не отправляются.
func NewService(store CaseStore, renderer Renderer, mailer Mailer, terms claim.Terms, logger *zap.Logger) *Service {
	return &Service{
		store:    store,
		renderer: renderer,
		mailer:   mailer,
		terms:    terms,
		logger:   logger,
		now:      time.Now,
	}
}

// ProcessIntake проводит заявку через проверки, расчёт требования и подготовку
// претензии. До прохождения обеих проверок никакие данные заявки не
// записываются и не отправляются наружу. Сбой отправки уведомления не считается
// ошибкой обработки: дело создано, флаг доставки в нём равен false.
func (s *Service) ProcessIntake(ctx context.Context, sub model.Submission) (*model.Case, error) {
	if sub.DebtorType != model.DebtorTypeBusiness {
		return nil, ErrUnsupportedDebtorType
	}
	if !sub.ConsentGiven {
		return nil, ErrConsentRequired
	}

	now := s.now()

	result, err := claim.Calculate(s.terms, sub.AmountOwed, sub.DueDate, now)
	if err != nil {
		return nil, fmt.Errorf("calculate claim: %w", err)
	}

	c := &model.Case{
		CaseID:     caseid.New(now, sub.ClientEmail),
		Status:     model.CaseStatusLBAPrepared,
		CreatedAt:  now,
		Submission: sub,
		Claim:      result,
	}

	letterText, err := s.renderer.Letter(c)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentRenderingFailed, err)
	}

	docPath, err := s.store.SaveCase(ctx, c, letterText)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentRenderingFailed, err)
	}
	c.DocumentPath = docPath

	c.NotificationSent = s.notify(ctx, c)

	return c, nil
}

// GetCase возвращает дело по идентификатору.
func (s *Service) GetCase(ctx context.Context, id string) (*model.Case, error) {
	return s.store.GetCase(ctx, id)
}

func (s *Service) notify(ctx context.Context, c *model.Case) bool {
	if s.mailer == nil {
		return false
	}

	body, err := s.renderer.EmailBody(c)
	if err != nil {
		s.logger.Warn("render notification email", zap.String("caseID", c.CaseID), zap.Error(err))
		return false
	}

	subject := "Your Letter Before Action - " + c.CaseID

	if err := s.mailer.Send(ctx, c.ClientEmail, subject, body); err != nil {
		s.logger.Warn("notification delivery failed", zap.String("caseID", c.CaseID), zap.Error(err))
		return false
	}

	return true
}
