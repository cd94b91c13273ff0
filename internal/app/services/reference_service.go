package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/email"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/helpers"
)

// ReferenceStore is the reference persistence surface the service needs.
// The status transitions are guarded conditional updates so that two
// concurrent responses cannot both land.
type ReferenceStore interface {
	Create(ctx context.Context, ref *models.ReferenceRequest) error
	GetByID(ctx context.Context, id int64) (*models.ReferenceRequest, error)
	GetByToken(ctx context.Context, token string) (*models.ReferenceRequest, error)
	GetByStudentID(ctx context.Context, studentID int64) ([]*models.ReferenceRequest, error)
	GetAll(ctx context.Context) ([]*models.ReferenceRequest, error)
	CompleteIfPending(ctx context.Context, id int64, referenceText string, rating int, respondedAt time.Time) error
	DeclineIfPending(ctx context.Context, id int64, respondedAt time.Time) error
	GetStats(ctx context.Context, studentID int64) (*models.ReferenceStats, error)
}

// ReferenceService manages the reference request lifecycle:
// pending -> completed | declined, both terminal.
type ReferenceService interface {
	RequestReference(ctx context.Context, req *dto.RequestReferenceRequest) (*models.ReferenceRequest, error)
	ListReferences(ctx context.Context, studentID *int64) ([]*models.ReferenceRequest, error)
	GetStats(ctx context.Context, studentID int64) (*models.ReferenceStats, error)
	ResolveByToken(ctx context.Context, token string) (*models.ReferenceRequest, error)
	SubmitResponse(ctx context.Context, id int64, req *dto.SubmitReferenceResponseRequest) (*models.ReferenceRequest, error)
	DeclineReference(ctx context.Context, id int64) (*models.ReferenceRequest, error)
	SubmitResponseByToken(ctx context.Context, token string, req *dto.SubmitReferenceResponseRequest) (*models.ReferenceRequest, error)
	DeclineByToken(ctx context.Context, token string) (*models.ReferenceRequest, error)
}

type referenceService struct {
	references    ReferenceStore
	students      StudentStore
	notifications NotificationStore
	mailer        email.MailService
	tokenTTL      time.Duration
	logger        zerolog.Logger
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(references ReferenceStore, students StudentStore, notifications NotificationStore, mailer email.MailService, tokenTTL time.Duration, logger zerolog.Logger) ReferenceService {
	return &referenceService{
		references:    references,
		students:      students,
		notifications: notifications,
		mailer:        mailer,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// RequestReference creates a pending reference request with a fresh access
// token and emails the referee an invitation carrying it.
func (s *referenceService) RequestReference(ctx context.Context, req *dto.RequestReferenceRequest) (*models.ReferenceRequest, error) {
	student, err := s.students.GetByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	ref := &models.ReferenceRequest{
		StudentID:    req.StudentID,
		RefereeName:  req.RefereeName,
		RefereeEmail: req.RefereeEmail,
		RefereePhone: req.RefereePhone,
		Relationship: req.Relationship,
		Company:      req.Company,
		Position:     req.Position,
		Status:       models.ReferenceStatusPending,
		AccessToken:  uuid.NewString(),
		TokenExpiry:  now.Add(s.tokenTTL),
		RequestDate:  now,
	}

	if err := s.references.Create(ctx, ref); err != nil {
		return nil, err
	}

	if err := s.mailer.SendReferenceInvitation(ref.RefereeEmail, ref.RefereeName, student.FullName, ref.AccessToken); err != nil {
		// The request stands even when the invitation mail fails; the token
		// can still be recovered from the creation response.
		s.logger.Error().Err(err).Int64("referenceId", ref.ID).Msg("Failed to send reference invitation")
	}

	s.logger.Info().
		Int64("referenceId", ref.ID).
		Int64("studentId", ref.StudentID).
		Msg("Reference requested")

	return ref, nil
}

// ListReferences retrieves reference requests, optionally filtered by student
func (s *referenceService) ListReferences(ctx context.Context, studentID *int64) ([]*models.ReferenceRequest, error) {
	if studentID != nil {
		return s.references.GetByStudentID(ctx, *studentID)
	}
	return s.references.GetAll(ctx)
}

// GetStats aggregates a student's reference counts and average rating.
// Declined requests count toward the total only; the average covers
// completed references and is rounded to two decimals, 0.0 when none.
func (s *referenceService) GetStats(ctx context.Context, studentID int64) (*models.ReferenceStats, error) {
	stats, err := s.references.GetStats(ctx, studentID)
	if err != nil {
		return nil, err
	}

	stats.AvgRating = helpers.Round2(stats.AvgRating)
	return stats, nil
}

// ResolveByToken looks up a reference request by its access token for the
// referee-facing view. An expired token is rejected even when the request
// was already resolved.
func (s *referenceService) ResolveByToken(ctx context.Context, token string) (*models.ReferenceRequest, error) {
	ref, err := s.references.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(ref.TokenExpiry) {
		return nil, apperrors.ErrTokenExpired
	}

	return ref, nil
}

// SubmitResponse records a referee's response on a pending request. The
// rating must be between 1 and 5. Resolving an already-resolved request
// returns ErrInvalidTransition.
func (s *referenceService) SubmitResponse(ctx context.Context, id int64, req *dto.SubmitReferenceResponseRequest) (*models.ReferenceRequest, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidRating, "rating must be between 1 and 5").
			WithDetails(map[string]interface{}{"rating": req.Rating})
	}

	if err := s.references.CompleteIfPending(ctx, id, req.ReferenceText, req.Rating, time.Now().UTC()); err != nil {
		return nil, err
	}

	ref, err := s.references.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyStudent(ctx, ref, fmt.Sprintf("%s has completed your reference request", ref.RefereeName), "reference_completed")

	s.logger.Info().Int64("referenceId", id).Int("rating", req.Rating).Msg("Reference completed")
	return ref, nil
}

// DeclineReference marks a pending request as declined. Decline is a
// terminal state alongside completed, with no text or rating attached.
func (s *referenceService) DeclineReference(ctx context.Context, id int64) (*models.ReferenceRequest, error) {
	if err := s.references.DeclineIfPending(ctx, id, time.Now().UTC()); err != nil {
		return nil, err
	}

	ref, err := s.references.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.notifyStudent(ctx, ref, fmt.Sprintf("%s has declined your reference request", ref.RefereeName), "reference_declined")

	s.logger.Info().Int64("referenceId", id).Msg("Reference declined")
	return ref, nil
}

// SubmitResponseByToken is the referee-facing variant of SubmitResponse
func (s *referenceService) SubmitResponseByToken(ctx context.Context, token string, req *dto.SubmitReferenceResponseRequest) (*models.ReferenceRequest, error) {
	ref, err := s.ResolveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if ref.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}
	return s.SubmitResponse(ctx, ref.ID, req)
}

// DeclineByToken is the referee-facing variant of DeclineReference
func (s *referenceService) DeclineByToken(ctx context.Context, token string) (*models.ReferenceRequest, error) {
	ref, err := s.ResolveByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if ref.Status.IsTerminal() {
		return nil, apperrors.ErrInvalidTransition
	}
	return s.DeclineReference(ctx, ref.ID)
}

func (s *referenceService) notifyStudent(ctx context.Context, ref *models.ReferenceRequest, message, notificationType string) {
	notification := &models.Notification{
		RecipientID:      ref.StudentID,
		RecipientType:    models.RecipientStudent,
		Message:          message,
		NotificationType: notificationType,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		s.logger.Error().Err(err).Int64("referenceId", ref.ID).Msg("Failed to notify student")
	}
}
