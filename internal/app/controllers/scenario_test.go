package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/controllers"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/routes"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/services"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

// In-memory stores backing real services, so the flow below runs through
// the full router, controllers, and service layer at once.

type memStudentStore struct {
	nextID   int64
	students map[int64]*models.Student
}

func newMemStudentStore() *memStudentStore {
	return &memStudentStore{students: make(map[int64]*models.Student)}
}

func (m *memStudentStore) Create(_ context.Context, s *models.Student) error {
	for _, existing := range m.students {
		if existing.Email == s.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	m.nextID++
	s.ID = m.nextID
	s.CreatedAt = time.Now()
	clone := *s
	m.students[s.ID] = &clone
	return nil
}

func (m *memStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s, ok := m.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	clone := *s
	return &clone, nil
}

func (m *memStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range m.students {
		if s.Email == email {
			clone := *s
			return &clone, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (m *memStudentStore) UpdateProfile(_ context.Context, id int64, phone, university, major *string, gpa *float64, skills *string) error {
	s, ok := m.students[id]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	s.Phone = phone
	s.University = university
	s.Major = major
	s.GPA = gpa
	s.Skills = skills
	return nil
}

type memEmployerStore struct {
	nextID    int64
	employers map[int64]*models.Employer
}

func (m *memEmployerStore) Create(_ context.Context, e *models.Employer) error {
	for _, existing := range m.employers {
		if existing.Email == e.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	if m.employers == nil {
		m.employers = make(map[int64]*models.Employer)
	}
	m.nextID++
	e.ID = m.nextID
	e.CreatedAt = time.Now()
	clone := *e
	m.employers[e.ID] = &clone
	return nil
}

func (m *memEmployerStore) GetByEmail(_ context.Context, email string) (*models.Employer, error) {
	for _, e := range m.employers {
		if e.Email == email {
			clone := *e
			return &clone, nil
		}
	}
	return nil, apperrors.ErrEmployerNotFound
}

type memReferenceStore struct {
	nextID int64
	refs   map[int64]*models.ReferenceRequest
}

func newMemReferenceStore() *memReferenceStore {
	return &memReferenceStore{refs: make(map[int64]*models.ReferenceRequest)}
}

func (m *memReferenceStore) Create(_ context.Context, ref *models.ReferenceRequest) error {
	m.nextID++
	ref.ID = m.nextID
	clone := *ref
	m.refs[ref.ID] = &clone
	return nil
}

func (m *memReferenceStore) GetByID(_ context.Context, id int64) (*models.ReferenceRequest, error) {
	ref, ok := m.refs[id]
	if !ok {
		return nil, apperrors.ErrReferenceNotFound
	}
	clone := *ref
	return &clone, nil
}

func (m *memReferenceStore) GetByToken(_ context.Context, token string) (*models.ReferenceRequest, error) {
	for _, ref := range m.refs {
		if ref.AccessToken == token {
			clone := *ref
			return &clone, nil
		}
	}
	return nil, apperrors.ErrTokenNotFound
}

func (m *memReferenceStore) GetByStudentID(_ context.Context, studentID int64) ([]*models.ReferenceRequest, error) {
	var out []*models.ReferenceRequest
	for _, ref := range m.refs {
		if ref.StudentID == studentID {
			clone := *ref
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memReferenceStore) GetAll(_ context.Context) ([]*models.ReferenceRequest, error) {
	var out []*models.ReferenceRequest
	for _, ref := range m.refs {
		clone := *ref
		out = append(out, &clone)
	}
	return out, nil
}

func (m *memReferenceStore) CompleteIfPending(_ context.Context, id int64, text string, rating int, respondedAt time.Time) error {
	ref, ok := m.refs[id]
	if !ok {
		return apperrors.ErrReferenceNotFound
	}
	if ref.Status != models.ReferenceStatusPending {
		return apperrors.ErrInvalidTransition
	}
	ref.Status = models.ReferenceStatusCompleted
	ref.ReferenceText = &text
	ref.Rating = &rating
	ref.ResponseDate = &respondedAt
	return nil
}

func (m *memReferenceStore) DeclineIfPending(_ context.Context, id int64, respondedAt time.Time) error {
	ref, ok := m.refs[id]
	if !ok {
		return apperrors.ErrReferenceNotFound
	}
	if ref.Status != models.ReferenceStatusPending {
		return apperrors.ErrInvalidTransition
	}
	ref.Status = models.ReferenceStatusDeclined
	ref.ResponseDate = &respondedAt
	return nil
}

func (m *memReferenceStore) GetStats(_ context.Context, studentID int64) (*models.ReferenceStats, error) {
	stats := &models.ReferenceStats{}
	sum := 0
	for _, ref := range m.refs {
		if ref.StudentID != studentID {
			continue
		}
		stats.Total++
		switch ref.Status {
		case models.ReferenceStatusCompleted:
			stats.Completed++
			if ref.Rating != nil {
				sum += *ref.Rating
			}
		case models.ReferenceStatusPending:
			stats.Pending++
		}
	}
	if stats.Completed > 0 {
		stats.AvgRating = float64(sum) / float64(stats.Completed)
	}
	return stats, nil
}

type memNotificationStore struct {
	nextID        int64
	notifications []*models.Notification
}

func (m *memNotificationStore) Create(_ context.Context, n *models.Notification) error {
	m.nextID++
	n.ID = m.nextID
	n.CreatedAt = time.Now()
	clone := *n
	m.notifications = append(m.notifications, &clone)
	return nil
}

func (m *memNotificationStore) GetByRecipient(_ context.Context, recipientID int64, recipientType models.RecipientType) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range m.notifications {
		if n.RecipientID == recipientID && n.RecipientType == recipientType {
			clone := *n
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (m *memNotificationStore) MarkRead(_ context.Context, id int64) error {
	for _, n := range m.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return apperrors.ErrNotificationNotFound
}

type recordingMailer struct {
	tokens []string
}

func (r *recordingMailer) SendReferenceInvitation(toEmail, refereeName, studentName, token string) error {
	r.tokens = append(r.tokens, token)
	return nil
}

func newScenarioRouter(t *testing.T) (*gin.Engine, *recordingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	students := newMemStudentStore()
	employers := &memEmployerStore{}
	refs := newMemReferenceStore()
	notes := &memNotificationStore{}
	mailer := &recordingMailer{}
	lgr := zerolog.Nop()

	authService := services.NewAuthService(students, employers, lgr)
	referenceService := services.NewReferenceService(refs, students, notes, mailer, 720*time.Hour, lgr)
	notificationService := services.NewNotificationService(notes, lgr)

	router := gin.New()
	routes.SetupRouter(router,
		controllers.NewAuthController(authService, lgr),
		controllers.NewStudentController(authService, lgr),
		controllers.NewJobController(nil, lgr),
		controllers.NewApplicationController(nil, lgr),
		controllers.NewReferenceController(referenceService, lgr),
		controllers.NewNotificationController(notificationService, lgr),
		controllers.NewAdminController(nil, lgr),
	)
	return router, mailer
}

func TestReferenceFlowEndToEnd(t *testing.T) {
	router, mailer := newScenarioRouter(t)

	// Register a student account.
	rec := doJSON(t, router, http.MethodPost, "/api/auth/register/student", gin.H{
		"name":     "Alice Murphy",
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var registered dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	studentID := registered.User.ID
	require.NotZero(t, studentID)

	// Log in with the same credentials.
	rec = doJSON(t, router, http.MethodPost, "/api/auth/login/student", gin.H{
		"email":    "alice@example.com",
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Request a reference; the access token comes back once.
	rec = doJSON(t, router, http.MethodPost, "/api/references", gin.H{
		"student_id":    studentID,
		"referee_name":  "Dr. Smith",
		"referee_email": "smith@example.com",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created dto.RequestReferenceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.Token)
	require.Len(t, mailer.tokens, 1)
	assert.Equal(t, created.Token, mailer.tokens[0])

	// The referee resolves the token and submits a response.
	rec = doJSON(t, router, http.MethodGet, "/api/references/token/"+created.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/references/token/"+created.Token+"/response", gin.H{
		"reference_text": "Alice was an outstanding intern.",
		"rating":         5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// A second submission with the same token conflicts.
	rec = doJSON(t, router, http.MethodPost, "/api/references/token/"+created.Token+"/response", gin.H{
		"reference_text": "Again",
		"rating":         4,
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	// The student's listing shows the completed reference.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/references/student/%d", studentID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed dto.ReferencesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed.References, 1)
	assert.Equal(t, models.ReferenceStatusCompleted, listed.References[0].Status)

	// Stats aggregate the single completed reference.
	rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/references/student/%d/stats", studentID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats dto.ReferenceStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.Stats.Total)
	assert.Equal(t, 1, stats.Stats.Completed)
	assert.Equal(t, 0, stats.Stats.Pending)
	assert.Equal(t, 5.0, stats.Stats.AvgRating)

	// The student was notified about the completed reference.
	rec = doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/notifications?recipient_id=%d&recipient_type=student", studentID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var notes dto.NotificationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.Len(t, notes.Notifications, 1)
	assert.Equal(t, "reference_completed", notes.Notifications[0].NotificationType)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	router, _ := newScenarioRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Code)
}
