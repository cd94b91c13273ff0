package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
)

// Count and breakdown methods for the shared fakes, used by the admin views.

func (f *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range f.students {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeStudentStore) Count(_ context.Context) (int, error) {
	return len(f.students), nil
}

func (f *fakeEmployerStore) GetAll(_ context.Context) ([]*models.Employer, error) {
	var out []*models.Employer
	for _, e := range f.employers {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (f *fakeEmployerStore) Count(_ context.Context) (int, error) {
	return len(f.employers), nil
}

func (f *fakeJobStore) Count(_ context.Context) (int, error) {
	return len(f.jobs), nil
}

func (f *fakeApplicationStore) Count(_ context.Context) (int, error) {
	return len(f.applications), nil
}

func (f *fakeApplicationStore) CountByStatus(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, a := range f.applications {
		counts[a.Status]++
	}
	return counts, nil
}

func (f *fakeReferenceStore) Count(_ context.Context) (int, error) {
	return len(f.refs), nil
}

func (f *fakeReferenceStore) CountByStatus(_ context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, ref := range f.refs {
		counts[string(ref.Status)]++
	}
	return counts, nil
}

func (f *fakeReferenceStore) AvgRating(_ context.Context) (float64, error) {
	sum, n := 0, 0
	for _, ref := range f.refs {
		if ref.Status == models.ReferenceStatusCompleted && ref.Rating != nil {
			sum += *ref.Rating
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return float64(sum) / float64(n), nil
}

func TestListAllUsers(t *testing.T) {
	students := newFakeStudentStore()
	employers := newFakeEmployerStore()
	svc := NewAdminService(students, employers, newFakeJobStore(), &fakeApplicationStore{}, newFakeReferenceStore(), zerolog.Nop())

	seedStudent(t, students, "Alice Murphy", "alice@example.com")
	require.NoError(t, employers.Create(context.Background(), &models.Employer{
		CompanyName: "TechCorp", Email: "hr@techcorp.example.com", PasswordHash: "x",
	}))

	users, err := svc.ListAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	types := map[string]string{}
	for _, u := range users {
		types[u.Name] = u.Type
	}
	assert.Equal(t, "student", types["Alice Murphy"])
	assert.Equal(t, "employer", types["TechCorp"])
}

func TestGetOverview(t *testing.T) {
	students := newFakeStudentStore()
	employers := newFakeEmployerStore()
	jobs := newFakeJobStore()
	applications := &fakeApplicationStore{}
	references := newFakeReferenceStore()
	svc := NewAdminService(students, employers, jobs, applications, references, zerolog.Nop())

	seedStudent(t, students, "Alice Murphy", "alice@example.com")
	require.NoError(t, jobs.Create(context.Background(), &models.Job{Title: "A", Company: "X"}))
	require.NoError(t, applications.Create(context.Background(), &models.Application{JobID: 1, StudentID: 1, Status: "pending"}))

	completedRating := 4
	now := time.Now()
	require.NoError(t, references.Create(context.Background(), &models.ReferenceRequest{
		StudentID: 1, Status: models.ReferenceStatusCompleted, Rating: &completedRating, ResponseDate: &now,
	}))
	require.NoError(t, references.Create(context.Background(), &models.ReferenceRequest{
		StudentID: 1, Status: models.ReferenceStatusPending,
	}))

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, overview.Students)
	assert.Equal(t, 0, overview.Employers)
	assert.Equal(t, 1, overview.Jobs)
	assert.Equal(t, 1, overview.Applications)
	assert.Equal(t, 2, overview.References)
	assert.Equal(t, []dto.StatusCount{{Status: "pending", Count: 1}}, overview.ApplicationsByStatus)
	assert.Equal(t, []dto.StatusCount{
		{Status: "completed", Count: 1},
		{Status: "pending", Count: 1},
	}, overview.ReferencesByStatus)
	assert.Equal(t, 4.0, overview.AvgReferenceRating)
}
