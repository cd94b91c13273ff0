package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models/dto"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
)

func TestCreateJob(t *testing.T) {
	jobs := newFakeJobStore()
	svc := NewJobService(jobs, zerolog.Nop())

	employerID := int64(3)
	job, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		Title:      "Graduate Engineer",
		Company:    "TechCorp",
		Skills:     []string{"Go", " SQL ", ""},
		EmployerID: &employerID,
	})
	require.NoError(t, err)
	assert.NotZero(t, job.ID)
	assert.NotEmpty(t, job.Posted)
	require.NotNil(t, job.RequiredSkills)
	assert.Equal(t, "Go,SQL", *job.RequiredSkills, "skills are trimmed and comma-joined")
}

func TestCreateJobWithoutSkills(t *testing.T) {
	jobs := newFakeJobStore()
	svc := NewJobService(jobs, zerolog.Nop())

	job, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{
		Title:   "Intern",
		Company: "TechCorp",
	})
	require.NoError(t, err)
	assert.Nil(t, job.RequiredSkills)
}

func TestGetJobNotFound(t *testing.T) {
	svc := NewJobService(newFakeJobStore(), zerolog.Nop())

	_, err := svc.GetJob(context.Background(), 12)
	assert.ErrorIs(t, err, apperrors.ErrJobNotFound)
}

func TestListJobsByEmployer(t *testing.T) {
	jobs := newFakeJobStore()
	svc := NewJobService(jobs, zerolog.Nop())

	employerID := int64(3)
	_, err := svc.CreateJob(context.Background(), &dto.CreateJobRequest{Title: "A", Company: "X", EmployerID: &employerID})
	require.NoError(t, err)
	_, err = svc.CreateJob(context.Background(), &dto.CreateJobRequest{Title: "B", Company: "Y"})
	require.NoError(t, err)

	mine, err := svc.ListJobsByEmployer(context.Background(), employerID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := svc.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
