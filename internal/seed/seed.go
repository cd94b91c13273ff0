package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	appModels "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/models"
	appRepos "github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/app/repositories"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/db"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/apperrors"
	"github.com/snehajg1203-ctrl/Advanced-Programming-CA-Two/internal/pkg/auth"
)

func ptr(s string) *string { return &s }

// CreateDemoData seeds a few demo accounts and job postings so a fresh
// install has something to browse. The whole seed runs in one transaction;
// existing accounts are left alone.
func CreateDemoData(ctx context.Context, database *db.PostgresDB, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo data...")

	err := database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return seedDemoData(ctx, tx, lgr)
	})
	if err != nil {
		return err
	}

	lgr.Info().Msg("Demo data check complete.")
	return nil
}

func seedDemoData(ctx context.Context, tx pgx.Tx, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(tx)
	employerRepo := appRepos.NewEmployerRepository(tx)
	jobRepo := appRepos.NewJobRepository(tx)

	demoHash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	gpa := 3.6
	students := []*appModels.Student{
		{
			FullName:     "Alice Murphy",
			Email:        "alice@student.example.com",
			PasswordHash: demoHash,
			University:   ptr("Dublin Business School"),
			Major:        ptr("Computing"),
			GPA:          &gpa,
			Skills:       ptr("Go,SQL,Communication"),
		},
		{
			FullName:     "Bob Keane",
			Email:        "bob@student.example.com",
			PasswordHash: demoHash,
			University:   ptr("Dublin Business School"),
			Major:        ptr("Marketing"),
		},
	}
	for _, student := range students {
		// Existence is checked up front: a unique violation would abort
		// the surrounding transaction.
		if _, err := studentRepo.GetByEmail(ctx, student.Email); err == nil {
			continue
		} else if !errors.Is(err, apperrors.ErrStudentNotFound) {
			return err
		}
		if err := studentRepo.Create(ctx, student); err != nil {
			lgr.Error().Err(err).Str("email", student.Email).Msg("Error seeding student")
			return err
		}
	}

	employer := &appModels.Employer{
		CompanyName:   "TechCorp Ireland",
		ContactPerson: "Sarah Byrne",
		Email:         "hr@techcorp.example.com",
		PasswordHash:  demoHash,
		Industry:      ptr("Software"),
		CompanySize:   ptr("51-200"),
	}
	if existing, err := employerRepo.GetByEmail(ctx, employer.Email); err == nil {
		employer = existing
	} else if !errors.Is(err, apperrors.ErrEmployerNotFound) {
		return err
	} else if err := employerRepo.Create(ctx, employer); err != nil {
		lgr.Error().Err(err).Msg("Error seeding employer")
		return err
	}

	count, err := jobRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		jobs := []*appModels.Job{
			{
				Title:          "Graduate Software Engineer",
				Company:        employer.CompanyName,
				JobType:        ptr("full-time"),
				Location:       ptr("Dublin"),
				Salary:         ptr("€38,000 - €45,000"),
				Description:    ptr("Join our graduate programme working on cloud services."),
				RequiredSkills: ptr("Go,PostgreSQL,Docker"),
				Posted:         "2026-08-01",
				EmployerID:     &employer.ID,
			},
			{
				Title:       "Marketing Intern",
				Company:     employer.CompanyName,
				JobType:     ptr("part-time"),
				Location:    ptr("Remote"),
				Hours:       ptr("20h/week"),
				Description: ptr("Support the marketing team with campaigns and analytics."),
				Posted:      "2026-08-15",
				EmployerID:  &employer.ID,
			},
		}
		for _, job := range jobs {
			if err := jobRepo.Create(ctx, job); err != nil {
				lgr.Error().Err(err).Str("title", job.Title).Msg("Error seeding job")
				return err
			}
		}
	}

	return nil
}
