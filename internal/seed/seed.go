package seed

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/kauanferreira/salesdesk/internal/app/models"
	"github.com/kauanferreira/salesdesk/internal/app/repositories"
)

// CreateDefaultData populates an empty database with a small set of
// departments and sellers so the API is usable right after first startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	departmentRepo := repositories.NewDepartmentRepository(dbPool)
	sellerRepo := repositories.NewSellerRepository(dbPool)

	existing, err := departmentRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		lgr.Debug().Msg("Database already has departments, skipping seed")
		return nil
	}

	lgr.Info().Msg("Seeding default departments and sellers...")

	departments := []*models.Department{
		{Name: "Computers"},
		{Name: "Electronics"},
		{Name: "Fashion"},
		{Name: "Books"},
	}
	for _, department := range departments {
		if err := departmentRepo.Create(ctx, department); err != nil {
			return err
		}
	}

	sellers := []*models.Seller{
		{
			Name:       "Bob Brown",
			Email:      "bob@gmail.com",
			BirthDate:  time.Date(1998, 4, 21, 0, 0, 0, 0, time.UTC),
			BaseSalary: 1000.0,
			Department: departments[0],
		},
		{
			Name:       "Maria Green",
			Email:      "maria@gmail.com",
			BirthDate:  time.Date(1979, 12, 31, 0, 0, 0, 0, time.UTC),
			BaseSalary: 3500.0,
			Department: departments[1],
		},
		{
			Name:       "Alex Grey",
			Email:      "alex@gmail.com",
			BirthDate:  time.Date(1988, 1, 15, 0, 0, 0, 0, time.UTC),
			BaseSalary: 2200.0,
			Department: departments[0],
		},
		{
			Name:       "Martha Red",
			Email:      "martha@gmail.com",
			BirthDate:  time.Date(1993, 11, 30, 0, 0, 0, 0, time.UTC),
			BaseSalary: 3000.0,
			Department: departments[3],
		},
		{
			Name:       "Donald Blue",
			Email:      "donald@gmail.com",
			BirthDate:  time.Date(2000, 1, 9, 0, 0, 0, 0, time.UTC),
			BaseSalary: 4000.0,
			Department: departments[2],
		},
		{
			Name:       "Alex Pink",
			Email:      "bob.pink@gmail.com",
			BirthDate:  time.Date(1997, 3, 4, 0, 0, 0, 0, time.UTC),
			BaseSalary: 3000.0,
			Department: departments[1],
		},
	}
	for _, seller := range sellers {
		if err := sellerRepo.Create(ctx, seller); err != nil {
			return err
		}
	}

	lgr.Info().Int("departments", len(departments)).Int("sellers", len(sellers)).Msg("Seed data created")
	return nil
}
