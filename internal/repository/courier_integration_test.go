//go:build integration

package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"service-rental/internal/apperr"
	"service-rental/internal/domain"
	"service-rental/internal/repository"
)

type CourierRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.CourierRepo
}

func (s *CourierRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewCourierRepo(tcPool)
}

func (s *CourierRepositorySuite) SetupTest() {
	s.Require().NoError(truncateAll(context.Background(), s.pool))
}

func newCourier(taxID, license string) *domain.Courier {
	return &domain.Courier{
		ID:              uuid.New(),
		Identifier:      "courier-" + taxID,
		Name:            "Artem",
		TaxID:           taxID,
		BirthDate:       time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		LicenseNumber:   license,
		LicenseCategory: domain.LicenseAB,
		CreatedAt:       time.Now().UTC().Truncate(time.Microsecond),
	}
}

func (s *CourierRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	in := newCourier("12345678901", "L-001")

	s.Require().NoError(s.repo.Insert(ctx, in))

	got, err := s.repo.Get(ctx, in.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)

	s.Equal(in.ID, got.ID)
	s.Equal(in.Name, got.Name)
	s.Equal(in.TaxID, got.TaxID)
	s.Equal(in.LicenseCategory, got.LicenseCategory)
	s.True(in.BirthDate.Equal(got.BirthDate))
	s.True(in.CreatedAt.Equal(got.CreatedAt))
	s.Nil(got.LicenseImagePath)
}

func (s *CourierRepositorySuite) TestGet_NotFound() {
	got, err := s.repo.Get(context.Background(), uuid.New())
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *CourierRepositorySuite) TestExists() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, newCourier("111", "L-111")))

	ok, err := s.repo.ExistsByTaxID(ctx, "111")
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.ExistsByTaxID(ctx, "222")
	s.Require().NoError(err)
	s.False(ok)

	ok, err = s.repo.ExistsByLicenseNumber(ctx, "L-111")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *CourierRepositorySuite) TestInsert_DuplicateTaxID() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, newCourier("111", "L-1")))

	err := s.repo.Insert(ctx, newCourier("111", "L-2"))
	s.ErrorIs(err, apperr.ErrConflict, "conflict for duplicate tax id")
}

func (s *CourierRepositorySuite) TestInsert_DuplicateLicenseNumber() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, newCourier("111", "L-1")))

	err := s.repo.Insert(ctx, newCourier("222", "L-1"))
	s.ErrorIs(err, apperr.ErrConflict, "conflict for duplicate license number")
}

func (s *CourierRepositorySuite) TestInsert_ConcurrentDuplicates() {
	ctx := context.Background()

	const n = 8
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.repo.Insert(ctx, newCourier("999", "L-999"))
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, apperr.ErrConflict):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, ok)
	s.Equal(n-1, conflicts)
}

func (s *CourierRepositorySuite) TestUpdate_LicenseImagePath() {
	ctx := context.Background()
	in := newCourier("111", "L-1")
	s.Require().NoError(s.repo.Insert(ctx, in))

	path := in.ID.String() + ".png"
	in.LicenseImagePath = &path

	ok, err := s.repo.Update(ctx, in)
	s.Require().NoError(err)
	s.True(ok)

	got, err := s.repo.Get(ctx, in.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.LicenseImagePath)
	s.Equal(path, *got.LicenseImagePath)
}

func (s *CourierRepositorySuite) TestUpdate_NotFound() {
	ok, err := s.repo.Update(context.Background(), newCourier("111", "L-1"))
	s.Require().NoError(err)
	s.False(ok)
}

func TestCourierRepositorySuite(t *testing.T) {
	suite.Run(t, new(CourierRepositorySuite))
}
