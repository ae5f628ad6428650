//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"service-rental/internal/apperr"
	"service-rental/internal/domain"
	"service-rental/internal/repository"
)

type MotoRepositorySuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *repository.MotoRepo
}

func (s *MotoRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewMotoRepo(tcPool)
}

func (s *MotoRepositorySuite) SetupTest() {
	s.Require().NoError(truncateAll(context.Background(), s.pool))
}

func newMoto(plate string, createdAt time.Time) *domain.Moto {
	return &domain.Moto{
		ID:         uuid.New(),
		Identifier: "moto-" + plate,
		Year:       2024,
		Model:      "Mottu Sport",
		Plate:      plate,
		CreatedAt:  createdAt.UTC().Truncate(time.Microsecond),
	}
}

func (s *MotoRepositorySuite) TestInsertAndGet() {
	ctx := context.Background()
	in := newMoto("ABC1D23", time.Now())

	s.Require().NoError(s.repo.Insert(ctx, in))

	got, err := s.repo.Get(ctx, in.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal(in.Plate, got.Plate)
	s.Equal(in.Year, got.Year)
	s.True(in.CreatedAt.Equal(got.CreatedAt))
}

func (s *MotoRepositorySuite) TestInsert_DuplicatePlate() {
	ctx := context.Background()
	s.Require().NoError(s.repo.Insert(ctx, newMoto("ABC1D23", time.Now())))

	err := s.repo.Insert(ctx, newMoto("ABC1D23", time.Now()))
	s.ErrorIs(err, apperr.ErrConflict)
}

func (s *MotoRepositorySuite) TestExistsByPlate_ExcludesSelf() {
	ctx := context.Background()
	m := newMoto("ABC1D23", time.Now())
	s.Require().NoError(s.repo.Insert(ctx, m))

	ok, err := s.repo.ExistsByPlate(ctx, "ABC1D23", uuid.Nil)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.ExistsByPlate(ctx, "ABC1D23", m.ID)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MotoRepositorySuite) TestList_NewestFirstAndFilter() {
	ctx := context.Background()
	base := time.Now()
	older := newMoto("AAA0001", base.Add(-time.Hour))
	newer := newMoto("BBB0002", base)
	s.Require().NoError(s.repo.Insert(ctx, older))
	s.Require().NoError(s.repo.Insert(ctx, newer))

	all, err := s.repo.List(ctx, "")
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(newer.ID, all[0].ID)
	s.Equal(older.ID, all[1].ID)

	filtered, err := s.repo.List(ctx, "AAA0001")
	s.Require().NoError(err)
	s.Require().Len(filtered, 1)
	s.Equal(older.ID, filtered[0].ID)

	none, err := s.repo.List(ctx, "ZZZ9999")
	s.Require().NoError(err)
	s.NotNil(none)
	s.Empty(none)
}

func (s *MotoRepositorySuite) TestUpdatePlate() {
	ctx := context.Background()
	a := newMoto("AAA0001", time.Now())
	b := newMoto("BBB0002", time.Now())
	s.Require().NoError(s.repo.Insert(ctx, a))
	s.Require().NoError(s.repo.Insert(ctx, b))

	ok, err := s.repo.UpdatePlate(ctx, a.ID, "CCC0003")
	s.Require().NoError(err)
	s.True(ok)

	_, err = s.repo.UpdatePlate(ctx, a.ID, "BBB0002")
	s.ErrorIs(err, apperr.ErrConflict)

	ok, err = s.repo.UpdatePlate(ctx, uuid.New(), "DDD0004")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *MotoRepositorySuite) TestDelete() {
	ctx := context.Background()
	m := newMoto("AAA0001", time.Now())
	s.Require().NoError(s.repo.Insert(ctx, m))

	ok, err := s.repo.Delete(ctx, m.ID)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.repo.Delete(ctx, m.ID)
	s.Require().NoError(err)
	s.False(ok)
}

func TestMotoRepositorySuite(t *testing.T) {
	suite.Run(t, new(MotoRepositorySuite))
}
