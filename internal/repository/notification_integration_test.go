//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"service-rental/internal/domain"
	"service-rental/internal/repository"
)

func TestNotificationRepo_InsertIsIdempotent(t *testing.T) {
	ctx := context.Background()
	require.NoError(t, truncateAll(ctx, tcPool))

	repo := repository.NewNotificationRepo(tcPool)
	motoID := uuid.New()
	n := &domain.MotoNotification{
		ID:         uuid.New(),
		MotoID:     motoID,
		Identifier: "moto-1",
		Year:       2024,
		Model:      "Mottu Sport",
		Plate:      "ABC1D23",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	inserted, err := repo.Insert(ctx, n)
	require.NoError(t, err)
	require.True(t, inserted)

	dup := *n
	dup.ID = uuid.New()
	inserted, err = repo.Insert(ctx, &dup)
	require.NoError(t, err)
	require.False(t, inserted)

	got, err := repo.GetByMotoID(ctx, motoID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, n.ID, got.ID)

	missing, err := repo.GetByMotoID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missing)
}
