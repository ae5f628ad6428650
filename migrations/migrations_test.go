package migrations

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDriverURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "pgx5://u:p@h:5432/db?sslmode=disable", driverURL("postgres://u:p@h:5432/db?sslmode=disable"))
	require.Equal(t, "pgx5://u:p@h/db", driverURL("postgresql://u:p@h/db"))
	require.Equal(t, "pgx5://already", driverURL("pgx5://already"))
}

func TestEmbeddedFiles_PairedUpAndDown(t *testing.T) {
	t.Parallel()

	ups, err := fs.Glob(files, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(files, "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	require.Len(t, downs, len(ups))
}

func TestEmbeddedFiles_DeclareUniqueIndexes(t *testing.T) {
	t.Parallel()

	couriers, err := fs.ReadFile(files, "000001_create_couriers.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(couriers), "couriers_tax_id_key")
	require.Contains(t, string(couriers), "couriers_license_number_key")

	motos, err := fs.ReadFile(files, "000002_create_motos.up.sql")
	require.NoError(t, err)
	require.Contains(t, string(motos), "motos_plate_key")
}
