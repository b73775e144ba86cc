package postgres_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"harvest/internal/adapters/out/postgres"
	"harvest/internal/adapters/out/postgres/providerrepo"
	"harvest/internal/core/domain/model/kernel"
	"harvest/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_LogsThroughSlog(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, nil))

	db, err := postgres.Open(postgres.Settings{
		Driver:     postgres.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "harvest.db"),
	}, logger)
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))
	out.Reset()

	t.Run("should not log a missing record", func(t *testing.T) {
		_, err := providerrepo.NewGormProviderRepository(db).Get(t.Context(), kernel.NewUUID())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Empty(t, out.String())
	})

	t.Run("should log SQL errors as JSON", func(t *testing.T) {
		out.Reset()

		require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)

		assert.Contains(t, out.String(), `"component":"gorm"`)
		assert.Contains(t, out.String(), "no_such_table")
		assert.NotContains(t, out.String(), "\x1b[")
	})
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := postgres.Open(postgres.Settings{Driver: "mysql"}, nil)

	require.ErrorIs(t, err, postgres.ErrUnknownDriver)
}
