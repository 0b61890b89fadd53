package migrations

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	assert.Equal(t, "001", Version("001_create_registry_tables.sql"))
	assert.Equal(t, "002", Version("sql/002_create_users.sql"))
	assert.Equal(t, "init.sql", Version("init.sql"))
}

func TestEmbeddedMigrations(t *testing.T) {
	m := NewMigrator(nil, Embedded())
	files, err := m.Pending()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_registry_tables.sql", "002_create_users.sql"}, files)
}

func TestMigrate(t *testing.T) {
	files := fstest.MapFS{
		"002_second.sql": {Data: []byte("CREATE TABLE b (id INT);")},
		"001_first.sql":  {Data: []byte("CREATE TABLE a (id INT);")},
		"README.md":      {Data: []byte("ignored")},
	}
	existsQuery := regexp.QuoteMeta("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)")

	t.Run("applies pending in order and skips applied", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()
		mock.MatchExpectationsInOrder(true)

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))

		mock.ExpectQuery(existsQuery).WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

		mock.ExpectQuery(existsQuery).WithArgs("002").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE b (id INT);")).WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations (version) VALUES ($1)")).
			WithArgs("002").
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectCommit()

		n, err := NewMigrator(mock, files).Migrate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failed migration rolls back and stops", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(pgxmock.NewResult("CREATE", 0))
		mock.ExpectQuery(existsQuery).WithArgs("001").WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id INT);")).WillReturnError(errors.New("syntax error"))
		mock.ExpectRollback()

		n, err := NewMigrator(mock, files).Migrate(context.Background())
		assert.Equal(t, 0, n)
		assert.ErrorContains(t, err, "001_first.sql")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
