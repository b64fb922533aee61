package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := "SELECT id FROM parties WHERE name = ? AND notes <> '?' AND type = ?"

	assert.Equal(t, q, DialectSQLite.Rebind(q))
	assert.Equal(t,
		"SELECT id FROM parties WHERE name = $1 AND notes <> '?' AND type = $2",
		DialectPostgres.Rebind(q))
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect(" SQLite ")
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, d)

	d, err = ParseDialect("pgx")
	require.NoError(t, err)
	assert.Equal(t, DialectPostgres, d)

	_, err = ParseDialect("mysql")
	assert.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	dsn := SQLiteDSN("/tmp/ledger.db")
	assert.Contains(t, dsn, "file:/tmp/ledger.db?")
	assert.Contains(t, dsn, "foreign_keys%281%29")
	assert.Contains(t, dsn, "journal_mode%28WAL%29")
}
