package schema

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}

func tableNames(t *testing.T, conn *gorm.DB) []string {
	t.Helper()
	var names []string
	err := conn.Raw(
		`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name`,
	).Scan(&names).Error
	require.NoError(t, err)
	return names
}

func TestTarget(t *testing.T) {
	assert.Equal(t, 3, Target())
}

func TestApplyFreshDatabase(t *testing.T) {
	conn := openTestDB(t)

	version, err := Version(conn)
	require.NoError(t, err)
	assert.Equal(t, 0, version)

	require.NoError(t, Apply(conn, version))

	assert.Equal(t, []string{"counter", "items", "sales"}, tableNames(t, conn))

	version, err = Version(conn)
	require.NoError(t, err)
	assert.Equal(t, Target(), version)
}

func TestApplyFromV1PreservesExistingSales(t *testing.T) {
	conn := openTestDB(t)

	// Simulate a device that last ran a v1 build: only the sales table.
	require.NoError(t, conn.Exec(
		`CREATE TABLE sales (key INTEGER PRIMARY KEY AUTOINCREMENT, item TEXT NOT NULL, price INTEGER NOT NULL, date DATETIME NOT NULL)`,
	).Error)
	require.NoError(t, conn.Exec(`PRAGMA user_version = 1`).Error)

	now := time.Now().UTC()
	require.NoError(t, conn.Exec(`INSERT INTO sales (item, price, date) VALUES (?, ?, ?)`, "Tea", 10, now).Error)
	require.NoError(t, conn.Exec(`INSERT INTO sales (item, price, date) VALUES (?, ?, ?)`, "Cake", 25, now).Error)

	version, err := Version(conn)
	require.NoError(t, err)
	require.Equal(t, 1, version)

	require.NoError(t, Apply(conn, version))

	assert.Equal(t, []string{"counter", "items", "sales"}, tableNames(t, conn))

	var count int64
	require.NoError(t, conn.Raw(`SELECT COUNT(*) FROM sales`).Scan(&count).Error)
	assert.Equal(t, int64(2), count)

	var item string
	require.NoError(t, conn.Raw(`SELECT item FROM sales WHERE key = 1`).Scan(&item).Error)
	assert.Equal(t, "Tea", item)

	version, err = Version(conn)
	require.NoError(t, err)
	assert.Equal(t, Target(), version)
}

func TestApplyToleratesPartialPriorUpgrade(t *testing.T) {
	conn := openTestDB(t)

	// A crash after table creation but before the version stamp leaves the
	// collection present while the version lags behind.
	require.NoError(t, Apply(conn, 0))
	require.NoError(t, conn.Exec(`PRAGMA user_version = 1`).Error)

	version, err := Version(conn)
	require.NoError(t, err)
	require.Equal(t, 1, version)

	require.NoError(t, Apply(conn, version))

	assert.Equal(t, []string{"counter", "items", "sales"}, tableNames(t, conn))

	version, err = Version(conn)
	require.NoError(t, err)
	assert.Equal(t, Target(), version)
}

func TestApplyAlreadyCurrentIsNoOp(t *testing.T) {
	conn := openTestDB(t)

	require.NoError(t, Apply(conn, 0))
	require.NoError(t, Apply(conn, Target()))

	assert.Equal(t, []string{"counter", "items", "sales"}, tableNames(t, conn))
}
