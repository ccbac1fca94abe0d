package schema

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"
)

// Step describes one evolution of the embedded store: the first schema
// version at which a collection must exist, its key column (always an
// auto-incrementing integer primary key) and the remaining column
// definitions. Steps are data; adding a collection in a future release
// means appending an entry with the next version number.
type Step struct {
	MinVersion int
	Collection string
	Key        string
	Columns    []string
}

// Steps is the ordered schema history of the store. A device that last ran
// an older build carries only a prefix of these collections; Apply creates
// whatever its stored version is missing.
var Steps = []Step{
	{
		MinVersion: 1,
		Collection: "sales",
		Key:        "key",
		Columns: []string{
			"item TEXT NOT NULL",
			"price INTEGER NOT NULL",
			"date DATETIME NOT NULL",
		},
	},
	{
		MinVersion: 2,
		Collection: "counter",
		Key:        "id",
		Columns: []string{
			"name TEXT NOT NULL",
			"operator_name TEXT",
			"created_at DATETIME NOT NULL",
		},
	},
	{
		MinVersion: 3,
		Collection: "items",
		Key:        "id",
		Columns: []string{
			"name TEXT NOT NULL",
			"price INTEGER NOT NULL",
			"stock INTEGER NOT NULL",
			"is_active BOOLEAN NOT NULL",
			"created_at DATETIME NOT NULL",
		},
	},
}

// Target returns the schema version this build expects.
func Target() int {
	target := 0
	for _, step := range Steps {
		if step.MinVersion > target {
			target = step.MinVersion
		}
	}
	return target
}

// Version reads the schema version stamped on the database. A fresh
// database reports 0.
func Version(conn *gorm.DB) (int, error) {
	var version int
	if err := conn.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return version, nil
}

// Apply brings a database stamped at oldVersion up to Target. Every step
// whose MinVersion exceeds oldVersion runs in ascending order. Each step is
// an idempotent CREATE TABLE IF NOT EXISTS, so a partial prior upgrade
// (table created, version not stamped) is safe to re-run.
func Apply(conn *gorm.DB, oldVersion int) error {
	steps := make([]Step, len(Steps))
	copy(steps, Steps)
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].MinVersion < steps[j].MinVersion
	})

	for _, step := range steps {
		if step.MinVersion <= oldVersion {
			continue
		}
		if err := conn.Exec(step.ddl()).Error; err != nil {
			return fmt.Errorf("create collection %s (v%d): %w", step.Collection, step.MinVersion, err)
		}
	}

	if err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", Target())).Error; err != nil {
		return fmt.Errorf("stamp schema version: %w", err)
	}
	return nil
}

func (s Step) ddl() string {
	columns := make([]string, 0, len(s.Columns)+1)
	columns = append(columns, fmt.Sprintf("%s INTEGER PRIMARY KEY AUTOINCREMENT", s.Key))
	columns = append(columns, s.Columns...)
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)", s.Collection, strings.Join(columns, ", "))
}
