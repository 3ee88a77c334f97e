package modeltest

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"testing"

	"gorm.io/gorm/schema"

	entity "carolinebride.GO/model/entity"
)

// columnLine matches a column definition inside CREATE TABLE, not the
// PRIMARY KEY / KEY / CONSTRAINT lines.
var columnLine = regexp.MustCompile("(?m)^\\s+`([a-z_]+)`\\s")

var autoIncrementLine = regexp.MustCompile("(?m)^\\s+`([a-z_]+)`[^\n]*AUTO_INCREMENT")

func sqlColumns(t *testing.T, file string) (cols []string, autoInc string) {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("../../migrations", file))
	if err != nil {
		t.Fatalf("read %s: %v", file, err)
	}
	for _, m := range columnLine.FindAllStringSubmatch(string(data), -1) {
		cols = append(cols, m[1])
	}
	if m := autoIncrementLine.FindStringSubmatch(string(data)); m != nil {
		autoInc = m[1]
	}
	return cols, autoInc
}

func entityColumns(t *testing.T, model interface{}) (cols []string, pk string) {
	t.Helper()
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		t.Fatalf("parse schema: %v", err)
	}
	for _, f := range s.Fields {
		if f.DBName != "" {
			cols = append(cols, f.DBName)
		}
	}
	pk = s.PrioritizedPrimaryField.DBName
	return cols, pk
}

// The migration SQL must declare exactly the columns the gorm entities map,
// with the entity's primary key as the auto-increment column. AutoMigrate in
// the sqlite tests would hide any drift against a MySQL schema produced by
// db:migrate.
func TestMigrationsMatchEntities(t *testing.T) {
	cases := []struct {
		file  string
		model interface{}
	}{
		{"000001_create_users.up.sql", &entity.User{}},
		{"000002_create_carts.up.sql", &entity.Cart{}},
		{"000003_create_orders.up.sql", &entity.Order{}},
		{"000004_create_appointments.up.sql", &entity.Appointment{}},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			sqlCols, autoInc := sqlColumns(t, tc.file)
			entCols, pk := entityColumns(t, tc.model)

			sort.Strings(sqlCols)
			sort.Strings(entCols)
			if len(sqlCols) != len(entCols) {
				t.Fatalf("columns: sql %v vs entity %v", sqlCols, entCols)
			}
			for i := range sqlCols {
				if sqlCols[i] != entCols[i] {
					t.Errorf("column mismatch: sql %v vs entity %v", sqlCols, entCols)
					break
				}
			}

			if autoInc != pk {
				t.Errorf("auto-increment column = %q, entity primary key = %q", autoInc, pk)
			}
		})
	}
}
