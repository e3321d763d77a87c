package models

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// All lists every persisted model in dependency order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Application{},
		&ApplicationNote{},
		&Tag{},
		&ApplicationTag{},
	}
}

// Migrate creates or alters the tables for every model.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{SkipDefaultTransaction: true, PrepareStmt: false})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto-migrate models: %w", err)
	}
	return nil
}

// GenerateModels migrates the schema, reports unmapped columns and writes
// typed query helpers to outPath.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(User{}, Application{}, ApplicationNote{}, Tag{}, ApplicationTag{})

	log.Info().Msg("Migrating models...")
	if err := Migrate(db); err != nil {
		return err
	}

	report, err := ColumnMismatchReport(db)
	if err != nil {
		return err
	}
	for table, columns := range report {
		log.Warn().Str("table", table).Strs("columns", columns).Msg("columns not mapped by model")
	}

	g.Execute()
	log.Info().Str("outPath", outPath).Msg("Model generation complete")
	return nil
}

// ColumnMismatchReport maps each table to the database columns that no model field accounts for.
// Tables that do not exist yet are skipped.
func ColumnMismatchReport(db *gorm.DB) (map[string][]string, error) {
	report := make(map[string][]string)
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(table) {
			continue
		}
		dbColumns, err := tableColumns(db, table)
		if err != nil {
			return nil, err
		}
		if missing := unmappedColumns(dbColumns, modelColumns(stmt.Schema)); len(missing) > 0 {
			report[table] = missing
		}
	}
	return report, nil
}

func tableColumns(db *gorm.DB, table string) ([]string, error) {
	types, err := db.Migrator().ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("read columns of %s: %w", table, err)
	}
	columns := make([]string, 0, len(types))
	for _, ct := range types {
		columns = append(columns, ct.Name())
	}
	return columns, nil
}

func modelColumns(s *schema.Schema) []string {
	var columns []string
	for _, field := range s.Fields {
		if field.DBName == "" || field.DataType == "" {
			continue
		}
		columns = append(columns, field.DBName)
	}
	return columns
}

// unmappedColumns returns the entries of dbColumns absent from modelColumns, compared case-insensitively.
func unmappedColumns(dbColumns, modelColumns []string) []string {
	known := make(map[string]bool, len(modelColumns))
	for _, c := range modelColumns {
		known[strings.ToLower(c)] = true
	}
	var missing []string
	for _, c := range dbColumns {
		if !known[strings.ToLower(c)] {
			missing = append(missing, c)
		}
	}
	return missing
}
