package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is the in-memory store behind the fake remote API.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the given models.
func NewDb(models ...any) *Db {
	if db == nil {
		once.Do(
			func() {
				db = open(models)
			},
		)
	}

	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err = newDbMock.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB drops and recreates every table.
func (d *Db) ClearDB() error {
	if err := d.DbConn.Migrator().DropTable(d.models...); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}
	return nil
}

// Count returns how many rows of model match the given column values.
func (d *Db) Count(model any, criteria map[string]any) (int64, error) {
	var count int64
	query := d.DbConn.Model(model)
	if len(criteria) > 0 {
		query = query.Where(criteria)
	}
	err := query.Count(&count).Error
	return count, err
}
