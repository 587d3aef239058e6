//go:build integration

package testingh

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gatherly/community-service/internal/store"
)

// DBSuite runs repository tests against a private in-memory database.
type DBSuite struct {
	ContextSuite

	DBPrefix string
	Database *store.Database
}

func NewDBSuite(dbPrefix string) DBSuite {
	return DBSuite{DBPrefix: dbPrefix}
}

func (ds *DBSuite) SetupSuite() {
	ds.ContextSuite.SetupSuite()

	// A unique name per suite keeps parallel suites isolated.
	db := ds.DBPrefix + strings.ReplaceAll(uuid.New().String(), "-", "")
	ds.T().Logf("database: %s", db)

	conn, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", db)), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	ds.Require().NoError(err)

	ds.Database = store.NewDatabase(conn)
}

func (ds *DBSuite) TearDownSuite() {
	ds.NoError(ds.Database.Close())
	ds.ContextSuite.TearDownSuite()
}
