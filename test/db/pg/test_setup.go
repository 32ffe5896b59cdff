package pgtest

import (
	"context"

	"github.com/stretchr/testify/suite"
	"github.com/vulpemventures/credstore/internal/core/ports"
	postgresdb "github.com/vulpemventures/credstore/internal/infrastructure/storage/db/postgres"
	"github.com/vulpemventures/credstore/test/testutil"
)

var (
	ctx = context.Background()

	pgRepoManager ports.RepoManager
)

type PgDbTestSuite struct {
	suite.Suite
}

func (p *PgDbTestSuite) SetupSuite() {
	// Integration suite: requires a reachable postgres instance.
	if err := testutil.SetupDB(); err != nil {
		p.T().Skipf("postgres not reachable: %s", err)
	}

	pg, err := postgresdb.NewRepoManager(postgresdb.DbConfig{
		DbUser:     testutil.DbUser,
		DbPassword: testutil.DbPass,
		DbHost:     testutil.DbHost,
		DbPort:     testutil.DbPortNumber(),
		DbName:     testutil.DbName,
		MigrationSourceURL: "file://../../.." +
			"/internal/infrastructure/storage/db/postgres/migration",
	})
	if err != nil {
		p.FailNow(err.Error())
	}

	pgRepoManager = pg
}

func (p *PgDbTestSuite) TearDownSuite() {
	if pgRepoManager != nil {
		pgRepoManager.Close()
	}
	if testutil.DB == nil {
		return
	}
	if err := testutil.ShutdownDB(); err != nil {
		p.FailNow(err.Error())
	}
}

func (p *PgDbTestSuite) BeforeTest(suiteName, testName string) {
	if err := testutil.TruncateDB(); err != nil {
		p.FailNow(err.Error())
	}
}

func (p *PgDbTestSuite) AfterTest(suiteName, testName string) {}
