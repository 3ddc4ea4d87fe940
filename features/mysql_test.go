package features

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/suite"

	"github.com/hellofresh/catalog-seeder/pkg/config"
	"github.com/hellofresh/catalog-seeder/pkg/seed"
	"github.com/hellofresh/catalog-seeder/pkg/storage"
	"github.com/hellofresh/catalog-seeder/pkg/storage/engine"
	_ "github.com/hellofresh/catalog-seeder/pkg/storage/mysql"
)

type MysqlTestSuite struct {
	suite.Suite
	rootDSN        string
	rootConnection *sql.DB
	databases      []string
	timeout        time.Duration
}

func TestMysqlTestSuite(t *testing.T) {
	s := &MysqlTestSuite{timeout: time.Second * 3}
	suite.Run(t, s)
}

func (s *MysqlTestSuite) TestSeed() {
	targetDSN := s.createDatabase("catalog_seed")
	s.loadFixture(targetDSN, "mysql_catalog.sql")

	catalog, err := seed.Build(&config.Spec{Locale: "de", Edition: seed.EditionMinimal, Strict: true, FakeProducts: 250})
	s.Require().NoError(err, "Unable to build catalog")

	store, err := storage.NewStore(storage.ConnOpts{DSN: "mysql://" + targetDSN, Timeout: s.timeout, MaxConns: 4, BatchSize: 50})
	s.Require().NoError(err, "Unable to create store")
	defer func() {
		err := store.Close()
		s.Assert().NoError(err)
	}()

	sets := catalog.Sets()
	s.Require().NoError(engine.New(store).Seed(context.Background(), sets, 4), "Failed to seed")

	conn, err := sql.Open("mysql", targetDSN)
	s.Require().NoError(err, "Unable to connect to target db")
	defer func() {
		err := conn.Close()
		s.Assert().NoError(err)
	}()

	for _, set := range sets {
		s.Assert().Equal(len(set.Rows), s.count(conn, set.Table), set.Table)
	}

	var name string
	s.Require().NoError(conn.QueryRow("SELECT name FROM specification_attributes WHERE display_order = 3").Scan(&name))
	s.Assert().Equal("Arbeitsspeicher", name)
}

func (s *MysqlTestSuite) SetupSuite() {
	rootDSN, ok := os.LookupEnv("TEST_MYSQL")
	if !ok {
		s.T().Skip("TEST_MYSQL env is not defined")
	}

	rootCfg, err := mysql.ParseDSN(rootDSN)
	s.Require().NoError(err, "TEST_MYSQL failed to parse")
	rootCfg.MultiStatements = true

	s.rootDSN = rootCfg.FormatDSN()
	s.rootConnection, err = sql.Open("mysql", rootDSN)
	s.Require().NoError(err, "Failed to connect to mysql")
	s.Require().NoError(s.rootConnection.Ping(), "Failed to ping mysql")
}

func (s *MysqlTestSuite) TearDownSuite() {
	for _, db := range s.databases {
		s.dropDatabase(db)
	}

	err := s.rootConnection.Close()
	s.Assert().NoError(err)
}

func (s *MysqlTestSuite) createDatabase(name string) string {
	s.databases = append(s.databases, name)

	s.dropDatabase(name)

	_, err := s.rootConnection.Exec(fmt.Sprintf("CREATE DATABASE %s CHARACTER SET utf8mb4", name))
	s.Require().NoError(err, "Unable to create db")

	dbURL, _ := mysql.ParseDSN(s.rootDSN)
	dbURL.DBName = name

	return dbURL.FormatDSN()
}

func (s *MysqlTestSuite) dropDatabase(name string) {
	_, err := s.rootConnection.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", name))
	s.NoError(err, "Unable to drop db")
}

func (s *MysqlTestSuite) loadFixture(dsn string, file string) {
	data, err := os.ReadFile(path.Join("../fixtures/", file))
	s.Require().NoError(err, "Unable to load fixture file")

	conn, err := sql.Open("mysql", dsn)
	s.Require().NoError(err, "Unable to open db connection to load fixture")
	defer func() {
		err := conn.Close()
		s.Assert().NoError(err)
	}()

	_, err = conn.Exec(string(data))
	s.Require().NoError(err, "Unable to execute fixture")
}

func (s *MysqlTestSuite) count(conn *sql.DB, table string) int {
	var count int
	err := conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM `%s`", table)).Scan(&count)
	s.Require().NoError(err, "Unable to count rows")

	return count
}
