package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	_ "github.com/jackc/pgx/v4/stdlib"
)

var (
	DB     *sql.DB
	DbUser = envOrDefault("CREDSTORE_TEST_DB_USER", "root")
	DbPass = envOrDefault("CREDSTORE_TEST_DB_PASS", "secret")
	DbHost = envOrDefault("CREDSTORE_TEST_DB_HOST", "127.0.0.1")
	DbPort = envOrDefault("CREDSTORE_TEST_DB_PORT", "5432")
	DbName = envOrDefault("CREDSTORE_TEST_DB_NAME", "credstore-db-test")
)

func SetupDB() error {
	db, err := createDBConnection()
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func ShutdownDB() error {
	if err := TruncateDB(); err != nil {
		return err
	}

	return DB.Close()
}

func TruncateDB() error {
	truncateQuery := `
          SELECT truncate_tables('%s')
 `
	formattedQuery := fmt.Sprintf(truncateQuery, DbUser)
	_, err := DB.ExecContext(context.Background(), formattedQuery)
	return err
}

// DbPortNumber returns the configured port as expected by postgresdb.DbConfig.
func DbPortNumber() int {
	port, _ := strconv.Atoi(DbPort)
	return port
}

func createDBConnection() (*sql.DB, error) {
	formattedURL := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s", DbUser, DbPass, DbHost, DbPort, DbName,
	)
	db, err := sql.Open("pgx", formattedURL)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, err
	}

	truncateFunctionQuery := `
	  CREATE OR REPLACE FUNCTION truncate_tables(username IN VARCHAR) RETURNS void AS $$
	  DECLARE
	      statements CURSOR FOR
		  SELECT tablename FROM pg_tables
		  WHERE tableowner = username AND schemaname = 'public' AND tablename NOT LIKE '%migrations';
	  BEGIN
	      FOR stmt IN statements LOOP
		  EXECUTE 'TRUNCATE TABLE ' || quote_ident(stmt.tablename) || ' CASCADE;';
	      END LOOP;
	  END;
	  $$ LANGUAGE plpgsql;
`

	if _, err = db.ExecContext(context.Background(), truncateFunctionQuery); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
