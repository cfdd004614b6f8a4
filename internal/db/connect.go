package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Driver string

const (
	DriverMongo    Driver = "mongo"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// OpenSQL opens a relational DB and ensures schema exists.
func OpenSQL(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:studyforge.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/studyforge?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported sql driver: %s", driver)
	}

	dbh, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := dbh.PingContext(ctx); err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, dbh); err != nil {
		return nil, err
	}
	return dbh, nil
}

// OpenMongo connects to the document database and verifies reachability.
func OpenMongo(ctx context.Context, uri, dbName string) (*mongo.Database, error) {
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	if dbName == "" {
		dbName = "studyforge"
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client.Database(dbName), nil
}

func ensureSchema(ctx context.Context, dbh *sql.DB) error {
	_, err := dbh.ExecContext(ctx, schema)
	return err
}

// Shared sqlite/postgres schema; list-shaped fields live in JSON columns.
const schema = `
CREATE TABLE IF NOT EXISTS subjects (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS courses (
  id TEXT PRIMARY KEY,
  subject_id TEXT NOT NULL,
  name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS bank_questions (
  id TEXT PRIMARY KEY,
  subject_id TEXT NOT NULL,
  text TEXT NOT NULL,
  type TEXT NOT NULL,
  options_json TEXT NOT NULL,
  correct_json TEXT NOT NULL,
  points REAL NOT NULL DEFAULT 1,
  explanation TEXT NOT NULL DEFAULT '',
  images_json TEXT NOT NULL DEFAULT 'null',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS quizzes (
  id TEXT PRIMARY KEY,
  course_id TEXT NOT NULL,
  subject_id TEXT NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT '',
  start_time BIGINT NOT NULL,
  end_time BIGINT NOT NULL,
  shuffle_questions BOOLEAN NOT NULL DEFAULT FALSE,
  is_published BOOLEAN NOT NULL DEFAULT FALSE,
  questions_json TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
