package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/herdpulse/config"
)

var testPostgres = config.PostgresConfig{User: "u", Password: "p", Host: "h", Port: 5432, DBName: "herdpulse", SSLMode: "disable"}

func TestInitPostgres(t *testing.T) {
	cases := []struct {
		name    string
		opener  func(t *testing.T) func(string, string) (*sql.DB, error)
		wantErr bool
	}{
		{
			name: "open error",
			opener: func(t *testing.T) func(string, string) (*sql.DB, error) {
				return func(string, string) (*sql.DB, error) { return nil, errors.New("open failed") }
			},
			wantErr: true,
		},
		{
			name: "ping error closes the pool",
			opener: func(t *testing.T) func(string, string) (*sql.DB, error) {
				return func(string, string) (*sql.DB, error) {
					db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
					if err != nil {
						t.Fatalf("sqlmock new: %v", err)
					}
					mock.ExpectPing().WillReturnError(errors.New("ping failed"))
					mock.ExpectClose()
					t.Cleanup(func() {
						if err := mock.ExpectationsWereMet(); err != nil {
							t.Errorf("unmet expectations: %v", err)
						}
					})
					return db, nil
				}
			},
			wantErr: true,
		},
		{
			name: "success uses the configured dsn",
			opener: func(t *testing.T) func(string, string) (*sql.DB, error) {
				return func(driver, dsn string) (*sql.DB, error) {
					if driver != "postgres" || dsn != testPostgres.DSN() {
						t.Fatalf("unexpected open(%q, %q)", driver, dsn)
					}
					db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
					if err != nil {
						t.Fatalf("sqlmock new: %v", err)
					}
					mock.ExpectPing()
					t.Cleanup(func() { _ = db.Close() })
					return db, nil
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			old := sqlOpener
			sqlOpener = tc.opener(t)
			t.Cleanup(func() { sqlOpener = old })

			db, err := InitPostgres(config.Config{Postgres: testPostgres})
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil || db == nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
