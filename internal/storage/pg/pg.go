package pg

import (
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/RigobertoEHA1/chismezon/internal/config"
)

//go:embed migrations/init.sql
var schema string

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	slog.Info("Connecting to db")
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	slog.Info("Successfully connected to db")
	return &Storage{db}, nil
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// Bootstrap creates the tables if they do not exist yet.
func (s *Storage) Bootstrap() error {
	_, err := s.db.Exec(schema)
	return err
}

func (s *Storage) Ping() error {
	return s.db.Ping()
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
