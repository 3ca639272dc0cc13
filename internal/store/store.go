// Package store persists finished games to Postgres.
package store

import (
	"context"
	"embed"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schema embed.FS

type DB struct{ *pgxpool.Pool }

func Open(ctx context.Context, dsn string) (*DB, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &DB{p}, nil
}

func (db *DB) Close()                         { db.Pool.Close() }
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func Migrate(ctx context.Context, db *DB) error {
	sqlBytes, err := schema.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	_, err = db.Exec(ctx, string(sqlBytes))
	return err
}

// Result is one finished or abandoned game.
type Result struct {
	ID         int64     `json:"id"`
	TableID    string    `json:"table_id"`
	Won        bool      `json:"won"`
	Moves      int       `json:"moves"`
	CardsHome  int       `json:"cards_home"`
	Remaining  int       `json:"remaining"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// RecordResult inserts r and returns its id.
func (db *DB) RecordResult(ctx context.Context, r Result) (int64, error) {
	var id int64
	err := db.QueryRow(ctx, `
		INSERT INTO game_results(table_id, won, moves, cards_home, remaining, started_at, finished_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id
	`, r.TableID, r.Won, r.Moves, r.CardsHome, r.Remaining, r.StartedAt, r.FinishedAt).Scan(&id)
	return id, err
}

// RecentResults returns up to limit results, newest first.
func (db *DB) RecentResults(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := db.Query(ctx, `
		SELECT id, table_id::text, won, moves, cards_home, remaining, started_at, finished_at
		  FROM game_results
		 ORDER BY finished_at DESC
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[Result])
}
