package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"zadachnik/models"
)

const queryTimeout = 10 * time.Second

// PostgresStore keeps tasks in a single Postgres table. "user" is a
// reserved word, hence the quoting in every statement.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func Open(dsn string) (*PostgresStore, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing DSN: %w", err)
	}

	config.MaxConns = 10
	config.MaxConnIdleTime = 20 * time.Second

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Test the connection
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Migrate creates the tasks table and applies the column additions
// idempotently, then backfills NULL status/category left by older
// schema versions.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id BIGSERIAL PRIMARY KEY,
			text TEXT NOT NULL,
			"user" BIGINT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			status TEXT NOT NULL DEFAULT 'New',
			category TEXT NOT NULL DEFAULT 'Unimportant'
		)`,
		`ALTER TABLE tasks ADD COLUMN IF NOT EXISTS status TEXT DEFAULT 'New'`,
		`ALTER TABLE tasks ADD COLUMN IF NOT EXISTS category TEXT DEFAULT 'Unimportant'`,
		`UPDATE tasks SET status = 'New' WHERE status IS NULL`,
		`UPDATE tasks SET category = 'Unimportant' WHERE category IS NULL`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying tasks migration: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) Add(ctx context.Context, text string, user int64, status, category string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `INSERT INTO tasks (text, "user", created_at, status, category)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`

	var id int64
	err := s.pool.QueryRow(ctx, stmt, text, user, time.Now().UTC(), status, category).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save task: %w", err)
	}
	return id, nil
}

func (s *PostgresStore) List(ctx context.Context, user int64) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `SELECT id, text, "user", created_at, status, category
		FROM tasks WHERE "user" = $1 ORDER BY id`

	rows, err := s.pool.Query(ctx, stmt, user)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t := models.Task{}
		if err := rows.Scan(&t.ID, &t.Text, &t.User, &t.CreatedAt, &t.Status, &t.Category); err != nil {
			return nil, fmt.Errorf("error scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error processing tasks: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) Get(ctx context.Context, id, user int64) (models.Task, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := `SELECT id, text, "user", created_at, status, category
		FROM tasks WHERE id = $1 AND "user" = $2`

	t := models.Task{}
	err := s.pool.QueryRow(ctx, stmt, id, user).Scan(&t.ID, &t.Text, &t.User, &t.CreatedAt, &t.Status, &t.Category)
	if err != nil {
		if err == pgx.ErrNoRows {
			return models.Task{}, false, nil
		}
		return models.Task{}, false, fmt.Errorf("error querying task: %w", err)
	}
	return t, true, nil
}

func (s *PostgresStore) Update(ctx context.Context, id, user int64, status, category *string) error {
	stmt, args, ok := updateStatement(id, user, status, category)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if _, err := s.pool.Exec(ctx, stmt, args...); err != nil {
		return fmt.Errorf("error updating task: %w", err)
	}
	return nil
}

// updateStatement builds the SET list from the supplied fields. ok is
// false when there is nothing to update.
func updateStatement(id, user int64, status, category *string) (string, []any, bool) {
	sets := []string{}
	args := []any{}

	if status != nil {
		args = append(args, *status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if category != nil {
		args = append(args, *category)
		sets = append(sets, fmt.Sprintf("category = $%d", len(args)))
	}
	if len(sets) == 0 {
		return "", nil, false
	}

	args = append(args, id, user)
	stmt := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d AND "user" = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))
	return stmt, args, true
}
