package backup

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Catalog хранит журнал операций с бэкапами
type Catalog interface {
	Record(ctx context.Context, e Event) error
	List(ctx context.Context, limit int) ([]Event, error)
}

// SQLiteCatalog держит журнал в отдельной базе SQLite рядом с архивами:
// восстановление основной базы не должно стирать историю восстановлений.
type SQLiteCatalog struct {
	db *sql.DB
}

func NewSQLiteCatalog(path string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	c := &SQLiteCatalog{db: db}
	if err := c.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init catalog tables: %w", err)
	}

	return c, nil
}

func (c *SQLiteCatalog) initTables() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS backup_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			action TEXT NOT NULL,
			filename TEXT NOT NULL,
			actor TEXT NOT NULL,
			success BOOLEAN NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_backup_events_filename ON backup_events(filename);
	`)
	return err
}

func (c *SQLiteCatalog) Record(ctx context.Context, e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO backup_events (action, filename, actor, success, detail, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(e.Action), e.Filename, e.Actor, e.Success, e.Detail, e.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("record backup event: %w", err)
	}
	return nil
}

func (c *SQLiteCatalog) List(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT id, action, filename, actor, success, detail, created_at
		 FROM backup_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query backup events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0)
	for rows.Next() {
		var (
			e      Event
			action string
		)
		if err := rows.Scan(&e.ID, &action, &e.Filename, &e.Actor, &e.Success, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan backup event: %w", err)
		}
		e.Action = Action(action)
		events = append(events, e)
	}

	return events, rows.Err()
}

func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}

type nopCatalog struct{}

func (nopCatalog) Record(context.Context, Event) error        { return nil }
func (nopCatalog) List(context.Context, int) ([]Event, error) { return []Event{}, nil }
