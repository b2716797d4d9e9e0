package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"goldkeeper/internal/domain/worktype"
)

type WorkTypeRepository struct {
	pool DBTX
	log  *slog.Logger
}

func NewWorkTypeRepository(pool DBTX, log *slog.Logger) *WorkTypeRepository {
	return &WorkTypeRepository{
		pool: pool,
		log:  log.With(slog.String("component", "worktype_repository")),
	}
}

func (r *WorkTypeRepository) List(ctx context.Context) ([]worktype.WorkType, error) {
	const query = `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM work_types
		ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.log.Error("failed to list work types", slog.Any("error", err))
		return nil, fmt.Errorf("list work types: %w", err)
	}
	defer rows.Close()

	items := make([]worktype.WorkType, 0)
	for rows.Next() {
		var wt worktype.WorkType
		if err := rows.Scan(&wt.ID, &wt.Name, &wt.Description, &wt.IsActive, &wt.CreatedAt, &wt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan work type: %w", err)
		}
		items = append(items, wt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate work types: %w", err)
	}
	return items, nil
}

func (r *WorkTypeRepository) FindByID(ctx context.Context, id int) (worktype.WorkType, error) {
	const query = `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM work_types
		WHERE id = $1`

	var wt worktype.WorkType
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&wt.ID, &wt.Name, &wt.Description, &wt.IsActive, &wt.CreatedAt, &wt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worktype.WorkType{}, worktype.ErrNotFound
		}
		return worktype.WorkType{}, fmt.Errorf("find work type: %w", err)
	}
	return wt, nil
}

func (r *WorkTypeRepository) Create(ctx context.Context, wt worktype.WorkType) (int, error) {
	const query = `
		INSERT INTO work_types (name, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id`

	var id int
	if err := r.pool.QueryRow(ctx, query, wt.Name, wt.Description, wt.IsActive).Scan(&id); err != nil {
		if isUniqueViolation(err) {
			return 0, worktype.ErrDuplicateName
		}
		r.log.Error("failed to create work type", slog.String("name", wt.Name), slog.Any("error", err))
		return 0, fmt.Errorf("create work type: %w", err)
	}
	return id, nil
}

func (r *WorkTypeRepository) Update(ctx context.Context, wt worktype.WorkType) error {
	const query = `
		UPDATE work_types
		SET name = $2, description = $3, is_active = $4, updated_at = NOW()
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, wt.ID, wt.Name, wt.Description, wt.IsActive)
	if err != nil {
		if isUniqueViolation(err) {
			return worktype.ErrDuplicateName
		}
		return fmt.Errorf("update work type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worktype.ErrNotFound
	}
	return nil
}

func (r *WorkTypeRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM work_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete work type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return worktype.ErrNotFound
	}
	return nil
}
