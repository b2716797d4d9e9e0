package worktype

import "context"

type Repository interface {
	List(ctx context.Context) ([]WorkType, error)
	FindByID(ctx context.Context, id int) (WorkType, error)
	Create(ctx context.Context, wt WorkType) (int, error)
	Update(ctx context.Context, wt WorkType) error
	Delete(ctx context.Context, id int) error
}
