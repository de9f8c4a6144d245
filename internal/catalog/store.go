package catalog

import "context"

type Store interface {
	Ping(ctx context.Context) error
	Add(ctx context.Context, name string, price float64) (Product, error)
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id uint64) (Product, bool, error)
	FindByName(ctx context.Context, name string) (Product, bool, error)
	Remove(ctx context.Context, id uint64) (bool, error)
	Deactivate(ctx context.Context, id uint64) (Product, bool, error)
	Count(ctx context.Context) (int, error)
}
