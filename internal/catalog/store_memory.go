package catalog

import "context"

// MemStore adapts a Service to the Store interface. Every product it returns
// is a detached copy, safe to encode while other requests mutate the catalog.
type MemStore struct {
	svc *Service
}

func NewMemStore(svc *Service) *MemStore {
	if svc == nil {
		svc = NewService()
	}
	return &MemStore{svc: svc}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) Add(ctx context.Context, name string, price float64) (Product, error) {
	p := s.svc.AddProduct(name, price)
	return s.svc.snapshot(p), nil
}

func (s *MemStore) List(ctx context.Context) ([]Product, error) {
	return s.svc.ListProducts(), nil
}

func (s *MemStore) Get(ctx context.Context, id uint64) (Product, bool, error) {
	p, ok := s.svc.Get(id)
	if !ok {
		return Product{}, false, nil
	}
	return s.svc.snapshot(p), true, nil
}

func (s *MemStore) FindByName(ctx context.Context, name string) (Product, bool, error) {
	p, ok := s.svc.FindByName(name)
	if !ok {
		return Product{}, false, nil
	}
	return s.svc.snapshot(p), true, nil
}

func (s *MemStore) Remove(ctx context.Context, id uint64) (bool, error) {
	return s.svc.RemoveProduct(id), nil
}

func (s *MemStore) Deactivate(ctx context.Context, id uint64) (Product, bool, error) {
	p, ok := s.svc.Get(id)
	if !ok || !s.svc.Deactivate(id) {
		return Product{}, false, nil
	}
	return s.svc.snapshot(p), true, nil
}

func (s *MemStore) Count(ctx context.Context) (int, error) {
	return s.svc.Len(), nil
}
