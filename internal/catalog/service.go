package catalog

import "sync"

// Service owns an insertion-ordered set of products and the id counter.
//
// Mutations (AddProduct, RemoveProduct, Deactivate) hold the writer lock;
// lookups hold the reader lock. Pointers handed out by AddProduct, FindByName
// and Get read through to the stored product. Callers sharing a Service across
// goroutines must not mutate through them and should deactivate via
// Service.Deactivate instead.
type Service struct {
	mu       sync.RWMutex
	products []*Product
	nextID   uint64
}

func NewService() *Service {
	return &Service{nextID: 1}
}

func (s *Service) AddProduct(name string, price float64) *Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := NewProduct(s.nextID, name, price)
	s.nextID++
	s.products = append(s.products, &p)
	return &p
}

// FindByName returns the first product, in insertion order, whose name equals
// name exactly. Inactive products are matched too.
func (s *Service) FindByName(name string) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// ListProducts returns a snapshot of every product in insertion order.
// Later mutations of the service are not reflected in the returned slice.
func (s *Service) ListProducts() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	for i, p := range s.products {
		out[i] = *p
	}
	return out
}

// RemoveProduct deletes the product with the given id, keeping the order of
// the rest. Removed ids are never handed out again.
func (s *Service) RemoveProduct(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	copy(s.products[i:], s.products[i+1:])
	s.products[len(s.products)-1] = nil
	s.products = s.products[:len(s.products)-1]
	return true
}

func (s *Service) Deactivate(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products[i].Deactivate()
	return true
}

func (s *Service) Get(id uint64) (*Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return s.products[i], true
}

func (s *Service) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// indexOf must be called with s.mu held.
func (s *Service) indexOf(id uint64) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// snapshot copies p under the reader lock so the copy does not race with a
// concurrent Deactivate.
func (s *Service) snapshot(p *Product) Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *p
}
