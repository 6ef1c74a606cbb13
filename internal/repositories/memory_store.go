package repositories

import (
	"context"
	"sort"
	"sync"

	"cucisepatu/internal/domain"
	"cucisepatu/internal/domain/models"
)

// MemoryStore keeps orders in process memory. It honours the same contract
// as OrderRepository and is used for tests and DB_DRIVER=memory.
type MemoryStore struct {
	mu     sync.Mutex
	rows   map[int64]models.ServiceOrder
	nextID int64
	fail   error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[int64]models.ServiceOrder{}}
}

// FailWith makes every following call return err as a store failure.
// Pass nil to recover.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

func (s *MemoryStore) failure(op string) error {
	if s.fail == nil {
		return nil
	}
	return domain.WrapStore(op, s.fail)
}

func (s *MemoryStore) List(_ context.Context, filter models.OrderFilter) ([]models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("list"); err != nil {
		return nil, err
	}

	out := make([]models.ServiceOrder, 0, len(s.rows))
	for _, o := range s.rows {
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, copyOrder(o))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetByID(_ context.Context, id int64) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("get"); err != nil {
		return models.ServiceOrder{}, err
	}
	o, ok := s.rows[id]
	if !ok {
		return models.ServiceOrder{}, notFound(id)
	}
	return copyOrder(o), nil
}

func (s *MemoryStore) Create(_ context.Context, in models.NewServiceOrder) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("insert"); err != nil {
		return models.ServiceOrder{}, err
	}
	s.nextID++
	o := copyOrder(models.ServiceOrder{
		ID:             s.nextID,
		Nama:           in.Nama,
		Status:         in.Status,
		TanggalMasuk:   in.TanggalMasuk,
		TanggalSelesai: in.TanggalSelesai,
	})
	s.rows[o.ID] = o
	return copyOrder(o), nil
}

func (s *MemoryStore) Update(_ context.Context, id int64, patch models.OrderPatch) (models.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("update"); err != nil {
		return models.ServiceOrder{}, err
	}
	o, ok := s.rows[id]
	if !ok {
		return models.ServiceOrder{}, notFound(id)
	}
	o = patch.Apply(o)
	s.rows[id] = o
	return copyOrder(o), nil
}

func (s *MemoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("delete"); err != nil {
		return err
	}
	if _, ok := s.rows[id]; !ok {
		return notFound(id)
	}
	delete(s.rows, id)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failure("ping")
}

func copyOrder(o models.ServiceOrder) models.ServiceOrder {
	if o.TanggalSelesai != nil {
		v := *o.TanggalSelesai
		o.TanggalSelesai = &v
	}
	return o
}
