package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
)

var _ repository.CarRepository = (*CarRepository)(nil)

type CarRepository struct {
	cars  map[string]entity.Car
	order []string
	lock  sync.RWMutex
}

func NewCarRepository() *CarRepository {
	return &CarRepository{cars: make(map[string]entity.Car)}
}

func (r *CarRepository) List(_ context.Context, f entity.CarFilter) ([]entity.Car, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]entity.Car, 0, len(r.order))
	for _, id := range r.order {
		c := r.cars[id]
		if f.Type != "" && c.Type != f.Type {
			continue
		}
		if f.AvailableOnly && !c.Available {
			continue
		}
		out = append(out, c)
	}
	// featured first, insertion order otherwise
	sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	return out, nil
}

func (r *CarRepository) GetByID(_ context.Context, id string) (*entity.Car, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	c, ok := r.cars[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &c, nil
}

func (r *CarRepository) Create(_ context.Context, c *entity.Car) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now
	r.cars[c.ID] = *c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *CarRepository) UpdateImage(_ context.Context, id, imageURL string) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	c, ok := r.cars[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.ImageURL = imageURL
	c.UpdatedAt = time.Now().UTC()
	r.cars[id] = c
	return nil
}

func (r *CarRepository) Count(_ context.Context) (int, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()
	return len(r.cars), nil
}
