package memory

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/clinic"
)

type petRepo struct {
	s *Store
}

func (r *petRepo) Create(ctx context.Context, p clinic.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return ErrIDRequired
	}
	if _, exists := r.s.pets[p.ID]; exists {
		return ErrDuplicateID
	}
	// FK: el cliente pudo borrarse entre la validación y el insert
	if _, ok := r.s.clients[p.ClientID]; !ok {
		return ErrMissingParent
	}
	r.s.pets[p.ID] = p.Bare()
	return nil
}

func (r *petRepo) Update(ctx context.Context, p clinic.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[p.ID]; !exists {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.clients[p.ClientID]; !ok {
		return ErrMissingParent
	}
	r.s.pets[p.ID] = p.Bare()
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.pets[id]; !exists {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	var res clinic.DeleteResult
	r.s.deletePet(id, &res)
	return res, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return clinic.Pet{}, clinic.ErrNotFound
	}
	return p.Bare(), nil
}

func (r *petRepo) GetWithRelations(ctx context.Context, id string) (clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p := r.s.petWithClient(id)
	if p == nil {
		return clinic.Pet{}, clinic.ErrNotFound
	}
	p.Appointments = r.s.appointmentsOf(id)
	p.MedicalRecords = r.s.recordsOf(id)
	return *p, nil
}

func (r *petRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Pet, 0, len(r.s.pets))
	for id, p := range r.s.pets {
		if withRelations {
			out = append(out, *r.s.petWithClient(id))
			continue
		}
		out = append(out, p.Bare())
	}
	sortPets(out, order)
	return out, nil
}

func (r *petRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.pets[id]
	return ok, nil
}

func (r *petRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.pets), nil
}
