package memory

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/clinic"
)

type recordRepo struct {
	s *Store
}

func (r *recordRepo) Create(ctx context.Context, m clinic.MedicalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return ErrIDRequired
	}
	if _, exists := r.s.records[m.ID]; exists {
		return ErrDuplicateID
	}
	if _, ok := r.s.pets[m.PetID]; !ok {
		return ErrMissingParent
	}
	r.s.records[m.ID] = m.Bare()
	return nil
}

func (r *recordRepo) Update(ctx context.Context, m clinic.MedicalRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.records[m.ID]; !exists {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.pets[m.PetID]; !ok {
		return ErrMissingParent
	}
	r.s.records[m.ID] = m.Bare()
	return nil
}

func (r *recordRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.records[id]; !exists {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	delete(r.s.records, id)
	return clinic.DeleteResult{MedicalRecords: 1}, nil
}

func (r *recordRepo) GetByID(ctx context.Context, id string) (clinic.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.records[id]
	if !ok {
		return clinic.MedicalRecord{}, clinic.ErrNotFound
	}
	return m, nil
}

func (r *recordRepo) GetWithRelations(ctx context.Context, id string) (clinic.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.records[id]
	if !ok {
		return clinic.MedicalRecord{}, clinic.ErrNotFound
	}
	m.Pet = r.s.petWithClient(m.PetID)
	return m, nil
}

func (r *recordRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.MedicalRecord, 0, len(r.s.records))
	pets := map[string]*clinic.Pet{}
	for _, m := range r.s.records {
		if withRelations {
			p, ok := pets[m.PetID]
			if !ok {
				p = r.s.petWithClient(m.PetID)
				pets[m.PetID] = p
			}
			m.Pet = p
		}
		out = append(out, m)
	}
	sortRecords(out, order)
	return out, nil
}

func (r *recordRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.records), nil
}
