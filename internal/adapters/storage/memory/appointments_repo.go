package memory

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/clinic"
)

type appointmentRepo struct {
	s *Store
}

func (r *appointmentRepo) Create(ctx context.Context, a clinic.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return ErrIDRequired
	}
	if _, exists := r.s.appointments[a.ID]; exists {
		return ErrDuplicateID
	}
	if _, ok := r.s.pets[a.PetID]; !ok {
		return ErrMissingParent
	}
	r.s.appointments[a.ID] = a.Bare()
	return nil
}

func (r *appointmentRepo) Update(ctx context.Context, a clinic.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.appointments[a.ID]; !exists {
		return clinic.ErrNotFound
	}
	if _, ok := r.s.pets[a.PetID]; !ok {
		return ErrMissingParent
	}
	r.s.appointments[a.ID] = a.Bare()
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.appointments[id]; !exists {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	delete(r.s.appointments, id)
	return clinic.DeleteResult{Appointments: 1}, nil
}

func (r *appointmentRepo) GetByID(ctx context.Context, id string) (clinic.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return clinic.Appointment{}, clinic.ErrNotFound
	}
	return a, nil
}

func (r *appointmentRepo) GetWithRelations(ctx context.Context, id string) (clinic.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.appointments[id]
	if !ok {
		return clinic.Appointment{}, clinic.ErrNotFound
	}
	a.Pet = r.s.petWithClient(a.PetID)
	return a, nil
}

func (r *appointmentRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(order, withRelations, 0), nil
}

func (r *appointmentRepo) ListRecent(ctx context.Context, n int) ([]clinic.Appointment, error) {
	if n <= 0 {
		return []clinic.Appointment{}, nil
	}

	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return r.list(clinic.DefaultAppointmentOrder, true, n), nil
}

// list con limit <= 0 devuelve todo (lock tomado).
func (r *appointmentRepo) list(order clinic.Order, withRelations bool, limit int) []clinic.Appointment {
	out := make([]clinic.Appointment, 0, len(r.s.appointments))
	for _, a := range r.s.appointments {
		out = append(out, a)
	}
	sortAppointments(out, order)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	if withRelations {
		// una copia de la mascota por pet_id
		pets := map[string]*clinic.Pet{}
		for i := range out {
			p, ok := pets[out[i].PetID]
			if !ok {
				p = r.s.petWithClient(out[i].PetID)
				pets[out[i].PetID] = p
			}
			out[i].Pet = p
		}
	}
	return out
}

func (r *appointmentRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.appointments), nil
}
