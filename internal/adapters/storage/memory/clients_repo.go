package memory

import (
	"context"
	"strings"

	"vet-clinic/internal/domain/clinic"
)

type clientRepo struct {
	s *Store
}

func (r *clientRepo) Create(ctx context.Context, c clinic.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return ErrIDRequired
	}
	if _, exists := r.s.clients[c.ID]; exists {
		return ErrDuplicateID
	}
	r.s.clients[c.ID] = c.Bare()
	return nil
}

func (r *clientRepo) Update(ctx context.Context, c clinic.Client) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[c.ID]; !exists {
		return clinic.ErrNotFound
	}
	r.s.clients[c.ID] = c.Bare()
	return nil
}

func (r *clientRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.clients[id]; !exists {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	var res clinic.DeleteResult
	for pid, p := range r.s.pets {
		if p.ClientID == id {
			r.s.deletePet(pid, &res)
		}
	}
	delete(r.s.clients, id)
	res.Clients = 1
	return res, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id string) (clinic.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clinic.Client{}, clinic.ErrNotFound
	}
	return c, nil
}

func (r *clientRepo) GetWithRelations(ctx context.Context, id string) (clinic.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.clients[id]
	if !ok {
		return clinic.Client{}, clinic.ErrNotFound
	}
	return r.load(c), nil
}

// load completa Pets -> Appointments/MedicalRecords (lock tomado).
func (r *clientRepo) load(c clinic.Client) clinic.Client {
	c.Pets = r.s.petsOf(c.ID)
	for i := range c.Pets {
		c.Pets[i].Appointments = r.s.appointmentsOf(c.Pets[i].ID)
		c.Pets[i].MedicalRecords = r.s.recordsOf(c.Pets[i].ID)
	}
	return c
}

func (r *clientRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]clinic.Client, 0, len(r.s.clients))
	for _, c := range r.s.clients {
		if withRelations {
			c = r.load(c)
		}
		out = append(out, c)
	}
	sortClients(out, order)
	return out, nil
}

func (r *clientRepo) ListAppointments(ctx context.Context, clientID string) ([]clinic.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.clients[clientID]; !ok {
		return nil, clinic.ErrNotFound
	}

	out := make([]clinic.Appointment, 0)
	for _, p := range r.s.petsOf(clientID) {
		pet := r.s.petWithClient(p.ID)
		for _, a := range r.s.appointmentsOf(p.ID) {
			a.Pet = pet
			out = append(out, a)
		}
	}
	sortAppointments(out, clinic.DefaultAppointmentOrder)
	return out, nil
}

func (r *clientRepo) ListMedicalRecords(ctx context.Context, clientID string) ([]clinic.MedicalRecord, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if _, ok := r.s.clients[clientID]; !ok {
		return nil, clinic.ErrNotFound
	}

	out := make([]clinic.MedicalRecord, 0)
	for _, p := range r.s.petsOf(clientID) {
		pet := r.s.petWithClient(p.ID)
		for _, m := range r.s.recordsOf(p.ID) {
			m.Pet = pet
			out = append(out, m)
		}
	}
	sortRecords(out, clinic.DefaultMedicalRecordOrder)
	return out, nil
}

func (r *clientRepo) Exists(ctx context.Context, id string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.clients[id]
	return ok, nil
}

func (r *clientRepo) Count(ctx context.Context) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.clients), nil
}
