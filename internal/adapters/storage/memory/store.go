package memory

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/domain/medicalrecords"
	"vet-clinic/internal/domain/pets"
)

var (
	ErrMissingParent = fmt.Errorf("memory: %w", clinic.ErrMissingParent)
	ErrDuplicateID   = errors.New("memory: id already exists")
	ErrIDRequired    = errors.New("memory: id required")
)

// Store guarda las cuatro entidades bajo un único lock: los deletes en cascada
// y las lecturas con relaciones ven un estado consistente.
type Store struct {
	mu           sync.RWMutex
	clients      map[string]clinic.Client
	pets         map[string]clinic.Pet
	appointments map[string]clinic.Appointment
	records      map[string]clinic.MedicalRecord
}

func NewStore() *Store {
	return &Store{
		clients:      make(map[string]clinic.Client),
		pets:         make(map[string]clinic.Pet),
		appointments: make(map[string]clinic.Appointment),
		records:      make(map[string]clinic.MedicalRecord),
	}
}

func (s *Store) Clients() clients.Repository               { return &clientRepo{s: s} }
func (s *Store) Pets() pets.Repository                     { return &petRepo{s: s} }
func (s *Store) Appointments() appointments.Repository     { return &appointmentRepo{s: s} }
func (s *Store) MedicalRecords() medicalrecords.Repository { return &recordRepo{s: s} }

// --- helpers (requieren el lock tomado) ---

func (s *Store) petsOf(clientID string) []clinic.Pet {
	out := make([]clinic.Pet, 0)
	for _, p := range s.pets {
		if p.ClientID == clientID {
			out = append(out, p.Bare())
		}
	}
	sortPets(out, clinic.DefaultPetOrder)
	return out
}

func (s *Store) appointmentsOf(petID string) []clinic.Appointment {
	out := make([]clinic.Appointment, 0)
	for _, a := range s.appointments {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	sortAppointments(out, clinic.DefaultAppointmentOrder)
	return out
}

func (s *Store) recordsOf(petID string) []clinic.MedicalRecord {
	out := make([]clinic.MedicalRecord, 0)
	for _, m := range s.records {
		if m.PetID == petID {
			out = append(out, m)
		}
	}
	sortRecords(out, clinic.DefaultMedicalRecordOrder)
	return out
}

// petWithClient devuelve una copia de la mascota con su dueño cargado.
func (s *Store) petWithClient(petID string) *clinic.Pet {
	stored, ok := s.pets[petID]
	if !ok {
		return nil
	}
	p := stored.Bare()
	if c, ok := s.clients[p.ClientID]; ok {
		p.Client = &c
	}
	return &p
}

// deletePet borra la mascota y sus hijos; acumula en res.
func (s *Store) deletePet(id string, res *clinic.DeleteResult) {
	for aid, a := range s.appointments {
		if a.PetID == id {
			delete(s.appointments, aid)
			res.Appointments++
		}
	}
	for mid, m := range s.records {
		if m.PetID == id {
			delete(s.records, mid)
			res.MedicalRecords++
		}
	}
	delete(s.pets, id)
	res.Pets++
}

// --- orden ---

func compareText(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareTime(a, b time.Time) int {
	return a.Compare(b)
}

// nil (desconocido) primero
func comparePtr[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}

func sortBy[T any](items []T, o clinic.Order, compare func(a, b T, column string) int, id func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i], items[j], o.Column)
		if o.Desc {
			c = -c
		}
		if c == 0 {
			return id(items[i]) < id(items[j])
		}
		return c < 0
	})
}

func sortClients(items []clinic.Client, o clinic.Order) {
	sortBy(items, o, func(a, b clinic.Client, col string) int {
		switch col {
		case "email":
			return compareText(a.Email, b.Email)
		case "created_at":
			return compareTime(a.CreatedAt, b.CreatedAt)
		case "updated_at":
			return compareTime(a.UpdatedAt, b.UpdatedAt)
		default:
			return compareText(a.Name, b.Name)
		}
	}, func(c clinic.Client) string { return c.ID })
}

func sortPets(items []clinic.Pet, o clinic.Order) {
	sortBy(items, o, func(a, b clinic.Pet, col string) int {
		switch col {
		case "species":
			return compareText(a.Species, b.Species)
		case "age":
			return comparePtr(a.Age, b.Age)
		case "weight":
			return comparePtr(a.Weight, b.Weight)
		case "created_at":
			return compareTime(a.CreatedAt, b.CreatedAt)
		case "updated_at":
			return compareTime(a.UpdatedAt, b.UpdatedAt)
		default:
			return compareText(a.Name, b.Name)
		}
	}, func(p clinic.Pet) string { return p.ID })
}

func sortAppointments(items []clinic.Appointment, o clinic.Order) {
	sortBy(items, o, func(a, b clinic.Appointment, col string) int {
		switch col {
		case "status":
			return compareText(a.Status, b.Status)
		case "reason":
			return compareText(a.Reason, b.Reason)
		case "created_at":
			return compareTime(a.CreatedAt, b.CreatedAt)
		case "updated_at":
			return compareTime(a.UpdatedAt, b.UpdatedAt)
		default:
			return compareTime(a.DateTime, b.DateTime)
		}
	}, func(a clinic.Appointment) string { return a.ID })
}

func sortRecords(items []clinic.MedicalRecord, o clinic.Order) {
	sortBy(items, o, func(a, b clinic.MedicalRecord, col string) int {
		switch col {
		case "diagnosis":
			return compareText(a.Diagnosis, b.Diagnosis)
		case "veterinarian":
			return compareText(a.Veterinarian, b.Veterinarian)
		case "created_at":
			return compareTime(a.CreatedAt, b.CreatedAt)
		case "updated_at":
			return compareTime(a.UpdatedAt, b.UpdatedAt)
		default:
			return compareTime(a.Date, b.Date)
		}
	}, func(m clinic.MedicalRecord) string { return m.ID })
}
