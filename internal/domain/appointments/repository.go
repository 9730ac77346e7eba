package appointments

import (
	"context"

	"vet-clinic/internal/domain/clinic"
)

type Repository interface {
	Create(ctx context.Context, a clinic.Appointment) error
	Update(ctx context.Context, a clinic.Appointment) error
	Delete(ctx context.Context, id string) (clinic.DeleteResult, error)

	GetByID(ctx context.Context, id string) (clinic.Appointment, error)
	// GetWithRelations: Pet con su Client.
	GetWithRelations(ctx context.Context, id string) (clinic.Appointment, error)
	List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Appointment, error)
	// ListRecent: las n más recientes por date_time, con Pet y Client.
	ListRecent(ctx context.Context, n int) ([]clinic.Appointment, error)

	Count(ctx context.Context) (int, error)
}

// PetLookup valida pet_id (lo implementa pets.Service).
type PetLookup interface {
	Exists(ctx context.Context, petID string) (bool, error)
}
