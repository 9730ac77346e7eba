package pets

import (
	"context"

	"vet-clinic/internal/domain/clinic"
)

type Repository interface {
	Create(ctx context.Context, p clinic.Pet) error
	Update(ctx context.Context, p clinic.Pet) error
	// Delete borra la mascota con sus citas e historiales.
	Delete(ctx context.Context, id string) (clinic.DeleteResult, error)

	GetByID(ctx context.Context, id string) (clinic.Pet, error)
	// GetWithRelations: Client, Appointments y MedicalRecords.
	GetWithRelations(ctx context.Context, id string) (clinic.Pet, error)
	// List con withRelations carga el Client de cada mascota.
	List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Pet, error)

	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
