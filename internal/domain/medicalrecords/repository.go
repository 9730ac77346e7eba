package medicalrecords

import (
	"context"

	"vet-clinic/internal/domain/clinic"
)

type Repository interface {
	Create(ctx context.Context, m clinic.MedicalRecord) error
	Update(ctx context.Context, m clinic.MedicalRecord) error
	Delete(ctx context.Context, id string) (clinic.DeleteResult, error)

	GetByID(ctx context.Context, id string) (clinic.MedicalRecord, error)
	// GetWithRelations: Pet con su Client.
	GetWithRelations(ctx context.Context, id string) (clinic.MedicalRecord, error)
	List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.MedicalRecord, error)

	Count(ctx context.Context) (int, error)
}

type PetLookup interface {
	Exists(ctx context.Context, petID string) (bool, error)
}
