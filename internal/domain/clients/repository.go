package clients

import (
	"context"

	"vet-clinic/internal/domain/clinic"
)

type Repository interface {
	Create(ctx context.Context, c clinic.Client) error
	Update(ctx context.Context, c clinic.Client) error
	// Delete borra el cliente con sus mascotas, citas e historiales en una sola operación.
	Delete(ctx context.Context, id string) (clinic.DeleteResult, error)

	GetByID(ctx context.Context, id string) (clinic.Client, error)
	// GetWithRelations: Pets, cada una con Appointments y MedicalRecords (snapshot consistente).
	GetWithRelations(ctx context.Context, id string) (clinic.Client, error)
	List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Client, error)

	// Derivados a través de las mascotas. ErrNotFound si el cliente no existe.
	ListAppointments(ctx context.Context, clientID string) ([]clinic.Appointment, error)
	ListMedicalRecords(ctx context.Context, clientID string) ([]clinic.MedicalRecord, error)

	Exists(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
