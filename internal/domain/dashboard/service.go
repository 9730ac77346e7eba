package dashboard

import (
	"context"

	"vet-clinic/internal/domain/clinic"
)

// RecentLimit es cuántas citas muestra el panel.
const RecentLimit = 5

type Counter interface {
	Count(ctx context.Context) (int, error)
}

type RecentAppointments interface {
	Counter
	Recent(ctx context.Context, n int) ([]clinic.Appointment, error)
}

type Sources struct {
	Clients        Counter
	Pets           Counter
	Appointments   RecentAppointments
	MedicalRecords Counter
}

type Summary struct {
	Clients        int
	Pets           int
	Appointments   int
	MedicalRecords int
	Recent         []clinic.Appointment // con Pet y Client
}

type Service struct {
	src Sources
}

func NewService(src Sources) *Service {
	return &Service{src: src}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var (
		out Summary
		err error
	)

	if out.Clients, err = s.src.Clients.Count(ctx); err != nil {
		return Summary{}, err
	}
	if out.Pets, err = s.src.Pets.Count(ctx); err != nil {
		return Summary{}, err
	}
	if out.Appointments, err = s.src.Appointments.Count(ctx); err != nil {
		return Summary{}, err
	}
	if out.MedicalRecords, err = s.src.MedicalRecords.Count(ctx); err != nil {
		return Summary{}, err
	}
	if out.Recent, err = s.src.Appointments.Recent(ctx, RecentLimit); err != nil {
		return Summary{}, err
	}
	return out, nil
}
