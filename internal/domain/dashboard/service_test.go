package dashboard

import (
	"context"
	"errors"
	"testing"

	"vet-clinic/internal/domain/clinic"
)

type fixedCount int

func (c fixedCount) Count(context.Context) (int, error) { return int(c), nil }

type testAppointments struct {
	items  []clinic.Appointment
	asked  int
	recErr error
}

func (a *testAppointments) Count(context.Context) (int, error) { return len(a.items), nil }

func (a *testAppointments) Recent(_ context.Context, n int) ([]clinic.Appointment, error) {
	a.asked = n
	if a.recErr != nil {
		return nil, a.recErr
	}
	if n > len(a.items) {
		n = len(a.items)
	}
	return a.items[:n], nil
}

func TestSummary_TotalsAndRecent(t *testing.T) {
	appts := &testAppointments{items: make([]clinic.Appointment, 7)}
	svc := NewService(Sources{
		Clients:        fixedCount(2),
		Pets:           fixedCount(3),
		Appointments:   appts,
		MedicalRecords: fixedCount(4),
	})

	sum, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if sum.Clients != 2 || sum.Pets != 3 || sum.Appointments != 7 || sum.MedicalRecords != 4 {
		t.Fatalf("unexpected totals %+v", sum)
	}
	if appts.asked != RecentLimit || len(sum.Recent) != RecentLimit {
		t.Fatalf("expected %d recent appointments, asked %d got %d", RecentLimit, appts.asked, len(sum.Recent))
	}
}

func TestSummary_PropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(Sources{
		Clients:        fixedCount(0),
		Pets:           fixedCount(0),
		Appointments:   &testAppointments{recErr: boom},
		MedicalRecords: fixedCount(0),
	})

	if _, err := svc.Summary(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}
