package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/domain/clinic"
)

type testRepo struct {
	byID map[string]clinic.Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]clinic.Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a clinic.Appointment) error {
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Update(ctx context.Context, a clinic.Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	if _, ok := r.byID[id]; !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	delete(r.byID, id)
	return clinic.DeleteResult{Appointments: 1}, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (clinic.Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return clinic.Appointment{}, clinic.ErrNotFound
	}
	return a, nil
}

func (r *testRepo) GetWithRelations(ctx context.Context, id string) (clinic.Appointment, error) {
	return r.GetByID(ctx, id)
}

func (r *testRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Appointment, error) {
	return nil, nil
}

func (r *testRepo) ListRecent(ctx context.Context, n int) ([]clinic.Appointment, error) {
	return nil, nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

type testPets map[string]bool

func (p testPets) Exists(ctx context.Context, id string) (bool, error) { return p[id], nil }

func TestCreate_CombinesDateAndTimeInClinicZone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	repo := newTestRepo()
	svc := NewService(repo, testPets{"p-1": true}, loc, nil)

	a, err := svc.Create(context.Background(), clinic.Input{
		"pet_id": "p-1",
		"date":   "2024-05-10",
		"time":   "14:30",
		"reason": "vacina anual",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 5, 10, 17, 30, 0, 0, time.UTC)
	if !a.DateTime.Equal(want) || a.DateTime.Location() != time.UTC {
		t.Fatalf("expected %v stored as UTC, got %v", want, a.DateTime)
	}
	if a.Status != clinic.StatusScheduled || a.StatusCategory() != "primary" {
		t.Fatalf("expected default scheduled status, got %q", a.Status)
	}
	if _, ok := repo.byID[a.ID]; !ok {
		t.Fatalf("appointment not persisted")
	}
}

func TestCreate_MissingPet(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testPets{}, nil, nil)

	_, err := svc.Create(context.Background(), clinic.Input{
		"pet_id":    "p-404",
		"date_time": "2024-05-10T10:00:00Z",
		"reason":    "checkup",
	})

	var ve *clinic.ValidationError
	if !errors.As(err, &ve) || ve.Fields.Map()["pet_id"] != "does not exist" {
		t.Fatalf("expected pet_id error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("appointment must not be stored")
	}
}

func TestCreate_BlankFieldsAndBadDate(t *testing.T) {
	svc := NewService(newTestRepo(), testPets{}, nil, nil)

	_, err := svc.Create(context.Background(), clinic.Input{"date": "tomorrow"})

	var ve *clinic.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	got := ve.Fields.Map()
	if got["pet_id"] != "must be selected" || got["reason"] != "can't be blank" {
		t.Fatalf("unexpected errors %v", got)
	}
	if got["date_time"] != "is not a valid date and time" {
		t.Fatalf("coercion message must win over required, got %q", got["date_time"])
	}
}

func TestUpdate_PastDateAndUnknownStatusAccepted(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	repo := newTestRepo()
	svc := NewService(repo, testPets{"p-1": true}, nil, nil)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), clinic.Input{
		"pet_id": "p-1", "date_time": "2024-05-10T10:00:00Z", "reason": "checkup",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := svc.Update(context.Background(), a.ID, clinic.Input{"date": "2020-01-01", "status": "no_show"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !u.DateTime.Equal(time.Date(2020, 1, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected date changed and hour kept, got %v", u.DateTime)
	}
	if u.Status != "no_show" || u.StatusCategory() != "secondary" {
		t.Fatalf("unexpected status %q", u.Status)
	}
	if !u.UpdatedAt.After(a.UpdatedAt) {
		t.Fatalf("updated_at must advance")
	}
}
