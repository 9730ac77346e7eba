package pets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"vet-clinic/internal/domain/clinic"
)

type testRepo struct {
	byID      map[string]clinic.Pet
	createErr error
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]clinic.Pet{}}
}

func (r *testRepo) Create(ctx context.Context, p clinic.Pet) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Update(ctx context.Context, p clinic.Pet) error {
	if _, ok := r.byID[p.ID]; !ok {
		return clinic.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	if _, ok := r.byID[id]; !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	delete(r.byID, id)
	return clinic.DeleteResult{Pets: 1}, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (clinic.Pet, error) {
	p, ok := r.byID[id]
	if !ok {
		return clinic.Pet{}, clinic.ErrNotFound
	}
	return p, nil
}

func (r *testRepo) GetWithRelations(ctx context.Context, id string) (clinic.Pet, error) {
	return r.GetByID(ctx, id)
}

func (r *testRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Pet, error) {
	out := make([]clinic.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	return out, nil
}

func (r *testRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.byID[id]
	return ok, nil
}

func (r *testRepo) Count(ctx context.Context) (int, error) { return len(r.byID), nil }

// testClients simula el lookup de clientes.
type testClients struct {
	ids map[string]bool
	err error
}

func (c testClients) Exists(ctx context.Context, id string) (bool, error) {
	if c.err != nil {
		return false, c.err
	}
	return c.ids[id], nil
}

func TestCreate_RequiresExistingClient(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClients{ids: map[string]bool{"c-1": true}}, nil)

	_, err := svc.Create(context.Background(), clinic.Input{
		"client_id": "c-404",
		"name":      "Rex",
		"species":   "dog",
	})

	var ve *clinic.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields.Map()["client_id"] != "does not exist" {
		t.Fatalf("expected client_id error, got %v", ve.Fields)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("pet must not be stored")
	}
}

func TestCreate_ReportsAllViolationsTogether(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, testClients{}, nil)

	_, err := svc.Create(context.Background(), clinic.Input{
		"client_id": "c-404",
		"age":       "-2",
		"weight":    "0",
	})

	var ve *clinic.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, f := range []string{"client_id", "name", "species", "age", "weight"} {
		if !ve.Fields.Has(f) {
			t.Fatalf("missing error for %s in %v", f, ve.Fields.Messages())
		}
	}
}

func TestCreateAndUpdate(t *testing.T) {
	now := time.Date(2024, 4, 2, 8, 0, 0, 0, time.UTC)
	repo := newTestRepo()
	svc := NewService(repo, testClients{ids: map[string]bool{"c-1": true, "c-2": true}}, nil)
	svc.now = func() time.Time { return now }

	p, err := svc.Create(context.Background(), clinic.Input{
		"client_id": "c-1",
		"name":      "Mia",
		"species":   "cat",
		"age":       "0",
		"weight":    "3.2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Age == nil || *p.Age != 0 || p.AgeLabel() != "newborn" {
		t.Fatalf("age 0 must be kept as newborn, got %+v", p.Age)
	}

	now = now.Add(time.Hour)
	u, err := svc.Update(context.Background(), p.ID, clinic.Input{"client_id": "c-2", "age": ""})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.ClientID != "c-2" || u.Age != nil || u.Weight == nil {
		t.Fatalf("unexpected update %+v", u)
	}
	if !u.UpdatedAt.Equal(now) || !u.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("unexpected timestamps %v %v", u.CreatedAt, u.UpdatedAt)
	}

	// mover a un cliente inexistente falla y no toca lo guardado
	_, err = svc.Update(context.Background(), p.ID, clinic.Input{"client_id": "nope"})
	var ve *clinic.ValidationError
	if !errors.As(err, &ve) || repo.byID[p.ID].ClientID != "c-2" {
		t.Fatalf("expected validation error and untouched pet, got %v", err)
	}
}

func TestCreate_LookupFailureIsStorageError(t *testing.T) {
	svc := NewService(newTestRepo(), testClients{err: errors.New("db down")}, nil)

	_, err := svc.Create(context.Background(), clinic.Input{"client_id": "c-1", "name": "Rex", "species": "dog"})
	var se *clinic.StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
}

// El cliente desaparece entre la validación y el insert.
func TestCreate_ParentDeletedConcurrentlyIsValidationError(t *testing.T) {
	repo := newTestRepo()
	repo.createErr = fmt.Errorf("store: %w", clinic.ErrMissingParent)
	svc := NewService(repo, testClients{ids: map[string]bool{"c-1": true}}, nil)

	_, err := svc.Create(context.Background(), clinic.Input{
		"client_id": "c-1",
		"name":      "Rex",
		"species":   "dog",
	})

	var ve *clinic.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields.Map()["client_id"] != "does not exist" {
		t.Fatalf("expected client_id error, got %v", ve.Fields)
	}
}
