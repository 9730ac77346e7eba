package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic/internal/domain/appointments"
	"vet-clinic/internal/domain/clients"
	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/domain/medicalrecords"
	"vet-clinic/internal/domain/pets"
)

type fixture struct {
	store    *Store
	clients  *clients.Service
	pets     *pets.Service
	appts    *appointments.Service
	records  *medicalrecords.Service
	clientID string
	petIDs   []string
}

// newFixture: 1 cliente, 2 mascotas, 2 citas, 2 historiales (7 filas).
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	st := NewStore()
	f := &fixture{store: st}
	f.clients = clients.NewService(st.Clients(), nil)
	f.pets = pets.NewService(st.Pets(), f.clients, nil)
	f.appts = appointments.NewService(st.Appointments(), f.pets, time.UTC, nil)
	f.records = medicalrecords.NewService(st.MedicalRecords(), f.pets, nil)

	c, err := f.clients.Create(ctx, clinic.Input{"name": "Ana Souza", "email": "ana@example.com"})
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	f.clientID = c.ID

	for _, name := range []string{"Thor", "Mia"} {
		p, err := f.pets.Create(ctx, clinic.Input{"client_id": c.ID, "name": name, "species": "dog"})
		if err != nil {
			t.Fatalf("create pet: %v", err)
		}
		f.petIDs = append(f.petIDs, p.ID)
	}

	mustAppt := func(petID, dt string) {
		if _, err := f.appts.Create(ctx, clinic.Input{"pet_id": petID, "date_time": dt, "reason": "checkup"}); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}
	mustAppt(f.petIDs[0], "2024-05-10T10:00:00Z")
	mustAppt(f.petIDs[1], "2024-06-10T10:00:00Z")

	mustRecord := func(petID, date string) {
		if _, err := f.records.Create(ctx, clinic.Input{"pet_id": petID, "date": date, "diagnosis": "ok"}); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}
	mustRecord(f.petIDs[0], "2024-05-10")
	mustRecord(f.petIDs[0], "2024-01-02")

	return f
}

func TestDeleteClient_CascadesEverything(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.clients.Delete(ctx, f.clientID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Total() != 7 || res.Clients != 1 || res.Pets != 2 || res.Appointments != 2 || res.MedicalRecords != 2 {
		t.Fatalf("unexpected cascade result %+v", res)
	}

	if _, err := f.clients.Get(ctx, f.clientID, false); !errors.Is(err, clinic.ErrNotFound) {
		t.Fatalf("client must be gone, got %v", err)
	}
	for _, id := range f.petIDs {
		if _, err := f.pets.Get(ctx, id, false); !errors.Is(err, clinic.ErrNotFound) {
			t.Fatalf("pet %s must be gone, got %v", id, err)
		}
	}
	for name, svc := range map[string]interface {
		Count(context.Context) (int, error)
	}{"appointments": f.appts, "records": f.records, "pets": f.pets, "clients": f.clients} {
		if n, _ := svc.Count(ctx); n != 0 {
			t.Fatalf("%s left behind: %d", name, n)
		}
	}
}

func TestDeletePet_CascadesChildrenOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.pets.Delete(ctx, f.petIDs[0])
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if res.Pets != 1 || res.Appointments != 1 || res.MedicalRecords != 2 || res.Clients != 0 {
		t.Fatalf("unexpected cascade result %+v", res)
	}

	c, err := f.clients.Get(ctx, f.clientID, true)
	if err != nil {
		t.Fatalf("client must survive: %v", err)
	}
	if len(c.Pets) != 1 || c.Pets[0].ID != f.petIDs[1] {
		t.Fatalf("unexpected remaining pets %+v", c.Pets)
	}

	if _, err := f.pets.Delete(ctx, f.petIDs[0]); !errors.Is(err, clinic.ErrNotFound) {
		t.Fatalf("second delete must be NotFound, got %v", err)
	}
}

func TestPetWithRelations(t *testing.T) {
	f := newFixture(t)

	p, err := f.pets.Get(context.Background(), f.petIDs[0], true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.Client == nil || p.Client.ID != f.clientID {
		t.Fatalf("expected client loaded, got %+v", p.Client)
	}
	if len(p.Appointments) != 1 || len(p.MedicalRecords) != 2 {
		t.Fatalf("unexpected relations: %d appointments, %d records", len(p.Appointments), len(p.MedicalRecords))
	}
	// historiales más recientes primero
	if !p.MedicalRecords[0].Date.After(p.MedicalRecords[1].Date) {
		t.Fatalf("records must be ordered by date desc")
	}
}

func TestClientRelationsAndDerivedListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.clients.Get(ctx, f.clientID, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// mascotas por nombre: Mia, Thor
	if len(c.Pets) != 2 || c.Pets[0].Name != "Mia" || c.Pets[1].Name != "Thor" {
		t.Fatalf("unexpected pets %+v", c.Pets)
	}
	if len(c.Appointments()) != 2 || len(c.MedicalRecords()) != 2 {
		t.Fatalf("derived relations mismatch")
	}

	appts, err := f.clients.Appointments(ctx, f.clientID)
	if err != nil {
		t.Fatalf("appointments: %v", err)
	}
	if len(appts) != 2 || !appts[0].DateTime.After(appts[1].DateTime) {
		t.Fatalf("expected 2 appointments newest first, got %+v", appts)
	}
	if appts[0].Client() == nil || appts[0].Client().ID != f.clientID {
		t.Fatalf("appointment client must resolve through pet")
	}

	if _, err := f.clients.MedicalRecords(ctx, "missing"); !errors.Is(err, clinic.ErrNotFound) {
		t.Fatalf("expected NotFound for unknown client, got %v", err)
	}
}

func TestRecentAndOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	recent, err := f.appts.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 1 || recent[0].Pet == nil || recent[0].Pet.Client == nil {
		t.Fatalf("expected one appointment with pet and client, got %+v", recent)
	}
	if recent[0].DateTime.Month() != time.June {
		t.Fatalf("expected the June appointment first, got %v", recent[0].DateTime)
	}

	list, err := f.pets.List(ctx, clinic.ListOptions{OrderBy: "-name", WithRelations: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list[0].Name != "Thor" || list[0].Client == nil {
		t.Fatalf("expected Thor first with client, got %+v", list[0])
	}
}

func TestInsertWithMissingParentFails(t *testing.T) {
	st := NewStore()
	err := st.Pets().Create(context.Background(), clinic.Pet{ID: "p", ClientID: "ghost", Name: "x", Species: "y"})
	if !errors.Is(err, ErrMissingParent) {
		t.Fatalf("expected ErrMissingParent, got %v", err)
	}
}

func TestRecent_NonPositiveLimitIsEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, n := range []int{0, -1} {
		recent, err := f.appts.Recent(ctx, n)
		if err != nil {
			t.Fatalf("recent(%d): %v", n, err)
		}
		if recent == nil || len(recent) != 0 {
			t.Fatalf("recent(%d): expected empty slice, got %+v", n, recent)
		}
	}
}

func TestPetValuesAreNotShared(t *testing.T) {
	st := NewStore()
	ctx := context.Background()

	if err := st.Clients().Create(ctx, clinic.Client{ID: "c", Name: "Ana"}); err != nil {
		t.Fatalf("create client: %v", err)
	}
	age, weight := 3, 4.5
	in := clinic.Pet{ID: "p", ClientID: "c", Name: "Rex", Species: "dog", Age: &age, Weight: &weight}
	if err := st.Pets().Create(ctx, in); err != nil {
		t.Fatalf("create pet: %v", err)
	}

	// el valor que entró ya no apunta al guardado
	age, weight = 99, 99

	got, err := st.Pets().GetByID(ctx, "p")
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	*got.Age = 42
	*got.Weight = 42

	readers := map[string]func() (clinic.Pet, error){
		"get": func() (clinic.Pet, error) { return st.Pets().GetByID(ctx, "p") },
		"relations": func() (clinic.Pet, error) {
			return st.Pets().GetWithRelations(ctx, "p")
		},
		"list": func() (clinic.Pet, error) {
			l, err := st.Pets().List(ctx, clinic.DefaultPetOrder, false)
			if err != nil || len(l) != 1 {
				return clinic.Pet{}, err
			}
			return l[0], nil
		},
	}
	for name, read := range readers {
		p, err := read()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if p.Age == nil || *p.Age != 3 || p.Weight == nil || *p.Weight != 4.5 {
			t.Fatalf("%s: stored pet changed through a shared pointer: %+v", name, p)
		}
	}
}
