package clinic

import (
	"errors"
	"testing"
	"time"
)

func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func validPet() Pet {
	return Pet{ClientID: "c-1", Name: "Rex", Species: "dog"}
}

func TestClientEmailRule(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"", true},
		{"a@b.com", true},
		{"first.last+tag@vet-clinic.com.br", true},
		{"UPPER@EXAMPLE.ORG", true},
		{"a@@b", false},
		{"abc", false},
		{"a@b", false},
		{"a@b.c0m", false},
		{"a b@c.com", false},
	}

	for _, tc := range cases {
		t.Run(tc.email, func(t *testing.T) {
			c := Client{Name: "Ana", Email: tc.email}
			errs := c.Validate()
			if tc.ok && !errs.Empty() {
				t.Fatalf("expected valid, got %v", errs.Messages())
			}
			if !tc.ok {
				if len(errs) != 1 || errs[0].Field != "email" || errs[0].Message != "is invalid" {
					t.Fatalf("expected single email error, got %v", errs)
				}
			}
		})
	}
}

func TestClientReportsEveryViolation(t *testing.T) {
	c := Client{Name: "   ", Email: "nope"}

	errs := c.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs.Messages())
	}
	if errs[0].Field != "name" || errs[1].Field != "email" {
		t.Fatalf("unexpected order: %v", errs)
	}
	if got := errs.Messages()[0]; got != "name can't be blank" {
		t.Fatalf("unexpected message %q", got)
	}
	if c.Valid() {
		t.Fatalf("expected invalid")
	}
}

func TestPetWeightRule(t *testing.T) {
	cases := []struct {
		name   string
		weight *float64
		ok     bool
	}{
		{"absent", nil, true},
		{"positive", floatPtr(4.5), true},
		{"zero", floatPtr(0), false},
		{"negative", floatPtr(-1), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPet()
			p.Weight = tc.weight
			errs := p.Validate()
			if tc.ok != errs.Empty() {
				t.Fatalf("ok=%v but errors=%v", tc.ok, errs.Messages())
			}
			if !tc.ok && errs.Map()["weight"] != "must be greater than zero" {
				t.Fatalf("unexpected errors %v", errs)
			}
		})
	}
}

func TestPetAgeRule(t *testing.T) {
	cases := []struct {
		name string
		age  *int
		ok   bool
	}{
		{"absent", nil, true},
		{"zero", intPtr(0), true},
		{"five", intPtr(5), true},
		{"negative", intPtr(-1), false},
		{"int32 max", intPtr(2147483647), true},
		{"beyond int32", intPtr(2147483648), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPet()
			p.Age = tc.age
			errs := p.Validate()
			if tc.ok != errs.Empty() {
				t.Fatalf("ok=%v but errors=%v", tc.ok, errs.Messages())
			}
			if !tc.ok && !errs.Has("age") {
				t.Fatalf("expected age error, got %v", errs)
			}
		})
	}
}

func TestSingleBlankFieldYieldsOneMessage(t *testing.T) {
	when := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		field string
		v     Validatable
	}{
		{"client name", "name", Client{}},
		{"pet name", "name", Pet{ClientID: "c", Species: "cat"}},
		{"pet species", "species", Pet{ClientID: "c", Name: "Tom"}},
		{"pet client", "client_id", Pet{Name: "Tom", Species: "cat"}},
		{"appointment pet", "pet_id", Appointment{DateTime: when, Reason: "checkup"}},
		{"appointment date", "date_time", Appointment{PetID: "p", Reason: "checkup"}},
		{"appointment reason", "reason", Appointment{PetID: "p", DateTime: when, Reason: " "}},
		{"record pet", "pet_id", MedicalRecord{Date: when, Diagnosis: "otitis"}},
		{"record date", "date", MedicalRecord{PetID: "p", Diagnosis: "otitis"}},
		{"record diagnosis", "diagnosis", MedicalRecord{PetID: "p", Date: when}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.v.Validate()
			if len(errs) != 1 || errs[0].Field != tc.field {
				t.Fatalf("expected exactly one error on %s, got %v", tc.field, errs)
			}
		})
	}
}

func TestAppointmentAcceptsPastDates(t *testing.T) {
	a := Appointment{
		PetID:    "p",
		DateTime: time.Date(1999, 1, 1, 9, 0, 0, 0, time.UTC),
		Reason:   "old visit",
		Status:   StatusCompleted,
	}
	if !a.Valid() {
		t.Fatalf("past appointment should be valid: %v", a.Validate().Messages())
	}
}

func TestCheckKeepsCoercionMessage(t *testing.T) {
	p := validPet()
	errs := p.Apply(Input{"weight": "heavy"})

	err := Check(errs, p)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := ve.Fields.Map()["weight"]; got != "is not a number" {
		t.Fatalf("unexpected weight message %q", got)
	}
	if Check(nil, validPet()) != nil {
		t.Fatalf("expected nil for valid pet")
	}
}

func TestWrapStorage(t *testing.T) {
	if WrapStorage("op", nil) != nil {
		t.Fatalf("nil must stay nil")
	}
	if !errors.Is(WrapStorage("op", ErrNotFound), ErrNotFound) {
		t.Fatalf("not found must pass through")
	}

	cause := errors.New("connection refused")
	err := WrapStorage("create client", cause)

	var se *StorageError
	if !errors.As(err, &se) || se.Op != "create client" {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause must be reachable via Unwrap")
	}
	if Outcome(err) != "error" || Outcome(nil) != "ok" || Outcome(ErrNotFound) != "not_found" {
		t.Fatalf("unexpected outcomes")
	}
}

func TestPetAgeOutOfStoreRangeIsFieldError(t *testing.T) {
	p := validPet()
	errs := p.Apply(Input{"age": "3000000000"})
	err := Check(errs, p)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := ve.Fields.Map()["age"]; got != "must be less than or equal to 2147483647" {
		t.Fatalf("unexpected age message %q", got)
	}
}
