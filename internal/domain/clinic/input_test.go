package clinic

import (
	"testing"
	"time"
)

func TestPetApplyCoercion(t *testing.T) {
	p := Pet{Name: "Rex"}
	errs := p.Apply(Input{
		"name":    "  Thor ",
		"species": "dog",
		"age":     "3",
		"weight":  "12.5",
	})
	if !errs.Empty() {
		t.Fatalf("unexpected coercion errors %v", errs)
	}
	if p.Name != "Thor" || p.Age == nil || *p.Age != 3 || p.Weight == nil || *p.Weight != 12.5 {
		t.Fatalf("unexpected pet %+v", p)
	}

	// presente y vacío limpia; ausente no toca
	errs = p.Apply(Input{"age": ""})
	if !errs.Empty() || p.Age != nil || p.Weight == nil {
		t.Fatalf("expected age cleared and weight kept, got %+v", p)
	}

	errs = p.Apply(Input{"age": "two", "weight": "NaN"})
	if !errs.Has("age") || !errs.Has("weight") {
		t.Fatalf("expected coercion errors, got %v", errs)
	}
}

func TestAppointmentApplyDateAndTime(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)

	var a Appointment
	errs := a.Apply(Input{"pet_id": "p", "reason": "vacina", "date": "2024-05-10", "time": "14:30"}, loc)
	if !errs.Empty() {
		t.Fatalf("unexpected errors %v", errs)
	}
	want := time.Date(2024, 5, 10, 14, 30, 0, 0, loc)
	if !a.DateTime.Equal(want) {
		t.Fatalf("expected %v, got %v", want, a.DateTime)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected default status, got %q", a.Status)
	}

	// solo la hora: conserva la fecha
	errs = a.Apply(Input{"time": "09:00"}, loc)
	if !errs.Empty() {
		t.Fatalf("unexpected errors %v", errs)
	}
	if !a.DateTime.Equal(time.Date(2024, 5, 10, 9, 0, 0, 0, loc)) {
		t.Fatalf("unexpected date_time %v", a.DateTime)
	}

	errs = a.Apply(Input{"date_time": "2024-06-01T08:15:00Z"}, loc)
	if !errs.Empty() || !a.DateTime.Equal(time.Date(2024, 6, 1, 8, 15, 0, 0, time.UTC)) {
		t.Fatalf("unexpected rfc3339 parse %v %v", errs, a.DateTime)
	}

	errs = a.Apply(Input{"date": "10/05/2024"}, loc)
	if errs.Map()["date_time"] != "is not a valid date and time" {
		t.Fatalf("expected parse error, got %v", errs)
	}

	b := Appointment{}
	b.Apply(Input{"date": "2024-05-10"}, nil)
	if !b.DateTime.Equal(time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("date without time should be midnight, got %v", b.DateTime)
	}
}

func TestAppointmentUnknownStatusIsStored(t *testing.T) {
	var a Appointment
	a.Apply(Input{"status": "no_show"}, time.UTC)
	if a.Status != "no_show" {
		t.Fatalf("expected status stored verbatim, got %q", a.Status)
	}
}

func TestMedicalRecordApplyDate(t *testing.T) {
	var m MedicalRecord
	errs := m.Apply(Input{"date": "2024-02-29", "diagnosis": "dermatite"})
	if !errs.Empty() || !m.Date.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected %v %v", errs, m.Date)
	}

	errs = m.Apply(Input{"date": "2023-02-29"})
	if errs.Map()["date"] != "is not a valid date" {
		t.Fatalf("expected invalid date, got %v", errs)
	}
}

func TestParseOrder(t *testing.T) {
	def := Order{Column: "name"}
	safe := []string{"name", "created_at"}

	cases := []struct {
		raw  string
		want Order
	}{
		{"", def},
		{"created_at", Order{Column: "created_at"}},
		{"-created_at", Order{Column: "created_at", Desc: true}},
		{"id; DROP TABLE clients", def},
	}
	for _, tc := range cases {
		if got := ParseOrder(tc.raw, safe, def); got != tc.want {
			t.Fatalf("ParseOrder(%q) = %+v, want %+v", tc.raw, got, tc.want)
		}
	}
}

func TestNextUpdateIsStrictlyAfter(t *testing.T) {
	prev := Stamp(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	if got := NextUpdate(prev, prev); !got.After(prev) {
		t.Fatalf("same instant must advance, got %v", got)
	}
	if got := NextUpdate(prev, prev.Add(-time.Hour)); !got.After(prev) {
		t.Fatalf("clock skew must still advance, got %v", got)
	}
	later := prev.Add(time.Minute)
	if got := NextUpdate(prev, later); !got.Equal(later) {
		t.Fatalf("expected %v, got %v", later, got)
	}
}
