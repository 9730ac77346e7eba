package clinic

import (
	"testing"
	"time"
)

func TestStatusCategory(t *testing.T) {
	cases := map[string]string{
		StatusScheduled: "primary",
		StatusCompleted: "success",
		StatusCancelled: "danger",
		StatusConfirmed: "secondary",
		"no_show":       "secondary",
		"":              "secondary",
	}
	for status, want := range cases {
		if got := (Appointment{Status: status}).StatusCategory(); got != want {
			t.Fatalf("StatusCategory(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestAgeLabel(t *testing.T) {
	cases := []struct {
		age  *int
		want string
	}{
		{nil, "unknown"},
		{intPtr(0), "newborn"},
		{intPtr(1), "1 year"},
		{intPtr(2), "2 years"},
		{intPtr(14), "14 years"},
	}
	for _, tc := range cases {
		if got := (Pet{Age: tc.age}).AgeLabel(); got != tc.want {
			t.Fatalf("AgeLabel = %q, want %q", got, tc.want)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	ts := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "10/05/2024" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDateTime(ts); got != "10/05/2024 14:30" {
		t.Fatalf("FormatDateTime = %q", got)
	}
	if FormatDate(time.Time{}) != NotAvailable || FormatDateTime(time.Time{}) != NotAvailable {
		t.Fatalf("zero time must render N/A")
	}
}

func TestDerivedClientRelations(t *testing.T) {
	owner := &Client{ID: "c", Name: "Ana"}
	c := Client{
		ID: "c",
		Pets: []Pet{
			{ID: "p1", Appointments: []Appointment{{ID: "a1"}, {ID: "a2"}}, MedicalRecords: []MedicalRecord{{ID: "m1"}}},
			{ID: "p2", Appointments: []Appointment{{ID: "a3"}}},
		},
	}
	if n := len(c.Appointments()); n != 3 {
		t.Fatalf("expected 3 appointments through pets, got %d", n)
	}
	if n := len(c.MedicalRecords()); n != 1 {
		t.Fatalf("expected 1 record through pets, got %d", n)
	}

	a := Appointment{Pet: &Pet{ID: "p1", Client: owner}}
	if a.Client() != owner {
		t.Fatalf("appointment client must come through its pet")
	}
	if (MedicalRecord{}).Client() != nil {
		t.Fatalf("record without loaded pet has no client")
	}
}
