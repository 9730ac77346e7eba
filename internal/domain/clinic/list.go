package clinic

import "strings"

// ListOptions controla orden y carga de relaciones en los listados.
type ListOptions struct {
	OrderBy       string // "name", "-created_at", ...
	WithRelations bool
}

type Order struct {
	Column string
	Desc   bool
}

// ParseOrder resuelve order_by contra una lista segura; lo desconocido cae al default.
func ParseOrder(raw string, safe []string, def Order) Order {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	o := Order{Column: strings.TrimPrefix(raw, "-"), Desc: strings.HasPrefix(raw, "-")}
	for _, s := range safe {
		if s == o.Column {
			return o
		}
	}
	return def
}

func (o Order) Direction() string {
	if o.Desc {
		return "DESC"
	}
	return "ASC"
}

func (o Order) String() string {
	if o.Desc {
		return "-" + o.Column
	}
	return o.Column
}

var (
	ClientOrderColumns        = []string{"name", "email", "created_at", "updated_at"}
	PetOrderColumns           = []string{"name", "species", "age", "weight", "created_at", "updated_at"}
	AppointmentOrderColumns   = []string{"date_time", "status", "reason", "created_at", "updated_at"}
	MedicalRecordOrderColumns = []string{"date", "diagnosis", "veterinarian", "created_at", "updated_at"}

	DefaultClientOrder        = Order{Column: "name"}
	DefaultPetOrder           = Order{Column: "name"}
	DefaultAppointmentOrder   = Order{Column: "date_time", Desc: true}
	DefaultMedicalRecordOrder = Order{Column: "date", Desc: true}
)

// DeleteResult cuenta lo borrado por un delete en cascada.
type DeleteResult struct {
	Clients        int `json:"clients"`
	Pets           int `json:"pets"`
	Appointments   int `json:"appointments"`
	MedicalRecords int `json:"medical_records"`
}

func (r DeleteResult) Total() int {
	return r.Clients + r.Pets + r.Appointments + r.MedicalRecords
}

// Fields para logs.
func (r DeleteResult) Fields() map[string]any {
	return map[string]any{
		"deleted_clients":         r.Clients,
		"deleted_pets":            r.Pets,
		"deleted_appointments":    r.Appointments,
		"deleted_medical_records": r.MedicalRecords,
	}
}
