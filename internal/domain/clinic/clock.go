package clinic

import "time"

// Stamp normaliza a UTC con precisión de microsegundos (la del store relacional).
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// NextUpdate devuelve el nuevo updated_at, siempre estrictamente posterior a prev.
func NextUpdate(prev, now time.Time) time.Time {
	now = Stamp(now)
	if !now.After(prev) {
		return Stamp(prev).Add(time.Microsecond)
	}
	return now
}

const (
	DisplayDate     = "02/01/2006"
	DisplayDateTime = "02/01/2006 15:04"
	NotAvailable    = "N/A"
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(DisplayDate)
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(DisplayDateTime)
}
