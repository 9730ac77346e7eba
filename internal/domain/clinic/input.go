package clinic

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	ClockLayout     = "15:04"
	ClockLayoutSecs = "15:04:05"
)

// Input es el mapa clave/valor sin tipar que llega de un body JSON o de un form.
// Solo las claves presentes se aplican; presente y vacía limpia el campo.
type Input map[string]string

func (in Input) Has(key string) bool {
	_, ok := in[key]
	return ok
}

// String devuelve el valor sin espacios alrededor ("" si no está).
func (in Input) String(key string) string {
	return strings.TrimSpace(in[key])
}

// Int parsea un entero opcional. Vacío => nil.
func (in Input) Int(key string) (*int, bool) {
	s := in.String(key)
	if s == "" {
		return nil, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, false
	}
	return &n, true
}

// Float parsea un float opcional. Vacío => nil. NaN/Inf se rechazan.
func (in Input) Float(key string) (*float64, bool) {
	s := in.String(key)
	if s == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, false
	}
	return &f, true
}

// ParseDate acepta YYYY-MM-DD o RFC3339 (se toma la fecha calendario).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// ParseDateTime arma un instante a partir de fecha + hora (hora opcional => 00:00)
// interpretadas en loc.
func ParseDateTime(date, clock string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)

	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, false
	}
	if clock == "" {
		return d, true
	}

	var c time.Time
	if c, err = time.Parse(ClockLayout, clock); err != nil {
		if c, err = time.Parse(ClockLayoutSecs, clock); err != nil {
			return time.Time{}, false
		}
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), c.Second(), 0, loc), true
}

// ParseInstant acepta RFC3339 o "YYYY-MM-DDTHH:MM" / "YYYY-MM-DD HH:MM" (en loc).
func ParseInstant(s string, loc *time.Location) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	for _, sep := range []string{"T", " "} {
		if i := strings.Index(s, sep); i > 0 {
			return ParseDateTime(s[:i], s[i+1:], loc)
		}
	}
	return ParseDateTime(s, "", loc)
}
