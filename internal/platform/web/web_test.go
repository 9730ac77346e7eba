package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"vet-clinic/internal/domain/clinic"
	"vet-clinic/internal/platform/logger"
)

func TestDecodeInputJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/pets", strings.NewReader(
		`{"name":"Rex","age":3,"weight":4.25,"breed":null,"neutered":true}`))
	req.Header.Set("Content-Type", "application/json")

	in, err := DecodeInput(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := clinic.Input{"name": "Rex", "age": "3", "weight": "4.25", "breed": "", "neutered": "true"}
	for k, v := range want {
		if got, ok := in[k]; !ok || got != v {
			t.Fatalf("in[%q] = %q (present=%v), want %q", k, got, ok, v)
		}
	}
}

func TestDecodeInputForm(t *testing.T) {
	form := url.Values{"name": {"Ana"}, "email": {"ana@example.com"}}
	req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	in, err := DecodeInput(httptest.NewRecorder(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in["name"] != "Ana" || in["email"] != "ana@example.com" {
		t.Fatalf("unexpected input %v", in)
	}
}

func TestDecodeInputRejectsNested(t *testing.T) {
	for _, body := range []string{`{"name":{"first":"x"}}`, `[1,2]`, `{bad`} {
		req := httptest.NewRequest(http.MethodPost, "/clients", strings.NewReader(body))
		_, err := DecodeInput(httptest.NewRecorder(), req)
		if !errors.Is(err, ErrInvalidBody) {
			t.Fatalf("body %s: expected ErrInvalidBody, got %v", body, err)
		}
	}
}

func TestWriteErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &clinic.ValidationError{Fields: clinic.FieldErrors{{Field: "name", Message: "can't be blank"}}}, http.StatusUnprocessableEntity},
		{"not found", clinic.ErrNotFound, http.StatusNotFound},
		{"bad body", ErrInvalidBody, http.StatusBadRequest},
		{"storage", &clinic.StorageError{Op: "create client", Err: errors.New("conn reset")}, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			WriteError(rec, req, logger.Nop(), tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if tc.code == http.StatusInternalServerError && strings.Contains(rec.Body.String(), "conn reset") {
				t.Fatalf("internal cause leaked: %s", rec.Body.String())
			}
		})
	}

	rec := httptest.NewRecorder()
	WriteError(rec, httptest.NewRequest(http.MethodPost, "/clients", nil), nil, cases[0].err)
	var body ValidationResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body.Fields["name"] != "can't be blank" || body.Messages[0] != "name can't be blank" {
		t.Fatalf("unexpected validation body %+v", body)
	}
}
