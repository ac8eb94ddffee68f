package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		total     int64
		wantPages int
	}{
		{"partial last page", 1, 10, 25, 3},
		{"exact fit", 2, 10, 30, 3},
		{"empty", 1, 10, 0, 0},
		{"single item", 1, 10, 1, 1},
		{"zero limit", 1, 0, 25, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Page != tt.page || p.Limit != tt.limit || p.Total != tt.total {
				t.Errorf("pagination echo = %+v", p)
			}
		})
	}
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, Body{"user": map[string]string{"email": "a@b.c"}})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %s", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != true {
		t.Error("success flag missing or false")
	}
	if _, ok := body["user"]; !ok {
		t.Error("payload key missing")
	}
}

func TestErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusConflict, "email already registered", nil)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["success"] != false {
		t.Error("success should be false")
	}
	if body["error"] != "email already registered" {
		t.Errorf("error = %v", body["error"])
	}
	if _, ok := body["details"]; ok {
		t.Error("details should be omitted when nil")
	}
}

func TestValidationErrorIncludesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"Email": "Email is required"})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	details, ok := body["details"].(map[string]interface{})
	if !ok {
		t.Fatal("details missing")
	}
	if details["Email"] != "Email is required" {
		t.Errorf("details = %v", details)
	}
}

func TestDefaultMessages(t *testing.T) {
	for _, tt := range []struct {
		fn   func(http.ResponseWriter, string)
		code int
		want string
	}{
		{Unauthorized, http.StatusUnauthorized, "unauthorized"},
		{NotFound, http.StatusNotFound, "resource not found"},
		{InternalServerError, http.StatusInternalServerError, "internal server error"},
	} {
		rec := httptest.NewRecorder()
		tt.fn(rec, "")
		if rec.Code != tt.code {
			t.Errorf("status = %d, want %d", rec.Code, tt.code)
		}
		var body map[string]interface{}
		json.Unmarshal(rec.Body.Bytes(), &body)
		if body["error"] != tt.want {
			t.Errorf("error = %v, want %s", body["error"], tt.want)
		}
	}
}
