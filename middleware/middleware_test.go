// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mukaram01/Name/models"
)

func TestParticipant(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Alice", "Alice"},
		{"  Alice  ", "Alice"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			req.Header.Set(ParticipantHeader, tt.header)
		}
		if got := Participant(req); got != tt.want {
			t.Errorf("Participant(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusOK, map[string]string{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["hello"] != "world" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, http.StatusBadRequest, "something went wrong")

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error != "Bad Request" {
		t.Errorf("Expected error 'Bad Request', got %q", body.Error)
	}
	if body.Message != "something went wrong" {
		t.Errorf("Unexpected message: %q", body.Message)
	}
	if body.BudgetExceeded {
		t.Error("Expected budget flag to default to false")
	}
}

func TestRejectResponse(t *testing.T) {
	w := httptest.NewRecorder()
	RejectResponse(w, http.StatusConflict, "you have used all 2 of your 5-star votes", true)

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !body.BudgetExceeded {
		t.Error("Expected budget_exceeded to be set")
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{"name":"Luna","score":5}`)))

	var body struct {
		Name  string `json:"name"`
		Score int    `json:"score"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if body.Name != "Luna" || body.Score != 5 {
		t.Errorf("Unexpected body: %+v", body)
	}

	bad := httptest.NewRequest("POST", "/", bytes.NewReader([]byte(`{not json`)))
	if err := ParseJSONBody(bad, &body); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestCORS(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	// Preflight short-circuits
	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected preflight status 200, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Expected origin echoed back, got %q", got)
	}

	// Normal requests pass through with headers set
	req = httptest.NewRequest("GET", "/", nil)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped handler to run, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Expected CORS headers on normal requests")
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(*http.Request)
		wantIP string
	}{
		{
			"X-Forwarded-For single",
			func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.5") },
			"203.0.113.5",
		},
		{
			"X-Forwarded-For chain",
			func(r *http.Request) { r.Header.Set("X-Forwarded-For", "203.0.113.5, 10.0.0.1") },
			"203.0.113.5",
		},
		{
			"X-Real-IP",
			func(r *http.Request) { r.Header.Set("X-Real-IP", "203.0.113.9") },
			"203.0.113.9",
		},
		{
			"RemoteAddr fallback",
			func(r *http.Request) { r.RemoteAddr = "203.0.113.7:54321" },
			"203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			tt.setup(req)
			if got := GetClientIP(req); got != tt.wantIP {
				t.Errorf("GetClientIP() = %q, want %q", got, tt.wantIP)
			}
		})
	}
}
