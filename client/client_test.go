package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicdash/backpain-api/models"
)

func TestLogin_StoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["email"] != "adams@clinic.com" {
			t.Errorf("unexpected email %s", body["email"])
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"token": "issued-token",
			"doctor": map[string]interface{}{
				"id": 1, "name": "Dr. Adams", "email": "adams@clinic.com",
				"role": "doctor", "specialty": "Orthopedics",
			},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	resp, err := c.Login("adams@clinic.com", "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Doctor.Name != "Dr. Adams" {
		t.Errorf("unexpected doctor name %s", resp.Doctor.Name)
	}
	if c.Token != "issued-token" {
		t.Errorf("token should be stored on the client, got %q", c.Token)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer my-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		json.NewEncoder(w).Encode(models.Doctor{ID: 1, Name: "Dr. Adams"})
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "my-token"
	if _, err := c.Me(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_SurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid Credentials"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Login("nobody@clinic.com", "wrong")
	if err == nil {
		t.Fatal("expected an error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", apiErr.StatusCode)
	}
	if apiErr.Message != "Invalid Credentials" {
		t.Errorf("unexpected message %q", apiErr.Message)
	}
}

func TestPatients_ParsesPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("expected limit=5, got %q", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"patients": []map[string]interface{}{
				{"id": 6, "name": "John Smith", "email": "john@example.com"},
			},
			"pagination": map[string]interface{}{"total": 12, "page": 2, "pages": 3},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "my-token"
	page, err := c.Patients(2, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Patients) != 1 {
		t.Fatalf("expected 1 patient, got %d", len(page.Patients))
	}
	if page.Pagination.Pages != 3 {
		t.Errorf("expected 3 pages, got %d", page.Pagination.Pages)
	}
}

func TestLogout_DiscardsToken(t *testing.T) {
	c := New("http://localhost:5003")
	c.Token = "my-token"
	c.Logout()
	if c.Token != "" {
		t.Errorf("logout should discard the token, got %q", c.Token)
	}
}

func TestUpdateAppointmentStatus_SendsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		if r.URL.Path != "/api/appointments/9" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "completed" {
			t.Errorf("expected status completed, got %q", body["status"])
		}
		json.NewEncoder(w).Encode(models.Appointment{Status: models.StatusCompleted})
	}))
	defer server.Close()

	c := New(server.URL)
	c.Token = "my-token"
	appointment, err := c.UpdateAppointmentStatus(9, models.StatusCompleted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if appointment.Status != models.StatusCompleted {
		t.Errorf("unexpected status %s", appointment.Status)
	}
}
