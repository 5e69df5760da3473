// Package client is a typed Go client for the clinic dashboard API.
// The server location is explicit configuration; there is no origin
// probing. After Login or Register the bearer token is attached to
// every request automatically.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/clinicdash/backpain-api/controllers"
	"github.com/clinicdash/backpain-api/models"
	"github.com/clinicdash/backpain-api/utils"
)

type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// New creates a client for the API at baseURL, e.g. "http://localhost:5003"
func New(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError carries the server's error payload alongside the HTTP status
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

func (c *Client) do(method, path string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var errBody struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		msg := string(data)
		if err := json.Unmarshal(data, &errBody); err == nil {
			if errBody.Message != "" {
				msg = errBody.Message
			} else if errBody.Error != "" {
				msg = errBody.Error
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out != nil {
		return json.Unmarshal(data, out)
	}
	return nil
}

// DoctorProfile is the public practitioner view returned by auth calls
type DoctorProfile struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Specialty string `json:"specialty"`
}

// AuthResponse is the login/register payload
type AuthResponse struct {
	Token  string        `json:"token"`
	Doctor DoctorProfile `json:"doctor"`
}

// Register creates a doctor account and stores the returned token
func (c *Client) Register(name, email, password, specialty string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name":      name,
		"email":     email,
		"password":  password,
		"specialty": specialty,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

// Login authenticates and stores the returned token
func (c *Client) Login(email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

// Logout discards the stored token; tokens are stateless server-side
func (c *Client) Logout() {
	c.Token = ""
}

// Me fetches the current doctor's full profile
func (c *Client) Me() (*models.Doctor, error) {
	var doctor models.Doctor
	if err := c.do(http.MethodGet, "/api/auth/me", nil, &doctor); err != nil {
		return nil, err
	}
	return &doctor, nil
}

// PatientsPage is the paginated patient listing
type PatientsPage struct {
	Patients   []models.Patient `json:"patients"`
	Pagination utils.Pagination `json:"pagination"`
}

// Patients fetches a page of patients
func (c *Client) Patients(page, limit int) (*PatientsPage, error) {
	var resp PatientsPage
	path := "/api/patients/?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchPatients finds patients by name or email substring
func (c *Client) SearchPatients(query string) ([]models.Patient, error) {
	var patients []models.Patient
	path := "/api/patients/search?query=" + url.QueryEscape(query)
	if err := c.do(http.MethodGet, path, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// PatientDetail is a patient with their assessment history
type PatientDetail struct {
	Patient     models.Patient      `json:"patient"`
	Assessments []models.Assessment `json:"assessments"`
}

// Patient fetches one patient and their assessments
func (c *Client) Patient(id uint) (*PatientDetail, error) {
	var resp PatientDetail
	path := "/api/patients/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AssessmentsPage is the paginated assessment listing
type AssessmentsPage struct {
	Assessments []models.Assessment `json:"assessments"`
	Pagination  utils.Pagination    `json:"pagination"`
}

// Assessments fetches a page of assessments, newest first
func (c *Client) Assessments(page, limit int) (*AssessmentsPage, error) {
	var resp AssessmentsPage
	path := "/api/assessments/?page=" + strconv.Itoa(page) + "&limit=" + strconv.Itoa(limit)
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Assessment fetches one assessment by id
func (c *Client) Assessment(id uint) (*models.Assessment, error) {
	var assessment models.Assessment
	path := "/api/assessments/" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(http.MethodGet, path, nil, &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

// CreateAssessment submits a new assessment
func (c *Client) CreateAssessment(input *utils.AssessmentInput) (*models.Assessment, error) {
	var resp struct {
		Success    bool              `json:"success"`
		Assessment models.Assessment `json:"assessment"`
		Message    string            `json:"message"`
	}
	if err := c.do(http.MethodPost, "/api/assessments/", input, &resp); err != nil {
		return nil, err
	}
	return &resp.Assessment, nil
}

// StatsOverview fetches the dashboard statistics
func (c *Client) StatsOverview() (*controllers.StatsOverviewResponse, error) {
	var resp controllers.StatsOverviewResponse
	if err := c.do(http.MethodGet, "/api/assessments/stats/overview", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Appointments fetches the calling doctor's appointments
func (c *Client) Appointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.do(http.MethodGet, "/api/appointments/", nil, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

// CreateAppointment books an appointment for a patient
func (c *Client) CreateAppointment(patientID uint, date, timeOfDay, kind, notes string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := c.do(http.MethodPost, "/api/appointments/", map[string]interface{}{
		"patient_id": patientID,
		"date":       date,
		"time":       timeOfDay,
		"type":       kind,
		"notes":      notes,
	}, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// UpdateAppointmentStatus overwrites an appointment's status
func (c *Client) UpdateAppointmentStatus(id uint, status models.AppointmentStatus) (*models.Appointment, error) {
	var appointment models.Appointment
	path := "/api/appointments/" + strconv.FormatUint(uint64(id), 10)
	err := c.do(http.MethodPut, path, map[string]interface{}{
		"status": status,
	}, &appointment)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}

// DeleteAppointment removes an appointment
func (c *Client) DeleteAppointment(id uint) error {
	path := "/api/appointments/" + strconv.FormatUint(uint64(id), 10)
	return c.do(http.MethodDelete, path, nil, nil)
}

// Health checks the server's root probe endpoint
func (c *Client) Health() (bool, error) {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(http.MethodGet, "/", nil, &resp); err != nil {
		return false, err
	}
	return resp.Status == "ok", nil
}
