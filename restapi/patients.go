package restapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Patient is one admitted or discharged patient record.
type Patient struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Ward         string     `json:"ward,omitempty"`
	BedNumber    string     `json:"bed_number,omitempty"`
	AdmittedAt   *time.Time `json:"admitted_at,omitempty"`
	DischargedAt *time.Time `json:"discharged_at,omitempty"`
}

// PatientInput registers a new patient.
type PatientInput struct {
	Name   string `json:"name"`
	Ward   string `json:"ward"`
	BedID  int    `json:"bed_id"`
	Reason string `json:"reason,omitempty"`
}

// RegisterPatient admits a patient. Receptionist-only server-side.
func (c *Client) RegisterPatient(ctx context.Context, input PatientInput) (*Patient, error) {
	var p Patient
	if err := c.do(ctx, http.MethodPost, "/receptionist/patients", nil, input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DischargePatient frees the patient's bed. Receptionist-only server-side.
func (c *Client) DischargePatient(ctx context.Context, patientID int) error {
	path := fmt.Sprintf("/receptionist/patients/%d/discharge", patientID)
	return c.do(ctx, http.MethodPut, path, nil, nil, nil)
}

// Patients lists current patients. Doctor-only server-side.
func (c *Client) Patients(ctx context.Context) ([]Patient, error) {
	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "/doctor/patients", nil, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// SearchPatients finds patients by name.
func (c *Client) SearchPatients(ctx context.Context, name string) ([]Patient, error) {
	query := url.Values{"name": {name}}
	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "/receptionist/patients/search", query, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// PatientHistory returns past admissions for a patient within the date range.
func (c *Client) PatientHistory(ctx context.Context, name string, start, end time.Time) ([]Patient, error) {
	query := url.Values{"name": {name}}
	if !start.IsZero() {
		query.Set("start_date", start.Format("2006-01-02"))
	}
	if !end.IsZero() {
		query.Set("end_date", end.Format("2006-01-02"))
	}

	var patients []Patient
	if err := c.do(ctx, http.MethodGet, "/patients/history", query, nil, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}
