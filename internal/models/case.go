package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// DiseasePrediction is one candidate diagnosis shown to the patient.
type DiseasePrediction struct {
	Disease         string `json:"disease"`
	Probability     string `json:"probability"`
	Severity        string `json:"severity"` // low | moderate | high
	CoMorbidityFlag bool   `json:"co_morbidity_flag"`
	Explanation     string `json:"explanation"`
}

// PatientDashboard is the patient-facing part of an analysis.
type PatientDashboard struct {
	Name                 string              `json:"name"`
	DiseasePredictions   []DiseasePrediction `json:"disease_predictions"`
	MostLikelyDisease    string              `json:"most_likely_disease"`
	Recommendation       string              `json:"recommendation"`
	DoctorMessage        string              `json:"doctor_message"`
	ImageQualityFeedback string              `json:"image_quality_feedback"`
}

// Priority is the clinician-facing urgency classification.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities; unknown values rank lowest.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// RiskScore is a 0-100 severity estimate. The model is asked for a string
// but numbers are accepted too.
type RiskScore string

func (r *RiskScore) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = RiskScore(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*r = RiskScore(n.String())
	return nil
}

// Int parses the leading integer of the score; unparsable scores are 0.
func (r RiskScore) Int() int {
	s := strings.TrimSpace(string(r))
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || end == 0 && (s[end] == '-' || s[end] == '+')) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// DoctorDashboard is the clinician-facing part of an analysis.
type DoctorDashboard struct {
	CaseID           string    `json:"case_id"`
	Summary          string    `json:"summary"`
	RiskScore        RiskScore `json:"risk_score"`
	PriorityFlag     Priority  `json:"priority_flag"`
	PatientAlert     string    `json:"patient_alert"`
	ClinicalNotes    string    `json:"clinical_notes"`
	ActionSuggestion string    `json:"action_suggestion"`
}

// Prediction is the structured payload returned by the remote analyzer.
type Prediction struct {
	PatientDashboard PatientDashboard `json:"patient_dashboard"`
	DoctorDashboard  DoctorDashboard  `json:"doctor_dashboard"`
	Warning          string           `json:"warning,omitempty"`
}

// Case is one persisted analysis result for a single image.
type Case struct {
	Prediction

	Timestamp         *time.Time `json:"timestamp,omitempty"`
	ImagePreviewURL   string     `json:"imagePreviewUrl,omitempty"`
	ImageKey          string     `json:"imageKey,omitempty"`
	UserEmail         string     `json:"userEmail,omitempty"`
	IsManuallyFlagged bool       `json:"isManuallyFlagged,omitempty"`
}

// ID is the case key.
func (c Case) ID() string {
	return c.DoctorDashboard.CaseID
}

// Time returns the timestamp, or the zero time when it is missing.
func (c Case) Time() time.Time {
	if c.Timestamp == nil {
		return time.Time{}
	}
	return *c.Timestamp
}
