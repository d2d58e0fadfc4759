package healthapi

// DefaultSeverity is sent for every symptom and shown when a stored symptom
// carries no severity.
const DefaultSeverity = "unknown"

// Symptom is a named complaint attached to a prompt record. Only Name is ever
// populated by the dashboard; the other fields travel with their defaults.
type Symptom struct {
	Name         string  `json:"name"`
	Severity     string  `json:"severity"`
	OnsetDate    *string `json:"onsetDate"`
	DurationDays *int    `json:"durationDays"`
	Notes        string  `json:"notes"`
}

// NewSymptom returns a symptom with the given name and default metadata.
func NewSymptom(name string) Symptom {
	return Symptom{Name: name, Severity: DefaultSeverity}
}

// DisplaySeverity returns the severity, or DefaultSeverity when blank.
func (s Symptom) DisplaySeverity() string {
	if s.Severity == "" {
		return DefaultSeverity
	}
	return s.Severity
}

// PromptRecord is a stored prompt as returned by the backend. The identifier
// is assigned server-side (a MongoDB _id).
type PromptRecord struct {
	ID            string    `json:"_id"`
	UserPrompt    string    `json:"userPrompt"`
	MedicinesName string    `json:"medicinesName"`
	Symptoms      []Symptom `json:"symptoms"`
}

// TranscriptionResult is the backend's answer to an audio upload.
type TranscriptionResult struct {
	Output   string `json:"output"`
	RecordID string `json:"record_id"`
}

type createPromptRequest struct {
	UserPrompt    string    `json:"userPrompt"`
	MedicinesName string    `json:"medicinesName"`
	Symptoms      []Symptom `json:"symptoms"`
}
