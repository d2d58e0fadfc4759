package healthapi

import (
	"bytes"
	"encoding/json"
)

// Stored records are written by more than this client (the transcription
// endpoint stores model output in the same collection), so reads accept
// loosely typed fields instead of rejecting the whole list.

// UnmarshalJSON reads a stored symptom. Text fields take any scalar; onsetDate
// and durationDays are kept only when they have the expected type.
func (s *Symptom) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*s = Symptom{
		Name:     looseString(fields["name"]),
		Severity: looseString(fields["severity"]),
		Notes:    looseString(fields["notes"]),
	}
	if raw := fields["onsetDate"]; !isNull(raw) {
		var onset string
		if json.Unmarshal(raw, &onset) == nil {
			s.OnsetDate = &onset
		}
	}
	if raw := fields["durationDays"]; !isNull(raw) {
		var days int
		if json.Unmarshal(raw, &days) == nil {
			s.DurationDays = &days
		}
	}
	return nil
}

// UnmarshalJSON reads a stored record. Symptoms that are not objects are
// dropped; the rest of the record is kept.
func (r *PromptRecord) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*r = PromptRecord{
		ID:            looseString(fields["_id"]),
		UserPrompt:    looseString(fields["userPrompt"]),
		MedicinesName: looseString(fields["medicinesName"]),
	}
	var symptoms []json.RawMessage
	if raw := fields["symptoms"]; !isNull(raw) && json.Unmarshal(raw, &symptoms) == nil {
		r.Symptoms = make([]Symptom, 0, len(symptoms))
		for _, item := range symptoms {
			var symptom Symptom
			if err := json.Unmarshal(item, &symptom); err != nil {
				continue
			}
			r.Symptoms = append(r.Symptoms, symptom)
		}
	}
	return nil
}

// UnmarshalJSON reads a transcription result, accepting an ObjectID-shaped
// record_id.
func (t *TranscriptionResult) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*t = TranscriptionResult{
		Output:   looseString(fields["output"]),
		RecordID: looseString(fields["record_id"]),
	}
	return nil
}

// looseString renders a JSON scalar as text. Extended-JSON ObjectIDs
// ({"$oid": "..."}) yield the hex id; other values keep their JSON text.
func looseString(raw json.RawMessage) string {
	if isNull(raw) {
		return ""
	}
	var text string
	if json.Unmarshal(raw, &text) == nil {
		return text
	}
	var oid struct {
		OID string `json:"$oid"`
	}
	if json.Unmarshal(raw, &oid) == nil && oid.OID != "" {
		return oid.OID
	}
	return string(bytes.TrimSpace(raw))
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
