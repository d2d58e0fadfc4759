package dashboard

import (
	"strings"

	"healthgpt/internal/healthapi"
)

// ShapeSymptoms turns newline-separated free text into symptoms: one per
// non-blank line, trimmed, in input order, with default metadata.
func ShapeSymptoms(text string) []healthapi.Symptom {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	symptoms := make([]healthapi.Symptom, 0, len(lines))
	for _, line := range lines {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		symptoms = append(symptoms, healthapi.NewSymptom(name))
	}
	return symptoms
}
