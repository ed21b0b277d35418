package output

import "encoding/json"

// JSONFormatter renders a report as indented JSON, matching the shape the
// HTTP API serves.
type JSONFormatter struct{}

// Format renders the report as JSON.
func (f *JSONFormatter) Format(report *Report) (string, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
