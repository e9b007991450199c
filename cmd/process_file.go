package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
)

// LoadScheduleRequest reads a YAML (or JSON) process file. Unknown keys are rejected so
// typos in field names do not silently default to zero.
func LoadScheduleRequest(path string) (requests.ScheduleRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return requests.ScheduleRequest{}, err
	}
	return ParseScheduleRequest(data)
}

func ParseScheduleRequest(data []byte) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&request); err != nil && !errors.Is(err, io.EOF) {
		return requests.ScheduleRequest{}, fmt.Errorf("parsing process file: %w", err)
	}
	return request, nil
}
