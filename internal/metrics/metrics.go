// Package metrics reads the snapshot Guardian pipes in on stdin.
package metrics

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/xeipuuv/gojsonschema"

	apperrors "guardian-verdict/internal/common/errors"
)

// Metrics is the raw payload from Guardian. Guardian promises nothing about
// its shape beyond being JSON; the well-known sections are looked up lazily.
type Metrics map[string]interface{}

// Section keys Guardian populates today.
const (
	SectionServices = "services"
	SectionMemory   = "memory"
	SectionCPULoad  = "cpu_load"
)

// payloadSchema is the only shape requirement we place on the input. Anything
// that is valid JSON but not an object is treated as if Guardian sent nothing.
var payloadSchema = gojsonschema.NewStringLoader(`{"type": "object"}`)

// Read consumes all of r and parses it as a metrics payload. An empty stream
// is equivalent to `{}`. A JSON syntax error is returned to the caller, which
// by contract terminates the run silently.
func Read(r io.Reader) (Metrics, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMetricsReadFailed, "read metrics from stdin", err)
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		trimmed = []byte("{}")
	}

	var payload interface{}
	if err := json.Unmarshal(trimmed, &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeMetricsParseFailed, "parse metrics payload", err)
	}

	result, err := gojsonschema.Validate(payloadSchema, gojsonschema.NewGoLoader(payload))
	if err != nil || !result.Valid() {
		return Metrics{}, nil
	}

	// Valid() guarantees an object, and json.Unmarshal always represents
	// objects as map[string]interface{}; the assertion only converts.
	obj, _ := payload.(map[string]interface{})
	return Metrics(obj), nil
}

// Section returns the named sub-mapping, or an empty mapping when the key is
// absent. Present-but-unexpected value types are passed through untouched so
// the prompt shows exactly what Guardian sent.
func (m Metrics) Section(key string) interface{} {
	if m == nil {
		return map[string]interface{}{}
	}
	if v, ok := m[key]; ok && v != nil {
		return v
	}
	return map[string]interface{}{}
}
