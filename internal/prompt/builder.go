// Package prompt renders the Guardian metrics snapshot into the fixed
// instruction prompt the model sees.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"guardian-verdict/internal/metrics"
)

// SuccessPhrase is the verdict the model is told to use when nothing is wrong.
// Guardian matches on it verbatim, so it must never change casually.
const SuccessPhrase = "All systems green."

// Build turns the metrics payload into a compact, instruction-oriented prompt.
// The template is deliberately rigid: a narrow set of expected output shapes
// keeps the model response short and parseable as plain text. Build cannot
// fail; malformed sections render as-is.
func Build(m metrics.Metrics) string {
	var parts []string

	parts = append(parts, "You are the CustomOS Guardian, a concise monitoring assistant.")
	parts = append(parts, "")
	parts = append(parts, "Your job:")
	parts = append(parts, "  - Look at CPU, memory, and service status.")
	parts = append(parts, "  - Respond with ONE or two short sentences.")
	parts = append(parts, fmt.Sprintf("  - If everything looks fine, say %q.", SuccessPhrase))
	parts = append(parts, "  - If any problem is detected, mention it explicitly")
	parts = append(parts, `    (e.g., "Issue detected in Plex service").`)
	parts = append(parts, "")
	parts = append(parts, "Data (JSON):")
	parts = append(parts, "CPU load: "+renderSection(m.Section(metrics.SectionCPULoad)))
	parts = append(parts, "Memory: "+renderSection(m.Section(metrics.SectionMemory)))
	parts = append(parts, "Services: "+renderSection(m.Section(metrics.SectionServices)))
	parts = append(parts, "")
	parts = append(parts, "Respond with a short human-friendly verdict only, no JSON, no extra explanation.")

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func renderSection(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		// json.Unmarshal output always re-marshals; this is unreachable for
		// payloads that came through the reader.
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
