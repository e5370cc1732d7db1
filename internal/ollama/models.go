package ollama

// generateRequest is the body for the Ollama /api/generate endpoint. Stream
// is always false: Guardian wants the whole verdict in one response.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse covers the two field names the endpoint has used for the
// generated text. Response is checked first, Text is the fallback.
type generateResponse struct {
	Response string `json:"response"`
	Text     string `json:"text"`
}
