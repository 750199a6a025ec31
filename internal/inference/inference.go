package inference

import "time"

// Message is a normalized representation of a chat message.
type Message struct {
	Role    string
	Content string
}

// Request is the normalized generation request sent to an upstream model
// provider. The engine never sees this type; only the oracle layer does.
type Request struct {
	Model    string
	Messages []Message
	// Timings captures per-stage latency for observability.
	Timings *Timings
}

// Usage holds token accounting as reported by the provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the normalized generation response.
type Response struct {
	Message Message
	Usage   Usage
}

// Timings holds latency measurements for key stages of an oracle run.
type Timings struct {
	Provider time.Duration
	Mapping  time.Duration
}
