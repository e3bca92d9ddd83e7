package responses

// Message is the uniform envelope for non-payload responses.
type Message struct {
	Type    string `json:"type,omitempty"` // "error", "info", ...
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

func ErrorMessage(code int, msg string) Message {
	return Message{Type: "error", Message: msg, Code: code}
}
