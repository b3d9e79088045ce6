package action

import (
	"encoding/json"
	"fmt"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the universal action result: a status, a human-readable
// message and, on success, capability-specific payload fields flattened into
// the same JSON object.
type Envelope struct {
	Status  string
	Message string
	Payload map[string]any
}

func Success(message string, payload map[string]any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Payload: payload}
}

func Errorf(format string, args ...any) Envelope {
	return Envelope{Status: StatusError, Message: fmt.Sprintf(format, args...)}
}

func (e Envelope) IsError() bool { return e.Status == StatusError }

// MarshalJSON flattens the payload next to status and message, producing
// {"status": ..., "message": ..., <payload fields>}.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(e.Payload)+2)
	for k, v := range e.Payload {
		if k == "status" || k == "message" {
			continue
		}
		out[k] = v
	}
	out["status"] = e.Status
	out["message"] = e.Message
	return json.Marshal(out)
}
