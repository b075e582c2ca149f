package client

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the {success, data, message} wrapper every backend reply uses
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func parseEnvelope(name string, body []byte) (*envelope, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedResponseError{Endpoint: name, Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	return &env, nil
}

func (e *envelope) ok() bool {
	return e.Success != nil && *e.Success
}

// dataKind reports the JSON kind of data: '[' , '{' or 0 for anything else
func (e *envelope) dataKind() byte {
	d := bytes.TrimSpace(e.Data)
	if len(d) == 0 || bytes.Equal(d, []byte("null")) {
		return 0
	}
	switch d[0] {
	case '[', '{':
		return d[0]
	}
	return 0
}

// decodeList extracts a successful array payload
func decodeList[T any](name string, body []byte) ([]T, error) {
	env, err := parseEnvelope(name, body)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, &MalformedResponseError{Endpoint: name, Reason: reasonNotSuccess(env)}
	}
	if env.dataKind() != '[' {
		return nil, &MalformedResponseError{Endpoint: name, Reason: "data is not an array"}
	}

	items := []T{}
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, &MalformedResponseError{Endpoint: name, Reason: fmt.Sprintf("decode data: %v", err)}
	}
	return items, nil
}

// decodeOne extracts a successful object payload
func decodeOne[T any](name string, body []byte) (*T, error) {
	env, err := parseEnvelope(name, body)
	if err != nil {
		return nil, err
	}
	if !env.ok() {
		return nil, &MalformedResponseError{Endpoint: name, Reason: reasonNotSuccess(env)}
	}
	if env.dataKind() != '{' {
		return nil, &MalformedResponseError{Endpoint: name, Reason: "data is not an object"}
	}

	var item T
	if err := json.Unmarshal(env.Data, &item); err != nil {
		return nil, &MalformedResponseError{Endpoint: name, Reason: fmt.Sprintf("decode data: %v", err)}
	}
	return &item, nil
}

func reasonNotSuccess(env *envelope) string {
	if env.Success == nil {
		return "missing success flag"
	}
	if env.Message != "" {
		return "success is false: " + env.Message
	}
	return "success is false"
}
