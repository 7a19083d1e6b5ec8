// Package envelope defines the wire format exchanged between task
// dispatchers and workers: a JSON record with a text content field and an
// open string-keyed meta mapping.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Well-known meta keys.
const (
	KeyType   = "type"   // task kind (inbound)
	KeyStatus = "status" // success | error (outbound)
	KeySource = "source" // producing worker
	KeyError  = "error"  // failure detail
)

// Status values for outbound envelopes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// KindCustom is the task kind assumed when meta carries no type.
const KindCustom = "custom"

// ErrMalformed is returned by Decode when the wire value is not a
// structured record with a content field.
var ErrMalformed = errors.New("malformed envelope")

// Envelope is the {content, meta} unit exchanged between dispatcher and
// worker. Envelopes are built once and never mutated; producers create a
// new envelope per message.
type Envelope struct {
	Content string         `json:"content"`
	Meta    map[string]any `json:"meta"`
}

// New builds an envelope. Meta is copied so later changes to the caller's
// map don't leak into the envelope.
func New(content string, meta map[string]any) Envelope {
	m := make(map[string]any, len(meta))
	for k, v := range meta {
		m[k] = v
	}
	return Envelope{Content: content, Meta: m}
}

// NewTask builds an inbound task envelope for the given kind.
func NewTask(kind, content string) Envelope {
	return New(content, map[string]any{KeyType: kind})
}

// NewResult builds a success result envelope.
func NewResult(content, source string) Envelope {
	return New(content, map[string]any{KeyStatus: StatusSuccess, KeySource: source})
}

// NewError builds an error result envelope. The detail string is optional
// and lands in meta.error when present.
func NewError(content, source, detail string) Envelope {
	meta := map[string]any{KeyStatus: StatusError, KeySource: source}
	if detail != "" {
		meta[KeyError] = detail
	}
	return New(content, meta)
}

// Encode serializes the envelope to its JSON wire form. Meta values must be
// JSON-serializable.
func (e Envelope) Encode() []byte {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	data, _ := json.Marshal(e)
	return data
}

// Decode parses a wire value. It fails with ErrMalformed if the value is
// not a JSON object with a string content field. Absent or null meta
// decodes to an empty map, not a failure.
func Decode(data []byte) (Envelope, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	contentRaw, ok := raw["content"]
	if !ok {
		return Envelope{}, fmt.Errorf("%w: missing content field", ErrMalformed)
	}
	var content string
	if err := json.Unmarshal(contentRaw, &content); err != nil {
		return Envelope{}, fmt.Errorf("%w: content is not a string", ErrMalformed)
	}

	meta := map[string]any{}
	if metaRaw, ok := raw["meta"]; ok {
		if err := json.Unmarshal(metaRaw, &meta); err != nil {
			return Envelope{}, fmt.Errorf("%w: meta is not an object", ErrMalformed)
		}
		if meta == nil {
			meta = map[string]any{}
		}
	}

	return Envelope{Content: content, Meta: meta}, nil
}

// Kind returns the task kind from meta, defaulting to KindCustom.
func (e Envelope) Kind() string {
	if k, ok := e.Meta[KeyType].(string); ok && k != "" {
		return k
	}
	return KindCustom
}

// Status returns the outbound status, or "" for inbound envelopes.
func (e Envelope) Status() string {
	s, _ := e.Meta[KeyStatus].(string)
	return s
}

// Source returns the identifier of the producing worker.
func (e Envelope) Source() string {
	s, _ := e.Meta[KeySource].(string)
	return s
}

// ErrorDetail returns the failure detail of an error envelope.
func (e Envelope) ErrorDetail() string {
	s, _ := e.Meta[KeyError].(string)
	return s
}

// IsError reports whether this is an error-status result.
func (e Envelope) IsError() bool {
	return e.Status() == StatusError
}
