package services

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// envelopeShape tags the recognised upstream response layouts. The upstream
// API serves some resources through a pagination wrapper and others as bare
// arrays; the shape is decided once here so nothing downstream has to care.
type envelopeShape int

const (
	shapePaginated envelopeShape = iota
	shapeBare
	shapeMalformed
)

type paginatedEnvelope struct {
	Results []json.RawMessage `json:"results"`
}

func detectShape(body []byte) (envelopeShape, []json.RawMessage) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return shapeMalformed, nil
	}

	switch trimmed[0] {
	case '{':
		var env paginatedEnvelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Results != nil {
			return shapePaginated, env.Results
		}
		return shapeMalformed, nil
	case '[':
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err == nil {
			return shapeBare, records
		}
		return shapeMalformed, nil
	default:
		return shapeMalformed, nil
	}
}

// Normalize turns a decoded response body into a uniform record sequence.
// Paginated envelopes yield their results field, bare arrays pass through
// unchanged, and any other shape is logged as a warning and treated as an
// empty result. Normalize never fails and never returns nil.
func Normalize(log *zap.Logger, resource string, body []byte) []json.RawMessage {
	shape, records := detectShape(body)
	if shape == shapeMalformed {
		log.Warn("unexpected response shape",
			zap.String("resource", resource),
			zap.Int("body_bytes", len(body)))
		return []json.RawMessage{}
	}

	if records == nil {
		records = []json.RawMessage{}
	}
	return records
}
