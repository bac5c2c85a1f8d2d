package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestNormalizePaginatedEnvelope(t *testing.T) {
	log := zaptest.NewLogger(t)

	body := []byte(`{"count": 2, "next": null, "previous": null, "results": [{"id": 1}, {"id": 2}]}`)
	records := Normalize(log, ResourceProducts, body)

	require.Len(t, records, 2)
	assert.JSONEq(t, `{"id": 1}`, string(records[0]))
	assert.JSONEq(t, `{"id": 2}`, string(records[1]))
}

func TestNormalizeBareArray(t *testing.T) {
	log := zaptest.NewLogger(t)

	body := []byte(`[{"id": 7, "title": "Sunset"}]`)
	records := Normalize(log, ResourceProducts, body)

	require.Len(t, records, 1)
	assert.JSONEq(t, `{"id": 7, "title": "Sunset"}`, string(records[0]))
}

func TestNormalizeEmptyResults(t *testing.T) {
	log := zaptest.NewLogger(t)

	records := Normalize(log, ResourceForums, []byte(`{"results": []}`))
	require.NotNil(t, records)
	assert.Empty(t, records)

	records = Normalize(log, ResourceForums, []byte(`[]`))
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestNormalizeUnexpectedShapes(t *testing.T) {
	log := zaptest.NewLogger(t)

	cases := map[string][]byte{
		"object without results": []byte(`{"detail": "throttled"}`),
		"results not a sequence": []byte(`{"results": 42}`),
		"scalar":                 []byte(`"hello"`),
		"number":                 []byte(`17`),
		"null":                   []byte(`null`),
		"empty body":             []byte(``),
		"truncated json":         []byte(`[{"id": 1}`),
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			records := Normalize(log, ResourceChapters, body)
			require.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestNormalizeNeverReturnsNil(t *testing.T) {
	log := zaptest.NewLogger(t)

	var raw json.RawMessage = []byte(`{"results": null}`)
	records := Normalize(log, ResourcePosts, raw)
	require.NotNil(t, records)
	assert.Empty(t, records)
}
