package ipc

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() *Router {
	r := NewRouter(zap.NewNop())
	r.Handle("echo:get", func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
		id, err := DecodeID(payload)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"id": id, "request_id": RequestID(ctx)}, nil
	})
	r.Handle("echo:missing", func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
		return nil, apperror.NotFound("bill", 9)
	})
	r.Handle("echo:panic", func(ctx context.Context, payload json.RawMessage) (interface{}, error) {
		panic("boom")
	})
	return r
}

func TestDispatchSuccess(t *testing.T) {
	env := newTestRouter().Dispatch(context.Background(), Request{
		ID:      "req-1",
		Op:      "echo:get",
		Payload: json.RawMessage(`{"id": 5}`),
	})

	require.True(t, env.Success)
	assert.Equal(t, "req-1", env.ID)
	data := env.Data.(map[string]interface{})
	assert.Equal(t, int64(5), data["id"])
	assert.Equal(t, "req-1", data["request_id"])
}

func TestDispatchFailures(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		req  Request
		code apperror.Code
	}{
		{"unknown op", Request{Op: "nope"}, apperror.CodeValidation},
		{"missing id", Request{Op: "echo:get", Payload: json.RawMessage(`{}`)}, apperror.CodeValidation},
		{"malformed payload", Request{Op: "echo:get", Payload: json.RawMessage(`{"id": "x"}`)}, apperror.CodeValidation},
		{"not found", Request{Op: "echo:missing"}, apperror.CodeNotFound},
		{"panic", Request{Op: "echo:panic"}, apperror.CodeStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := r.Dispatch(context.Background(), tt.req)
			assert.False(t, env.Success)
			assert.Equal(t, tt.code, env.Code)
			assert.NotEmpty(t, env.Error)
			assert.NotEmpty(t, env.ID)
		})
	}
}

func TestHandleDuplicatePanics(t *testing.T) {
	r := newTestRouter()
	assert.Panics(t, func() {
		r.Handle("echo:get", nil)
	})
	assert.Equal(t, []string{"echo:get", "echo:missing", "echo:panic"}, r.Ops())
}

func TestServeAnswersEachLine(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`{"id":"a","op":"echo:get","payload":{"id":1}}`,
		``,
		`not json`,
		`{"id":"c","op":"echo:missing"}`,
	}, "\n"))
	var out bytes.Buffer

	require.NoError(t, newTestRouter().Serve(context.Background(), in, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)

	var first, second, third Envelope
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.NoError(t, json.Unmarshal([]byte(lines[2]), &third))

	assert.True(t, first.Success)
	assert.Equal(t, "a", first.ID)
	assert.False(t, second.Success)
	assert.Equal(t, apperror.CodeValidation, second.Code)
	assert.False(t, third.Success)
	assert.Equal(t, apperror.CodeNotFound, third.Code)
	assert.Equal(t, "c", third.ID)
}
