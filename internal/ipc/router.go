// Package ipc is the boundary between the UI host and the ledger: a map of
// named operations, each answered with a uniform success/failure envelope.
package ipc

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/fekuna/omnipos-ledger/internal/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Request struct {
	ID      string          `json:"id"`
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload"`
}

type Envelope struct {
	ID      string        `json:"id,omitempty"`
	Success bool          `json:"success"`
	Data    interface{}   `json:"data"`
	Error   string        `json:"error,omitempty"`
	Code    apperror.Code `json:"code,omitempty"`
}

type HandlerFunc func(ctx context.Context, payload json.RawMessage) (interface{}, error)

type Router struct {
	routes map[string]HandlerFunc
	logger logger.ZapLogger
}

func NewRouter(log logger.ZapLogger) *Router {
	return &Router{
		routes: make(map[string]HandlerFunc),
		logger: log,
	}
}

// Handle registers op. Registering the same op twice is a programming error.
func (r *Router) Handle(op string, h HandlerFunc) {
	if _, ok := r.routes[op]; ok {
		panic(fmt.Sprintf("ipc: duplicate operation %q", op))
	}
	r.routes[op] = h
}

func (r *Router) Ops() []string {
	ops := make([]string, 0, len(r.routes))
	for op := range r.routes {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

// Dispatch runs one request. It never panics and never returns a Go error:
// every outcome is an Envelope.
func (r *Router) Dispatch(ctx context.Context, req Request) (env Envelope) {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	env.ID = req.ID
	ctx = WithRequestID(ctx, req.ID)
	start := time.Now()

	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("operation panicked",
				zap.String("op", req.Op),
				zap.String("request_id", req.ID),
				zap.Any("panic", p),
			)
			env = failure(req.ID, &apperror.Error{
				Code:    apperror.CodeStore,
				Message: fmt.Sprintf("internal error: %v", p),
			})
		}
	}()

	h, ok := r.routes[req.Op]
	if !ok {
		return failure(req.ID, apperror.Validation("unknown operation %q", req.Op))
	}

	data, err := h(ctx, req.Payload)
	fields := []zap.Field{
		zap.String("op", req.Op),
		zap.String("request_id", req.ID),
		zap.Duration("took", time.Since(start)),
	}
	if err != nil {
		code := apperror.CodeOf(err)
		fields = append(fields, zap.String("code", string(code)), zap.Error(err))
		if code == apperror.CodeStore {
			r.logger.Error("operation failed", fields...)
		} else {
			r.logger.Info("operation rejected", fields...)
		}
		return failure(req.ID, err)
	}

	r.logger.Debug("operation done", fields...)
	return Envelope{ID: req.ID, Success: true, Data: data}
}

func failure(id string, err error) Envelope {
	return Envelope{
		ID:      id,
		Success: false,
		Error:   err.Error(),
		Code:    apperror.CodeOf(err),
	}
}

// Decode unmarshals a payload into v. An empty payload leaves v untouched.
func Decode(payload json.RawMessage, v interface{}) error {
	if len(payload) == 0 || string(payload) == "null" {
		return nil
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return apperror.Validation("malformed payload: %v", err)
	}
	return nil
}

// IDPayload is the payload of get/delete style operations.
type IDPayload struct {
	ID int64 `json:"id"`
}

func DecodeID(payload json.RawMessage) (int64, error) {
	var p IDPayload
	if err := Decode(payload, &p); err != nil {
		return 0, err
	}
	if p.ID <= 0 {
		return 0, apperror.Validation("id is required")
	}
	return p.ID, nil
}

// Created is returned by create operations.
type Created struct {
	ID interface{} `json:"id"`
}
