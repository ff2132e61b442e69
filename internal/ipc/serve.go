package ipc

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	"github.com/fekuna/omnipos-ledger/internal/apperror"
	"github.com/pkg/errors"
)

const maxRequestBytes = 16 << 20

// Serve reads newline-delimited requests from in and writes one envelope per
// line to out, strictly in order. It returns nil on EOF or cancellation.
func (r *Router) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRequestBytes)
	enc := json.NewEncoder(out)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env Envelope
		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			env = failure("", apperror.Validation("malformed request: %v", err))
		} else {
			env = r.Dispatch(ctx, req)
		}

		if err := enc.Encode(env); err != nil {
			return errors.Wrap(err, "write response")
		}
	}
	return errors.Wrap(scanner.Err(), "read request")
}
