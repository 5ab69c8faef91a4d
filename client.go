package sfmgo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

// WaitStatus is the terminal state of a completion wait.
type WaitStatus int

const (
	// WaitIdle means no wait was requested.
	WaitIdle WaitStatus = iota
	// WaitWaiting means the poll loop is running. Never returned to
	// callers; it exists so the state machine is explicit.
	WaitWaiting
	// WaitCompleted means a completion marker appeared in the response
	// stream before the deadline.
	WaitCompleted
	// WaitTimedOut means the deadline passed without a marker. This is a
	// reported state, not an error: the caller decides what to do next.
	WaitTimedOut
)

func (s WaitStatus) String() string {
	switch s {
	case WaitIdle:
		return "idle"
	case WaitWaiting:
		return "waiting"
	case WaitCompleted:
		return "completed"
	case WaitTimedOut:
		return "timed_out"
	default:
		return "unknown"
	}
}

// Client drives one VisualSFM socket listener. It owns exactly one
// connection for its lifetime and supports one logical caller at a time;
// it is not safe for concurrent use.
type Client struct {
	conn   net.Conn
	opts   options
	logger *Logger
}

// Dial connects to the VisualSFM listener at host:port.
//
// The connect is retried a bounded number of times (default 10, 100ms
// apart) to absorb the listener's startup lag after the process is
// spawned. When the budget is exhausted the last dial error is returned
// wrapped in ErrConnectTimeout.
func Dial(ctx context.Context, host string, port int, optFns ...Option) (*Client, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	logger := o.logger.WithAddr(addr)

	var d net.Dialer
	var lastErr error
	for attempt := 1; attempt <= o.dialAttempts; attempt++ {
		conn, err := d.DialContext(ctx, "tcp", addr)
		if err == nil {
			logger.Info("connected", "attempt", attempt)
			return &Client{conn: conn, opts: o, logger: logger}, nil
		}
		lastErr = err
		logger.Debug("connect attempt failed", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(o.dialDelay):
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %v",
		ErrConnectTimeout, addr, o.dialAttempts, lastErr)
}

// Close releases the socket. The client cannot be reused afterwards.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

// SendCode writes the command line "<code>\n", or "<code> <param>\n"
// when param is non-empty, fully to the socket. It does not wait for
// completion.
func (c *Client) SendCode(ctx context.Context, code int, param string) error {
	if c.conn == nil {
		return ErrClosed
	}

	line := strconv.Itoa(code)
	if param != "" {
		line += " " + param
	}
	line += "\n"

	if deadline, ok := ctx.Deadline(); ok {
		_ = c.conn.SetWriteDeadline(deadline)
		defer c.conn.SetWriteDeadline(time.Time{})
	}

	_, err := io.WriteString(c.conn, line)
	c.logger.LogSend(code, param, err)
	if err != nil {
		return &ErrSendFailed{Code: code, cause: err}
	}
	return nil
}

// Send resolves path through the command registry and dispatches the
// resulting code. An unresolvable path is logged and returned without
// anything being written to the socket.
func (c *Client) Send(ctx context.Context, path []string, param string) error {
	code, err := c.opts.registry.Resolve(path...)
	if err != nil {
		c.logger.Error("command not found", "path", path, "error", err)
		return err
	}
	return c.SendCode(ctx, code, param)
}

// SendCodeWait dispatches code and then blocks until a completion marker
// is observed or timeout passes. A timeout <= 0 means the client's
// default (60s unless configured).
func (c *Client) SendCodeWait(ctx context.Context, code int, param string, timeout time.Duration) (WaitStatus, error) {
	if err := c.SendCode(ctx, code, param); err != nil {
		return WaitIdle, err
	}
	return c.Wait(ctx, timeout)
}

// SendWait is Send followed by a completion wait.
func (c *Client) SendWait(ctx context.Context, path []string, param string, timeout time.Duration) (WaitStatus, error) {
	code, err := c.opts.registry.Resolve(path...)
	if err != nil {
		c.logger.Error("command not found", "path", path, "error", err)
		return WaitIdle, err
	}
	return c.SendCodeWait(ctx, code, param, timeout)
}

// Wait runs the completion-detection loop until a marker appears in the
// response stream or timeout passes.
//
// Each iteration performs a deadline-bounded read of up to the configured
// chunk size. Received data is logged and appended to a rolling tail of
// the accumulated stream; when the socket has no data pending, the tail
// is scanned for the completion markers. Scanning the tail rather than
// only the most recent chunk means a marker split across two reads is
// still found. Per-attempt read timeouts are "no data right now", never
// a fault.
//
// The returned error is non-nil only when ctx is cancelled externally; a
// plain deadline expiry reports WaitTimedOut with a nil error.
func (c *Client) Wait(ctx context.Context, timeout time.Duration) (WaitStatus, error) {
	if c.conn == nil {
		return WaitIdle, ErrClosed
	}
	if timeout <= 0 {
		timeout = c.opts.waitTimeout
	}

	state := WaitWaiting
	deadline := time.Now().Add(timeout)
	limiter := rate.NewLimiter(c.opts.pollRate, 1)
	chunk := make([]byte, c.opts.readChunk)

	var tail []byte
	received := 0

	defer c.conn.SetReadDeadline(time.Time{})

	for state == WaitWaiting {
		if err := limiter.Wait(ctx); err != nil {
			return WaitTimedOut, err
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			state = WaitTimedOut
			break
		}

		window := 50 * time.Millisecond
		if window > remaining {
			window = remaining
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(window))

		n, err := c.conn.Read(chunk)
		if n > 0 {
			received += n
			c.logger.Debug("response chunk", "data", string(chunk[:n]))
			tail = appendTail(tail, chunk[:n], c.opts.tailSize)
			// Keep draining; completion is only checked once the buffer
			// is empty.
			continue
		}

		// No data right now. A read timeout is the normal empty-buffer
		// signal; any other error (including EOF) is treated the same
		// way and the deadline check bounds the loop.
		if c.scanMarkers(tail) {
			state = WaitCompleted
			break
		}
		_ = err
	}

	c.logger.LogWait(state, received)
	return state, nil
}

func (c *Client) scanMarkers(tail []byte) bool {
	for _, marker := range c.opts.markers {
		if bytes.Contains(tail, []byte(marker)) {
			return true
		}
	}
	return false
}

// appendTail appends data and trims the front so at most max bytes are
// kept. The tail only has to be long enough to span a marker split
// across reads.
func appendTail(tail, data []byte, max int) []byte {
	tail = append(tail, data...)
	if len(tail) > max {
		tail = tail[len(tail)-max:]
	}
	return tail
}
