// Package vsfm launches the VisualSFM binary and orchestrates full
// reconstruction runs over an image directory.
package vsfm

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"strconv"

	"github.com/hupe1980/sfmgo"
)

// FreePort asks the kernel for an unused TCP port and releases it again,
// so the VisualSFM listener can be started on it.
func FreePort() (int, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, fmt.Errorf("probe free port: %w", err)
	}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := ln.Close(); err != nil {
		return 0, err
	}
	return port, nil
}

// MustFreePort is FreePort for wiring code that cannot fail usefully.
func MustFreePort() int {
	port, err := FreePort()
	if err != nil {
		panic(err)
	}
	return port
}

// Process is a running VisualSFM instance listening for socket commands.
type Process struct {
	Port int

	cmd    *exec.Cmd
	logger *sfmgo.Logger
}

// Launch starts binary in "listen+log" mode on port.
//
// The process is spawned with a direct argument vector; nothing passes
// through a shell, so paths containing spaces or metacharacters stay
// literal.
func Launch(ctx context.Context, binary string, port int, logger *sfmgo.Logger) (*Process, error) {
	if logger == nil {
		logger = sfmgo.NoopLogger()
	}

	cmd := exec.CommandContext(ctx, binary, "listen+log", strconv.Itoa(port))
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", binary, err)
	}

	logger.Info("vsfm started", "binary", binary, "port", port, "pid", cmd.Process.Pid)

	return &Process{Port: port, cmd: cmd, logger: logger}, nil
}

// Wait blocks until the process exits.
func (p *Process) Wait() error {
	return p.cmd.Wait()
}

// Kill terminates the process and reaps it.
func (p *Process) Kill() error {
	if err := p.cmd.Process.Kill(); err != nil {
		return err
	}
	_ = p.cmd.Wait()
	p.logger.Info("vsfm killed", "pid", p.cmd.Process.Pid)
	return nil
}
