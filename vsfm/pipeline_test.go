package vsfm

import (
	"bufio"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hupe1980/sfmgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeListener stands in for a VisualSFM instance: it records every
// command line and acknowledges each with a completion marker.
type fakeListener struct {
	mu    sync.Mutex
	lines []string
}

func (f *fakeListener) serve(t *testing.T) int {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			f.mu.Lock()
			f.lines = append(f.lines, scanner.Text())
			f.mu.Unlock()
			_, _ = conn.Write([]byte("*command processed*\n"))
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port
}

func (f *fakeListener) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.lines...)
}

func TestReconstruct(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"0001.jpg", "0002.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	fake := &fakeListener{}
	port := fake.serve(t)

	client, err := sfmgo.Dial(context.Background(), "127.0.0.1", port)
	require.NoError(t, err)
	defer client.Close()

	err = Reconstruct(context.Background(), client, dir, &ReconstructOptions{
		StepTimeout: 5 * time.Second,
	})
	require.NoError(t, err)

	// The acknowledging goroutine may still be draining the last line.
	require.Eventually(t, func() bool {
		return len(fake.received()) == 7
	}, 2*time.Second, 10*time.Millisecond)

	lines := fake.received()

	assert.Equal(t, "33166 "+filepath.Join(dir, "0001.jpg"), lines[0])
	assert.Equal(t, "33166 "+filepath.Join(dir, "0002.jpg"), lines[1])
	assert.Equal(t, "33190", lines[2]) // image thumbnails
	assert.Equal(t, "33033", lines[3]) // compute missing match
	assert.Equal(t, "33041", lines[4]) // reconstruct sparse
	denseOut := filepath.Join(dir, filepath.Base(dir)+"_3D")
	assert.Equal(t, "33471 "+denseOut, lines[5])
	assert.Equal(t, "33467", lines[6]) // show dense points
}

func TestReconstructEmptyDir(t *testing.T) {
	client := &sfmgo.Client{}
	err := Reconstruct(context.Background(), client, t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no images")
}

func TestReconstructStepTimeout(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0001.jpg"), nil, 0o644))

	// A listener that swallows commands without ever acknowledging.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
		}
	}()

	client, err := sfmgo.Dial(context.Background(), "127.0.0.1", ln.Addr().(*net.TCPAddr).Port)
	require.NoError(t, err)
	defer client.Close()

	err = Reconstruct(context.Background(), client, dir, &ReconstructOptions{
		StepTimeout: 200 * time.Millisecond,
	})

	var stErr *StepTimeoutError
	require.ErrorAs(t, err, &stErr)
	assert.True(t, strings.HasPrefix(stErr.Step, "sfm/"))
}
