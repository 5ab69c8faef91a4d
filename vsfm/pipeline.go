package vsfm

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/hupe1980/sfmgo"
)

// StepTimeoutError reports a pipeline step whose completion wait timed
// out. The run is aborted rather than building on an unfinished step.
type StepTimeoutError struct {
	Step string
}

func (e *StepTimeoutError) Error() string {
	return fmt.Sprintf("step %q timed out", e.Step)
}

// ReconstructOptions tune a Reconstruct run.
type ReconstructOptions struct {
	// DenseOut is the output path for the dense reconstruction. Empty
	// means "<dir>/<basename>_3D".
	DenseOut string

	// StepTimeout bounds each long-running step. Zero means 10 minutes;
	// sparse and dense reconstruction routinely take that long.
	StepTimeout time.Duration

	// Exit sends the exit command to the tool once the run finished.
	Exit bool
}

// Reconstruct runs the full reconstruction sequence over the images in
// dir: load images, show thumbnails, compute missing matches,
// reconstruct sparse, reconstruct dense. Long-running steps wait for the
// tool's completion marker.
func Reconstruct(ctx context.Context, client *sfmgo.Client, dir string, opts *ReconstructOptions) error {
	if opts == nil {
		opts = &ReconstructOptions{}
	}
	stepTimeout := opts.StepTimeout
	if stepTimeout <= 0 {
		stepTimeout = 10 * time.Minute
	}
	denseOut := opts.DenseOut
	if denseOut == "" {
		denseOut = filepath.Join(dir, filepath.Base(dir)+"_3D")
	}

	images, err := ListImages(dir)
	if err != nil {
		return err
	}
	if len(images) == 0 {
		return fmt.Errorf("no images in %s", dir)
	}

	for _, image := range images {
		if err := client.Send(ctx, []string{"file", "open_multi_images"}, image); err != nil {
			return err
		}
	}
	if err := client.Send(ctx, []string{"view", "image_thumbnails"}, ""); err != nil {
		return err
	}

	steps := []struct {
		path  []string
		param string
	}{
		{path: []string{"sfm", "pairwise", "compute_missing_match"}},
		{path: []string{"sfm", "reconstruct_sparse"}},
		{path: []string{"sfm", "reconstruct_dense"}, param: denseOut},
	}
	for _, step := range steps {
		status, err := client.SendWait(ctx, step.path, step.param, stepTimeout)
		if err != nil {
			return err
		}
		if status != sfmgo.WaitCompleted {
			return &StepTimeoutError{Step: strings.Join(step.path, "/")}
		}
	}

	if err := client.Send(ctx, []string{"view", "dense_3d_points"}, ""); err != nil {
		return err
	}

	if opts.Exit {
		if _, err := client.SendWait(ctx, []string{"file", "exit_program"}, "", stepTimeout); err != nil {
			return err
		}
	}

	return nil
}
