// Package sfmgo automates VisualSFM through its TCP socket command
// interface and its binary feature-file format.
//
// # Quick Start
//
// Drive a running VisualSFM instance:
//
//	ctx := context.Background()
//	client, _ := sfmgo.Dial(ctx, "localhost", 9000)
//	defer client.Close()
//
//	client.Send(ctx, []string{"file", "open_multi_images"}, "img/0001.jpg")
//	status, _ := client.SendWait(ctx, []string{"sfm", "reconstruct_sparse"}, "", 10*time.Minute)
//	if status == sfmgo.WaitTimedOut {
//	    // decide: retry, proceed, or abort
//	}
//
// Or launch and reconstruct a whole image directory:
//
//	proc, _ := vsfm.Launch(ctx, "/opt/vsfm/VisualSFM", vsfm.MustFreePort(), nil)
//	defer proc.Kill()
//
// # Feature Files
//
// The sift subpackage decodes and encodes VisualSFM's binary keypoint/
// descriptor files, including zstd-compressed archives:
//
//	fs, _ := sift.ReadFile("0001.sift")
//	_ = sift.WriteFile("0001.sift.zst", fs)
//
// # Completion Detection
//
// VisualSFM reports command completion by writing textual markers to the
// socket. SendWait polls the connection, accumulates the response stream,
// and returns WaitCompleted when a marker appears or WaitTimedOut when
// the deadline passes. A timeout is a reported state, not an error: the
// caller decides whether to proceed, retry, or abort.
//
// A Client owns exactly one socket and supports one logical caller at a
// time. Callers needing concurrency must use independent clients against
// independent listener ports.
package sfmgo
