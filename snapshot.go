package scratchroad

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Snapshot queues a labeled PNG dump of the coverage buffer, written to
// SnapshotDir at the end of the current tick.
func (r *Road) Snapshot(label string) {
	r.snapshotQueue = append(r.snapshotQueue, label)
}

// flushSnapshots writes every queued snapshot. Failures are logged and the
// queue is dropped; they never interrupt the tick.
func (r *Road) flushSnapshots() {
	if len(r.snapshotQueue) == 0 {
		return
	}
	defer func() { r.snapshotQueue = r.snapshotQueue[:0] }()

	if err := os.MkdirAll(r.SnapshotDir, 0o755); err != nil {
		logf("snapshot: mkdir %s: %v", r.SnapshotDir, err)
		return
	}

	img := r.scratch.Buffer().Image()
	stamp := time.Now().Format("20060102_150405")

	for _, label := range r.snapshotQueue {
		path := filepath.Join(r.SnapshotDir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			logf("snapshot: %v", err)
		}
	}
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
