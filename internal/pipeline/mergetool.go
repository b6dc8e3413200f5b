package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultMergeTimeout bounds the external merge invocation. The merge of
	// several CJK subsets can legitimately take minutes.
	DefaultMergeTimeout = 5 * time.Minute

	// defaultMergeBinary is the fontTools merge entry point.
	defaultMergeBinary = "pyftmerge"

	// mergeBinaryEnv overrides the merge binary name or path.
	mergeBinaryEnv = "PYFTMERGE_BIN"
)

// mergedCandidates are the output filenames pyftmerge is known to produce,
// depending on its version.
var mergedCandidates = []string{"merged.ttf", "Merged.ttf", "merge.ttf"}

// ToolMerger merges subset artifacts by invoking pyftmerge as an external
// process.
type ToolMerger struct {
	Binary  string
	Timeout time.Duration
}

// NewToolMerger returns a merger using the binary named by PYFTMERGE_BIN, or
// pyftmerge from PATH.
func NewToolMerger(timeout time.Duration) *ToolMerger {
	binary := os.Getenv(mergeBinaryEnv)
	if binary == "" {
		binary = defaultMergeBinary
	}
	if timeout <= 0 {
		timeout = DefaultMergeTimeout
	}
	return &ToolMerger{Binary: binary, Timeout: timeout}
}

// Merge runs the external merge over the subset artifacts and writes the
// combined font to outPath. The inputs are staged into a scratch directory
// because pyftmerge writes its output next to its working directory.
func (m *ToolMerger) Merge(ctx context.Context, subsetPaths []string, outPath string) error {
	if _, err := exec.LookPath(m.Binary); err != nil {
		return &MergeError{
			Command: m.Binary,
			Cause:   fmt.Errorf("%s not found in PATH (install fontTools): %w", m.Binary, err),
		}
	}

	workDir, err := os.MkdirTemp("", "fontmerge-work-*")
	if err != nil {
		return fmt.Errorf("creating merge work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	args := make([]string, 0, len(subsetPaths))
	for i, path := range subsetPaths {
		staged := filepath.Join(workDir, fmt.Sprintf("in_%d.ttf", i))
		if err := copyFile(path, staged); err != nil {
			return fmt.Errorf("staging %s for merge: %w", path, err)
		}
		args = append(args, staged)
	}

	ctx, cancel := context.WithTimeout(ctx, m.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, m.Binary, args...)
	cmd.Dir = workDir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	output := strings.TrimSpace(stderr.String())
	if output == "" {
		output = strings.TrimSpace(stdout.String())
	}

	if ctx.Err() == context.DeadlineExceeded {
		return &MergeError{
			Command: m.Binary + " " + strings.Join(args, " "),
			Output:  output,
			Cause:   fmt.Errorf("merge timed out after %s", m.Timeout),
		}
	}

	mergedPath := ""
	for _, candidate := range mergedCandidates {
		candidatePath := filepath.Join(workDir, candidate)
		if _, err := os.Stat(candidatePath); err == nil {
			mergedPath = candidatePath
			break
		}
	}
	if runErr != nil || mergedPath == "" {
		return &MergeError{
			Command: m.Binary + " " + strings.Join(args, " "),
			Output:  output,
			Cause:   runErr,
		}
	}

	if err := copyFile(mergedPath, outPath); err != nil {
		return fmt.Errorf("collecting merge output: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}
