package registry

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"photopred/internal/common/fsutil"
	"photopred/pkg/types"
)

// checkpoint file extensions produced by chemprop training runs.
var checkpointExts = map[string]bool{
	".pt":   true,
	".ckpt": true,
}

// LoadPath resolves a models path into the checkpoint artifacts it holds.
// A path pointing at a single checkpoint file yields one entry. A directory
// is walked recursively because ensembles nest per-fold subdirectories
// (e.g., fold_0/model_0/best.pt). ID is the artifact's filename; Path is
// absolute.
func LoadPath(path string) ([]types.Checkpoint, error) {
	base, err := fsutil.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(base)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	if !fsutil.PathExists(abs) {
		return nil, fmt.Errorf("models path does not exist: %s", abs)
	}
	if !fsutil.IsDir(abs) {
		if !checkpointExts[strings.ToLower(filepath.Ext(abs))] {
			return nil, fmt.Errorf("not a checkpoint file: %s", abs)
		}
		return []types.Checkpoint{{ID: filepath.Base(abs), Path: abs}}, nil
	}
	var ckpts []types.Checkpoint
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !checkpointExts[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		ckpts = append(ckpts, types.Checkpoint{ID: d.Name(), Path: p})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk models dir: %w", err)
	}
	if len(ckpts) == 0 {
		return nil, fmt.Errorf("no model checkpoints (*.pt, *.ckpt) under %s", abs)
	}
	// Deterministic order regardless of walk order differences.
	sort.Slice(ckpts, func(i, j int) bool { return ckpts[i].Path < ckpts[j].Path })
	return ckpts, nil
}
