package predictor

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"photopred/internal/common/fsutil"
	"photopred/internal/registry"
	"photopred/pkg/types"
)

// stderrTailBytes bounds how much backend stderr is carried into error messages.
const stderrTailBytes = 4096

// ChempropAdapter drives the chemprop CLI as a subprocess. The model
// artifacts are resolved once in New; each Predict call is one backend
// invocation over a temp input CSV.
type ChempropAdapter struct {
	cfg        Config
	modelsPath string
	ckpts      []types.Checkpoint
}

// New constructs a subprocess-backed adapter and resolves the model
// artifacts. A missing or empty models path is a configuration error.
func New(cfg Config) (*ChempropAdapter, error) {
	cfg = cfg.withDefaults()
	path, err := fsutil.ExpandHome(cfg.ModelsPath)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("abs path: %w", err)
	}
	if !fsutil.PathExists(abs) {
		logMissingModels(cfg, abs)
		return nil, ErrConfiguration("models path does not exist: " + abs)
	}
	ckpts, err := registry.LoadPath(abs)
	if err != nil {
		return nil, ErrConfiguration(err.Error())
	}
	cfg.Logger.Info().
		Str("models_path", abs).
		Int("checkpoints", len(ckpts)).
		Msg("resolved model artifacts")
	return &ChempropAdapter{cfg: cfg, modelsPath: abs, ckpts: ckpts}, nil
}

// logMissingModels surfaces what the surrounding directory actually holds,
// which is usually enough to spot a mispointed checkout or volume mount.
func logMissingModels(cfg Config, abs string) {
	parent := filepath.Dir(abs)
	ev := cfg.Logger.Error().Str("models_path", abs).Str("parent", parent)
	if entries, err := os.ReadDir(parent); err == nil {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		ev = ev.Strs("parent_contents", names)
	}
	ev.Msg("models path not found")
}

// Checkpoints returns the resolved model artifacts.
func (a *ChempropAdapter) Checkpoints() []types.Checkpoint { return a.ckpts }

// Predict runs one chemprop invocation over all molecules and returns
// predictions in input order. The whole batch either succeeds or fails; an
// inference error carries a bounded tail of backend stderr.
func (a *ChempropAdapter) Predict(ctx context.Context, mols []types.Molecule) ([]types.Prediction, error) {
	if len(mols) == 0 {
		return []types.Prediction{}, nil
	}
	dir, err := os.MkdirTemp("", "photopred-"+uuid.NewString()[:8]+"-")
	if err != nil {
		return nil, fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	inPath := filepath.Join(dir, "input.csv")
	outPath := filepath.Join(dir, "preds.csv")
	if err := writeInputCSV(inPath, mols); err != nil {
		return nil, err
	}

	args := []string{
		"predict",
		"--test-path", inPath,
		"--model-paths", a.modelsPath,
		"--multi-hot-atom-featurizer-mode", a.cfg.FeaturizerMode,
		"--devices", fmt.Sprint(a.cfg.Devices),
		"--batch-size", fmt.Sprint(a.cfg.BatchSize),
		"--preds-path", outPath,
	}
	cmd := exec.CommandContext(ctx, a.cfg.Bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	start := time.Now()
	a.cfg.Logger.Debug().Str("bin", a.cfg.Bin).Int("molecules", len(mols)).Msg("invoking backend")
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if errors.Is(err, exec.ErrNotFound) {
			return nil, ErrConfiguration("chemprop binary not found: " + a.cfg.Bin)
		}
		tail := stderr.String()
		if len(tail) > stderrTailBytes {
			tail = tail[len(tail)-stderrTailBytes:]
		}
		a.cfg.Logger.Error().Err(err).Msg("backend failed")
		return nil, ErrInference(fmt.Sprintf("chemprop prediction failed: %v; stderr tail: %s", err, tail))
	}

	preds, err := readPredsCSV(outPath, len(mols))
	if err != nil {
		return nil, ErrInference(err.Error())
	}
	a.cfg.Logger.Info().
		Int("molecules", len(mols)).
		Dur("elapsed", time.Since(start)).
		Msg("prediction complete")
	return preds, nil
}

// writeInputCSV writes the single-column test file chemprop expects.
func writeInputCSV(path string, mols []types.Molecule) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create input csv: %w", err)
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"smiles"})
	for _, m := range mols {
		_ = w.Write([]string{m.SMILES})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write input csv: %w", err)
	}
	return f.Close()
}
