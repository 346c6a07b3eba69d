package cli

import (
	"context"
	"fmt"

	"photopred/internal/dataset"
	"photopred/internal/predictor"
	"photopred/internal/report"
	"photopred/pkg/types"
)

// run executes one prediction pass: resolve the input mode, build the
// adapter, run a single inference call, emit the report or the augmented CSV.
func (a *app) run(ctx context.Context, o *options) error {
	log := newLogger(o.logLevel)

	if (o.smiles == "") == (o.csvPath == "") {
		return predictor.ErrConfiguration("exactly one of --smiles or --csv must be provided")
	}

	pcfg := predictor.Config{
		Bin:            o.chempropBin,
		ModelsPath:     o.modelsPath,
		FeaturizerMode: o.featurizerMode,
		Devices:        o.devices,
		BatchSize:      o.batchSize,
		Logger:         log,
	}

	if o.smiles != "" {
		ad, err := a.newAdapter(pcfg)
		if err != nil {
			return err
		}
		preds, err := ad.Predict(ctx, []types.Molecule{{SMILES: o.smiles}})
		if err != nil {
			return err
		}
		if len(preds) != 1 {
			return predictor.ErrInference(fmt.Sprintf("expected 1 prediction, got %d", len(preds)))
		}
		return report.Render(a.stdout, o.smiles, preds[0])
	}

	// Bulk mode. Read the table before touching the model so schema errors
	// fail fast and never leave an output file behind.
	tab, err := dataset.Read(o.csvPath)
	if err != nil {
		return err
	}
	log.Info().Str("csv", o.csvPath).Int("rows", len(tab.Rows)).Msg("loaded input table")

	ad, err := a.newAdapter(pcfg)
	if err != nil {
		return err
	}
	preds, err := ad.Predict(ctx, tab.Molecules())
	if err != nil {
		return err
	}
	cells := make([][]string, len(preds))
	for i, p := range preds {
		cells[i] = report.Cells(p)
	}
	out := dataset.OutputPath(o.csvPath)
	if err := tab.WriteAugmented(out, report.ColumnNames(), cells); err != nil {
		return err
	}
	log.Info().Str("output", out).Int("rows", len(preds)).Msg("wrote predictions")
	_, err = fmt.Fprintf(a.stdout, "\nPredictions saved to: %s\n", out)
	return err
}
