// Package cli wires flags, config, and logging to the predictor and the
// output formatters. The command surface is a single root command with two
// mutually exclusive input modes.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"photopred/internal/config"
	"photopred/internal/predictor"
)

// options are the resolved invocation parameters.
type options struct {
	smiles      string
	csvPath     string
	configPath  string
	modelsPath  string
	chempropBin string
	batchSize   int
	logLevel    string

	featurizerMode string
	devices        int
}

// app carries the injectable seams: where the report goes and how the
// backend adapter is built. Tests swap both.
type app struct {
	stdout     io.Writer
	newAdapter func(predictor.Config) (predictor.Adapter, error)
}

// Execute runs the CLI against the real backend.
func Execute() error {
	a := &app{
		stdout: os.Stdout,
		newAdapter: func(cfg predictor.Config) (predictor.Adapter, error) {
			return predictor.New(cfg)
		},
	}
	return a.buildRootCmd().Execute()
}

func (a *app) buildRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "photopred",
		Short: "Predict photochemical properties of molecules from SMILES",
		Long: "photopred estimates absorption wavelength, extinction coefficient and\n" +
			"photoisomerization quantum yield with a pretrained chemprop ensemble,\n" +
			"for a single SMILES string or every row of a CSV file.",
		Example: "  photopred --smiles \"CC(=O)OC1=CC=CC=C1C(=O)O\"\n" +
			"  photopred --csv molecules.csv --models-path ~/checkpoints/fold_0",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.applyConfigFile(cmd, o); err != nil {
				return err
			}
			return a.run(cmd.Context(), o)
		},
	}

	root.Flags().StringVar(&o.smiles, "smiles", "", "SMILES string to predict properties for")
	root.Flags().StringVar(&o.csvPath, "csv", "", "Path to CSV file with a 'smiles' column")
	root.Flags().StringVar(&o.configPath, "config", "", "Optional config file (yaml/json/toml)")
	root.Flags().StringVar(&o.modelsPath, "models-path",
		envStr("PHOTOPRED_MODELS_PATH", predictor.DefaultModelsPath),
		"Checkpoint file or ensemble directory (defaults PHOTOPRED_MODELS_PATH)")
	root.Flags().StringVar(&o.chempropBin, "chemprop-bin", "", "chemprop executable (default: chemprop on PATH)")
	root.Flags().IntVar(&o.batchSize, "batch-size", 0, "Backend batch size (0=default)")
	root.Flags().StringVar(&o.logLevel, "log-level",
		envStr("PHOTOPRED_LOG_LEVEL", "info"),
		"Log level: debug|info|warn|error (defaults PHOTOPRED_LOG_LEVEL or info)")
	return root
}

// applyConfigFile merges an optional config file under explicit flags:
// a flag set on the command line always wins over the file.
func (a *app) applyConfigFile(cmd *cobra.Command, o *options) error {
	if o.configPath == "" {
		return nil
	}
	fileCfg, err := config.Load(o.configPath)
	if err != nil {
		return predictor.ErrConfiguration("config: " + err.Error())
	}
	if !cmd.Flags().Changed("models-path") && fileCfg.ModelsPath != "" {
		o.modelsPath = fileCfg.ModelsPath
	}
	if !cmd.Flags().Changed("chemprop-bin") && fileCfg.ChempropBin != "" {
		o.chempropBin = fileCfg.ChempropBin
	}
	if !cmd.Flags().Changed("batch-size") && fileCfg.BatchSize > 0 {
		o.batchSize = fileCfg.BatchSize
	}
	o.featurizerMode = fileCfg.FeaturizerMode
	o.devices = fileCfg.Devices
	return nil
}
