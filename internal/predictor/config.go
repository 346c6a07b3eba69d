package predictor

import "github.com/rs/zerolog"

// Defaults applied when corresponding Config fields are unset.
const (
	defaultBin            = "chemprop"
	defaultFeaturizerMode = "RIGR"
	defaultDevices        = 1
	defaultBatchSize      = 50
)

// DefaultModelsPath is where the pretrained ensemble lives when no other
// location is configured.
const DefaultModelsPath = "./exp_results/03232025_split/checkpoints/chemprop_weights_RIGR_ensemble_03232025/fold_0"

// Config encapsulates all tunables for adapter construction.
type Config struct {
	// Bin is the chemprop executable to invoke.
	Bin string
	// ModelsPath points at the checkpoint file or ensemble directory.
	ModelsPath string
	// FeaturizerMode selects the multi-hot atom featurizer variant the
	// ensemble was trained with.
	FeaturizerMode string
	// Devices and BatchSize are passed through to the backend.
	Devices   int
	BatchSize int
	// Logger receives structured adapter events. Zero value logs nowhere.
	Logger zerolog.Logger
}

func (c Config) withDefaults() Config {
	if c.Bin == "" {
		c.Bin = defaultBin
	}
	if c.ModelsPath == "" {
		c.ModelsPath = DefaultModelsPath
	}
	if c.FeaturizerMode == "" {
		c.FeaturizerMode = defaultFeaturizerMode
	}
	if c.Devices <= 0 {
		c.Devices = defaultDevices
	}
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	return c
}
