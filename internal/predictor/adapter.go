package predictor

import (
	"context"

	"photopred/pkg/types"
)

// Adapter abstracts the model backend used for property prediction.
// Concrete implementations (e.g., the chemprop CLI) must satisfy this
// interface.
type Adapter interface {
	// Predict estimates the three photochemical properties for each input
	// molecule. The result slice has the same length and order as mols.
	// Implementations must return when the context is canceled.
	Predict(ctx context.Context, mols []types.Molecule) ([]types.Prediction, error)
}
