package types

// Molecule identifies one input structure by its SMILES string.
// The string is passed through verbatim; chemical validity is the
// inference backend's concern.
type Molecule struct {
	SMILES string `json:"smiles"`
}

// Prediction holds the three photochemical properties estimated for one
// molecule.
type Prediction struct {
	// Wavelength of maximum absorption, in nanometers.
	MaxAbsWavelength float64 `json:"max_abs_wavelength"`
	// Extinction coefficient, log10(M^-1 cm^-1).
	ExtinctCoeff float64 `json:"extinct_coeff"`
	// Photoisomerization quantum yield (unitless fraction).
	PhotoisomerizationQY float64 `json:"photoisomerization_QY"`
}

// Checkpoint is one pretrained model artifact on disk.
type Checkpoint struct {
	// Stable identifier for the artifact, its filename.
	// example: best.pt
	ID string `json:"id"`
	// Absolute path to the artifact file.
	// example: /home/user/checkpoints/fold_0/model_0/best.pt
	Path string `json:"path"`
}
