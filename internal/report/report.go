// Package report owns all output formatting: the single-molecule console
// report and the cell values appended to bulk CSV output. Wavelength is
// reported as whole nanometers, the other two properties to two decimals.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"photopred/pkg/types"
)

// ColumnNames are the prediction columns appended in CSV mode, in the order
// matching Cells.
func ColumnNames() []string {
	return []string{"max_abs_wavelength", "extinct_coeff", "photoisomerization_QY"}
}

// Cells formats one prediction as CSV cell values.
func Cells(p types.Prediction) []string {
	return []string{
		strconv.Itoa(int(math.Round(p.MaxAbsWavelength))),
		strconv.FormatFloat(round2(p.ExtinctCoeff), 'f', 2, 64),
		strconv.FormatFloat(round2(p.PhotoisomerizationQY), 'f', 2, 64),
	}
}

// Render writes the labeled single-molecule report.
func Render(w io.Writer, smiles string, p types.Prediction) error {
	_, err := fmt.Fprintf(w,
		"\nPrediction Results:\nsmiles: %s\nmax_abs_wavelength (nm): %d\nextinct_coeff (log(M^-1 cm^-1)): %.2f\nphotoisomerization_QY: %.2f\n",
		smiles,
		int(math.Round(p.MaxAbsWavelength)),
		round2(p.ExtinctCoeff),
		round2(p.PhotoisomerizationQY),
	)
	return err
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
