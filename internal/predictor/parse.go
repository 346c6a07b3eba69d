package predictor

import (
	"encoding/csv"
	"fmt"
	"math"
	"os"
	"strconv"

	"photopred/pkg/types"
)

// propertyCount is the number of tasks the multitask ensemble was trained on.
const propertyCount = 3

// readPredsCSV extracts the three prediction columns from chemprop's output
// file. The backend echoes the smiles column, so prediction columns are every
// header except "smiles". Row count must match the input batch.
func readPredsCSV(path string, want int) ([]types.Prediction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("backend produced no predictions file: %v", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed predictions file: %v", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("backend produced an empty predictions file")
	}
	header, data := rows[0], rows[1:]

	var cols []int
	for i, name := range header {
		if name == "smiles" {
			continue
		}
		cols = append(cols, i)
	}
	if len(cols) != propertyCount {
		return nil, fmt.Errorf("expected %d prediction columns, got %d (header %v)", propertyCount, len(cols), header)
	}
	if len(data) != want {
		return nil, fmt.Errorf("expected %d prediction rows, got %d", want, len(data))
	}

	preds := make([]types.Prediction, 0, len(data))
	for n, row := range data {
		var vals [propertyCount]float64
		for k, i := range cols {
			v, err := strconv.ParseFloat(row[i], 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad prediction value %q: %v", n+1, row[i], err)
			}
			// NaN/Inf means the model rejected the structure; no partial results.
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d: model rejected input (value %q in column %s)", n+1, row[i], header[i])
			}
			vals[k] = v
		}
		preds = append(preds, types.Prediction{
			MaxAbsWavelength:     vals[0],
			ExtinctCoeff:         vals[1],
			PhotoisomerizationQY: vals[2],
		})
	}
	return preds, nil
}
