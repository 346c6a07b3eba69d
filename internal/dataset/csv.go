// Package dataset reads the bulk-mode input table and writes the augmented
// output table. It knows nothing about chemistry beyond the required
// "smiles" column name; all cells ride through verbatim.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"photopred/pkg/types"
)

// SmilesColumn is the required input column, matched case-sensitively.
const SmilesColumn = "smiles"

// Table is an input CSV held in memory: header plus data rows, with the
// smiles column located.
type Table struct {
	Path      string
	Header    []string
	Rows      [][]string
	smilesCol int
}

// Read loads a CSV file and locates the smiles column. A missing column is
// a schema error; ragged rows surface as csv parse errors.
func Read(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, ErrSchema(path + ": empty file, expected a header row")
	}
	header := records[0]
	col := -1
	for i, name := range header {
		if name == SmilesColumn {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, ErrMissingColumn(path, SmilesColumn)
	}
	return &Table{Path: path, Header: header, Rows: records[1:], smilesCol: col}, nil
}

// Molecules extracts the smiles column in row order.
func (t *Table) Molecules() []types.Molecule {
	mols := make([]types.Molecule, 0, len(t.Rows))
	for _, row := range t.Rows {
		mols = append(mols, types.Molecule{SMILES: row[t.smilesCol]})
	}
	return mols
}

// WriteAugmented writes the table to path with the given columns appended.
// cells must have one entry per row, each as wide as names; row order is
// preserved exactly.
func (t *Table) WriteAugmented(path string, names []string, cells [][]string) error {
	if len(cells) != len(t.Rows) {
		return fmt.Errorf("row count mismatch: table has %d rows, got %d cell rows", len(t.Rows), len(cells))
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output csv: %w", err)
	}
	w := csv.NewWriter(f)
	if err := w.Write(append(append([]string{}, t.Header...), names...)); err != nil {
		_ = f.Close()
		return err
	}
	for i, row := range t.Rows {
		if len(cells[i]) != len(names) {
			_ = f.Close()
			return fmt.Errorf("row %d: expected %d appended cells, got %d", i+1, len(names), len(cells[i]))
		}
		if err := w.Write(append(append([]string{}, row...), cells[i]...)); err != nil {
			_ = f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// OutputPath derives the augmented file's name by inserting "_predict"
// before the input's extension: input.csv -> input_predict.csv.
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_predict" + ext
}
