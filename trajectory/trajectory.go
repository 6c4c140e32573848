// Package trajectory holds the output table a simulation run produces: one
// row per scheduled output time, with time, the input calcium level, and
// every species' concentration as columns.
package trajectory

import "gonum.org/v1/gonum/mat"

// Trajectory is a dense (rows x 2+numSpecies) table. Column 0 is time,
// column 1 is Ca, and the remaining columns are species concentrations in
// the order given by ColumnNames[2:].
type Trajectory struct {
	ColumnNames []string
	Data        *mat.Dense
}

// New allocates a Trajectory with the given column names (which must start
// with "time" and "Ca") and row count.
func New(columnNames []string, rows int) *Trajectory {
	return &Trajectory{
		ColumnNames: columnNames,
		Data:        mat.NewDense(rows, len(columnNames), nil),
	}
}

// NumRows returns the number of rows currently allocated.
func (t *Trajectory) NumRows() int {
	r, _ := t.Data.Dims()
	return r
}

// NumCols returns the number of columns (2 + species count).
func (t *Trajectory) NumCols() int {
	_, c := t.Data.Dims()
	return c
}

// SetRow writes one output row: time, the calcium level, and the species
// concentration vector x (already divided by the particle-count conversion
// factor).
func (t *Trajectory) SetRow(row int, time, ca float64, x []float64) {
	t.Data.Set(row, 0, time)
	t.Data.Set(row, 1, ca)
	for i, v := range x {
		t.Data.Set(row, 2+i, v)
	}
}

// Row returns a copy of row i as a plain slice.
func (t *Trajectory) Row(i int) []float64 {
	_, c := t.Data.Dims()
	out := make([]float64, c)
	mat.Row(out, i, t.Data)
	return out
}
