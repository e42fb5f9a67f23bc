package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrCellCount indicates a flat type sequence whose length is not W×H.
	ErrCellCount = errors.New("gridgraph: cell count does not match dimensions")
	// ErrBlankType indicates a cell without a type label.
	ErrBlankType = errors.New("gridgraph: cell type must not be blank")
)
