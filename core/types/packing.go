package types

// PackingResult summarizes how a set of cuts packed into stock pieces
type PackingResult struct {
	// PiecesNeeded is the number of stock pieces consumed
	PiecesNeeded int `json:"pieces_needed"`

	// TotalStockLength is PiecesNeeded times the stock length
	TotalStockLength float64 `json:"total_stock_length"`

	// WasteLength is the stock length not covered by cuts, floored at 0
	WasteLength float64 `json:"waste_length"`

	// WastePercent is WasteLength over TotalStockLength, rounded to one
	// decimal place; 0 when nothing was consumed
	WastePercent float64 `json:"waste_percent"`
}

// MultiPackingResult extends PackingResult for the multi-stock-length
// packer with a per-length piece census
type MultiPackingResult struct {
	PackingResult

	// PiecesByLength counts consumed pieces per candidate stock length
	PiecesByLength map[float64]int `json:"pieces_by_length,omitempty"`
}
