package imageload

// Fallback cell metrics for terminals that do not report pixel sizes.
const (
	defaultCellW = 8
	defaultCellH = 16
)

// CellSize returns the pixel size of one terminal cell, falling back to
// 8x16 when the terminal does not say.
func CellSize() (w, h int) {
	if w, h, err := cellSizeFromTTY(); err == nil && w > 0 && h > 0 {
		return w, h
	}
	return defaultCellW, defaultCellH
}
