package vector

const (
	// minGrowCapacity is the capacity reserved by the first insertion into an empty array.
	minGrowCapacity = 1

	// growFactor scales the current length when an insertion finds no free slot.
	growFactor = 2
)

// Rendering delimiters used by String and WriteTo.
const (
	renderOpen  = "["
	renderSep   = ", "
	renderClose = "]"
)
