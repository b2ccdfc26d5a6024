package rating

// Icon identifies the image shown for one star. Rendering layers resolve it
// to a concrete glyph or image.
type Icon int

const (
	IconEmpty Icon = iota
	IconFilled
)

// String returns the symbol name of the icon.
func (i Icon) String() string {
	switch i {
	case IconFilled:
		return "star.fill"
	case IconEmpty:
		return "star"
	default:
		return "unknown"
	}
}

// iconFor returns the icon for star index i given the selected count.
func iconFor(i, selected int) Icon {
	if i < selected {
		return IconFilled
	}
	return IconEmpty
}
