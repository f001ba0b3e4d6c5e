package raster

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8 Format = iota

	// FormatRGB8 is 24-bit RGB (3 bytes per pixel, no alpha).
	FormatRGB8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatChannels maps each format to its channel count.
var formatChannels = [formatCount]int{
	FormatGray8: 1,
	FormatRGB8:  3,
}

// FormatForChannels returns the format that stores the given number of
// channels. ok is false for anything other than 1 or 3.
func FormatForChannels(channels int) (f Format, ok bool) {
	switch channels {
	case 1:
		return FormatGray8, true
	case 3:
		return FormatRGB8, true
	default:
		return 0, false
	}
}

// Channels returns the number of color channels.
func (f Format) Channels() int {
	if f >= formatCount {
		return 0
	}
	return formatChannels[f]
}

// IsGrayscale returns true if this is a grayscale format.
func (f Format) IsGrayscale() bool {
	return f == FormatGray8
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.Channels()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatGray8:
		return "Gray8"
	case FormatRGB8:
		return "RGB8"
	default:
		return "Unknown"
	}
}
