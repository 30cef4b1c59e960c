package pformat

// LookupFileType maps the index stored at OffsetFileType to its name. The
// second return value is false when the index is outside the table.
func LookupFileType(index int16) (FileType, bool) {
	if index < 0 || int(index) >= len(FileTypes) {
		return FileTypeUnknown, false
	}
	return FileTypes[index], true
}

// IsMarker reports whether value is within MarkerEpsilon of marker.
func IsMarker(value float32, marker float32) bool {
	diff := value - marker
	if diff < 0 {
		diff = -diff
	}
	return diff < MarkerEpsilon
}
