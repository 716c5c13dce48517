package channel

// ScaleValue maps a cell offset on a scale width cells wide to a value in
// [LowLimit, HighLimit]. Offsets outside the scale clamp to its ends.
func ScaleValue(offset, width int) int {
	if width < 2 {
		return LowLimit
	}

	offset = min(max(offset, 0), width-1)

	return LowLimit + offset*(HighLimit-LowLimit)/(width-1)
}

// ScaleOffset returns the cell of value on a scale width cells wide.
func ScaleOffset(value, width int) int {
	if width < 2 {
		return 0
	}

	value = min(max(value, LowLimit), HighLimit)

	return (value - LowLimit) * (width - 1) / (HighLimit - LowLimit)
}
