package repo

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// page slices n items according to offset and limit, returning the bounds.
func page(n int, offset, limit *int) (int, int) {
	start := 0
	if offset != nil {
		start = clamp(*offset, 0, n)
	}

	size := maxLimit
	if limit != nil && *limit > 0 {
		size = min(*limit, maxLimit)
	}
	end := clamp(start+size, start, n)
	return start, end
}
