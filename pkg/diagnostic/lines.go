package diagnostic

// LineSet selects zero-based line indices of a code snippet to mark as
// offending. It is either an explicit index set or a contiguous range;
// a range is expanded to the indices it spans, so it may be expressed
// against a numbering that does not start at zero.
type LineSet struct {
	indices map[int]struct{}
	start   int
	end     int
	ranged  bool
}

// Lines builds a LineSet from explicit zero-based indices
func Lines(indices ...int) LineSet {
	set := make(map[int]struct{}, len(indices))
	for _, i := range indices {
		set[i] = struct{}{}
	}
	return LineSet{indices: set}
}

// LineRange builds a LineSet covering start through end inclusive
func LineRange(start, end int) LineSet {
	return LineSet{start: start, end: end, ranged: true}
}

// Contains reports whether the line index is in the set
func (s LineSet) Contains(i int) bool {
	if s.ranged {
		return i >= s.start && i <= s.end
	}
	_, ok := s.indices[i]
	return ok
}

// IsEmpty reports whether the set selects no lines
func (s LineSet) IsEmpty() bool {
	if s.ranged {
		return s.end < s.start
	}
	return len(s.indices) == 0
}
