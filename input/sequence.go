package input

// sequenceMatcher is a sliding window over the last len(pattern) key tokens
type sequenceMatcher struct {
	pattern []string
	buf     []string // ring storage, len == len(pattern)
	start   int
	n       int
}

func newSequenceMatcher(pattern []string) *sequenceMatcher {
	p := make([]string, len(pattern))
	copy(p, pattern)
	return &sequenceMatcher{
		pattern: p,
		buf:     make([]string, len(p)),
	}
}

// push appends a token, returns true on an exact full match and clears the window
func (m *sequenceMatcher) push(token string) bool {
	size := len(m.pattern)
	if size == 0 {
		return false
	}

	if m.n < size {
		m.buf[(m.start+m.n)%size] = token
		m.n++
	} else {
		// Full: overwrite oldest
		m.buf[m.start] = token
		m.start = (m.start + 1) % size
	}

	if m.n < size {
		return false
	}
	for i := 0; i < size; i++ {
		if m.buf[(m.start+i)%size] != m.pattern[i] {
			return false
		}
	}
	m.reset()
	return true
}

// window returns the buffered tokens oldest first
func (m *sequenceMatcher) window() []string {
	out := make([]string, m.n)
	for i := 0; i < m.n; i++ {
		out[i] = m.buf[(m.start+i)%len(m.buf)]
	}
	return out
}

func (m *sequenceMatcher) reset() {
	m.start = 0
	m.n = 0
}
