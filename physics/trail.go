package physics

import "github.com/lixenwraith/alive/vmath"

// Trail is a fixed-capacity FIFO of recent positions
type Trail struct {
	buf   []vmath.Vec2F
	start int
	n     int
}

// NewTrail allocates a trail holding up to capacity points
func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{buf: make([]vmath.Vec2F, capacity)}
}

// Push appends p, evicting the oldest point when full
func (t *Trail) Push(p vmath.Vec2F) {
	size := len(t.buf)
	if size == 0 {
		return
	}
	if t.n < size {
		t.buf[(t.start+t.n)%size] = p
		t.n++
		return
	}
	t.buf[t.start] = p
	t.start = (t.start + 1) % size
}

// Len returns the number of stored points
func (t *Trail) Len() int { return t.n }

// Cap returns the trail capacity
func (t *Trail) Cap() int { return len(t.buf) }

// Reset empties the trail, keeping its storage
func (t *Trail) Reset() {
	t.start = 0
	t.n = 0
}

// Points appends stored points oldest first to dst
func (t *Trail) Points(dst []vmath.Vec2F) []vmath.Vec2F {
	for i := 0; i < t.n; i++ {
		dst = append(dst, t.buf[(t.start+i)%len(t.buf)])
	}
	return dst
}

// Last returns the newest point
func (t *Trail) Last() (vmath.Vec2F, bool) {
	if t.n == 0 {
		return vmath.Vec2F{}, false
	}
	return t.buf[(t.start+t.n-1)%len(t.buf)], true
}
