package rewrite

// Cospan is a pair of (n-1)-rewrites sharing a common singular apex: a
// Forward leg (source -> apex) and a Backward leg (target -> apex).
type Cospan struct {
	Forward  Rewrite
	Backward Rewrite
}

// Dimension returns the shared dimension of the cospan's two legs. Panics
// if the legs disagree in dimension, which would violate invariant I1.
func (c Cospan) Dimension() int {
	fd, bd := c.Forward.Dimension(), c.Backward.Dimension()
	if fd != bd {
		panic("rewrite: cospan legs disagree in dimension")
	}

	return fd
}
