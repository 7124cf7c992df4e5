// Package history keeps the back/forward stacks behind the explorer's
// navigation buttons.
package history

// History is a pair of path stacks, most recent last. The zero value is
// ready to use. It is not safe for concurrent use; the session owning it
// serialises access.
type History struct {
	back    []string
	forward []string
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Navigate records a user-initiated move away from current. current goes
// onto the back stack and the forward stack is discarded. It returns next
// for convenience.
func (h *History) Navigate(current, next string) string {
	if current != "" {
		h.back = append(h.back, current)
	}
	h.forward = h.forward[:0]
	return next
}

// Back pops the back stack, pushing current onto the forward stack. It
// reports false and changes nothing when there is nowhere to go.
func (h *History) Back(current string) (string, bool) {
	if len(h.back) == 0 {
		return "", false
	}
	prev := h.back[len(h.back)-1]
	h.back = h.back[:len(h.back)-1]
	h.forward = append(h.forward, current)
	return prev, true
}

// Forward is the inverse of Back.
func (h *History) Forward(current string) (string, bool) {
	if len(h.forward) == 0 {
		return "", false
	}
	next := h.forward[len(h.forward)-1]
	h.forward = h.forward[:len(h.forward)-1]
	h.back = append(h.back, current)
	return next, true
}

// BackLen is the number of directories Back can return to.
func (h *History) BackLen() int { return len(h.back) }

// ForwardLen is the number of directories Forward can return to.
func (h *History) ForwardLen() int { return len(h.forward) }

// BackStack returns a copy of the back stack, most recent last.
func (h *History) BackStack() []string {
	return append([]string(nil), h.back...)
}

// ForwardStack returns a copy of the forward stack, most recent last.
func (h *History) ForwardStack() []string {
	return append([]string(nil), h.forward...)
}
