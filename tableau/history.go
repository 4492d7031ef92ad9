// SPDX-License-Identifier: MIT

package tableau

// History is a stack of tableau snapshots used for undo.
// The zero value is an empty, unbounded history.
type History struct {
	stack []*Tableau
	limit int // ≤ 0: unbounded
}

// NewHistory returns a history keeping at most limit snapshots; when full the
// oldest snapshot is dropped. limit ≤ 0 (DefaultHistoryLimit) means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: limit}
}

// Push stores a deep copy of t. Call it before mutating t.
func (h *History) Push(t *Tableau) {
	if h.limit > 0 && len(h.stack) >= h.limit {
		copy(h.stack, h.stack[1:])
		h.stack[len(h.stack)-1] = nil
		h.stack = h.stack[:len(h.stack)-1]
	}
	h.stack = append(h.stack, t.Clone())
}

// Undo pops and returns the most recent snapshot.
// Errors: ErrNothingToUndo on an empty history (not fatal; nothing changes).
func (h *History) Undo() (*Tableau, error) {
	n := len(h.stack)
	if n == 0 {
		return nil, ErrNothingToUndo
	}
	t := h.stack[n-1]
	h.stack[n-1] = nil
	h.stack = h.stack[:n-1]

	return t, nil
}

// Drop discards the most recent snapshot without returning it. Used to roll
// back a Push when the guarded operation failed.
func (h *History) Drop() {
	if n := len(h.stack); n > 0 {
		h.stack[n-1] = nil
		h.stack = h.stack[:n-1]
	}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.stack) }

// Clear removes every snapshot.
func (h *History) Clear() { h.stack = nil }

// Peek returns the most recent snapshot without removing it, or nil.
// The caller must not mutate it.
func (h *History) Peek() *Tableau {
	if n := len(h.stack); n > 0 {
		return h.stack[n-1]
	}

	return nil
}
