package planner

// Checklist tracks which shopping-list items the user has ticked off.
// It's client-local state keyed by item id — never persisted, reset when
// the session ends.
type Checklist map[string]struct{}

// NewChecklist returns an empty checklist.
func NewChecklist() Checklist {
	return Checklist{}
}

// Toggle flips an item between checked and unchecked.
func (c Checklist) Toggle(id string) {
	if _, ok := c[id]; ok {
		delete(c, id)
		return
	}
	c[id] = struct{}{}
}

// Checked reports whether an item is ticked.
func (c Checklist) Checked(id string) bool {
	_, ok := c[id]
	return ok
}

// Count returns the number of ticked items.
func (c Checklist) Count() int {
	return len(c)
}
