package ui

// cursor tracks the selected row of the active list.
type cursor struct {
	row int
}

func (c *cursor) reset() {
	c.row = 0
}

// clamp keeps the cursor inside a list of n rows.
func (c *cursor) clamp(n int) {
	if c.row >= n {
		c.row = n - 1
	}
	if c.row < 0 {
		c.row = 0
	}
}
