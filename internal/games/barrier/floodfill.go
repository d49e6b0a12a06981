package barrier

// cell addresses a field grid cell.
type cell struct {
	X, Y int
}

// reachable marks every cell connected 4-directionally to any seed without
// crossing a blocked cell. Iterative stack-based fill; the grid is small
// enough (one entry per terminal cell) that no chunking is needed.
func reachable(w, h int, blocked func(x, y int) bool, seeds []cell) []bool {
	marked := make([]bool, w*h)
	stack := make([]cell, 0, len(seeds))

	for _, s := range seeds {
		if s.X < 0 || s.X >= w || s.Y < 0 || s.Y >= h {
			continue
		}
		if blocked(s.X, s.Y) || marked[s.Y*w+s.X] {
			continue
		}
		marked[s.Y*w+s.X] = true
		stack = append(stack, s)
	}

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		neighbors := [4]cell{
			{c.X - 1, c.Y},
			{c.X + 1, c.Y},
			{c.X, c.Y - 1},
			{c.X, c.Y + 1},
		}
		for _, n := range neighbors {
			if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
				continue
			}
			idx := n.Y*w + n.X
			if marked[idx] || blocked(n.X, n.Y) {
				continue
			}
			marked[idx] = true
			stack = append(stack, n)
		}
	}

	return marked
}
