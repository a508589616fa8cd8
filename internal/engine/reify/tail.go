package reify

// tail keeps the last lines written to it.
type tail struct {
	lines []string
	limit int
}

func newTail(limit int) *tail {
	return &tail{
		lines: make([]string, 0, limit),
		limit: limit,
	}
}

// Add records line, dropping the oldest line once the limit is reached.
func (t *tail) Add(line string) {
	if t.limit <= 0 {
		return
	}
	if len(t.lines) == t.limit {
		copy(t.lines, t.lines[1:])
		t.lines = t.lines[:t.limit-1]
	}
	t.lines = append(t.lines, line)
}

// Lines returns a copy of the recorded lines, oldest first.
func (t *tail) Lines() []string {
	if len(t.lines) == 0 {
		return nil
	}
	return append([]string(nil), t.lines...)
}
