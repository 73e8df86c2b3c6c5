package menu

// VisibleRows is how many levels the menu shows at once
const VisibleRows = 8

// Selector tracks the highlighted entry in a wrapping, scrolling list
type Selector struct {
	count   int
	visible int
	index   int
	offset  int
}

// NewSelector creates a selector over count entries showing visible rows
func NewSelector(count, visible int) *Selector {
	if visible <= 0 {
		visible = 1
	}
	return &Selector{count: count, visible: visible}
}

// Next moves the highlight down, wrapping to the first entry
func (s *Selector) Next() {
	if s.count == 0 {
		return
	}
	s.index = (s.index + 1) % s.count
	s.scroll()
}

// Prev moves the highlight up, wrapping to the last entry
func (s *Selector) Prev() {
	if s.count == 0 {
		return
	}
	s.index = (s.index - 1 + s.count) % s.count
	s.scroll()
}

// scroll keeps the highlighted entry inside the visible window
func (s *Selector) scroll() {
	if s.index < s.offset {
		s.offset = s.index
	} else if s.index >= s.offset+s.visible {
		s.offset = s.index - s.visible + 1
	}
}

// Index returns the highlighted entry
func (s *Selector) Index() int {
	return s.index
}

// Window returns the half-open range of entries on screen
func (s *Selector) Window() (start, end int) {
	end = s.offset + s.visible
	if end > s.count {
		end = s.count
	}
	return s.offset, end
}

// Empty returns true if there is nothing to select
func (s *Selector) Empty() bool {
	return s.count == 0
}
