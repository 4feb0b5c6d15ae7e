package state

// Mode represents the current interaction mode of the live board
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	HelpMode               // Displaying key bindings
)

// UIState manages cursor position, terminal size and mode
type UIState struct {
	selectedColumn int
	selectedItem   int
	width          int
	height         int
	mode           Mode
	showBacklog    bool
}

// NewUIState creates a new UIState with default values
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the selected column
func (s *UIState) SelectedColumn() int { return s.selectedColumn }

// SelectedItem returns the index of the selected item within its column
func (s *UIState) SelectedItem() int { return s.selectedItem }

// Select moves the cursor to col/row
func (s *UIState) Select(col, row int) {
	s.selectedColumn = col
	s.selectedItem = row
}

// Clamp keeps the cursor inside a board with the given column sizes
func (s *UIState) Clamp(columnSizes []int) {
	if len(columnSizes) == 0 {
		s.selectedColumn, s.selectedItem = 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), len(columnSizes)-1)
	n := columnSizes[s.selectedColumn]
	if n == 0 {
		s.selectedItem = 0
		return
	}
	s.selectedItem = min(max(s.selectedItem, 0), n-1)
}

// Width returns the current terminal width
func (s *UIState) Width() int { return s.width }

// Height returns the current terminal height
func (s *UIState) Height() int { return s.height }

// SetSize records the terminal size
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode { return s.mode }

// SetMode changes the interaction mode
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// ShowBacklog reports whether the backlog column is visible
func (s *UIState) ShowBacklog() bool { return s.showBacklog }

// ToggleBacklog shows or hides the backlog column. The cursor shifts so it
// stays on the same lane.
func (s *UIState) ToggleBacklog() {
	s.showBacklog = !s.showBacklog
	if s.showBacklog {
		s.selectedColumn++
	} else if s.selectedColumn > 0 {
		s.selectedColumn--
	}
}
