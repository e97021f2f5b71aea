package menu

// MenuID identifies which loader built the live state.
type MenuID int

const (
	MenuNone MenuID = iota
	MenuMain
	MenuPractice
	MenuReplay
)

func (id MenuID) String() string {
	switch id {
	case MenuMain:
		return "main"
	case MenuPractice:
		return "practice"
	case MenuReplay:
		return "replay"
	}
	return "none"
}

// Paging splits long menus into pages of Length rows.
type Paging struct {
	Enabled bool
	Page    int
	Length  int
	TextX   int
	TextY   int
}

// State is the live menu: its rows, focus and layout.
type State struct {
	ID        MenuID
	Options   []*Option
	Selection int
	Title     string
	X, Y      int
	Paging    Paging
}

// Clear destroys every option and resets the state.
func (st *State) Clear() {
	for i, o := range st.Options {
		o.Destroy()
		st.Options[i] = nil
	}
	*st = State{}
}

// Selected returns the focused option or nil when the menu is empty.
func (st *State) Selected() *Option {
	if st.Selection < 0 || st.Selection >= len(st.Options) {
		return nil
	}
	return st.Options[st.Selection]
}

func (st *State) paged() bool {
	return st.Paging.Enabled && st.Paging.Length > 0
}

// PageCount returns the number of pages, at least one.
func (st *State) PageCount() int {
	if !st.paged() || len(st.Options) == 0 {
		return 1
	}
	return (len(st.Options)-1)/st.Paging.Length + 1
}

// PageBounds returns the half-open index range of the current page.
func (st *State) PageBounds() (lo, hi int) {
	if !st.paged() {
		return 0, len(st.Options)
	}
	lo = st.Paging.Page * st.Paging.Length
	hi = min(lo+st.Paging.Length, len(st.Options))
	return lo, hi
}

// normalize keeps the selection in range, on the current page and off
// labels whenever a selectable option exists.
func (st *State) normalize() {
	n := len(st.Options)
	if n == 0 {
		st.Selection = 0
		st.Paging.Page = 0
		return
	}
	st.Selection = clamp(st.Selection, 0, n-1)

	if st.paged() {
		st.Paging.Page = clamp(st.Paging.Page, 0, st.PageCount()-1)
		lo, hi := st.PageBounds()
		st.Selection = clamp(st.Selection, lo, hi-1)
		for i := st.Selection; i < hi; i++ {
			if st.Options[i].Selectable() {
				st.Selection = i
				return
			}
		}
		for i := lo; i < st.Selection; i++ {
			if st.Options[i].Selectable() {
				st.Selection = i
				return
			}
		}
	}

	if st.Options[st.Selection].Selectable() {
		return
	}
	for k := 1; k < n; k++ {
		i := (st.Selection + k) % n
		if st.Options[i].Selectable() {
			st.Selection = i
			if st.paged() {
				st.Paging.Page = i / st.Paging.Length
			}
			return
		}
	}
}

// move searches from the selection in direction dir (+1 down, -1 up) for the
// next selectable option. Unpaged menus wrap around; paged menus stop at the
// page edge. It reports whether the selection changed.
func (st *State) move(dir int) bool {
	n := len(st.Options)
	if n == 0 {
		return false
	}
	if st.paged() {
		lo, hi := st.PageBounds()
		for i := st.Selection + dir; i >= lo && i < hi; i += dir {
			if st.Options[i].Selectable() {
				st.Selection = i
				return true
			}
		}
		return false
	}
	for k := 1; k < n; k++ {
		i := ((st.Selection+dir*k)%n + n) % n
		if st.Options[i].Selectable() {
			st.Selection = i
			return true
		}
	}
	return false
}

// turnPage shifts the selection by one page in direction dir, clamped to the
// last option. It reports whether the page changed.
func (st *State) turnPage(dir int) bool {
	if !st.paged() {
		return false
	}
	next := st.Paging.Page + dir
	if next < 0 || next >= st.PageCount() {
		return false
	}
	st.Paging.Page = next
	st.Selection = clamp(st.Selection+dir*st.Paging.Length, 0, len(st.Options)-1)
	st.normalize()
	return true
}
