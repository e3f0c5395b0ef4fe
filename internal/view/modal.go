package view

// ModalHandles are the resolved slots of the overlay shell.
type ModalHandles struct {
	Container Handle
}

// Modal is the overlay shell. It holds exactly one content view at a time;
// closing it drops the content.
type Modal struct {
	h       ModalHandles
	open    bool
	content any
}

// BindModal attaches the shell to its resolved handles.
func BindModal(h ModalHandles) *Modal {
	return &Modal{h: h}
}

// SetContent swaps in the view the overlay should show.
func (m *Modal) SetContent(content any) {
	m.content = content
}

// Content returns the view currently held by the overlay, or nil.
func (m *Modal) Content() any {
	return m.content
}

// Open shows the overlay.
func (m *Modal) Open() {
	m.open = true
	SetVisible(m.h.Container, true)
}

// Close hides the overlay and clears its content.
func (m *Modal) Close() {
	m.open = false
	m.content = nil
	SetVisible(m.h.Container, false)
}

// IsOpen reports whether the overlay is showing.
func (m *Modal) IsOpen() bool {
	return m.open
}
