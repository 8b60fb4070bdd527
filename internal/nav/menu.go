package nav

// MobileMenu is the collapsible navigation overlay shown on narrow screens.
type MobileMenu struct {
	open bool
}

// NewMobileMenu returns a menu in the given state.
func NewMobileMenu(open bool) *MobileMenu { return &MobileMenu{open: open} }

// IsOpen reports whether the overlay is showing.
func (m *MobileMenu) IsOpen() bool { return m != nil && m.open }

// Open shows the overlay.
func (m *MobileMenu) Open() { m.open = true }

// Close hides the overlay. Every navigation action calls it.
func (m *MobileMenu) Close() { m.open = false }

// Toggle flips the overlay and returns the new state.
func (m *MobileMenu) Toggle() bool {
	m.open = !m.open
	return m.open
}
