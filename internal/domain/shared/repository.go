package shared

// Page holds offset pagination parameters shared by all list operations.
type Page struct {
	Skip  int
	Limit int
}

// DefaultPage returns the default pagination window
func DefaultPage() Page {
	return Page{Skip: 0, Limit: 100}
}

// Normalize clamps the page to sane bounds
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 || p.Limit > 1000 {
		p.Limit = 100
	}
	return p
}
