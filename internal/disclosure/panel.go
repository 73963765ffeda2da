package disclosure

import "html/template"

// State is the expand/collapse state of a panel.
type State bool

const (
	Collapsed State = false
	Expanded  State = true
)

// Toggle returns the opposite state.
func (s State) Toggle() State { return !s }

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Indicator is the directional glyph shown next to the label.
func (s State) Indicator() string {
	if s == Expanded {
		return "▾"
	}
	return "▸"
}

// Panel is one rendered disclosure widget. Each instance owns its state.
type Panel struct {
	ID    string
	Label string
	Icon  string
	Body  template.HTML
	State State
}

// New returns a collapsed panel.
func New(id, label, icon string, body template.HTML) Panel {
	return Panel{ID: id, Label: label, Icon: icon, Body: body, State: Collapsed}
}

// Toggle flips the panel in place.
func (p *Panel) Toggle() {
	p.State = p.State.Toggle()
}

// Expanded reports whether the body should be rendered.
func (p Panel) Expanded() bool {
	return p.State == Expanded
}

// Indicator returns the glyph for the panel's current state.
func (p Panel) Indicator() string {
	return p.State.Indicator()
}

// View is a panel ready for a template: its state is taken from the
// page's open set and ToggleHref flips only this panel.
type View struct {
	Panel
	ToggleHref string
}

// Views builds template views for panels on the page at path.
func Views(path string, open OpenSet, panels []Panel) []View {
	out := make([]View, 0, len(panels))
	for _, p := range panels {
		if open.Has(p.ID) {
			p.State = Expanded
		} else {
			p.State = Collapsed
		}
		out = append(out, View{
			Panel:      p,
			ToggleHref: open.Toggle(p.ID).Href(path, p.ID),
		})
	}
	return out
}
