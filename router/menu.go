package router

import "github.com/xy-planning-network/blaze"

// A Menu is a set of Links exposed to the end user,
// generally the persistent navigation surface of the UI.
// Every Link activation funnels through the [Navigator],
// the single choke point for link-like elements.
type Menu []Link

// Filter returns a Menu after removing all Links that cannot be rendered.
// If none can be rendered, Filter returns a zero-value Menu.
func (m Menu) Filter() Menu {
	var n int
	for _, link := range m {
		if link.Render() {
			m[n] = link
			n++
		}
	}

	if n == 0 {
		return make(Menu, 0)
	}

	return m[:n]
}

// A Link is a link-like element pointing at a pathname inside the routing session.
type Link struct {
	Name string `json:"name"`
	Href string `json:"href"`
}

// Render asserts whether the Link should be rendered.
func (l Link) Render() bool { return l.Name != "" && l.Href != "" }

// Intent packages the Link's activation for [*Navigator.Follow].
//
// cancel is the "cancel default" signal of the triggering event;
// nil means the activation arrived pre-cancelled.
func (l Link) Intent(cancel func()) Intent {
	return Intent{Target: l.Href, CancelDefault: cancel}
}

// Active reports whether the Link points at current,
// for styling the active item in a rendered Menu.
//
// A Link whose Href cannot be normalized is never active.
func (l Link) Active(current blaze.Path) bool {
	p, err := blaze.ParsePath(l.Href)
	if err != nil {
		return false
	}

	return p == current
}
