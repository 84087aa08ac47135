// Package comps holds small page-level components.
package comps

import "github.com/rohanthewiz/element"

// Heading is a section heading placed below the application header.
// Title is trusted text supplied by the page, not by the request.
type Heading struct {
	Title string
}

// Render writes <h2 class="page-heading">Title</h2>
func (h Heading) Render(b *element.Builder) (x any) {
	b.H2Class("page-heading").T(h.Title)
	return
}
