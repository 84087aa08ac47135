// Package shared contains components used by more than one page.
package shared

// Page carries the fields every page has in common.
// Page structs embed it, e.g.
//
//	type Home struct {
//		shared.Page
//		Heading string
//	}
//
// which gives Home a Title field and the Footer method.
type Page struct {
	// Title goes into the document <title>
	Title string
}

// Footer returns the footer shared by all full pages
func (p Page) Footer() Footer {
	return Footer{}
}
