// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips dangerous markup from HTML that reaches the
// server from outside, such as the body of an outbound email composed in
// the back office.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	p.AllowAttrs("style").OnElements("div", "p", "span", "h1", "h2", "h3", "strong", "em", "table", "td", "th")
	return p
}

// Sanitize removes scripts, event handlers and javascript: URLs while
// keeping common formatting tags, links and tables.
func Sanitize(html string) string {
	return policy.Sanitize(html)
}
