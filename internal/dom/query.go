package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// QuerySelector returns the first descendant of n matching sel.
//
// Supported selectors are a tag name ("ul"), an id ("#title"), a class
// (".projects") and a tag qualified by id or class ("ul#active-projects-list",
// "section.projects"). n itself is not a candidate, mirroring Element.querySelector.
func QuerySelector(n *html.Node, sel string) *html.Node {
	all := query(n, sel, true)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// QuerySelectorAll returns every descendant of n matching sel, in document order.
func QuerySelectorAll(n *html.Node, sel string) []*html.Node {
	return query(n, sel, false)
}

func query(n *html.Node, sel string, first bool) []*html.Node {
	if n == nil {
		return nil
	}
	m := parseSelector(sel)
	if m == nil {
		return nil
	}
	var out []*html.Node
	var walk func(*html.Node) bool
	walk = func(p *html.Node) bool {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && m.matches(c) {
				out = append(out, c)
				if first {
					return true
				}
			}
			if IsTemplate(c) {
				continue
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(n)
	return out
}

type selector struct {
	tag   string
	id    string
	class string
}

func parseSelector(sel string) *selector {
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, " >+~[:,") {
		return nil
	}
	s := &selector{}
	if i := strings.IndexByte(sel, '#'); i >= 0 {
		s.tag, s.id = sel[:i], sel[i+1:]
	} else if i := strings.IndexByte(sel, '.'); i >= 0 {
		s.tag, s.class = sel[:i], sel[i+1:]
	} else {
		s.tag = sel
	}
	if s.tag == "" && s.id == "" && s.class == "" {
		return nil
	}
	s.tag = strings.ToLower(s.tag)
	return s
}

func (s *selector) matches(n *html.Node) bool {
	if s.tag != "" && n.Data != s.tag {
		return false
	}
	if s.id != "" && ID(n) != s.id {
		return false
	}
	if s.class != "" {
		classes, _ := Attr(n, "class")
		if !containsField(classes, s.class) {
			return false
		}
	}
	return true
}

func containsField(list, want string) bool {
	for _, f := range strings.Fields(list) {
		if f == want {
			return true
		}
	}
	return false
}
