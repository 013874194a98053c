package formatter

import (
	"strings"

	"github.com/alexanderramin/projboard/internal/dom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RenderDocument renders the list sections mounted under host as terminal
// text. Forms are skipped; the TUI draws its own input form.
func RenderDocument(host *html.Node, width int) string {
	if host == nil {
		return ""
	}
	var sections []string
	for _, el := range dom.Children(host) {
		if el.DataAtom == atom.Form {
			continue
		}
		if s := renderSection(el, width); s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n\n")
}

func renderSection(sec *html.Node, width int) string {
	ul := dom.QuerySelector(sec, "ul")
	if ul == nil {
		return ""
	}
	var b strings.Builder
	if h := dom.QuerySelector(sec, "h2"); h != nil {
		b.WriteString(Header(strings.TrimSpace(dom.Text(h))))
		b.WriteString("\n")
	}

	items := dom.Children(ul)
	if len(items) == 0 {
		b.WriteString("  " + Dim("No projects yet."))
		return b.String()
	}
	for i, li := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderItem(li, width))
	}
	return b.String()
}

func renderItem(li *html.Node, width int) string {
	title := itemText(li, "h2")
	if title == "" {
		title = strings.TrimSpace(dom.Text(li))
	}
	line := "  " + StyleGreen.Render("▸") + " " + Bold(Truncate(title, max(width-6, 10)))
	if people := itemText(li, "h3"); people != "" {
		line += "  " + Dim(people)
	}
	if desc := itemText(li, "p"); desc != "" {
		line += "\n    " + StyleFg.Render(Truncate(desc, max(width-6, 10)))
	}
	return line
}

func itemText(n *html.Node, sel string) string {
	if c := dom.QuerySelector(n, sel); c != nil {
		return strings.TrimSpace(dom.Text(c))
	}
	return ""
}

// Summary returns a localized count line such as "1,204 active · 3 finished".
func Summary(active, finished int) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d active · %d finished", active, finished)
}
