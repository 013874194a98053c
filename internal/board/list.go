package board

import (
	"fmt"
	"log/slog"

	"github.com/alexanderramin/projboard/internal/component"
	"github.com/alexanderramin/projboard/internal/dom"
	"github.com/alexanderramin/projboard/internal/domain"
	"github.com/alexanderramin/projboard/internal/state"
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProjectList renders the projects of one status as a list section.
type ProjectList struct {
	kind     domain.ProjectStatus
	handle   *component.Handle
	list     *html.Node
	heading  *html.Node
	itemTmpl *html.Node
	logger   *slog.Logger

	assigned []domain.Project
}

// NewProjectList mounts a project-list section at the end of #app and
// subscribes it to store. Nothing is registered with the store unless the
// mount succeeds.
func NewProjectList(doc *dom.Document, store *state.Store, kind domain.ProjectStatus, opts ...Option) (*ProjectList, error) {
	o := applyOptions(opts)

	h, err := component.Mount(doc, component.Spec{
		TemplateKey: "project-list",
		HostKey:     HostID,
		Position:    component.BeforeEnd,
		ElementID:   string(kind) + "-projects",
	})
	if err != nil {
		return nil, err
	}

	l := &ProjectList{
		kind:   kind,
		handle: h,
		logger: o.logger,
	}
	if tmpl := doc.ElementByID("single-project"); dom.IsTemplate(tmpl) {
		l.itemTmpl = tmpl
	}

	err = h.Run(component.Lifecycle{
		Configure: func() error {
			l.list = h.Query("ul")
			l.heading = h.Query("h2")
			if l.list == nil || l.heading == nil {
				return fmt.Errorf("project-list template needs an <h2> and a <ul>")
			}
			store.AddListener(l.onProjects)
			return nil
		},
		RenderContent: l.renderContent,
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Kind returns the status this list shows.
func (l *ProjectList) Kind() domain.ProjectStatus { return l.kind }

// Element returns the mounted section element.
func (l *ProjectList) Element() *html.Node { return l.handle.Element() }

// ListID returns the id of the <ul> holding the items.
func (l *ProjectList) ListID() string { return string(l.kind) + "-projects-list" }

// Heading returns the list's heading text.
func (l *ProjectList) Heading() string { return dom.Text(l.heading) }

// Projects returns a copy of the projects currently shown.
func (l *ProjectList) Projects() []domain.Project {
	out := make([]domain.Project, len(l.assigned))
	copy(out, l.assigned)
	return out
}

func (l *ProjectList) renderContent() {
	dom.SetAttr(l.list, "id", l.ListID())
	dom.SetText(l.heading, cases.Upper(language.English).String(string(l.kind)+" projects"))
}

func (l *ProjectList) onProjects(projects []domain.Project) {
	assigned := projects[:0]
	for _, p := range projects {
		if p.Status == l.kind {
			assigned = append(assigned, p)
		}
	}
	l.assigned = assigned
	l.renderProjects()
}

// renderProjects rebuilds the list from the current snapshot. The list is
// cleared first so repeated notifications never duplicate items.
func (l *ProjectList) renderProjects() {
	dom.RemoveChildren(l.list)
	for _, p := range l.assigned {
		dom.InsertAdjacent(l.list, dom.BeforeEnd, l.renderItem(p))
	}
	l.logger.Debug("list_rendered", "kind", string(l.kind), "items", len(l.assigned))
}

func (l *ProjectList) renderItem(p domain.Project) *html.Node {
	var li *html.Node
	if l.itemTmpl != nil {
		li = dom.FirstElementChild(dom.CloneContent(l.itemTmpl))
	}
	if li == nil {
		li = dom.NewElement("li")
		dom.SetText(li, p.Title)
	} else {
		setTextIfPresent(li, "h2", p.Title)
		setTextIfPresent(li, "h3", p.PeopleLabel()+" assigned")
		setTextIfPresent(li, "p", p.Description)
	}
	dom.SetAttr(li, "id", p.ID)
	return li
}

func setTextIfPresent(n *html.Node, sel, text string) {
	if c := dom.QuerySelector(n, sel); c != nil {
		dom.SetText(c, text)
	}
}
