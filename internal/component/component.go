// Package component mounts cloned <template> content into the live document.
//
// A concrete view calls Mount once, keeps the returned Handle and supplies
// its own Configure and RenderContent closures. The element behind a Handle
// belongs to that view alone; views talk to each other only through the
// state store.
package component

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/projboard/internal/dom"
	"golang.org/x/net/html"
)

// Insertion positions, re-exported from dom.
const (
	AfterBegin = dom.AfterBegin
	BeforeEnd  = dom.BeforeEnd
)

// Mount failures. All of them mean the layout and the code disagree; callers
// stop assembly rather than retry.
var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrNotTemplate      = errors.New("element is not a <template>")
	ErrHostNotFound     = errors.New("host element not found")
	ErrEmptyTemplate    = errors.New("template has no root element")
)

// Spec describes where a component comes from and where it goes.
type Spec struct {
	TemplateKey string
	HostKey     string
	Position    dom.Position
	// ElementID, when set, becomes the id of the mounted element.
	ElementID string
}

// Handle owns one mounted element.
type Handle struct {
	spec    Spec
	host    *html.Node
	element *html.Node
}

// Mount resolves spec's template and host, clones the template content into
// a detached fragment, takes its root element, applies ElementID and inserts
// the element into the host.
func Mount(doc *dom.Document, spec Spec) (*Handle, error) {
	tmpl := doc.ElementByID(spec.TemplateKey)
	if tmpl == nil {
		return nil, fmt.Errorf("mounting %q: %w", spec.TemplateKey, ErrTemplateNotFound)
	}
	if !dom.IsTemplate(tmpl) {
		return nil, fmt.Errorf("mounting %q: %w", spec.TemplateKey, ErrNotTemplate)
	}
	host := doc.ElementByID(spec.HostKey)
	if host == nil {
		return nil, fmt.Errorf("mounting %q into %q: %w", spec.TemplateKey, spec.HostKey, ErrHostNotFound)
	}

	frag := dom.CloneContent(tmpl)
	el := dom.FirstElementChild(frag)
	if el == nil {
		return nil, fmt.Errorf("mounting %q: %w", spec.TemplateKey, ErrEmptyTemplate)
	}
	dom.Detach(el)
	if spec.ElementID != "" {
		dom.SetAttr(el, "id", spec.ElementID)
	}

	h := &Handle{spec: spec, host: host, element: el}
	h.Attach()
	return h, nil
}

// MustMount is Mount for layouts known to be correct; it panics on error.
func MustMount(doc *dom.Document, spec Spec) *Handle {
	h, err := Mount(doc, spec)
	if err != nil {
		panic(err)
	}
	return h
}

// Element returns the mounted element.
func (h *Handle) Element() *html.Node { return h.element }

// Spec returns the spec the handle was mounted with.
func (h *Handle) Spec() Spec { return h.spec }

// Attach inserts the element into its host at the configured position.
// Attaching an already attached element moves it back to that position.
func (h *Handle) Attach() {
	dom.InsertAdjacent(h.host, h.spec.Position, h.element)
}

// Detach removes the element from the live tree. It can be attached again.
func (h *Handle) Detach() {
	dom.Detach(h.element)
}

// Attached reports whether the element currently sits in its host.
func (h *Handle) Attached() bool {
	return h.element.Parent == h.host
}

// Query returns the first descendant of the element matching sel.
func (h *Handle) Query(sel string) *html.Node {
	return dom.QuerySelector(h.element, sel)
}

// Lifecycle holds the two extension points a concrete view supplies.
type Lifecycle struct {
	// Configure wires interaction and subscriptions, e.g. a store listener.
	Configure func() error
	// RenderContent fills in static text inside the element.
	RenderContent func()
}

// Run calls Configure and then RenderContent. Nil hooks are skipped.
func (h *Handle) Run(l Lifecycle) error {
	if l.Configure != nil {
		if err := l.Configure(); err != nil {
			return fmt.Errorf("configuring %q: %w", h.spec.TemplateKey, err)
		}
	}
	if l.RenderContent != nil {
		l.RenderContent()
	}
	return nil
}
