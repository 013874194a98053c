// Package board assembles the project entry form and the two project lists
// on top of a layout document and a single state store.
package board

import (
	"fmt"
	"io"

	"github.com/alexanderramin/projboard/internal/dom"
	"github.com/alexanderramin/projboard/internal/domain"
	"github.com/alexanderramin/projboard/internal/state"
	"golang.org/x/net/html"
)

// HostID is the id of the element the form and lists mount into.
const HostID = "app"

// Board is the assembled application: one store, one document, one form and
// one list per status.
type Board struct {
	Doc      *dom.Document
	Store    *state.Store
	Input    *ProjectInput
	Active   *ProjectList
	Finished *ProjectList
}

// Assemble mounts the form and then the active and finished lists, in that
// order. It stops at the first failure, so a bad layout never leaves a
// listener registered for a half-built board.
func Assemble(doc *dom.Document, store *state.Store, notifier Notifier, opts ...Option) (*Board, error) {
	input, err := NewProjectInput(doc, store, notifier, opts...)
	if err != nil {
		return nil, fmt.Errorf("assembling project input: %w", err)
	}
	active, err := NewProjectList(doc, store, domain.ProjectActive, opts...)
	if err != nil {
		return nil, fmt.Errorf("assembling active list: %w", err)
	}
	finished, err := NewProjectList(doc, store, domain.ProjectFinished, opts...)
	if err != nil {
		return nil, fmt.Errorf("assembling finished list: %w", err)
	}
	return &Board{
		Doc:      doc,
		Store:    store,
		Input:    input,
		Active:   active,
		Finished: finished,
	}, nil
}

// Lists returns the lists in display order.
func (b *Board) Lists() []*ProjectList {
	return []*ProjectList{b.Active, b.Finished}
}

// Submit fills the form with raw values and submits it.
func (b *Board) Submit(title, description, people string) (Submission, error) {
	b.Input.Fill(title, description, people)
	return b.Input.Submit()
}

// Host returns the mount point holding the form and the lists.
func (b *Board) Host() *html.Node {
	return b.Doc.ElementByID(HostID)
}

// RenderHTML writes the live document as HTML.
func (b *Board) RenderHTML(w io.Writer) error {
	return b.Doc.Render(w)
}
