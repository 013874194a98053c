package board

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/projboard/internal/component"
	"github.com/alexanderramin/projboard/internal/dom"
	"github.com/alexanderramin/projboard/internal/state"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrInvalidInput is returned by Submit when any field fails validation.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputAlert is the message shown to the user on a rejected submit.
const InvalidInputAlert = "Invalid input"

// Submission is a validated form submission.
type Submission struct {
	Title       string
	Description string
	People      int
}

// ProjectInput is the project entry form mounted at the top of the board.
type ProjectInput struct {
	handle   *component.Handle
	store    *state.Store
	notifier Notifier
	logger   *slog.Logger
	fields   map[string]*html.Node
}

// NewProjectInput mounts the project-input template into #app.
func NewProjectInput(doc *dom.Document, store *state.Store, notifier Notifier, opts ...Option) (*ProjectInput, error) {
	o := applyOptions(opts)

	h, err := component.Mount(doc, component.Spec{
		TemplateKey: "project-input",
		HostKey:     HostID,
		Position:    component.AfterBegin,
		ElementID:   "user-input",
	})
	if err != nil {
		return nil, err
	}

	if notifier == nil {
		notifier = discardNotifier{}
	}
	in := &ProjectInput{
		handle:   h,
		store:    store,
		notifier: notifier,
		logger:   o.logger,
		fields:   make(map[string]*html.Node, len(FieldNames)),
	}

	err = h.Run(component.Lifecycle{
		Configure: in.bindFields,
	})
	if err != nil {
		return nil, err
	}
	return in, nil
}

func (in *ProjectInput) bindFields() error {
	for _, name := range FieldNames {
		n := in.handle.Query("#" + name)
		if n == nil {
			return fmt.Errorf("form field %q not found", name)
		}
		in.fields[name] = n
	}
	return nil
}

// Element returns the mounted form element.
func (in *ProjectInput) Element() *html.Node { return in.handle.Element() }

// SetField writes a raw value into the named input, as typing would.
func (in *ProjectInput) SetField(name, value string) error {
	n, ok := in.fields[name]
	if !ok {
		return fmt.Errorf("unknown field %q", name)
	}
	if n.DataAtom == atom.Textarea {
		dom.SetText(n, value)
		return nil
	}
	dom.SetAttr(n, "value", value)
	return nil
}

// Field returns the raw value currently held by the named input.
func (in *ProjectInput) Field(name string) string {
	n, ok := in.fields[name]
	if !ok {
		return ""
	}
	if n.DataAtom == atom.Textarea {
		return dom.Text(n)
	}
	v, _ := dom.Attr(n, "value")
	return v
}

// Fill sets all three fields at once.
func (in *ProjectInput) Fill(title, description, people string) {
	// The field set is fixed by bindFields, so these cannot fail.
	_ = in.SetField(FieldTitle, title)
	_ = in.SetField(FieldDescription, description)
	_ = in.SetField(FieldPeople, people)
}

// Submit validates the current field values. On success it adds the project
// to the store and clears the form. On failure it alerts the user and leaves
// both the store and the form untouched.
func (in *ProjectInput) Submit() (Submission, error) {
	sub, err := in.gatherUserInput()
	if err != nil {
		in.logger.Info("submission_rejected", "error", err.Error())
		in.notifier.Alert(InvalidInputAlert)
		return Submission{}, err
	}

	in.store.AddProject(sub.Title, sub.Description, sub.People)
	in.clearInputs()
	return sub, nil
}

func (in *ProjectInput) gatherUserInput() (Submission, error) {
	raw := make(map[string]string, len(FieldNames))
	var errs []error
	for _, name := range FieldNames {
		raw[name] = in.Field(name)
		if err := CheckField(name, raw[name]); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return Submission{}, fmt.Errorf("%w: %w", ErrInvalidInput, errors.Join(errs...))
	}
	return Submission{
		Title:       raw[FieldTitle],
		Description: raw[FieldDescription],
		People:      int(ParsePeople(raw[FieldPeople])),
	}, nil
}

func (in *ProjectInput) clearInputs() {
	for _, name := range FieldNames {
		_ = in.SetField(name, "")
	}
}
