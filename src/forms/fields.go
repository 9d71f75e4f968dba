package forms

import (
	"strings"

	"github.com/ACORDE/memorial-acervo/src/models"
)

// FieldKind is the semantic kind of a form field. Rendering attributes are
// derived from it through the policy table instead of inspecting widgets.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindTextarea    FieldKind = "textarea"
	KindEmail       FieldKind = "email"
	KindNumber      FieldKind = "number"
	KindDate        FieldKind = "date"
	KindSelect      FieldKind = "select"
	KindMultiSelect FieldKind = "multiselect"
	KindCheckbox    FieldKind = "checkbox"
	KindFile        FieldKind = "file"
)

const invalidClass = "is-invalid"

// Policy describes how a field kind is rendered.
type Policy struct {
	Widget string
	Class  string
	// InputType is the HTML input type for kinds rendered as <input>.
	InputType string
}

var policies = map[FieldKind]Policy{
	KindText:        {Widget: "input", Class: "form-control", InputType: "text"},
	KindTextarea:    {Widget: "textarea", Class: "form-control"},
	KindEmail:       {Widget: "input", Class: "form-control", InputType: "email"},
	KindNumber:      {Widget: "input", Class: "form-control", InputType: "number"},
	KindDate:        {Widget: "input", Class: "form-control", InputType: "date"},
	KindSelect:      {Widget: "select", Class: "form-select"},
	KindMultiSelect: {Widget: "select", Class: "form-select"},
	KindCheckbox:    {Widget: "input", Class: "form-check-input", InputType: "checkbox"},
	KindFile:        {Widget: "input", Class: "form-control", InputType: "file"},
}

// PolicyFor returns the rendering policy of a kind. Unknown kinds render as text.
func PolicyFor(kind FieldKind) Policy {
	if p, ok := policies[kind]; ok {
		return p
	}
	return policies[KindText]
}

// FieldSpec is the static description of a field.
type FieldSpec struct {
	Name        string
	Label       string
	Kind        FieldKind
	Required    bool
	MaxLength   int
	Rows        int
	HelpText    string
	Placeholder string
	EmptyLabel  string
	Choices     []models.Choice
}

// Field is a FieldSpec after the policy table has been applied.
type Field struct {
	Name       string            `json:"name"`
	Label      string            `json:"label"`
	Kind       FieldKind         `json:"kind"`
	Widget     string            `json:"widget"`
	Required   bool              `json:"required"`
	HelpText   string            `json:"helpText,omitempty"`
	EmptyLabel string            `json:"emptyLabel,omitempty"`
	Choices    []models.Choice   `json:"choices,omitempty"`
	Attrs      map[string]string `json:"attrs"`
	Errors     []string          `json:"errors,omitempty"`
	Value      interface{}       `json:"value,omitempty"`
}

// Definition is a named, ordered list of fields.
type Definition struct {
	Name   string
	Fields []FieldSpec
}

// Form is a built form ready to be serialized for a client.
type Form struct {
	Name           string   `json:"name"`
	Fields         []Field  `json:"fields"`
	NonFieldErrors []string `json:"nonFieldErrors,omitempty"`
}

// Build applies the rendering policy to every field of def. Fields listed in
// errs get the invalid marker and their messages. values, when non-nil,
// supplies the bound value of each field.
func Build(def Definition, errs *Errors, values map[string]interface{}) Form {
	form := Form{Name: def.Name, Fields: make([]Field, 0, len(def.Fields))}
	for _, spec := range def.Fields {
		policy := PolicyFor(spec.Kind)
		attrs := map[string]string{"class": policy.Class}
		if policy.InputType != "" {
			attrs["type"] = policy.InputType
		}
		if spec.Placeholder != "" {
			attrs["placeholder"] = spec.Placeholder
		}
		if spec.MaxLength > 0 {
			attrs["maxlength"] = itoa(spec.MaxLength)
		}
		if spec.Rows > 0 {
			attrs["rows"] = itoa(spec.Rows)
		}
		if spec.Kind == KindMultiSelect {
			attrs["multiple"] = "multiple"
		}
		if spec.Required && spec.Kind != KindCheckbox {
			attrs["required"] = "required"
		}

		f := Field{
			Name:       spec.Name,
			Label:      spec.Label,
			Kind:       spec.Kind,
			Widget:     policy.Widget,
			Required:   spec.Required,
			HelpText:   spec.HelpText,
			EmptyLabel: spec.EmptyLabel,
			Choices:    spec.Choices,
			Attrs:      attrs,
		}
		if errs != nil {
			if msgs := errs.Fields[spec.Name]; len(msgs) > 0 {
				f.Errors = msgs
				attrs["class"] = addClass(attrs["class"], invalidClass)
			}
		}
		if values != nil {
			f.Value = values[spec.Name]
		}
		form.Fields = append(form.Fields, f)
	}
	if errs != nil {
		form.NonFieldErrors = errs.NonField
	}
	return form
}

// WithChoices returns a copy of def where the named field uses choices.
func (d Definition) WithChoices(field string, choices []models.Choice) Definition {
	out := Definition{Name: d.Name, Fields: make([]FieldSpec, len(d.Fields))}
	copy(out.Fields, d.Fields)
	for i := range out.Fields {
		if out.Fields[i].Name == field {
			out.Fields[i].Choices = choices
		}
	}
	return out
}

// Field returns the spec with the given name.
func (d Definition) Field(name string) (FieldSpec, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

func addClass(existing, class string) string {
	classes := strings.Fields(existing)
	for _, c := range classes {
		if c == class {
			return existing
		}
	}
	return strings.Join(append(classes, class), " ")
}
