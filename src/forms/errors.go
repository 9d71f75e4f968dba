package forms

import (
	"encoding/json"
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ACORDE/memorial-acervo/src/models"
)

const (
	MsgRequired = "Este campo é obrigatório."
	MsgInvalid  = "Informe um valor válido."

	MsgInvalidDate = "Informe uma data válida."
)

// Errors collects field-level and non-field validation messages.
type Errors struct {
	Fields   map[string][]string `json:"fieldErrors,omitempty"`
	NonField []string            `json:"nonFieldErrors,omitempty"`
}

func NewErrors() *Errors {
	return &Errors{Fields: map[string][]string{}}
}

func (e *Errors) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func (e *Errors) AddNonField(msg string) {
	e.NonField = append(e.NonField, msg)
}

func (e *Errors) HasErrors() bool {
	return e != nil && (len(e.Fields) > 0 || len(e.NonField) > 0)
}

// Merge copies other's messages into e, prefixing field names.
func (e *Errors) Merge(prefix string, other *Errors) {
	if !other.HasErrors() {
		return
	}
	for field, msgs := range other.Fields {
		for _, m := range msgs {
			e.Add(prefix+field, m)
		}
	}
	for _, m := range other.NonField {
		if prefix == "" {
			e.AddNonField(m)
			continue
		}
		e.Add(strings.TrimSuffix(prefix, "-"), m)
	}
}

// Err returns a *ValidationError when there is anything to report, nil otherwise.
func (e *Errors) Err(form string) error {
	if !e.HasErrors() {
		return nil
	}
	return &ValidationError{Form: form, Errors: e}
}

// Bind is Err carrying the submitted values so the form can be rebuilt bound.
func (e *Errors) Bind(form string, input interface{}) error {
	if !e.HasErrors() {
		return nil
	}
	return &ValidationError{Form: form, Errors: e, Values: ValuesOf(input)}
}

// ValidationError is returned by services when submitted data is invalid.
type ValidationError struct {
	Form   string
	Errors *Errors
	Values map[string]interface{}
}

// ValuesOf flattens a JSON-tagged struct into a field map.
func ValuesOf(input interface{}) map[string]interface{} {
	if input == nil {
		return nil
	}
	b, err := json.Marshal(input)
	if err != nil {
		return nil
	}
	var values map[string]interface{}
	if err := json.Unmarshal(b, &values); err != nil {
		return nil
	}
	return values
}

func (v *ValidationError) Error() string {
	var parts []string
	for field, msgs := range v.Errors.Fields {
		parts = append(parts, field+": "+strings.Join(msgs, " "))
	}
	parts = append(parts, v.Errors.NonField...)
	return "dados inválidos: " + strings.Join(parts, "; ")
}

// Required adds the required message when value is blank.
func (e *Errors) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, MsgRequired)
		return false
	}
	return true
}

// RequiredMsg is Required with a custom message.
func (e *Errors) RequiredMsg(field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msg)
		return false
	}
	return true
}

// MaxLength adds an error when value has more than max characters.
func (e *Errors) MaxLength(field, value string, max int) {
	if n := utf8.RuneCountInString(value); n > max {
		e.Add(field, "Certifique-se de que o valor tenha no máximo "+strconv.Itoa(max)+" caracteres (ele possui "+strconv.Itoa(n)+").")
	}
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// Email adds an error when a non-blank value is not a valid address.
func (e *Errors) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		e.Add(field, "Informe um endereço de email válido.")
	}
}

// Choice adds an error when value is not one of the codes in choices.
func (e *Errors) Choice(field, value string, choices []models.Choice) bool {
	if models.IsChoice(choices, value) {
		return true
	}
	e.Add(field, "Faça uma escolha válida. "+value+" não é uma das escolhas disponíveis.")
	return false
}

// ValidDate adds MsgInvalidDate when d was submitted in an unreadable form.
// It reports whether the date can be used.
func (e *Errors) ValidDate(field string, d *models.Date) bool {
	if d != nil && d.Invalid() {
		e.Add(field, MsgInvalidDate)
		return false
	}
	return true
}

// NotAfter adds an error when d is later than limit.
func (e *Errors) NotAfter(field string, d *models.Date, limit models.Date) {
	if d != nil && !d.IsZero() && d.After(limit) {
		e.Add(field, "Certifique-se que este valor seja menor ou igual a "+limit.Display()+".")
	}
}
