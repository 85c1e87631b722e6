package validation

import (
	"bytes"
	"embed"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/*.json
var schemaFS embed.FS

// FieldError is one violated constraint: a human-readable message plus the
// offending field name (first path segment only).
type FieldError struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// Validator checks raw registration and login payloads against the
// embedded JSON schemas. Schemas are compiled once at construction.
type Validator struct {
	register *jsonschema.Schema
	login    *jsonschema.Schema
	printer  *message.Printer
}

func New() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.AssertFormat()

	register, err := compile(c, "register.schema.json")
	if err != nil {
		return nil, err
	}
	login, err := compile(c, "login.schema.json")
	if err != nil {
		return nil, err
	}

	return &Validator{
		register: register,
		login:    login,
		printer:  message.NewPrinter(language.English),
	}, nil
}

func compile(c *jsonschema.Compiler, name string) (*jsonschema.Schema, error) {
	raw, err := schemaFS.ReadFile("schema/" + name)
	if err != nil {
		return nil, fmt.Errorf("read schema %s: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", name, err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return sch, nil
}

// ValidateRegister returns one entry per violated registration rule, or nil.
func (v *Validator) ValidateRegister(payload map[string]any) []FieldError {
	return v.check(v.register, payload)
}

// ValidateLogin returns one entry per violated login rule, or nil.
func (v *Validator) ValidateLogin(payload map[string]any) []FieldError {
	return v.check(v.login, payload)
}

func (v *Validator) check(sch *jsonschema.Schema, payload map[string]any) []FieldError {
	// A nil map means the request carried no body at all; validate an
	// empty object so the required-property rules report each field.
	var value any = payload
	if payload == nil {
		value = map[string]any{}
	}

	err := sch.Validate(value)
	if err == nil {
		return nil
	}
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}

	var out []FieldError
	v.collect(ve, &out)
	return out
}

// collect flattens the validation error tree into leaf field errors.
func (v *Validator) collect(ve *jsonschema.ValidationError, out *[]FieldError) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			v.collect(cause, out)
		}
		return
	}

	// Required-property violations are reported at the object root; emit
	// one entry per missing field so the path names the field itself.
	if req, ok := ve.ErrorKind.(*kind.Required); ok {
		for _, name := range req.Missing {
			*out = append(*out, FieldError{
				Message: name + " is required",
				Path:    name,
			})
		}
		return
	}

	path := ""
	if len(ve.InstanceLocation) > 0 {
		path = ve.InstanceLocation[0]
	}
	*out = append(*out, FieldError{
		Message: ve.ErrorKind.LocalizedString(v.printer),
		Path:    path,
	})
}
