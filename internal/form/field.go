// Package form declares the loan-application form: its sections,
// fields, dropdown options and the validation rules attached to each
// field.
package form

// PlaceholderValue is the sentinel a dropdown holds before the
// operator picks a real option. It never validates.
const PlaceholderValue = "default-placeholder"

// FieldType selects the transcript normalisation pipeline for a field.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldDate     FieldType = "date"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldNumber   FieldType = "number"
	FieldOIB      FieldType = "oib"
	FieldDropdown FieldType = "dropdown"
)

// Option is one entry of a dropdown field.
type Option struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Disabled bool   `json:"disabled,omitempty"`
}

// Field describes a single form input.
type Field struct {
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Placeholder string    `json:"placeholder"`
	Type        FieldType `json:"fieldType"`
	Options     []Option  `json:"options,omitempty"`
	Optional    bool      `json:"optional,omitempty"`

	// Validate checks a candidate value for this field.
	Validate ValidationRule `json:"-"`

	// Condition hides the field unless it returns true for the
	// current form state. Nil means always visible.
	Condition func(*State) bool `json:"-"`
}

// OptionValues returns the selectable values of a dropdown field,
// skipping the placeholder entry.
func (f Field) OptionValues() []string {
	if len(f.Options) == 0 {
		return nil
	}
	values := make([]string, 0, len(f.Options))
	for _, o := range f.Options {
		if o.Disabled || o.Value == PlaceholderValue {
			continue
		}
		values = append(values, o.Value)
	}
	return values
}

// Section groups related fields under a heading.
type Section struct {
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}
