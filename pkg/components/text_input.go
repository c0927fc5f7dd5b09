package components

import (
	"encoding/json"
	"fmt"
)

// TextInputOptions are the fields of a modal text input. Required is a pointer
// because Discord treats an absent value as true.
type TextInputOptions struct {
	CustomID    string         `json:"custom_id"`
	Style       TextInputStyle `json:"style"`
	Label       string         `json:"label"`
	MinLength   *int           `json:"min_length,omitempty"`
	MaxLength   *int           `json:"max_length,omitempty"`
	Required    *bool          `json:"required,omitempty"`
	Value       string         `json:"value,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
}

// TextInput is a free-text field shown in a modal.
type TextInput struct {
	opts TextInputOptions
}

// NewTextInput validates opts and returns a TextInput. A max_length below 1
// could never accept input.
func NewTextInput(opts TextInputOptions) (TextInput, error) {
	if opts.CustomID == "" {
		return TextInput{}, invalid(TextInputComponent, "custom_id", "custom_id is required")
	}
	if !opts.Style.valid() {
		return TextInput{}, invalid(TextInputComponent, "style", fmt.Sprintf("unknown style %d", int(opts.Style)))
	}
	if opts.Label == "" {
		return TextInput{}, invalid(TextInputComponent, "label", "label is required")
	}
	if opts.MinLength != nil && *opts.MinLength < 0 {
		return TextInput{}, invalid(TextInputComponent, "min_length", "must not be negative")
	}
	if opts.MaxLength != nil && *opts.MaxLength < 1 {
		return TextInput{}, invalid(TextInputComponent, "max_length", "must be at least 1")
	}
	if opts.MinLength != nil && opts.MaxLength != nil && *opts.MinLength > *opts.MaxLength {
		return TextInput{}, invalid(TextInputComponent, "min_length",
			fmt.Sprintf("min_length %d exceeds max_length %d", *opts.MinLength, *opts.MaxLength))
	}
	opts.MinLength = copyInt(opts.MinLength)
	opts.MaxLength = copyInt(opts.MaxLength)
	if opts.Required != nil {
		opts.Required = Ptr(*opts.Required)
	}
	return TextInput{opts: opts}, nil
}

func (TextInput) Type() ComponentType { return TextInputComponent }
func (TextInput) isComponent() {}
func (TextInput) rowComponent() {}

func (t TextInput) CustomID() string { return t.opts.CustomID }
func (t TextInput) Style() TextInputStyle { return t.opts.Style }
func (t TextInput) Label() string { return t.opts.Label }
func (t TextInput) MinLength() *int { return copyInt(t.opts.MinLength) }
func (t TextInput) MaxLength() *int { return copyInt(t.opts.MaxLength) }
func (t TextInput) Value() string { return t.opts.Value }
func (t TextInput) Placeholder() string { return t.opts.Placeholder }

// Required reports whether the user must fill the input. Unset means true.
func (t TextInput) Required() bool {
	return t.opts.Required == nil || *t.opts.Required
}

func (t TextInput) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		TextInputOptions
	}{TextInputComponent, t.opts})
}
