package components

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	validatorengine "github.com/go-playground/validator/v10"
)

// Limits are the platform constraints checked by a Validator. A zero value
// for any limit disables that check.
type Limits struct {
	MessageRows          int
	RowWidth             int
	CustomID             int
	ButtonLabel          int
	ButtonURL            int
	SelectPlaceholder    int
	SelectOptions        int
	SelectValues         int
	OptionLabel          int
	OptionValue          int
	OptionDescription    int
	TextInputLabel       int
	TextInputLength      int
	TextInputPlaceholder int
}

// DefaultLimits returns the limits currently documented by Discord.
func DefaultLimits() Limits {
	return Limits{
		MessageRows:          5,
		RowWidth:             5,
		CustomID:             100,
		ButtonLabel:          80,
		ButtonURL:            512,
		SelectPlaceholder:    150,
		SelectOptions:        25,
		SelectValues:         25,
		OptionLabel:          100,
		OptionValue:          100,
		OptionDescription:    100,
		TextInputLabel:       45,
		TextInputLength:      4000,
		TextInputPlaceholder: 100,
	}
}

// Violation is one broken constraint. Field is the JSON path of the value.
type Violation struct {
	Field  string
	Rule   string
	Limit  int
	Actual int
}

func (v Violation) String() string {
	if v.Limit == 0 {
		return fmt.Sprintf("constraint violated: %s, %s", v.Field, v.Rule)
	}
	return fmt.Sprintf("constraint violated: %s, %s=%d (got %d)", v.Field, v.Rule, v.Limit, v.Actual)
}

// Violations is the error returned when validation finds broken constraints.
type Violations []Violation

func (vs Violations) Error() string {
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.String()
	}
	return strings.Join(msgs, "; ")
}

// AsViolations extracts the violations from err, if any.
func AsViolations(err error) (Violations, bool) {
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

// Validator checks constructed components against configurable limits. It is
// safe for concurrent use.
type Validator struct {
	limits Limits
	engine *validatorengine.Validate
}

// NewValidator returns a Validator enforcing limits.
func NewValidator(limits Limits) *Validator {
	return &Validator{
		limits: limits,
		engine: validatorengine.New(),
	}
}

// Limits returns the limits the validator enforces.
func (v *Validator) Limits() Limits {
	return v.limits
}

// Validate checks a single component. It returns nil or Violations.
func (v *Validator) Validate(c MessageComponent) error {
	ck := &checker{v: v}
	ck.component("", c)
	return ck.result()
}

// ValidateMessage checks the top-level component list of a message: the row
// count, that every entry is an action row, and each row's contents.
func (v *Validator) ValidateMessage(cs []MessageComponent) error {
	ck := &checker{v: v}
	ck.maxCount("components", len(cs), v.limits.MessageRows)
	for i, c := range cs {
		field := fmt.Sprintf("components[%d]", i)
		if _, ok := c.(ActionRow); c != nil && !ok {
			ck.add(field, "action_row", 0, 0)
		}
		ck.component(field, c)
	}
	return ck.result()
}

// Validate checks c against limits.
func Validate(c MessageComponent, limits Limits) error {
	return NewValidator(limits).Validate(c)
}

type checker struct {
	v          *Validator
	violations Violations
}

func (ck *checker) result() error {
	if len(ck.violations) == 0 {
		return nil
	}
	return ck.violations
}

func (ck *checker) add(field, rule string, limit, actual int) {
	ck.violations = append(ck.violations, Violation{Field: field, Rule: rule, Limit: limit, Actual: actual})
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func (ck *checker) failed(err error) bool {
	var verrs validatorengine.ValidationErrors
	return errors.As(err, &verrs) && len(verrs) > 0
}

func (ck *checker) maxLen(field, value string, limit int) {
	if limit <= 0 || value == "" {
		return
	}
	if ck.failed(ck.v.engine.Var(value, fmt.Sprintf("max=%d", limit))) {
		ck.add(field, "max", limit, utf8.RuneCountInString(value))
	}
}

func (ck *checker) maxCount(field string, n, limit int) {
	if limit <= 0 {
		return
	}
	if ck.failed(ck.v.engine.Var(n, fmt.Sprintf("lte=%d", limit))) {
		ck.add(field, "max", limit, n)
	}
}

func (ck *checker) maxValue(field string, n *int, limit int) {
	if n == nil {
		return
	}
	ck.maxCount(field, *n, limit)
}

func (ck *checker) url(field, value string) {
	if value == "" {
		return
	}
	if ck.failed(ck.v.engine.Var(value, "url")) {
		ck.add(field, "url", 0, 0)
	}
}

func (ck *checker) component(prefix string, c MessageComponent) {
	l := ck.v.limits
	switch c := c.(type) {
	case ActionRow:
		ck.row(prefix, c)
	case Button:
		ck.maxLen(join(prefix, "label"), c.Label(), l.ButtonLabel)
		ck.maxLen(join(prefix, "custom_id"), c.CustomID(), l.CustomID)
		ck.maxLen(join(prefix, "url"), c.URL(), l.ButtonURL)
		ck.url(join(prefix, "url"), c.URL())
	case StringSelectMenu:
		ck.selectMenu(prefix, c.selectBase)
		opts := c.Options()
		ck.maxCount(join(prefix, "options"), len(opts), l.SelectOptions)
		ck.maxValue(join(prefix, "min_values"), c.MinValues(), len(opts))
		ck.maxValue(join(prefix, "max_values"), c.MaxValues(), len(opts))
		for i, o := range opts {
			field := join(prefix, fmt.Sprintf("options[%d]", i))
			ck.maxLen(join(field, "label"), o.Label, l.OptionLabel)
			ck.maxLen(join(field, "value"), o.Value, l.OptionValue)
			ck.maxLen(join(field, "description"), o.Description, l.OptionDescription)
		}
	case UserSelectMenu:
		ck.selectMenu(prefix, c.selectBase)
	case RoleSelectMenu:
		ck.selectMenu(prefix, c.selectBase)
	case MentionableSelectMenu:
		ck.selectMenu(prefix, c.selectBase)
	case ChannelSelectMenu:
		ck.selectMenu(prefix, c.selectBase)
	case TextInput:
		ck.maxLen(join(prefix, "custom_id"), c.CustomID(), l.CustomID)
		ck.maxLen(join(prefix, "label"), c.Label(), l.TextInputLabel)
		ck.maxLen(join(prefix, "value"), c.Value(), l.TextInputLength)
		ck.maxLen(join(prefix, "placeholder"), c.Placeholder(), l.TextInputPlaceholder)
		ck.maxValue(join(prefix, "min_length"), c.MinLength(), l.TextInputLength)
		ck.maxValue(join(prefix, "max_length"), c.MaxLength(), l.TextInputLength)
	case nil:
		ck.add(join(prefix, "type"), "required", 0, 0)
	default:
		ck.add(join(prefix, "type"), "unsupported", 0, 0)
	}
}

func (ck *checker) selectMenu(prefix string, s selectBase) {
	l := ck.v.limits
	ck.maxLen(join(prefix, "custom_id"), s.CustomID(), l.CustomID)
	ck.maxLen(join(prefix, "placeholder"), s.Placeholder(), l.SelectPlaceholder)
	ck.maxValue(join(prefix, "min_values"), s.MinValues(), l.SelectValues)
	ck.maxValue(join(prefix, "max_values"), s.MaxValues(), l.SelectValues)
}

// row checks the row width. Buttons take one slot; selects and text inputs
// take the whole row.
func (ck *checker) row(prefix string, r ActionRow) {
	limit := ck.v.limits.RowWidth
	width := 0
	for i, c := range r.components {
		if c.Type() == ButtonComponent {
			width++
		} else {
			width += max(limit, 1)
		}
		ck.component(join(prefix, fmt.Sprintf("components[%d]", i)), c)
	}
	ck.maxCount(join(prefix, "components"), width, limit)
}
