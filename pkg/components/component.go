package components

import (
	"encoding/json"
	"fmt"
	"slices"
)

// MessageComponent is any component that can be attached to a message or
// modal. The set of implementations is closed to this package.
type MessageComponent interface {
	json.Marshaler
	Type() ComponentType
	isComponent()
}

// RowComponent is a component that may sit inside an ActionRow. ActionRow
// itself does not implement it, so rows cannot nest.
type RowComponent interface {
	MessageComponent
	rowComponent()
}

// ButtonOptions holds the fields of a button. The component type is implied.
type ButtonOptions struct {
	Style    ButtonStyle     `json:"style"`
	Label    string          `json:"label"`
	Emoji    *ComponentEmoji `json:"emoji,omitempty"`
	CustomID string          `json:"custom_id,omitempty"`
	URL      string          `json:"url,omitempty"`
	Disabled bool            `json:"disabled,omitempty"`
}

// Button is a clickable message component. Build it with NewButton.
type Button struct {
	opts ButtonOptions
}

// NewButton validates opts and returns a Button. Link buttons must carry a
// URL and no custom ID; every other style must carry a custom ID and no URL.
func NewButton(opts ButtonOptions) (Button, error) {
	if !opts.Style.valid() {
		return Button{}, invalid(ButtonComponent, "style", fmt.Sprintf("unknown style %d", int(opts.Style)))
	}
	if opts.Label == "" {
		return Button{}, invalid(ButtonComponent, "label", "label is required")
	}
	if opts.Style == LinkButton {
		if opts.URL == "" {
			return Button{}, invalid(ButtonComponent, "url", "link buttons require a url")
		}
		if opts.CustomID != "" {
			return Button{}, invalid(ButtonComponent, "custom_id", "link buttons cannot have a custom_id")
		}
	} else {
		if opts.CustomID == "" {
			return Button{}, invalid(ButtonComponent, "custom_id", opts.Style.String()+" buttons require a custom_id")
		}
		if opts.URL != "" {
			return Button{}, invalid(ButtonComponent, "url", "only link buttons can have a url")
		}
	}
	opts.Emoji = copyEmoji(opts.Emoji)
	return Button{opts: opts}, nil
}

func (Button) Type() ComponentType { return ButtonComponent }
func (Button) isComponent() {}
func (Button) rowComponent() {}

func (b Button) Style() ButtonStyle { return b.opts.Style }
func (b Button) Label() string { return b.opts.Label }
func (b Button) Emoji() *ComponentEmoji { return copyEmoji(b.opts.Emoji) }
func (b Button) CustomID() string { return b.opts.CustomID }
func (b Button) URL() string { return b.opts.URL }
func (b Button) Disabled() bool { return b.opts.Disabled }

func (b Button) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		ButtonOptions
	}{ButtonComponent, b.opts})
}

// concrete reports whether c is one of the component values defined here.
// Pointers to them satisfy the interfaces as well, so they are checked apart.
func concrete(c MessageComponent) bool {
	switch c.(type) {
	case ActionRow, Button, StringSelectMenu, UserSelectMenu, RoleSelectMenu,
		MentionableSelectMenu, ChannelSelectMenu, TextInput:
		return true
	default:
		return false
	}
}

// ActionRow is a horizontal container of non-row components.
type ActionRow struct {
	components []RowComponent
}

// NewActionRow returns a row holding components in order. Only the values
// returned by this package's constructors are accepted, not pointers to them.
// Row width is not checked here; see Validate.
func NewActionRow(components ...RowComponent) (ActionRow, error) {
	for i, c := range components {
		field := fmt.Sprintf("components[%d]", i)
		if c == nil {
			return ActionRow{}, invalid(ActionRowComponent, field, "component is nil")
		}
		if !concrete(c) {
			return ActionRow{}, invalid(ActionRowComponent, field, fmt.Sprintf("unsupported component %T", c))
		}
	}
	return ActionRow{components: slices.Clone(components)}, nil
}

func (ActionRow) Type() ComponentType { return ActionRowComponent }
func (ActionRow) isComponent() {}

// Components returns a copy of the row's components.
func (r ActionRow) Components() []RowComponent {
	return slices.Clone(r.components)
}

func (r ActionRow) MarshalJSON() ([]byte, error) {
	items := r.components
	if items == nil {
		items = []RowComponent{}
	}
	return json.Marshal(struct {
		Type       ComponentType  `json:"type"`
		Components []RowComponent `json:"components"`
	}{ActionRowComponent, items})
}
