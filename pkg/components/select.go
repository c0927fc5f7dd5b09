package components

import (
	"encoding/json"
	"fmt"
	"slices"
)

// SelectMenuOptions holds the fields shared by every select menu variant.
type SelectMenuOptions struct {
	CustomID    string `json:"custom_id"`
	Placeholder string `json:"placeholder,omitempty"`
	MinValues   *int   `json:"min_values,omitempty"`
	MaxValues   *int   `json:"max_values,omitempty"`
	Disabled    bool   `json:"disabled,omitempty"`
}

// SelectOption is one choice of a string select menu.
type SelectOption struct {
	Label       string          `json:"label"`
	Value       string          `json:"value"`
	Description string          `json:"description,omitempty"`
	Emoji       *ComponentEmoji `json:"emoji,omitempty"`
	Default     bool            `json:"default,omitempty"`
}

// StringSelectMenuOptions are the fields of a string select menu.
type StringSelectMenuOptions struct {
	SelectMenuOptions
	Options []SelectOption `json:"options"`
}

// ChannelSelectMenuOptions are the fields of a channel select menu.
// An empty ChannelTypes offers every channel kind.
type ChannelSelectMenuOptions struct {
	SelectMenuOptions
	ChannelTypes []ChannelType `json:"channel_types,omitempty"`
}

type selectBase struct {
	opts SelectMenuOptions
}

// newSelectBase checks the fields every select shares. A max_values below 1
// could never hold a selection.
func newSelectBase(t ComponentType, opts SelectMenuOptions) (selectBase, error) {
	if opts.CustomID == "" {
		return selectBase{}, invalid(t, "custom_id", "custom_id is required")
	}
	if opts.MinValues != nil && *opts.MinValues < 0 {
		return selectBase{}, invalid(t, "min_values", "must not be negative")
	}
	if opts.MaxValues != nil && *opts.MaxValues < 1 {
		return selectBase{}, invalid(t, "max_values", "must be at least 1")
	}
	if opts.MinValues != nil && opts.MaxValues != nil && *opts.MinValues > *opts.MaxValues {
		return selectBase{}, invalid(t, "min_values",
			fmt.Sprintf("min_values %d exceeds max_values %d", *opts.MinValues, *opts.MaxValues))
	}
	opts.MinValues = copyInt(opts.MinValues)
	opts.MaxValues = copyInt(opts.MaxValues)
	return selectBase{opts: opts}, nil
}

func (s selectBase) CustomID() string { return s.opts.CustomID }
func (s selectBase) Placeholder() string { return s.opts.Placeholder }
func (s selectBase) MinValues() *int { return copyInt(s.opts.MinValues) }
func (s selectBase) MaxValues() *int { return copyInt(s.opts.MaxValues) }
func (s selectBase) Disabled() bool { return s.opts.Disabled }

func (selectBase) isComponent() {}
func (selectBase) rowComponent() {}

func (s selectBase) marshal(t ComponentType) ([]byte, error) {
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		SelectMenuOptions
	}{t, s.opts})
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// StringSelectMenu lets the user pick from a fixed list of options.
type StringSelectMenu struct {
	selectBase
	options []SelectOption
}

// NewStringSelectMenu validates opts and returns a string select. At least one
// option is required and each needs a label and value.
func NewStringSelectMenu(opts StringSelectMenuOptions) (StringSelectMenu, error) {
	base, err := newSelectBase(StringSelectMenuComponent, opts.SelectMenuOptions)
	if err != nil {
		return StringSelectMenu{}, err
	}
	if len(opts.Options) == 0 {
		return StringSelectMenu{}, invalid(StringSelectMenuComponent, "options", "at least one option is required")
	}
	options := make([]SelectOption, len(opts.Options))
	for i, o := range opts.Options {
		if o.Label == "" {
			return StringSelectMenu{}, invalid(StringSelectMenuComponent, fmt.Sprintf("options[%d].label", i), "label is required")
		}
		if o.Value == "" {
			return StringSelectMenu{}, invalid(StringSelectMenuComponent, fmt.Sprintf("options[%d].value", i), "value is required")
		}
		o.Emoji = copyEmoji(o.Emoji)
		options[i] = o
	}
	return StringSelectMenu{selectBase: base, options: options}, nil
}

func (StringSelectMenu) Type() ComponentType { return StringSelectMenuComponent }

// Options returns a copy of the menu's options.
func (m StringSelectMenu) Options() []SelectOption {
	out := make([]SelectOption, len(m.options))
	for i, o := range m.options {
		o.Emoji = copyEmoji(o.Emoji)
		out[i] = o
	}
	return out
}

func (m StringSelectMenu) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		SelectMenuOptions
		Options []SelectOption `json:"options"`
	}{StringSelectMenuComponent, m.opts, m.options})
}

// UserSelectMenu offers the guild's users.
type UserSelectMenu struct{ selectBase }

// NewUserSelectMenu validates opts and returns a user select.
func NewUserSelectMenu(opts SelectMenuOptions) (UserSelectMenu, error) {
	base, err := newSelectBase(UserSelectMenuComponent, opts)
	if err != nil {
		return UserSelectMenu{}, err
	}
	return UserSelectMenu{base}, nil
}

func (UserSelectMenu) Type() ComponentType { return UserSelectMenuComponent }
func (m UserSelectMenu) MarshalJSON() ([]byte, error) { return m.marshal(UserSelectMenuComponent) }

// RoleSelectMenu offers the guild's roles.
type RoleSelectMenu struct{ selectBase }

// NewRoleSelectMenu validates opts and returns a role select.
func NewRoleSelectMenu(opts SelectMenuOptions) (RoleSelectMenu, error) {
	base, err := newSelectBase(RoleSelectMenuComponent, opts)
	if err != nil {
		return RoleSelectMenu{}, err
	}
	return RoleSelectMenu{base}, nil
}

func (RoleSelectMenu) Type() ComponentType { return RoleSelectMenuComponent }
func (m RoleSelectMenu) MarshalJSON() ([]byte, error) { return m.marshal(RoleSelectMenuComponent) }

// MentionableSelectMenu offers both users and roles.
type MentionableSelectMenu struct{ selectBase }

// NewMentionableSelectMenu validates opts and returns a mentionable select.
func NewMentionableSelectMenu(opts SelectMenuOptions) (MentionableSelectMenu, error) {
	base, err := newSelectBase(MentionableSelectMenuComponent, opts)
	if err != nil {
		return MentionableSelectMenu{}, err
	}
	return MentionableSelectMenu{base}, nil
}

func (MentionableSelectMenu) Type() ComponentType { return MentionableSelectMenuComponent }
func (m MentionableSelectMenu) MarshalJSON() ([]byte, error) {
	return m.marshal(MentionableSelectMenuComponent)
}

// ChannelSelectMenu offers the guild's channels, optionally restricted by type.
type ChannelSelectMenu struct {
	selectBase
	channelTypes []ChannelType
}

// NewChannelSelectMenu validates opts and returns a channel select. Every
// channel type must be known.
func NewChannelSelectMenu(opts ChannelSelectMenuOptions) (ChannelSelectMenu, error) {
	base, err := newSelectBase(ChannelSelectMenuComponent, opts.SelectMenuOptions)
	if err != nil {
		return ChannelSelectMenu{}, err
	}
	for i, ct := range opts.ChannelTypes {
		if !ct.valid() {
			return ChannelSelectMenu{}, invalid(ChannelSelectMenuComponent,
				fmt.Sprintf("channel_types[%d]", i), fmt.Sprintf("unknown channel type %d", int(ct)))
		}
	}
	return ChannelSelectMenu{selectBase: base, channelTypes: slices.Clone(opts.ChannelTypes)}, nil
}

func (ChannelSelectMenu) Type() ComponentType { return ChannelSelectMenuComponent }

// ChannelTypes returns a copy of the channel kinds the menu is limited to.
func (m ChannelSelectMenu) ChannelTypes() []ChannelType {
	return slices.Clone(m.channelTypes)
}

func (m ChannelSelectMenu) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type ComponentType `json:"type"`
		SelectMenuOptions
		ChannelTypes []ChannelType `json:"channel_types,omitempty"`
	}{ChannelSelectMenuComponent, m.opts, m.channelTypes})
}
