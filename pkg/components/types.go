// Package components provides typed, immutable values for Discord message
// components (buttons, select menus, text inputs and action rows).
//
// Every variant is built through its constructor, which stamps the component
// type and rejects field combinations Discord would refuse. Values marshal to
// the exact JSON shape the Discord API expects.
//
// See https://discord.com/developers/docs/interactions/message-components
package components

import "fmt"

// ComponentType is the integer discriminant carried in the "type" field.
type ComponentType int

const (
	ActionRowComponent             ComponentType = 1
	ButtonComponent                ComponentType = 2
	StringSelectMenuComponent      ComponentType = 3
	TextInputComponent             ComponentType = 4
	UserSelectMenuComponent        ComponentType = 5
	RoleSelectMenuComponent        ComponentType = 6
	MentionableSelectMenuComponent ComponentType = 7
	ChannelSelectMenuComponent     ComponentType = 8
)

func (t ComponentType) String() string {
	switch t {
	case ActionRowComponent:
		return "action_row"
	case ButtonComponent:
		return "button"
	case StringSelectMenuComponent:
		return "string_select"
	case TextInputComponent:
		return "text_input"
	case UserSelectMenuComponent:
		return "user_select"
	case RoleSelectMenuComponent:
		return "role_select"
	case MentionableSelectMenuComponent:
		return "mentionable_select"
	case ChannelSelectMenuComponent:
		return "channel_select"
	default:
		return fmt.Sprintf("component_type(%d)", int(t))
	}
}

// ButtonStyle controls how a button renders and whether it carries a URL.
type ButtonStyle int

const (
	PrimaryButton   ButtonStyle = 1
	SecondaryButton ButtonStyle = 2
	SuccessButton   ButtonStyle = 3
	DangerButton    ButtonStyle = 4
	LinkButton      ButtonStyle = 5
)

func (s ButtonStyle) valid() bool {
	return s >= PrimaryButton && s <= LinkButton
}

func (s ButtonStyle) String() string {
	switch s {
	case PrimaryButton:
		return "primary"
	case SecondaryButton:
		return "secondary"
	case SuccessButton:
		return "success"
	case DangerButton:
		return "danger"
	case LinkButton:
		return "link"
	default:
		return fmt.Sprintf("button_style(%d)", int(s))
	}
}

// TextInputStyle selects a single-line or multi-line text input.
type TextInputStyle int

const (
	TextInputShort     TextInputStyle = 1
	TextInputParagraph TextInputStyle = 2
)

func (s TextInputStyle) valid() bool {
	return s == TextInputShort || s == TextInputParagraph
}

func (s TextInputStyle) String() string {
	switch s {
	case TextInputShort:
		return "short"
	case TextInputParagraph:
		return "paragraph"
	default:
		return fmt.Sprintf("text_input_style(%d)", int(s))
	}
}

// ChannelType restricts which channels a channel select menu offers.
// Only the subset relevant to select menus is defined.
type ChannelType int

const (
	ChannelTypeGuildText         ChannelType = 0
	ChannelTypeDM                ChannelType = 1
	ChannelTypeGuildVoice        ChannelType = 2
	ChannelTypeGroupDM           ChannelType = 3
	ChannelTypeGuildCategory     ChannelType = 4
	ChannelTypeGuildAnnouncement ChannelType = 5
	ChannelTypeGuildStore        ChannelType = 6
)

func (c ChannelType) valid() bool {
	return c >= ChannelTypeGuildText && c <= ChannelTypeGuildStore
}

func (c ChannelType) String() string {
	switch c {
	case ChannelTypeGuildText:
		return "guild_text"
	case ChannelTypeDM:
		return "dm"
	case ChannelTypeGuildVoice:
		return "guild_voice"
	case ChannelTypeGroupDM:
		return "group_dm"
	case ChannelTypeGuildCategory:
		return "guild_category"
	case ChannelTypeGuildAnnouncement:
		return "guild_announcement"
	case ChannelTypeGuildStore:
		return "guild_store"
	default:
		return fmt.Sprintf("channel_type(%d)", int(c))
	}
}

// Ptr returns a pointer to v. Handy for optional numeric and boolean fields
// where the zero value is meaningful, e.g. MinValues: components.Ptr(0).
func Ptr[T any](v T) *T {
	return &v
}
