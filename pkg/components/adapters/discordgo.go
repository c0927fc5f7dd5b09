// Package adapters converts component values into the types of third-party
// Discord clients.
package adapters

import (
	"github.com/bwmarrin/discordgo"

	"github.com/Dqrshan/discord-interactions/pkg/components"
)

// ToDiscordgo converts a component into its discordgo equivalent, ready for
// discordgo.MessageSend.Components or an interaction response. It returns nil
// for a nil component and for pointers to component values, which NewActionRow
// and Validate reject as well.
func ToDiscordgo(c components.MessageComponent) discordgo.MessageComponent {
	switch c := c.(type) {
	case components.ActionRow:
		return actionsRow(c)
	case components.Button:
		return discordgo.Button{
			Label:    c.Label(),
			Style:    discordgo.ButtonStyle(c.Style()),
			Disabled: c.Disabled(),
			Emoji:    emoji(c.Emoji()),
			URL:      c.URL(),
			CustomID: c.CustomID(),
		}
	case components.StringSelectMenu:
		menu := selectMenu(discordgo.StringSelectMenu, c.CustomID(), c.Placeholder(), c.MinValues(), c.MaxValues(), c.Disabled())
		for _, o := range c.Options() {
			menu.Options = append(menu.Options, discordgo.SelectMenuOption{
				Label:       o.Label,
				Value:       o.Value,
				Description: o.Description,
				Emoji:       emoji(o.Emoji),
				Default:     o.Default,
			})
		}
		return menu
	case components.UserSelectMenu:
		return selectMenu(discordgo.UserSelectMenu, c.CustomID(), c.Placeholder(), c.MinValues(), c.MaxValues(), c.Disabled())
	case components.RoleSelectMenu:
		return selectMenu(discordgo.RoleSelectMenu, c.CustomID(), c.Placeholder(), c.MinValues(), c.MaxValues(), c.Disabled())
	case components.MentionableSelectMenu:
		return selectMenu(discordgo.MentionableSelectMenu, c.CustomID(), c.Placeholder(), c.MinValues(), c.MaxValues(), c.Disabled())
	case components.ChannelSelectMenu:
		menu := selectMenu(discordgo.ChannelSelectMenu, c.CustomID(), c.Placeholder(), c.MinValues(), c.MaxValues(), c.Disabled())
		for _, ct := range c.ChannelTypes() {
			menu.ChannelTypes = append(menu.ChannelTypes, discordgo.ChannelType(ct))
		}
		return menu
	case components.TextInput:
		input := discordgo.TextInput{
			CustomID:    c.CustomID(),
			Label:       c.Label(),
			Style:       discordgo.TextInputStyle(c.Style()),
			Placeholder: c.Placeholder(),
			Value:       c.Value(),
			Required:    c.Required(),
		}
		if n := c.MinLength(); n != nil {
			input.MinLength = *n
		}
		if n := c.MaxLength(); n != nil {
			input.MaxLength = *n
		}
		return input
	default:
		return nil
	}
}

// Rows converts action rows for use as a message's top-level components.
func Rows(rows ...components.ActionRow) []discordgo.MessageComponent {
	out := make([]discordgo.MessageComponent, 0, len(rows))
	for _, r := range rows {
		out = append(out, actionsRow(r))
	}
	return out
}

func actionsRow(r components.ActionRow) discordgo.ActionsRow {
	items := r.Components()
	row := discordgo.ActionsRow{Components: make([]discordgo.MessageComponent, 0, len(items))}
	for _, c := range items {
		row.Components = append(row.Components, ToDiscordgo(c))
	}
	return row
}

func selectMenu(kind discordgo.SelectMenuType, customID, placeholder string, minValues, maxValues *int, disabled bool) discordgo.SelectMenu {
	menu := discordgo.SelectMenu{
		MenuType:    kind,
		CustomID:    customID,
		Placeholder: placeholder,
		MinValues:   minValues,
		Disabled:    disabled,
	}
	if maxValues != nil {
		menu.MaxValues = *maxValues
	}
	return menu
}

func emoji(e *components.ComponentEmoji) *discordgo.ComponentEmoji {
	if e == nil {
		return nil
	}
	return &discordgo.ComponentEmoji{
		Name:     e.Name,
		ID:       e.ID,
		Animated: e.Animated,
	}
}
