package example

import "github.com/Dqrshan/discord-interactions/pkg/components"

func messageComponents() ([]components.MessageComponent, error) {
	confirm, err := components.NewButton(components.ButtonOptions{
		Style:    components.SuccessButton,
		Label:    "Confirm",
		CustomID: components.NewCustomID("confirm"),
		Emoji:    &components.ComponentEmoji{Name: "✅"},
	})
	if err != nil {
		return nil, err
	}
	cancel, err := components.NewButton(components.ButtonOptions{
		Style:    components.DangerButton,
		Label:    "Cancel",
		CustomID: components.NewCustomID("cancel"),
	})
	if err != nil {
		return nil, err
	}
	docs, err := components.NewButton(components.ButtonOptions{
		Style: components.LinkButton,
		Label: "Docs",
		URL:   "https://discord.com/developers/docs/interactions/message-components",
	})
	if err != nil {
		return nil, err
	}
	buttons, err := components.NewActionRow(confirm, cancel, docs)
	if err != nil {
		return nil, err
	}

	flavour, err := components.NewStringSelectMenu(components.StringSelectMenuOptions{
		SelectMenuOptions: components.SelectMenuOptions{CustomID: "flavour", Placeholder: "Pick a flavour"},
		Options: []components.SelectOption{
			{Label: "Vanilla", Value: "vanilla"},
			{Label: "Chocolate", Value: "chocolate", Default: true},
		},
	})
	if err != nil {
		return nil, err
	}
	flavourRow, err := components.NewActionRow(flavour)
	if err != nil {
		return nil, err
	}

	channel, err := components.NewChannelSelectMenu(components.ChannelSelectMenuOptions{
		SelectMenuOptions: components.SelectMenuOptions{CustomID: "channel", MinValues: components.Ptr(1), MaxValues: components.Ptr(1)},
		ChannelTypes:      []components.ChannelType{components.ChannelTypeGuildText, components.ChannelTypeGuildAnnouncement},
	})
	if err != nil {
		return nil, err
	}
	channelRow, err := components.NewActionRow(channel)
	if err != nil {
		return nil, err
	}

	return []components.MessageComponent{buttons, flavourRow, channelRow}, nil
}

func modalComponents() ([]components.MessageComponent, error) {
	name, err := components.NewTextInput(components.TextInputOptions{
		CustomID:  "name",
		Style:     components.TextInputShort,
		Label:     "Name",
		MaxLength: components.Ptr(32),
	})
	if err != nil {
		return nil, err
	}
	feedback, err := components.NewTextInput(components.TextInputOptions{
		CustomID:    "feedback",
		Style:       components.TextInputParagraph,
		Label:       "Feedback",
		Required:    components.Ptr(false),
		Placeholder: "Anything else?",
	})
	if err != nil {
		return nil, err
	}

	out := make([]components.MessageComponent, 0, 2)
	for _, input := range []components.TextInput{name, feedback} {
		row, err := components.NewActionRow(input)
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
