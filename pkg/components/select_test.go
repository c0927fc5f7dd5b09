package components

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStringSelectMenu_Options(t *testing.T) {
	menu, err := NewStringSelectMenu(StringSelectMenuOptions{
		SelectMenuOptions: SelectMenuOptions{CustomID: "letters", Placeholder: "Pick one"},
		Options: []SelectOption{
			{Label: "A", Value: "a"},
			{Label: "B", Value: "b", Default: true},
		},
	})
	require.NoError(t, err)

	var wire struct {
		Options []map[string]any `json:"options"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, menu)), &wire))
	require.Len(t, wire.Options, 2)
	assert.Equal(t, "a", wire.Options[0]["value"])
	assert.Equal(t, "b", wire.Options[1]["value"])
	assert.NotContains(t, wire.Options[0], "default")
	assert.Equal(t, true, wire.Options[1]["default"])

	assert.JSONEq(t, `{"type":3,"custom_id":"letters","placeholder":"Pick one","options":[
		{"label":"A","value":"a"},
		{"label":"B","value":"b","default":true}
	]}`, mustJSON(t, menu))
}

func TestNewStringSelectMenu_Rejects(t *testing.T) {
	tests := []struct {
		name string
		opts StringSelectMenuOptions
	}{
		{"no custom id", StringSelectMenuOptions{Options: []SelectOption{{Label: "A", Value: "a"}}}},
		{"no options", StringSelectMenuOptions{SelectMenuOptions: SelectMenuOptions{CustomID: "x"}}},
		{"option without label", StringSelectMenuOptions{
			SelectMenuOptions: SelectMenuOptions{CustomID: "x"},
			Options:           []SelectOption{{Value: "a"}},
		}},
		{"option without value", StringSelectMenuOptions{
			SelectMenuOptions: SelectMenuOptions{CustomID: "x"},
			Options:           []SelectOption{{Label: "A"}},
		}},
		{"min above max", StringSelectMenuOptions{
			SelectMenuOptions: SelectMenuOptions{CustomID: "x", MinValues: Ptr(3), MaxValues: Ptr(2)},
			Options:           []SelectOption{{Label: "A", Value: "a"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStringSelectMenu(tt.opts)
			require.ErrorIs(t, err, ErrInvalidComponent)
		})
	}
}

func TestNewStringSelectMenu_OptionsAreCopied(t *testing.T) {
	opts := []SelectOption{{Label: "A", Value: "a"}}
	menu, err := NewStringSelectMenu(StringSelectMenuOptions{
		SelectMenuOptions: SelectMenuOptions{CustomID: "x"},
		Options:           opts,
	})
	require.NoError(t, err)

	opts[0].Label = "changed"
	assert.Equal(t, "A", menu.Options()[0].Label)
}

func TestSelectMenu_ValueBounds(t *testing.T) {
	_, err := NewUserSelectMenu(SelectMenuOptions{CustomID: "u", MinValues: Ptr(-1)})
	require.ErrorIs(t, err, ErrInvalidComponent)

	_, err = NewRoleSelectMenu(SelectMenuOptions{CustomID: "r", MaxValues: Ptr(0)})
	require.ErrorIs(t, err, ErrInvalidComponent)

	menu, err := NewMentionableSelectMenu(SelectMenuOptions{CustomID: "m", MinValues: Ptr(0), MaxValues: Ptr(3)})
	require.NoError(t, err)
	assert.Equal(t, 0, *menu.MinValues())
	assert.Equal(t, 3, *menu.MaxValues())
	assert.JSONEq(t, `{"type":7,"custom_id":"m","min_values":0,"max_values":3}`, mustJSON(t, menu))
}

func TestUserAndRoleSelectMenu_JSON(t *testing.T) {
	user, err := NewUserSelectMenu(SelectMenuOptions{CustomID: "who", Placeholder: "Someone", Disabled: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":5,"custom_id":"who","placeholder":"Someone","disabled":true}`, mustJSON(t, user))

	role, err := NewRoleSelectMenu(SelectMenuOptions{CustomID: "role"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":6,"custom_id":"role"}`, mustJSON(t, role))

	_, err = NewUserSelectMenu(SelectMenuOptions{})
	require.ErrorIs(t, err, ErrInvalidComponent)
}

func TestNewChannelSelectMenu_ChannelTypesOrder(t *testing.T) {
	menu, err := NewChannelSelectMenu(ChannelSelectMenuOptions{
		SelectMenuOptions: SelectMenuOptions{CustomID: "ch"},
		ChannelTypes:      []ChannelType{ChannelTypeGuildText, ChannelTypeGuildVoice},
	})
	require.NoError(t, err)

	var wire struct {
		ChannelTypes []int `json:"channel_types"`
	}
	require.NoError(t, json.Unmarshal([]byte(mustJSON(t, menu)), &wire))
	assert.Equal(t, []int{0, 2}, wire.ChannelTypes)
	assert.Equal(t, []ChannelType{ChannelTypeGuildText, ChannelTypeGuildVoice}, menu.ChannelTypes())
}

func TestNewChannelSelectMenu_UnknownChannelType(t *testing.T) {
	_, err := NewChannelSelectMenu(ChannelSelectMenuOptions{
		SelectMenuOptions: SelectMenuOptions{CustomID: "ch"},
		ChannelTypes:      []ChannelType{ChannelType(11)},
	})
	require.ErrorIs(t, err, ErrInvalidComponent)
}

func TestNewChannelSelectMenu_NoChannelTypes(t *testing.T) {
	menu, err := NewChannelSelectMenu(ChannelSelectMenuOptions{SelectMenuOptions: SelectMenuOptions{CustomID: "ch"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":8,"custom_id":"ch"}`, mustJSON(t, menu))
}
