package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseComponent_RoundTrip(t *testing.T) {
	payload := `{"type":1,"components":[
		{"type":2,"style":1,"label":"Go","custom_id":"go"},
		{"type":2,"style":5,"label":"Docs","url":"https://discord.com"}
	]}`

	c, err := ParseComponent([]byte(payload))
	require.NoError(t, err)

	row, ok := c.(ActionRow)
	require.True(t, ok, "expected ActionRow, got %T", c)
	require.Len(t, row.Components(), 2)
	assert.JSONEq(t, payload, mustJSON(t, row))
}

func TestParseComponent_AllVariants(t *testing.T) {
	tests := []struct {
		payload string
		want    ComponentType
	}{
		{`{"type":3,"custom_id":"s","options":[{"label":"A","value":"a","default":true}]}`, StringSelectMenuComponent},
		{`{"type":4,"custom_id":"t","style":2,"label":"Bio","max_length":100}`, TextInputComponent},
		{`{"type":5,"custom_id":"u"}`, UserSelectMenuComponent},
		{`{"type":6,"custom_id":"r","placeholder":"Role"}`, RoleSelectMenuComponent},
		{`{"type":7,"custom_id":"m","min_values":0,"max_values":2}`, MentionableSelectMenuComponent},
		{`{"type":8,"custom_id":"c","channel_types":[0,2]}`, ChannelSelectMenuComponent},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			c, err := ParseComponent([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Type())
			assert.JSONEq(t, tt.payload, mustJSON(t, c))
		})
	}
}

func TestParseComponent_NestedRowRejected(t *testing.T) {
	_, err := ParseComponent([]byte(`{"type":1,"components":[{"type":1,"components":[]}]}`))
	require.ErrorIs(t, err, ErrInvalidComponent)

	var ce *ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "components[0]", ce.Field)
}

func TestParseComponent_InvalidFieldsRejected(t *testing.T) {
	_, err := ParseComponent([]byte(`{"type":2,"style":5,"label":"Docs"}`))
	require.ErrorIs(t, err, ErrInvalidComponent)

	_, err = ParseComponent([]byte(`{"type":1,"components":[{"type":2,"style":1,"label":"x"}]}`))
	require.ErrorIs(t, err, ErrInvalidComponent)
	assert.True(t, strings.HasPrefix(err.Error(), "components[0]: "))
}

func TestParseComponent_ForeignFieldsRejected(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{"user select with options", `{"type":5,"custom_id":"u","options":[{"label":"A","value":"a"}]}`, "options"},
		{"user select with channel types", `{"type":5,"custom_id":"u","channel_types":[0]}`, "channel_types"},
		{"button with options", `{"type":2,"style":1,"label":"Go","custom_id":"go","options":[]}`, "options"},
		{"string select with channel types", `{"type":3,"custom_id":"s","options":[{"label":"A","value":"a"}],"channel_types":[0]}`, "channel_types"},
		{"channel select with options", `{"type":8,"custom_id":"c","options":[]}`, "options"},
		{"text input with url", `{"type":4,"custom_id":"t","style":1,"label":"Name","url":"https://x.y"}`, "url"},
		{"row with label", `{"type":1,"label":"x","components":[]}`, "label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseComponent([]byte(tt.payload))
			require.ErrorIs(t, err, ErrInvalidComponent)

			var ce *ConstructionError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}

	_, err := ParseComponent([]byte(`{"type":1,"components":[{"type":6,"custom_id":"r","options":[]}]}`))
	require.ErrorIs(t, err, ErrInvalidComponent)
	assert.True(t, strings.HasPrefix(err.Error(), "components[0]: "))
}

func TestParseComponent_UnknownType(t *testing.T) {
	_, err := ParseComponent([]byte(`{"type":99}`))
	require.ErrorIs(t, err, ErrUnknownComponentType)

	_, err = ParseComponent([]byte(`{"custom_id":"x"}`))
	require.ErrorIs(t, err, ErrUnknownComponentType)
}

func TestParseComponent_Malformed(t *testing.T) {
	_, err := ParseComponent([]byte(`{"type":`))
	require.Error(t, err)

	_, err = ParseComponent([]byte(`{"type":2,"style":"big"}`))
	require.Error(t, err)
}

func TestParseComponents(t *testing.T) {
	list, err := ParseComponents([]byte(`  [
		{"type":1,"components":[{"type":5,"custom_id":"u"}]},
		{"type":1,"components":[{"type":2,"style":4,"label":"Delete","custom_id":"del"}]}
	]`))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ActionRowComponent, list[0].Type())

	single, err := ParseComponents([]byte(`{"type":5,"custom_id":"u"}`))
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, UserSelectMenuComponent, single[0].Type())

	_, err = ParseComponents([]byte(`[{"type":5}]`))
	require.ErrorIs(t, err, ErrInvalidComponent)
	assert.True(t, strings.HasPrefix(err.Error(), "[0]: "))
}

func TestNewCustomID(t *testing.T) {
	id := NewCustomID("vote")
	assert.True(t, strings.HasPrefix(id, "vote:"))
	assert.Len(t, id, len("vote:")+36)
	assert.NotEqual(t, id, NewCustomID("vote"))

	assert.Len(t, NewCustomID(""), 36)
}
