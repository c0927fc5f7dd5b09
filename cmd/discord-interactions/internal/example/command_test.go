package example

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dqrshan/discord-interactions/pkg/components"
)

func TestNewExampleCommand(t *testing.T) {
	cmd := NewExampleCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "example", cmd.Use)
	assert.True(t, cmd.HasExample())
	assert.NotNil(t, cmd.RunE)
	assert.NotNil(t, cmd.Flags().Lookup("modal"))
}

func execute(t *testing.T, args ...string) []byte {
	t.Helper()
	cmd := NewExampleCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{}, args...))
	require.NoError(t, cmd.Execute())
	return out.Bytes()
}

func TestExample_MessageIsValid(t *testing.T) {
	list, err := components.ParseComponents(execute(t))
	require.NoError(t, err)
	require.Len(t, list, 3)

	v := components.NewValidator(components.DefaultLimits())
	assert.NoError(t, v.ValidateMessage(list))
}

func TestExample_Modal(t *testing.T) {
	list, err := components.ParseComponents(execute(t, "--modal"))
	require.NoError(t, err)
	require.Len(t, list, 2)

	row, ok := list[1].(components.ActionRow)
	require.True(t, ok)
	input, ok := row.Components()[0].(components.TextInput)
	require.True(t, ok)
	assert.False(t, input.Required())
	assert.Equal(t, components.TextInputParagraph, input.Style())
}
