package components

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseComponent decodes one component from its wire JSON. The decoded
// fields go through the matching constructor, so the result satisfies the
// same invariants as a value built in code. Fields that the component type
// does not define are rejected.
func ParseComponent(data []byte) (MessageComponent, error) {
	t, err := peekType(data)
	if err != nil {
		return nil, err
	}
	if t == ActionRowComponent {
		row, err := parseActionRow(data)
		if err != nil {
			return nil, err
		}
		return row, nil
	}
	return parseRowComponent(t, data)
}

// ParseComponents decodes either a JSON array of components or a single
// component object.
func ParseComponents(data []byte) ([]MessageComponent, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		c, err := ParseComponent(data)
		if err != nil {
			return nil, err
		}
		return []MessageComponent{c}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding components: %w", err)
	}
	out := make([]MessageComponent, 0, len(raw))
	for i, item := range raw {
		c, err := ParseComponent(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out = append(out, c)
	}
	return out, nil
}

func peekType(data []byte) (ComponentType, error) {
	var head struct {
		Type *ComponentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return 0, fmt.Errorf("decoding component: %w", err)
	}
	if head.Type == nil {
		return 0, fmt.Errorf("%w: missing type", ErrUnknownComponentType)
	}
	return *head.Type, nil
}

func parseActionRow(data []byte) (ActionRow, error) {
	var row struct {
		Type       ComponentType     `json:"type"`
		Components []json.RawMessage `json:"components"`
	}
	if err := decodeStrict(ActionRowComponent, data, &row); err != nil {
		return ActionRow{}, err
	}
	items := make([]RowComponent, 0, len(row.Components))
	for i, raw := range row.Components {
		field := fmt.Sprintf("components[%d]", i)
		t, err := peekType(raw)
		if err != nil {
			return ActionRow{}, fmt.Errorf("%s: %w", field, err)
		}
		if t == ActionRowComponent {
			return ActionRow{}, invalid(ActionRowComponent, field, "action rows cannot be nested")
		}
		c, err := parseRowComponent(t, raw)
		if err != nil {
			return ActionRow{}, fmt.Errorf("%s: %w", field, err)
		}
		items = append(items, c)
	}
	return NewActionRow(items...)
}

func parseRowComponent(t ComponentType, data []byte) (RowComponent, error) {
	switch t {
	case ButtonComponent:
		return decodeAs(t, data, NewButton)
	case StringSelectMenuComponent:
		return decodeAs(t, data, NewStringSelectMenu)
	case TextInputComponent:
		return decodeAs(t, data, NewTextInput)
	case UserSelectMenuComponent:
		return decodeAs(t, data, NewUserSelectMenu)
	case RoleSelectMenuComponent:
		return decodeAs(t, data, NewRoleSelectMenu)
	case MentionableSelectMenuComponent:
		return decodeAs(t, data, NewMentionableSelectMenu)
	case ChannelSelectMenuComponent:
		return decodeAs(t, data, NewChannelSelectMenu)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownComponentType, int(t))
	}
}

func decodeAs[O any, C RowComponent](t ComponentType, data []byte, build func(O) (C, error)) (RowComponent, error) {
	// type was read by peekType; the option structs do not declare it.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", t, err)
	}
	delete(fields, "type")
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", t, err)
	}

	var opts O
	if err := decodeStrict(t, body, &opts); err != nil {
		return nil, err
	}
	c, err := build(opts)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// decodeStrict decodes data into v and turns a key v does not declare into a
// ConstructionError naming that key.
func decodeStrict(t ComponentType, data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(v)
	if err == nil {
		return nil
	}
	if name, ok := strings.CutPrefix(err.Error(), "json: unknown field "); ok {
		return invalid(t, strings.Trim(name, `"`), "not a field of "+t.String())
	}
	return fmt.Errorf("decoding %s: %w", t, err)
}
