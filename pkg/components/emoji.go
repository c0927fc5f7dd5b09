package components

// ComponentEmoji is the reduced emoji reference attached to buttons and
// select options. Custom emojis set ID; standard emojis set only Name.
type ComponentEmoji struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Animated bool   `json:"animated,omitempty"`
}

// EmojiInfo is the full emoji record returned by the Discord API.
type EmojiInfo struct {
	ID            *string        `json:"id"`
	Name          *string        `json:"name"`
	User          map[string]any `json:"user,omitempty"` // opaque user object
	Roles         []string       `json:"roles,omitempty"`
	RequireColons bool           `json:"require_colons,omitempty"`
	Managed       bool           `json:"managed,omitempty"`
	Available     bool           `json:"available,omitempty"`
	Animated      bool           `json:"animated,omitempty"`
}

// Component projects the emoji onto the reference components carry.
func (e EmojiInfo) Component() ComponentEmoji {
	var ce ComponentEmoji
	if e.ID != nil {
		ce.ID = *e.ID
	}
	if e.Name != nil {
		ce.Name = *e.Name
	}
	ce.Animated = e.Animated
	return ce
}

func copyEmoji(e *ComponentEmoji) *ComponentEmoji {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
