package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"
)

// ItemFormValues is filled in by CreateItemForm
type ItemFormValues struct {
	Title       string
	Description string
}

// CreateItemForm creates a huh form for submitting a feedback item.
// The form saves on completion.
func CreateItemForm(v *ItemFormValues) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("What should we build?").
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("title cannot be empty")
				}
				return nil
			}).
			Value(&v.Title),

		huh.NewText().
			Key("description").
			Title("Description (optional, markdown)").
			CharLimit(2000).
			Lines(5).
			Value(&v.Description),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithKeyMap(KeyMapWithShiftEnter())
}
