// Package huhforms builds the interactive forms used by hito's commands
package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/hito/internal/roadmap"
)

// LaneFormValues is filled in by CreateLaneForm
type LaneFormValues struct {
	Name    string
	Color   string
	IsDone  bool
	Confirm bool
}

// CreateLaneForm creates a huh form for provisioning a custom lane.
// Name and color are validated as they are typed.
func CreateLaneForm(v *LaneFormValues) *huh.Form {
	if v.Color == "" {
		v.Color = "#7D56F4"
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("name").
			Title("Lane Name").
			Placeholder("e.g. Shipped").
			CharLimit(roadmap.MaxLaneNameLength).
			Validate(roadmap.ValidateLaneName).
			Value(&v.Name),

		huh.NewInput().
			Key("color").
			Title("Color (#RRGGBB)").
			Validate(roadmap.ValidateColor).
			Value(&v.Color),

		huh.NewConfirm().
			Key("done").
			Title("Do items in this lane count as done?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.IsDone),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this lane?").
			Affirmative("Yes").
			Negative("No").
			Value(&v.Confirm),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
