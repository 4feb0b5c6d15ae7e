// Package colors holds the board color presets
package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent (selection, headers)
	Accent string `yaml:"accent"`

	LaneBorder     string `yaml:"lane_border"`
	DoneLaneBorder string `yaml:"done_lane_border"`
	BacklogBorder  string `yaml:"backlog_border"`
	ItemBorder     string `yaml:"item_border"`
	SelectedBorder string `yaml:"selected_border"`

	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Votes  string `yaml:"votes"`

	ErrorFg string `yaml:"error_fg"`
}

// GetPreset returns a preset color scheme by name, falling back to Default
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	default:
		return Default()
	}
}

// fields lists every color slot so merge and defaulting stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.LaneBorder, &c.DoneLaneBorder, &c.BacklogBorder,
		&c.ItemBorder, &c.SelectedBorder, &c.Title, &c.Subtle, &c.Normal,
		&c.Votes, &c.ErrorFg,
	}
}

// ApplyDefaults fills in missing color values from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset).fields()
	for i, f := range c.fields() {
		if *f == "" {
			*f = *preset[i]
		}
	}
	if c.Preset == "" {
		c.Preset = "default"
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	src := other.fields()
	for i, f := range c.fields() {
		if *src[i] != "" {
			*f = *src[i]
		}
	}
}
