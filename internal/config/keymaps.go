package config

// KeyMappings defines the live board key bindings
type KeyMappings struct {
	PrevLane      string `yaml:"prev_lane"`
	NextLane      string `yaml:"next_lane"`
	PrevItem      string `yaml:"prev_item"`
	NextItem      string `yaml:"next_item"`
	MoveLeft      string `yaml:"move_left"`
	MoveRight     string `yaml:"move_right"`
	MoveBacklog   string `yaml:"move_backlog"`
	ToggleBacklog string `yaml:"toggle_backlog"`
	Refresh       string `yaml:"refresh"`
	ShowHelp      string `yaml:"show_help"`
	Quit          string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevLane:      "h",
		NextLane:      "l",
		PrevItem:      "k",
		NextItem:      "j",
		MoveLeft:      "H",
		MoveRight:     "L",
		MoveBacklog:   "b",
		ToggleBacklog: "B",
		Refresh:       "r",
		ShowHelp:      "?",
		Quit:          "q",
	}
}

func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&k.PrevLane, d.PrevLane)
	fill(&k.NextLane, d.NextLane)
	fill(&k.PrevItem, d.PrevItem)
	fill(&k.NextItem, d.NextItem)
	fill(&k.MoveLeft, d.MoveLeft)
	fill(&k.MoveRight, d.MoveRight)
	fill(&k.MoveBacklog, d.MoveBacklog)
	fill(&k.ToggleBacklog, d.ToggleBacklog)
	fill(&k.Refresh, d.Refresh)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
