package colors

// Dragon returns a warm, muted scheme after kanagawa-dragon
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset:         "dragon",
		Accent:         "#C4746E",
		LaneBorder:     "#8BA4B0",
		DoneLaneBorder: "#87A987",
		BacklogBorder:  "#625E5A",
		ItemBorder:     "#625E5A",
		SelectedBorder: "#C4B28A",
		Title:          "#C4B28A",
		Subtle:         "#737C73",
		Normal:         "#C5C9C5",
		Votes:          "#C4B28A",
		ErrorFg:        "#C4746E",
	}
}
