package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset:         "default",
		Accent:         "#874BFD",
		LaneBorder:     "#5F87D7",
		DoneLaneBorder: "#5FD75F",
		BacklogBorder:  "#585858",
		ItemBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		Title:          "#D75FD7",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		Votes:          "#FFD700",
		ErrorFg:        "#FF0000",
	}
}
