package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		LaneBorder:     "#808080",
		DoneLaneBorder: "#FFFFFF",
		BacklogBorder:  "#4E4E4E",
		ItemBorder:     "#4E4E4E",
		SelectedBorder: "#FFFFFF",
		Title:          "#FFFFFF",
		Subtle:         "#808080",
		Normal:         "#D0D0D0",
		Votes:          "#FFFFFF",
		ErrorFg:        "#FFFFFF",
	}
}
