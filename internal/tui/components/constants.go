package components

const (
	ItemCardHeight       = 4  // border(2) + title + votes line
	itemTitleMaxLength   = 24 // Maximum display length for item title before truncation
	columnBorderOverhead = 3  // top border + bottom padding + bottom border
	headerLines          = 1  // lane name and count
	indicatorLines       = 2  // "▲ more above" and "▼ more below" rows
	MinColumnWidth       = 24
)
