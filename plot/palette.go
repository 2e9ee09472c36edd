package plot

// Scheme returns the default palette.
// https://wpdatatables.com/data-visualization-color-palette/
func Scheme() []string {
	return []string{"#ffb400", "#d2980d", "#a57c1b", "#786028", "#363445", "#48446e", "#5e569b", "#776bcd", "#9080ff"}
}

// Scheme02 returns the viridis palette.
func Scheme02() []string {
	return []string{"#450d54", "#482878", "#3e4a89", "#30688e", "#25828e", "#1f9e89", "#35b779", "#6dcd59", "#b4de2c", "#fde725"}
}

// Scheme03 returns the twenty-color palette.
// https://sashamaps.net/docs/resources/20-colors/
func Scheme03() []string {
	return []string{"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231", "#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe", "#008080", "#e6beff", "#9a6324", "#fffac8", "#800000", "#aaffc3", "#808000", "#ffd8b1", "#000075", "#808080", "#ffffff", "#000000"}
}

// SchemeColor returns the color for a given series index, cycling through the
// palette.
func SchemeColor(palette []string, index int) string {
	if len(palette) == 0 {
		return "#000000"
	}
	return palette[index%len(palette)]
}
