package filescope

import (
	"path"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var extColors = map[string]tcell.Color{
	"go":    tcell.ColorAqua,
	"py":    tcell.ColorLightGreen,
	"rs":    tcell.ColorOrange,
	"js":    tcell.ColorYellow,
	"ts":    tcell.ColorDeepSkyBlue,
	"sh":    tcell.ColorGreen,
	"sql":   tcell.ColorSpringGreen,
	"html":  tcell.ColorOrangeRed,
	"css":   tcell.ColorViolet,
	"json":  tcell.ColorGold,
	"yaml":  tcell.ColorLightYellow,
	"yml":   tcell.ColorLightYellow,
	"xml":   tcell.ColorLightYellow,
	"md":    tcell.ColorBisque,
	"txt":   tcell.ColorWhite,
	"csv":   tcell.ColorLightGreen,
	"tsv":   tcell.ColorLightGreen,
	"ipynb": tcell.ColorGold,
	"jpg":   tcell.ColorMediumPurple,
	"jpeg":  tcell.ColorMediumPurple,
	"png":   tcell.ColorMediumPurple,
	"gif":   tcell.ColorMediumPurple,
	"log":   tcell.ColorRosyBrown,
}

// colorByFileName picks the tree color for a file by its extension.
func colorByFileName(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if color, ok := extColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}
