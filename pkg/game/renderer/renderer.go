// Package renderer holds the markup system, color styles and the
// shared glyph logic the rendering backends build on.
package renderer

import (
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

// Icons for Gloomdelve
const (
	PlayerIcon   = "@"
	IconWall     = "#"
	IconFloor    = "."
	IconDoor     = "+"
	IconStairsUp = "<"
	IconStairsDn = ">"
	IconChest    = "C"
	IconExit     = "E"
	IconEnemy    = "x"
	IconItem     = "?"
	IconGold     = "$"
	IconUnknown  = " "
)

var (
	ColorWall        color.Style
	ColorFloor       color.Style
	ColorItem        color.Style
	ColorEnemy       color.Style
	ColorGold        color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorSubtle      color.Style
	ColorPlayer      color.Style
	ColorTitle       color.Style
	ColorStairs      color.Style

	regexpStringFunctions *regexp.Regexp
)

// InitColors initializes the color styles
func InitColors() {
	ColorWall = color.Style{color.FgGray}
	ColorFloor = color.Style{color.FgDefault}
	ColorItem = color.Style{color.FgGreen, color.OpBold}
	ColorEnemy = color.Style{color.FgRed, color.OpBold}
	ColorGold = color.Style{color.FgYellow, color.OpBold}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
	ColorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorTitle = color.Style{color.FgCyan, color.OpBold}
	ColorStairs = color.Style{color.FgCyan}

	regexpStringFunctions = regexp.MustCompile(`([a-zA-Z_]*){([a-z A-Z0-9_,:!.%-]+)}`)
}

// FormatString formats a string with special markup
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	if regexpStringFunctions == nil {
		InitColors()
	}

	matches := regexpStringFunctions.FindAllStringSubmatch(ret, -1)

	for _, match := range matches {
		function := match[1]
		operand := match[2]

		var val string

		switch function {
		case "GT":
			val = gotext.Get(operand)
		case "ITEM":
			val = ColorItem.Sprint(operand)
		case "ENEMY":
			val = ColorEnemy.Sprint(operand)
		case "GOLD":
			val = ColorGold.Sprint(operand)
		case "TITLE":
			val = ColorTitle.Sprint(operand)
		case "ACTION":
			val = ColorActionShort.Sprint(operand[0:1]) + ColorAction.Sprint(operand[1:])
		default:
			ret = fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
		}

		ret = strings.Replace(ret, match[0], val, -1)
	}

	return ret
}

// PrintString prints a formatted string
func PrintString(msg string, a ...any) {
	fmt.Print(FormatString(msg, a...))
}

// PrintBullet prints a bulleted item
func PrintBullet(txt string) {
	fmt.Printf("- " + FormatString(txt) + "\n")
}

// Clear clears the terminal screen
func Clear() {
	c := exec.Command("clear")
	c.Stdout = os.Stdout
	c.Run()
}
