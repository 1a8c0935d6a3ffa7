package render

import "github.com/gdamore/tcell/v2"

// Team colours cycle for teams beyond the palette
var teamColors = []tcell.Color{
	tcell.ColorAqua,
	tcell.ColorOrange,
	tcell.ColorLime,
	tcell.ColorFuchsia,
}

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleHeader  = styleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim     = styleDefault.Foreground(tcell.ColorGray)
	styleBall    = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBarrier = styleDefault.Foreground(tcell.ColorSilver)
	styleWall    = styleDefault.Foreground(tcell.ColorSilver)
	styleAlert   = styleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSelect  = styleDefault.Reverse(true)
)

// TeamStyle returns the foreground style for team; negative teams are neutral
func TeamStyle(team int) tcell.Style {
	if team < 0 {
		return styleWall
	}
	return styleDefault.Foreground(teamColors[team%len(teamColors)])
}

// fadeStyle dims entities that are fading; near-invisible ones are skipped
func fadeStyle(base tcell.Style, weight float64) (tcell.Style, bool) {
	switch {
	case weight < 0.15:
		return base, false
	case weight < 0.6:
		return base.Dim(true), true
	default:
		return base, true
	}
}
