// Package render draws published arena snapshots onto a terminal
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
)

// Canvas is the subset of tcell.Screen the renderer draws on
type Canvas interface {
	Clear()
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Screen selects which page is drawn
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenPlaying
)

// View carries the UI state around the snapshot
type View struct {
	Screen   Screen
	Modes    []string // Menu entries
	Selected int
	Muted    bool
	Watchers int // Connected spectators
	Message  string
}

// Minimum usable terminal
const (
	MinWidth  = 40
	MinHeight = 16
)

const (
	headerRows = 1
	footerRows = 1
)

// TerminalRenderer draws snapshots and menus
type TerminalRenderer struct {
	canvas Canvas
}

// NewTerminalRenderer binds the renderer to a canvas, normally a tcell.Screen
func NewTerminalRenderer(canvas Canvas) *TerminalRenderer {
	return &TerminalRenderer{canvas: canvas}
}

// RenderFrame draws one full frame; snap may be nil on the menu
func (r *TerminalRenderer) RenderFrame(snap *engine.Snapshot, view View) {
	r.canvas.Clear()
	defer r.canvas.Show()

	w, h := r.canvas.Size()
	if w < MinWidth || h < MinHeight {
		drawText(r.canvas, 0, 0, "TERMINAL TOO SMALL", styleAlert)
		drawText(r.canvas, 0, 1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), styleDefault)
		return
	}

	if view.Screen == ScreenMenu || snap == nil {
		r.drawMenu(w, h, view)
		return
	}

	proj := NewProjection(0, headerRows, w, h-headerRows-footerRows, snap.HalfExtent)
	r.drawArena(snap, proj)
	r.drawHeader(w, snap, view)
	r.drawFooter(w, h, view)

	switch {
	case snap.Result.Decided:
		r.drawBanner(w, h, resultText(snap.Result), "enter: new round   esc: menu", styleHeader)
	case snap.Paused:
		r.drawBanner(w, h, "PAUSED", "p: resume", styleHeader)
	}
}

func (r *TerminalRenderer) drawMenu(w, h int, view View) {
	title := "CRAB ARENA"
	drawCentered(r.canvas, w, h/2-4, title, styleHeader)
	drawCentered(r.canvas, w, h/2-2, "Select mode:", styleDefault)
	for i, name := range view.Modes {
		line, style := "  "+name+"  ", styleDefault
		if i == view.Selected {
			line, style = "> "+name+" <", styleSelect
		}
		drawCentered(r.canvas, w, h/2+i, line, style)
	}
	drawCentered(r.canvas, w, h/2+len(view.Modes)+1, "arrows + enter, q to quit", styleDim)
	if view.Message != "" {
		drawCentered(r.canvas, w, h-1, view.Message, styleAlert)
	}
}

func (r *TerminalRenderer) drawHeader(w int, snap *engine.Snapshot, view View) {
	x := drawText(r.canvas, 0, 0, fmt.Sprintf("%s r%d ", snap.Mode, snap.Round), styleHeader)
	for _, s := range snap.Sides {
		if !s.Participating {
			continue
		}
		style := TeamStyle(s.Team)
		label := fmt.Sprintf(" %s:%d", s.Side, s.HitPoints)
		if s.Eliminated {
			style = style.Dim(true).StrikeThrough(true)
		}
		if s.Controller == "input" {
			style = style.Underline(true)
		}
		x = drawText(r.canvas, x, 0, label, style)
	}
	if view.Watchers > 0 {
		tag := fmt.Sprintf("watchers:%d", view.Watchers)
		drawText(r.canvas, w-len(tag), 0, tag, styleDim)
	}
}

func (r *TerminalRenderer) drawFooter(w, h int, view View) {
	help := "arrows/ad: move  p: pause  r: restart  m: mute  esc: menu"
	if view.Muted {
		help += "  [muted]"
	}
	if len(help) > w {
		help = help[:w]
	}
	drawText(r.canvas, 0, h-1, help, styleDim)
}

func (r *TerminalRenderer) drawArena(snap *engine.Snapshot, proj Projection) {
	teams := make(map[int8]int, len(snap.Sides))
	for _, s := range snap.Sides {
		if side, err := core.ParseSide(s.Side); err == nil {
			teams[int8(side)] = s.Team
		}
	}

	// Fixtures first so balls stay visible on top
	for _, kind := range []engine.EntityKind{engine.KindWall, engine.KindBarrier, engine.KindCrab, engine.KindBall} {
		for i := range snap.Entities {
			e := &snap.Entities[i]
			if e.Kind != kind {
				continue
			}
			switch kind {
			case engine.KindWall:
				r.drawSpan(proj, e, styleWall, snap.HalfExtent)
			case engine.KindCrab:
				team, ok := teams[e.Side]
				if !ok {
					team = -1
				}
				r.drawSpan(proj, e, TeamStyle(team), snap.HalfExtent)
			case engine.KindBarrier:
				if style, ok := fadeStyle(styleBarrier, e.Weight); ok {
					col, row := proj.Cell(e.X, e.Z)
					r.canvas.SetContent(col, row, 'O', nil, style)
				}
			case engine.KindBall:
				if style, ok := fadeStyle(styleBall, e.Weight); ok {
					col, row := proj.Cell(e.X, e.Z)
					r.canvas.SetContent(col, row, '●', nil, style)
				}
			}
		}
	}
}

// drawSpan draws a crab or wall as a segment of its side's goal line
func (r *TerminalRenderer) drawSpan(proj Projection, e *engine.EntitySnapshot, base tcell.Style, halfExtent float64) {
	style, ok := fadeStyle(base, e.Weight)
	if !ok || e.Side < 0 || e.Side >= int8(core.SideCount) {
		return
	}
	side := core.Side(e.Side)
	tan := side.Tangent()

	glyph := '█'
	if e.Kind == engine.KindWall {
		glyph = '═'
		if tan.X == 0 {
			glyph = '║'
		}
	}

	ax, az := e.X-tan.X*e.Size, e.Z-tan.Z*e.Size
	bx, bz := e.X+tan.X*e.Size, e.Z+tan.Z*e.Size
	c0, r0 := proj.Cell(ax, az)
	c1, r1 := proj.Cell(bx, bz)
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			r.canvas.SetContent(col, row, glyph, nil, style)
		}
	}
}

func (r *TerminalRenderer) drawBanner(w, h int, title, hint string, style tcell.Style) {
	drawCentered(r.canvas, w, h/2-1, " "+title+" ", style.Reverse(true))
	drawCentered(r.canvas, w, h/2+1, hint, styleDim)
}

func resultText(res engine.ResultSnapshot) string {
	if res.Draw {
		return "DRAW"
	}
	return fmt.Sprintf("TEAM %d WINS", res.Team)
}

// drawText writes text from (x, y) and returns the column after it
func drawText(c Canvas, x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		c.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func drawCentered(c Canvas, w, y int, text string, style tcell.Style) {
	drawText(c, (w-len([]rune(text)))/2, y, text, style)
}
