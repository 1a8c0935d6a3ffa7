package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/crab-arena/core"
	"github.com/lixenwraith/crab-arena/engine"
)

type cell struct {
	r     rune
	style tcell.Style
}

// fakeCanvas records the last frame drawn
type fakeCanvas struct {
	w, h  int
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas(w, h int) *fakeCanvas {
	return &fakeCanvas{w: w, h: h, cells: make(map[[2]int]cell)}
}

func (c *fakeCanvas) Clear()           { c.cells = make(map[[2]int]cell) }
func (c *fakeCanvas) Size() (int, int) { return c.w, c.h }
func (c *fakeCanvas) Show()            { c.shown++ }

func (c *fakeCanvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[[2]int{x, y}] = cell{r, style}
}

func (c *fakeCanvas) row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		if cl, ok := c.cells[[2]int{x, y}]; ok {
			b.WriteRune(cl.r)
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (c *fakeCanvas) text() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		b.WriteString(c.row(y))
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *fakeCanvas) count(r rune) int {
	n := 0
	for _, cl := range c.cells {
		if cl.r == r {
			n++
		}
	}
	return n
}

func testSnapshot() *engine.Snapshot {
	return &engine.Snapshot{
		Mode:       "duel",
		Round:      2,
		Phase:      "playing",
		HalfExtent: 10,
		Sides: []engine.SideSnapshot{
			{Side: "top", Team: 1, HitPoints: 4, Participating: true, Controller: "ai"},
			{Side: "right", Team: -1},
			{Side: "bottom", Team: 0, HitPoints: 2, Participating: true, Controller: "input"},
			{Side: "left", Team: -1},
		},
		Entities: []engine.EntitySnapshot{
			{Kind: engine.KindBarrier, Side: -1, X: -10, Z: -10, Weight: 1, Size: 1},
			{Kind: engine.KindBarrier, Side: -1, X: 10, Z: -10, Weight: 1, Size: 1},
			{Kind: engine.KindBarrier, Side: -1, X: 10, Z: 10, Weight: 1, Size: 1},
			{Kind: engine.KindBarrier, Side: -1, X: -10, Z: 10, Weight: 1, Size: 1},
			{Kind: engine.KindWall, Side: int8(core.SideRight), X: 10, Weight: 1, Size: 10},
			{Kind: engine.KindWall, Side: int8(core.SideLeft), X: -10, Weight: 1, Size: 10},
			{Kind: engine.KindCrab, Side: int8(core.SideTop), Z: -10, Weight: 1, Size: 1.5},
			{Kind: engine.KindCrab, Side: int8(core.SideBottom), Z: 10, Weight: 1, Size: 1.5},
			{Kind: engine.KindBall, Side: -1, X: 0, Z: 0, Weight: 1, Size: 0.35},
			{Kind: engine.KindBall, Side: -1, X: 3, Z: 3, Weight: 0.05, Size: 0.35},
		},
	}
}

func TestProjectionIsSquareAndCentred(t *testing.T) {
	p := NewProjection(0, 1, 81, 23, 10)

	if p.ScaleX != p.ScaleY*cellAspect {
		t.Errorf("Expected x scale %v, got %v", p.ScaleY*cellAspect, p.ScaleX)
	}
	col, row := p.Cell(0, 0)
	if col != 40 || row != 12 {
		t.Errorf("Expected centre at (40,12), got (%d,%d)", col, row)
	}
	c0, r0 := p.Cell(-11, -11)
	c1, r1 := p.Cell(11, 11)
	if c0 < 0 || r0 < 1 || c1 > 80 || r1 > 23 {
		t.Errorf("Expected arena inside the area, got (%d,%d)-(%d,%d)", c0, r0, c1, r1)
	}
}

func TestRenderArena(t *testing.T) {
	c := newFakeCanvas(80, 24)
	r := NewTerminalRenderer(c)

	r.RenderFrame(testSnapshot(), View{Screen: ScreenPlaying, Watchers: 3})

	if c.shown != 1 {
		t.Errorf("Expected one Show, got %d", c.shown)
	}
	header := c.row(0)
	for _, want := range []string{"duel r2", "top:4", "bottom:2", "watchers:3"} {
		if !strings.Contains(header, want) {
			t.Errorf("Expected header to contain %q, got %q", want, header)
		}
	}
	if strings.Contains(header, "left:") {
		t.Errorf("Expected unused sides hidden, got %q", header)
	}

	if n := c.count('●'); n != 1 {
		t.Errorf("Expected 1 visible ball (the faded one is hidden), got %d", n)
	}
	if n := c.count('O'); n != 4 {
		t.Errorf("Expected 4 barriers, got %d", n)
	}
	if c.count('║') == 0 {
		t.Error("Expected vertical walls on left and right")
	}
	if c.count('█') == 0 {
		t.Error("Expected crab spans")
	}

	p := NewProjection(0, headerRows, 80, 24-headerRows-footerRows, 10)
	col, row := p.Cell(0, 0)
	if got := c.cells[[2]int{col, row}].r; got != '●' {
		t.Errorf("Expected ball at arena centre, got %q", got)
	}
	col, row = p.Cell(0, -10)
	if got := c.cells[[2]int{col, row}]; got.r != '█' || got.style != TeamStyle(1) {
		t.Errorf("Expected team 1 crab on top, got %+v", got)
	}
}

func TestRenderOverlays(t *testing.T) {
	c := newFakeCanvas(80, 24)
	r := NewTerminalRenderer(c)

	snap := testSnapshot()
	snap.Paused = true
	r.RenderFrame(snap, View{Screen: ScreenPlaying})
	if !strings.Contains(c.text(), "PAUSED") {
		t.Error("Expected pause banner")
	}

	snap.Paused = false
	snap.Result = engine.ResultSnapshot{Decided: true, Team: 1}
	r.RenderFrame(snap, View{Screen: ScreenPlaying})
	if !strings.Contains(c.text(), "TEAM 1 WINS") {
		t.Error("Expected winner banner")
	}

	snap.Result = engine.ResultSnapshot{Decided: true, Draw: true}
	r.RenderFrame(snap, View{Screen: ScreenPlaying, Muted: true})
	out := c.text()
	if !strings.Contains(out, "DRAW") || !strings.Contains(out, "[muted]") {
		t.Error("Expected draw banner and mute tag")
	}
}

func TestRenderMenu(t *testing.T) {
	c := newFakeCanvas(80, 24)
	r := NewTerminalRenderer(c)

	r.RenderFrame(nil, View{Screen: ScreenMenu, Modes: []string{"classic", "duel"}, Selected: 1})

	out := c.text()
	if !strings.Contains(out, "CRAB ARENA") || !strings.Contains(out, "> duel <") || !strings.Contains(out, "  classic  ") {
		t.Errorf("Expected menu with duel selected, got:\n%s", out)
	}
}

func TestRenderTooSmall(t *testing.T) {
	c := newFakeCanvas(20, 5)
	NewTerminalRenderer(c).RenderFrame(testSnapshot(), View{Screen: ScreenPlaying})

	if !strings.Contains(c.row(0), "TERMINAL TOO SMALL") {
		t.Errorf("Expected size warning, got %q", c.row(0))
	}
}

func TestRenderOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	// Smoke test against the real screen implementation
	NewTerminalRenderer(screen).RenderFrame(testSnapshot(), View{Screen: ScreenPlaying})
}
