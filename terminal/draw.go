package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"planar/scene"
)

var (
	styleOutline  = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleConn     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePending  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

func (a *App) draw() {
	a.screen.Clear()
	w, h := a.screen.Size()

	model := a.ctrl.Model()

	// Connections under components, matching render z-order.
	for _, conn := range model.Connections() {
		from, to, ok := model.Anchors(conn)
		if !ok {
			continue
		}
		a.drawWorldLine(from, to, '.', styleConn)
	}

	// Pending connection preview from the source toward the last pointer
	// position.
	if id, ok := a.ctrl.PendingSource(); ok {
		if comp, found := model.Get(id); found {
			x, y := comp.Pos()
			wx, wy := a.ctrl.ScreenToWorld(float64(a.lastMouseX), float64(a.lastMouseY))
			a.drawWorldLine(scene.Point{X: x, Y: y}, scene.Point{X: wx, Y: wy}, ':', stylePending)
		}
	}

	for _, comp := range model.Components() {
		style := styleOutline
		if a.ctrl.IsSelected(comp.ID()) {
			style = styleSelected
		}
		a.drawOutline(comp, style)

		if a.ctrl.IsSelected(comp.ID()) {
			if r, ok := comp.(scene.Resizable); ok {
				hp := r.HandlePoint()
				hx, hy := a.ctrl.WorldToScreen(hp.X, hp.Y)
				a.put(int(math.Round(hx)), int(math.Round(hy)), '#', styleSelected)
			}
		}
	}

	a.drawStatus(w, h)
	a.screen.Show()
}

// drawOutline plots the component's world-space polygon edge by edge.
func (a *App) drawOutline(comp scene.Component, style tcell.Style) {
	vertices := comp.Vertices()
	if len(vertices) < 2 {
		x, y := comp.Pos()
		sx, sy := a.ctrl.WorldToScreen(x, y)
		a.put(int(math.Round(sx)), int(math.Round(sy)), '+', style)
		return
	}
	j := len(vertices) - 1
	for i := 0; i < len(vertices); i++ {
		a.drawWorldLine(vertices[j], vertices[i], '*', style)
		j = i
	}
}

// drawWorldLine rasterizes a world-space segment into screen cells.
func (a *App) drawWorldLine(from, to scene.Point, ch rune, style tcell.Style) {
	x1, y1 := a.ctrl.WorldToScreen(from.X, from.Y)
	x2, y2 := a.ctrl.WorldToScreen(to.X, to.Y)

	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)))
	if steps == 0 {
		a.put(int(math.Round(x1)), int(math.Round(y1)), ch, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		a.put(int(math.Round(x1+(x2-x1)*t)), int(math.Round(y1+(y2-y1)*t)), ch, style)
	}
}

func (a *App) put(x, y int, ch rune, style tcell.Style) {
	w, h := a.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h-1 { // bottom row is the status bar
		return
	}
	a.screen.SetContent(x, y, ch, nil, style)
}

func (a *App) drawStatus(w, h int) {
	mode := a.ctrl.Mode().String()
	if a.connectMode {
		mode = "CONNECT"
	}

	dirty := ""
	if a.dirty {
		dirty = " [+]"
	}
	if s := a.ctrl.Status(); s != "" {
		a.message = s
	}

	_, _, zoom := a.ctrl.Viewport()
	line := fmt.Sprintf(" %s%s  zoom %.2f  %s | 1/2/3 insert  c connect  s save  q quit  %s",
		mode, dirty, zoom, a.filename, a.message)

	for x := 0; x < w; x++ {
		ch := ' '
		if x < len(line) {
			ch = rune(line[x])
		}
		a.screen.SetContent(x, h-1, ch, nil, styleStatus)
	}
}
