// Package terminal hosts the planar editor in a tcell screen. It is the
// external collaborator side of the controller contract: it decodes
// device events into world-space controller calls and draws a
// character-cell projection of the scene.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"planar/codec"
	"planar/config"
	"planar/controller"
	"planar/scene"
)

// App runs one interactive editing session.
type App struct {
	screen   tcell.Screen
	ctrl     *controller.Controller
	cfg      *config.Config
	filename string

	connectMode bool
	dirty       bool
	message     string

	// Previous mouse button mask, for press/release edge detection.
	lastButtons tcell.ButtonMask
	// Last mouse position, for middle-drag panning.
	lastMouseX, lastMouseY int
}

// Run opens the editor on a scene file. A missing file starts an empty
// scene that will be created on save.
func Run(filename string, cfg *config.Config) error {
	reg := scene.DefaultRegistry()

	// A missing or unreadable file starts an empty scene; the bad file is
	// only overwritten when the user saves.
	model := scene.NewModel()
	if filename != "" {
		if loaded, report, err := codec.Load(filename, reg); err == nil {
			model = loaded
			if !report.Clean() {
				defer reportDropped(report)
			}
		}
	}

	ctrl := controller.New(model, reg, controller.Options{
		HandleTolerance: cfg.Editor.HandleTolerance,
		MinSize:         cfg.Editor.MinSize,
		ScaleFloor:      cfg.Editor.ScaleFloor,
		ScaleCeiling:    cfg.Editor.ScaleCeiling,
		ZoomMin:         cfg.View.ZoomMin,
		ZoomMax:         cfg.View.ZoomMax,
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init terminal: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault)

	app := &App{screen: screen, ctrl: ctrl, cfg: cfg, filename: filename}
	return app.loop()
}

func reportDropped(report *codec.Report) {
	for _, d := range report.Components {
		fmt.Printf("skipped component %d: %s\n", d.Index, d.Reason)
	}
	for _, d := range report.Connections {
		fmt.Printf("skipped connection %d: %s\n", d.Index, d.Reason)
	}
}

func (a *App) loop() error {
	for {
		a.draw()
		switch ev := a.screen.PollEvent().(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if quit := a.handleKey(ev); quit {
				return nil
			}
		case *tcell.EventMouse:
			a.handleMouse(ev)
		}
	}
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.connectMode {
			a.ctrl.CancelConnection()
			a.connectMode = false
		} else {
			a.ctrl.DeselectAll()
		}
	case tcell.KeyCtrlC:
		return true
	case tcell.KeyDelete, tcell.KeyBackspace2:
		if a.ctrl.DeleteSelected() > 0 {
			a.dirty = true
		}
	case tcell.KeyUp:
		a.ctrl.Pan(0, 2)
	case tcell.KeyDown:
		a.ctrl.Pan(0, -2)
	case tcell.KeyLeft:
		a.ctrl.Pan(4, 0)
	case tcell.KeyRight:
		a.ctrl.Pan(-4, 0)
	case tcell.KeyRune:
		return a.handleRune(ev.Rune())
	}
	return false
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return true
	case 's':
		a.save()
	case 'c':
		a.connectMode = !a.connectMode
		if !a.connectMode {
			a.ctrl.CancelConnection()
		}
	case 'd':
		if a.ctrl.DeleteSelected() > 0 {
			a.dirty = true
		}
	case '+', '=':
		a.ctrl.ScaleSelected(a.cfg.Editor.ScaleStep)
		a.dirty = true
	case '-':
		a.ctrl.ScaleSelected(-a.cfg.Editor.ScaleStep)
		a.dirty = true
	case 'r':
		a.ctrl.RotateSelected(a.cfg.Editor.RotateStep)
		a.dirty = true
	case '0':
		a.ctrl.ResetViewport()
	case '1':
		a.insert(scene.TypeCircle)
	case '2':
		a.insert(scene.TypeRectangle)
	case '3':
		a.insert(scene.TypeTrapezoid)
	}
	return false
}

func (a *App) insert(tag string) {
	w, h := a.screen.Size()
	cx, cy := a.ctrl.ScreenToWorld(float64(w)/2, float64(h)/2)
	if _, err := a.ctrl.InsertAtLastClick(tag, cx, cy); err == nil {
		a.dirty = true
	}
}

func (a *App) save() {
	if a.filename == "" {
		a.message = "no filename; start the editor with one"
		return
	}
	if err := codec.Save(a.filename, a.ctrl.Model()); err != nil {
		a.message = fmt.Sprintf("save failed: %v", err)
		return
	}
	a.dirty = false
	a.message = fmt.Sprintf("saved %s", a.filename)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	sx, sy := ev.Position()
	buttons := ev.Buttons()
	wx, wy := a.ctrl.ScreenToWorld(float64(sx), float64(sy))

	pressed := buttons &^ a.lastButtons
	released := a.lastButtons &^ buttons

	switch {
	case buttons&tcell.WheelUp != 0:
		a.ctrl.Zoom(a.cfg.View.ZoomStep, float64(sx), float64(sy))
	case buttons&tcell.WheelDown != 0:
		a.ctrl.Zoom(1/a.cfg.View.ZoomStep, float64(sx), float64(sy))

	case pressed&tcell.Button1 != 0:
		if a.connectMode {
			if _, ok := a.ctrl.PendingSource(); ok {
				if _, err := a.ctrl.CompleteConnectionAt(wx, wy); err == nil {
					a.dirty = true
				}
			} else {
				a.ctrl.StartConnectionAt(wx, wy)
			}
		} else if !a.ctrl.StartResize(wx, wy) && !a.ctrl.StartDrag(wx, wy) {
			a.ctrl.DeselectAll()
		}

	case released&tcell.Button1 != 0:
		a.ctrl.StopResize()
		a.ctrl.StopDrag()

	case buttons&tcell.Button3 != 0:
		if a.lastButtons&tcell.Button3 != 0 {
			a.ctrl.Pan(float64(sx-a.lastMouseX), float64(sy-a.lastMouseY))
		}

	default:
		// Motion with Button1 held arrives with an unchanged mask.
		if a.ctrl.IsResizing() {
			a.ctrl.UpdateResize(wx, wy)
			a.dirty = true
		} else if a.ctrl.IsDragging() {
			a.ctrl.UpdateDrag(wx, wy)
			a.dirty = true
		}
	}

	a.lastButtons = buttons
	a.lastMouseX, a.lastMouseY = sx, sy
}
