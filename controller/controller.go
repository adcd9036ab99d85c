// Package controller implements the session logic between host input
// events and the scene model: selection, dragging, resizing, two-step
// connection building, and the viewport transform. All coordinates
// arriving here are world space; the host converts device coordinates
// with ScreenToWorld first.
package controller

import (
	"errors"
	"fmt"
	"sort"

	"planar/geometry"
	"planar/scene"
)

// Options a session is tuned with. Zero values fall back to defaults.
type Options struct {
	HandleTolerance float64 // pick radius around a resize handle, world units at zoom 1
	MinSize         float64 // smallest size a resize can shrink to
	ScaleFloor      float64 // smallest scale ScaleSelected can reach
	ScaleCeiling    float64 // largest scale ScaleSelected can reach
	ZoomMin         float64
	ZoomMax         float64
}

// DefaultOptions returns the stock tuning constants.
func DefaultOptions() Options {
	return Options{
		HandleTolerance: 8,
		MinSize:         4,
		ScaleFloor:      0.05,
		ScaleCeiling:    20,
		ZoomMin:         0.1,
		ZoomMax:         10,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.HandleTolerance <= 0 {
		o.HandleTolerance = def.HandleTolerance
	}
	if o.MinSize <= 0 {
		o.MinSize = def.MinSize
	}
	if o.ScaleFloor <= 0 {
		o.ScaleFloor = def.ScaleFloor
	}
	if o.ScaleCeiling <= 0 {
		o.ScaleCeiling = def.ScaleCeiling
	}
	if o.ZoomMin <= 0 {
		o.ZoomMin = def.ZoomMin
	}
	if o.ZoomMax <= 0 {
		o.ZoomMax = def.ZoomMax
	}
	return o
}

// dragState tracks the component being dragged and the grab offset
// between the pointer and the component center, so the grab point is
// preserved through the move.
type dragState struct {
	id               int
	offsetX, offsetY float64
}

// resizeState tracks the component whose handle is being dragged.
type resizeState struct {
	id int
}

// Controller is the stateful ViewModel for one editing session. It is
// the only component that mutates the model in response to user input.
// Owned exclusively by the single session loop; no locking.
type Controller struct {
	model    *scene.Model
	registry *scene.Registry
	opts     Options

	mode     Mode
	selected map[int]bool
	drag     dragState
	resize   resizeState
	pending  int // pending connection source id, -1 for none

	panX, panY float64
	zoom       float64

	lastClickX, lastClickY float64
	hasLastClick           bool

	status string
}

// New creates a controller over a model and registry.
func New(model *scene.Model, registry *scene.Registry, opts Options) *Controller {
	return &Controller{
		model:    model,
		registry: registry,
		opts:     opts.withDefaults(),
		mode:     ModeIdle,
		selected: make(map[int]bool),
		pending:  -1,
		zoom:     1,
	}
}

// Model returns the scene model, for the renderer's read-only queries.
func (c *Controller) Model() *scene.Model { return c.model }

// Registry returns the component registry.
func (c *Controller) Registry() *scene.Registry { return c.registry }

// Mode returns the current interaction mode.
func (c *Controller) Mode() Mode { return c.mode }

// SetModel swaps in a freshly loaded model and resets all session state.
// During a background load the host keeps delivering only Idle-safe
// events until the swap completes.
func (c *Controller) SetModel(m *scene.Model) {
	c.model = m
	c.mode = ModeIdle
	c.selected = make(map[int]bool)
	c.drag = dragState{}
	c.resize = resizeState{}
	c.pending = -1
	c.hasLastClick = false
}

// Status returns and clears the latest status message.
func (c *Controller) Status() string {
	s := c.status
	c.status = ""
	return s
}

// setStatus records feedback for the host's status line.
func (c *Controller) setStatus(format string, args ...any) {
	c.status = fmt.Sprintf(format, args...)
}

// --- Selection ---

// SelectAt selects the topmost component at the point, replacing the
// prior selection. A miss clears the selection.
func (c *Controller) SelectAt(x, y float64) (scene.Component, bool) {
	c.recordClick(x, y)
	hit, ok := c.model.FindAt(x, y)
	c.clearSelection()
	if !ok {
		return nil, false
	}
	c.selected[hit.ID()] = true
	hit.SetSelected(true)
	return hit, true
}

// SelectedIDs returns the selected component ids in ascending order.
func (c *Controller) SelectedIDs() []int {
	ids := make([]int, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// IsSelected reports whether a component is in the selection set.
func (c *Controller) IsSelected(id int) bool { return c.selected[id] }

// DeselectAll clears the selection set.
func (c *Controller) DeselectAll() {
	c.clearSelection()
}

func (c *Controller) clearSelection() {
	for id := range c.selected {
		if comp, ok := c.model.Get(id); ok {
			comp.SetSelected(false)
		}
		delete(c.selected, id)
	}
}

// --- Dragging ---

// StartDrag begins dragging the component under the pointer, selecting
// it and recording the grab offset. Returns false on a miss or when
// another gesture is active.
func (c *Controller) StartDrag(x, y float64) bool {
	if c.mode != ModeIdle {
		return false
	}
	hit, ok := c.SelectAt(x, y)
	if !ok {
		return false
	}
	cx, cy := hit.Pos()
	c.drag = dragState{id: hit.ID(), offsetX: cx - x, offsetY: cy - y}
	c.mode = ModeDragging
	return true
}

// UpdateDrag moves the dragged component so the grab point stays under
// the pointer. Ignored outside ModeDragging.
func (c *Controller) UpdateDrag(x, y float64) {
	if c.mode != ModeDragging {
		return
	}
	if comp, ok := c.model.Get(c.drag.id); ok {
		comp.SetPos(x+c.drag.offsetX, y+c.drag.offsetY)
	}
}

// StopDrag ends the drag. Idempotent.
func (c *Controller) StopDrag() {
	if c.mode != ModeDragging {
		return
	}
	c.drag = dragState{}
	c.mode = ModeIdle
}

// IsDragging reports whether a drag is in progress.
func (c *Controller) IsDragging() bool { return c.mode == ModeDragging }

// --- Resizing ---

// StartResize begins resizing if the pointer falls within the handle
// tolerance of a selected, resizable component. Checked topmost-first.
func (c *Controller) StartResize(x, y float64) bool {
	if c.mode != ModeIdle {
		return false
	}
	hit, ok := c.resizeTargetAt(x, y)
	if !ok {
		return false
	}
	c.resize = resizeState{id: hit.ID()}
	c.mode = ModeResizing
	return true
}

// ResizeTargetAt returns the component whose resize handle is under the
// pointer, if any. Exposed so the host can switch cursors on hover.
func (c *Controller) ResizeTargetAt(x, y float64) (scene.Component, bool) {
	return c.resizeTargetAt(x, y)
}

func (c *Controller) resizeTargetAt(x, y float64) (scene.Component, bool) {
	comps := c.model.Components()
	for i := len(comps) - 1; i >= 0; i-- {
		comp := comps[i]
		if !c.selected[comp.ID()] {
			continue
		}
		r, ok := comp.(scene.Resizable)
		if !ok {
			continue
		}
		h := r.HandlePoint()
		if geometry.Distance(x, y, h.X, h.Y) <= c.opts.HandleTolerance/c.zoom {
			return comp, true
		}
	}
	return nil, false
}

// UpdateResize recomputes the target's size fields from the pointer,
// clamped to the minimum size. Ignored outside ModeResizing.
func (c *Controller) UpdateResize(x, y float64) {
	if c.mode != ModeResizing {
		return
	}
	comp, ok := c.model.Get(c.resize.id)
	if !ok {
		return
	}
	if r, ok := comp.(scene.Resizable); ok {
		r.ResizeTo(x, y, c.opts.MinSize)
	}
}

// StopResize ends the resize. Idempotent.
func (c *Controller) StopResize() {
	if c.mode != ModeResizing {
		return
	}
	c.resize = resizeState{}
	c.mode = ModeIdle
}

// IsResizing reports whether a resize is in progress.
func (c *Controller) IsResizing() bool { return c.mode == ModeResizing }

// --- Scaling and rotation ---

// ScaleSelected multiplies every selected component's scale by
// (1 + delta), clamped to the configured floor and ceiling.
func (c *Controller) ScaleSelected(delta float64) {
	for id := range c.selected {
		comp, ok := c.model.Get(id)
		if !ok {
			continue
		}
		s := geometry.Clamp(comp.Scale()*(1+delta), c.opts.ScaleFloor, c.opts.ScaleCeiling)
		// Clamped value is always positive, SetScale cannot fail here.
		_ = comp.SetScale(s)
	}
}

// RotateSelected adds deg degrees to every selected component's
// rotation.
func (c *Controller) RotateSelected(deg float64) {
	for id := range c.selected {
		if comp, ok := c.model.Get(id); ok {
			comp.SetRotation(comp.Rotation() + deg)
		}
	}
}

// --- Connection building ---

// StartConnectionAt records the component under the pointer as the
// pending connection source. Re-invoking while already pending on the
// same component is idempotent.
func (c *Controller) StartConnectionAt(x, y float64) bool {
	if c.mode != ModeIdle && c.mode != ModeConnectPending {
		return false
	}
	hit, ok := c.model.FindAt(x, y)
	if !ok {
		return false
	}
	if c.mode == ModeConnectPending && c.pending == hit.ID() {
		return true
	}
	c.pending = hit.ID()
	c.mode = ModeConnectPending
	c.setStatus("connection started from component %d", hit.ID())
	return true
}

// CompleteConnectionAt finishes the pending connection with the
// component under the pointer. A miss or an invalid pairing leaves the
// pending source in place; cancellation is explicit via
// CancelConnection.
func (c *Controller) CompleteConnectionAt(x, y float64) (*scene.Connection, error) {
	if c.mode != ModeConnectPending {
		return nil, fmt.Errorf("no pending connection")
	}
	hit, ok := c.model.FindAt(x, y)
	if !ok {
		return nil, fmt.Errorf("no component at (%v, %v)", x, y)
	}
	conn, err := c.model.AddConnection(c.pending, hit.ID())
	if err != nil {
		if errors.Is(err, scene.ErrSelfConnection) {
			c.setStatus("cannot connect component to itself")
		} else if errors.Is(err, scene.ErrDuplicateConnection) {
			c.setStatus("connection already exists")
		}
		return nil, err
	}
	c.pending = -1
	c.mode = ModeIdle
	c.setStatus("connected %d to %d", conn.Source, conn.Target)
	return conn, nil
}

// CancelConnection discards the pending connection source. Always
// succeeds.
func (c *Controller) CancelConnection() {
	if c.mode != ModeConnectPending {
		return
	}
	c.pending = -1
	c.mode = ModeIdle
	c.setStatus("connection cancelled")
}

// PendingSource returns the pending connection source for preview-line
// rendering.
func (c *Controller) PendingSource() (int, bool) {
	if c.pending < 0 {
		return 0, false
	}
	return c.pending, true
}

// --- Insertion and deletion ---

// InsertAt creates a registered component type at the point and selects
// it.
func (c *Controller) InsertAt(tag string, x, y float64) (scene.Component, error) {
	comp, err := c.registry.Create(tag, x, y)
	if err != nil {
		return nil, err
	}
	c.model.Add(comp)
	c.clearSelection()
	c.selected[comp.ID()] = true
	comp.SetSelected(true)
	c.setStatus("%s created", tag)
	return comp, nil
}

// InsertAtLastClick creates a component at the most recent click
// position, falling back to the given point when no click is recorded.
func (c *Controller) InsertAtLastClick(tag string, fallbackX, fallbackY float64) (scene.Component, error) {
	x, y := fallbackX, fallbackY
	if c.hasLastClick {
		x, y = c.lastClickX, c.lastClickY
	}
	return c.InsertAt(tag, x, y)
}

// DeleteSelected removes every selected component, cascading their
// connections, and clears the selection.
func (c *Controller) DeleteSelected() int {
	ids := c.SelectedIDs()
	removed := 0
	for _, id := range ids {
		if err := c.model.Remove(id); err == nil {
			removed++
		}
		delete(c.selected, id)
	}
	if removed > 0 {
		c.setStatus("deleted %d component(s)", removed)
	}
	return removed
}

func (c *Controller) recordClick(x, y float64) {
	c.lastClickX, c.lastClickY = x, y
	c.hasLastClick = true
}

// --- Viewport ---

// Viewport returns the current pan offsets and zoom factor.
func (c *Controller) Viewport() (panX, panY, zoom float64) {
	return c.panX, c.panY, c.zoom
}

// Pan shifts the viewport by a screen-space delta.
func (c *Controller) Pan(dx, dy float64) {
	c.panX += dx
	c.panY += dy
}

// Zoom multiplies the zoom factor, clamped to the configured range, and
// adjusts the pan so the world point under the screen-space anchor stays
// visually fixed.
func (c *Controller) Zoom(factor, anchorX, anchorY float64) {
	newZoom := geometry.Clamp(c.zoom*factor, c.opts.ZoomMin, c.opts.ZoomMax)
	if newZoom == c.zoom {
		return
	}
	wx, wy := c.ScreenToWorld(anchorX, anchorY)
	c.zoom = newZoom
	c.panX = anchorX - wx*c.zoom
	c.panY = anchorY - wy*c.zoom
}

// ResetViewport restores pan (0,0) and zoom 1.
func (c *Controller) ResetViewport() {
	c.panX, c.panY = 0, 0
	c.zoom = 1
}

// ScreenToWorld converts device coordinates to world space using the
// inverse viewport transform.
func (c *Controller) ScreenToWorld(sx, sy float64) (float64, float64) {
	return (sx - c.panX) / c.zoom, (sy - c.panY) / c.zoom
}

// WorldToScreen converts world coordinates to device space.
func (c *Controller) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*c.zoom + c.panX, wy*c.zoom + c.panY
}
