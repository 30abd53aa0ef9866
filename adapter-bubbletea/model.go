// Package adapter_bubbletea runs a ui component tree inside a bubbletea
// program: it converts terminal input into ui input events, renders each
// frame onto a cell canvas and keeps cursors blinking.
package adapter_bubbletea

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ionut-t/synedit/core"
	"github.com/ionut-t/synedit/internal/log"
	"github.com/ionut-t/synedit/ui"
)

// DefaultScaleFactor maps density independent units to terminal cells: a
// 22dp text line becomes one row.
const DefaultScaleFactor = 1.0 / 22

type cursorBlinkMsg struct{ id int }
type cursorBlinkCanceledMsg struct{}

type cursorBlinkContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	id     int
}

// BuildFunc declares the component tree of one frame.
type BuildFunc func(s *ui.Scope)

type clipboardImpl struct{}

func (c *clipboardImpl) Write(text string) error {
	return clipboard.WriteAll(text)
}

func (c *clipboardImpl) Read() (string, error) {
	return clipboard.ReadAll()
}

// Model is a tea.Model hosting a ui tree. Embed it in an application model
// and forward messages to Update.
type Model struct {
	runtime    *ui.Runtime
	build      BuildFunc
	width      int
	height     int
	background ui.Color

	pointer   *ui.PxPosition
	clipboard core.Clipboard
	blinkers  []*ui.BlinkTimer
	requests  ui.WindowRequests
	view      string
	err       error
	now       func() time.Time

	cursorBlinkContext *cursorBlinkContext
}

type Option func(*Model)

// WithClipboard replaces the system clipboard.
func WithClipboard(c core.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = c
	}
}

// WithBackground sets the colour translucent fills are blended over.
func WithBackground(c ui.Color) Option {
	return func(m *Model) {
		m.background = c
	}
}

// WithBlink redraws periodically while any of the timers is blinking.
func WithBlink(timers ...*ui.BlinkTimer) Option {
	return func(m *Model) {
		m.blinkers = append(m.blinkers, timers...)
	}
}

// New hosts build in a width x height terminal area.
func New(build BuildFunc, width, height int, opts ...Option) *Model {
	m := &Model{
		runtime:    ui.NewRuntime(),
		build:      build,
		background: ui.BLACK,
		clipboard:  &clipboardImpl{},
		now:        time.Now,
		cursorBlinkContext: &cursorBlinkContext{
			ctx: context.Background(),
		},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.SetSize(width, height)
	return m
}

// SetSize changes the area and redraws.
func (m *Model) SetSize(width, height int) {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.redraw()
}

func (m *Model) Size() (width, height int) {
	return m.width, m.height
}

// Err returns the error of the last frame, if it failed.
func (m *Model) Err() error {
	return m.err
}

// Requests returns what the handlers asked of the host in the last dispatch.
func (m *Model) Requests() ui.WindowRequests {
	return m.requests
}

func (m *Model) Init() tea.Cmd {
	return m.CursorBlink()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		ev := ui.InputEvents{}
		if msg.Paste {
			ev.ImeEvents = []ui.ImeEvent{{Kind: ui.ImeCommit, Text: normalizeNewlines(string(msg.Runes))}}
		} else {
			keys := convertBubbleKey(msg)
			if len(keys) == 0 {
				break
			}
			ev.KeyboardEvents = keys
			ev.KeyModifiers = keys[len(keys)-1].Modifiers
		}
		m.Dispatch(ev)
		cmds = append(cmds, m.CursorBlink())

	case tea.MouseMsg:
		m.Dispatch(m.convertMouse(msg))
		cmds = append(cmds, m.CursorBlink())

	case cursorBlinkMsg:
		if msg.id == m.cursorBlinkContext.id {
			m.redraw()
			cmds = append(cmds, m.CursorBlink())
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	return m.view
}

// Dispatch hands input to the tree of the last frame, then draws a new frame.
// It returns the events no handler consumed.
func (m *Model) Dispatch(ev ui.InputEvents) ui.InputEvents {
	if ev.CursorPosition == nil {
		ev.CursorPosition = m.pointer
	}
	if ev.Clipboard == nil {
		ev.Clipboard = m.clipboard
	}
	if ev.Now.IsZero() {
		ev.Now = m.now()
	}

	res := m.runtime.Dispatch(ev)
	m.requests = res.Requests
	m.redraw()
	return res.Unconsumed
}

// Refresh draws a new frame, after state changed outside of input handling.
func (m *Model) Refresh() {
	m.redraw()
}

// redraw builds, measures and renders one frame.
func (m *Model) redraw() {
	constraint := ui.NewConstraint(ui.Fixed(ui.Px(m.width)), ui.Fixed(ui.Px(m.height)))
	if _, err := m.runtime.Frame(constraint, m.build); err != nil {
		m.fail(err)
		return
	}

	canvas := NewCanvas(m.width, m.height, m.background)
	if err := m.runtime.Render(canvas); err != nil {
		m.fail(err)
		return
	}
	m.err = nil
	m.view = canvas.String()
}

func (m *Model) fail(err error) {
	if !errors.Is(err, m.err) {
		log.ErrorErr(log.CatUI, "frame failed", err)
	}
	m.err = err
	m.view = err.Error()
}

func (m *Model) blinking() bool {
	for _, b := range m.blinkers {
		if b.Active() {
			return true
		}
	}
	return false
}

// CursorBlink schedules the next redraw of blinking cursors, replacing any
// pending one so ticks follow the latest user activity.
func (m *Model) CursorBlink() tea.Cmd {
	if m.cursorBlinkContext.cancel != nil {
		m.cursorBlinkContext.cancel()
	}
	if !m.blinking() {
		return nil
	}

	ctx, cancel := context.WithTimeout(m.cursorBlinkContext.ctx, ui.BlinkInterval)
	m.cursorBlinkContext.cancel = cancel
	m.cursorBlinkContext.id++
	id := m.cursorBlinkContext.id

	return func() tea.Msg {
		defer cancel()
		<-ctx.Done()
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return cursorBlinkMsg{id: id}
		}
		return cursorBlinkCanceledMsg{}
	}
}

func (m *Model) convertMouse(msg tea.MouseMsg) ui.InputEvents {
	pos := ui.PxPosition{X: ui.Px(msg.X), Y: ui.Px(msg.Y)}
	m.pointer = &pos

	var mods ui.KeyModifiers
	if msg.Ctrl {
		mods |= ui.ModCtrl
	}
	if msg.Alt {
		mods |= ui.ModAlt
	}
	if msg.Shift {
		mods |= ui.ModShift
	}

	ev := ui.InputEvents{CursorPosition: &pos, KeyModifiers: mods, Now: m.now()}
	ce := ui.CursorEvent{Timestamp: ev.Now}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		ce.Kind, ce.DeltaY = ui.CursorScroll, 1
	case msg.Button == tea.MouseButtonWheelDown:
		ce.Kind, ce.DeltaY = ui.CursorScroll, -1
	case msg.Button == tea.MouseButtonWheelLeft:
		ce.Kind, ce.DeltaX = ui.CursorScroll, 1
	case msg.Button == tea.MouseButtonWheelRight:
		ce.Kind, ce.DeltaX = ui.CursorScroll, -1
	case msg.Action == tea.MouseActionPress:
		ce.Kind, ce.Button = ui.CursorPressed, pressKey(msg.Button)
	case msg.Action == tea.MouseActionRelease:
		ce.Kind, ce.Button = ui.CursorReleased, pressKey(msg.Button)
	default:
		// Motion only moves the pointer
		return ev
	}

	ev.CursorEvents = []ui.CursorEvent{ce}
	return ev
}

func pressKey(b tea.MouseButton) ui.PressKey {
	switch b {
	case tea.MouseButtonRight:
		return ui.PressRight
	case tea.MouseButtonMiddle:
		return ui.PressMiddle
	default:
		return ui.PressLeft
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
