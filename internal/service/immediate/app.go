package immediate

import (
	"context"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/domain/tab"
	"github.com/oshokin/channel-inspector/internal/service/session"
	"github.com/oshokin/channel-inspector/internal/version"
)

// Layout rows and columns.
const (
	rowTabs     = 0
	rowHeader   = 2
	rowPrevious = 3
	rowCurrent  = 4
	rowButtons  = 6
	rowSlider   = 8
	rowPending  = 9
	rowError    = 10

	colLabel  = 1
	colFields = 12
	colClear  = 40

	fieldWidth  = 9
	sliderWidth = 50
)

const helpLine = "1-9 select  ←/→ shift  p/c clear  -/+ limit  enter apply  tab switch  q quit"

var (
	styleText       = tcell.StyleDefault
	styleDim        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHeader     = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleTabActive  = tcell.StyleDefault.Reverse(true).Bold(true)
	styleHot        = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true).Reverse(true)
	styleSuspicious = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	stylePending    = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// app is the immediate-mode application state outside the machine.
type app struct {
	ctx    context.Context
	sess   *session.Session
	screen tcell.Screen
	// active is the visible tab.
	active tab.Tab
	// dragging reports that the slider owns the left button.
	dragging bool
	// buttons is the mouse button mask of the previous mouse event.
	buttons tcell.ButtonMask
	// lastErr is the message of the last rejected command.
	lastErr string
}

func newApp(ctx context.Context, sess *session.Session, screen tcell.Screen) *app {
	return &app{
		ctx:    ctx,
		sess:   sess,
		screen: screen,
		active: tab.Main,
	}
}

// render draws one frame against in and dispatches what it produced.
// A frame that changed state is drawn again so the screen shows the result.
func (a *app) render(in input) {
	active := a.active
	cmds := a.draw(in)

	for _, cmd := range cmds {
		a.dispatch(cmd)
	}

	if len(cmds) > 0 || a.active != active {
		a.draw(input{})
	}
}

// dispatch runs cmd through the session and records a rejection.
func (a *app) dispatch(cmd channel.Command) {
	if _, err := a.sess.Dispatch(a.ctx, cmd); err != nil {
		a.lastErr = err.Error()

		return
	}

	a.lastErr = ""
}

// draw paints the whole screen and returns the commands the input triggered.
func (a *app) draw(in input) []channel.Command {
	a.screen.Clear()

	f := &frame{screen: a.screen, in: in}
	a.drawTabs(f)

	_, h := a.screen.Size()
	f.text(colLabel, h-1, helpLine, styleDim)

	switch a.active {
	case tab.Main:
		return a.drawMain(f, a.sess.Snapshot())
	case tab.Dummy:
		f.text(colLabel, rowHeader, "Nothing to see here yet.", styleText)
	case tab.About:
		for i, line := range version.Lines() {
			f.text(colLabel, rowHeader+i, line, styleText)
		}
	}

	return nil
}

// drawTabs paints the tab bar; a click switches tabs immediately.
func (a *app) drawTabs(f *frame) {
	x := colLabel

	for _, t := range tab.All() {
		style := styleText
		if t == a.active {
			style = styleTabActive
		}

		clicked, w := f.button(x, rowTabs, t.Title(), style)
		if clicked {
			a.active = t
		}

		x += w + 1
	}
}

// drawMain paints the channel panel.
func (a *app) drawMain(f *frame, snap channel.Snapshot) []channel.Command {
	var cmds []channel.Command

	cmds = append(cmds, a.keyCommands(f.in)...)

	f.text(colFields, rowHeader, "Channel", styleHeader)
	f.text(colFields+fieldWidth, rowHeader, "Value", styleHeader)
	f.text(colFields+2*fieldWidth, rowHeader, "Susp.", styleHeader)

	if a.drawRow(f, rowPrevious, "Previous", snap.Previous) {
		cmds = append(cmds, channel.ClearRow{Row: channel.RowPrevious})
	}

	if a.drawRow(f, rowCurrent, "Current", snap.Current) {
		cmds = append(cmds, channel.ClearRow{Row: channel.RowCurrent})
	}

	cmds = append(cmds, a.drawButtons(f, snap)...)
	cmds = append(cmds, a.drawSlider(f, snap)...)

	if a.lastErr != "" {
		f.text(colLabel, rowError, "error: "+a.lastErr, styleSuspicious)
	}

	return cmds
}

// drawRow paints one table row and reports a click on its clear button.
func (a *app) drawRow(f *frame, y int, label string, row channel.RowView) bool {
	f.text(colLabel, y, label, styleText)
	f.text(colFields, y, row.ChannelText(), styleText)
	f.text(colFields+fieldWidth, y, row.ValueText(), styleText)

	style := styleText
	if row.Set && row.Suspicious {
		style = styleSuspicious
	}

	f.text(colFields+2*fieldWidth, y, row.SuspiciousText(), style)

	clicked, _ := f.button(colClear, y, "clear", styleDim)

	return clicked
}

// drawButtons paints the arrows and the channel buttons.
func (a *app) drawButtons(f *frame, snap channel.Snapshot) []channel.Command {
	var cmds []channel.Command

	x := colLabel

	clicked, w := f.button(x, rowButtons, "<", styleText)
	if clicked {
		cmds = append(cmds, channel.ShiftChannel{Delta: -1})
	}

	x += w + 1

	for _, ch := range snap.Channels {
		style := styleText

		switch {
		case ch.IsCurrent:
			style = styleHot
		case ch.Suspicious:
			style = styleSuspicious
		}

		if clicked, w = f.button(x, rowButtons, strconv.Itoa(ch.Number), style); clicked {
			cmds = append(cmds, channel.SelectChannel{Number: ch.Number})
		}

		x += w + 1
	}

	if clicked, _ = f.button(x, rowButtons, ">", styleText); clicked {
		cmds = append(cmds, channel.ShiftChannel{Delta: 1})
	}

	return cmds
}

// drawSlider paints the threshold bar. Dragging moves the live threshold
// and releasing the button applies it.
func (a *app) drawSlider(f *frame, snap channel.Snapshot) []channel.Command {
	const label = "Limit "

	x := colLabel + f.text(colLabel, rowSlider, label, styleText)
	filled := channel.ScaleOffset(snap.Threshold, sliderWidth)

	f.fill(x, rowSlider, filled+1, '█', styleHeader)
	f.fill(x+filled+1, rowSlider, sliderWidth-filled-1, '░', styleDim)
	f.text(x+sliderWidth+1, rowSlider, strconv.Itoa(snap.Threshold), styleText)

	if snap.PendingApply {
		f.text(colLabel, rowPending, "release or press enter to apply, active "+strconv.Itoa(snap.AppliedThreshold), stylePending)
	}

	in := f.in

	switch {
	case in.pressed && in.y == rowSlider && in.x >= x && in.x < x+sliderWidth:
		a.dragging = true
	case in.released && a.dragging:
		a.dragging = false

		return []channel.Command{channel.ApplyThreshold{}}
	case !in.held || !a.dragging:
		return nil
	}

	value := channel.ScaleValue(in.x-x, sliderWidth)
	if value == snap.Threshold {
		return nil
	}

	return []channel.Command{channel.SetThreshold{Value: value}}
}

// keyCommands translates a key press on the main tab into commands.
func (a *app) keyCommands(in input) []channel.Command {
	if in.key == nil {
		return nil
	}

	threshold := a.sess.Snapshot().Threshold

	switch in.key.Key() {
	case tcell.KeyLeft:
		return []channel.Command{channel.ShiftChannel{Delta: -1}}
	case tcell.KeyRight:
		return []channel.Command{channel.ShiftChannel{Delta: 1}}
	case tcell.KeyEnter:
		return []channel.Command{channel.ApplyThreshold{}}
	case tcell.KeyRune:
	default:
		return nil
	}

	r := in.key.Rune()

	switch {
	case r >= '1' && r <= '9':
		return []channel.Command{channel.SelectChannel{Number: int(r - '0')}}
	case r == 'h':
		return []channel.Command{channel.ShiftChannel{Delta: -1}}
	case r == 'l':
		return []channel.Command{channel.ShiftChannel{Delta: 1}}
	case r == 'p':
		return []channel.Command{channel.ClearRow{Row: channel.RowPrevious}}
	case r == 'c':
		return []channel.Command{channel.ClearRow{Row: channel.RowCurrent}}
	case strings.ContainsRune("-_", r) && threshold > channel.LowLimit:
		return []channel.Command{channel.SetThreshold{Value: threshold - 1}}
	case strings.ContainsRune("+=", r) && threshold < channel.HighLimit:
		return []channel.Command{channel.SetThreshold{Value: threshold + 1}}
	}

	return nil
}

// handle turns an event into frame input. It reports whether the app
// should stop.
func (a *app) handle(ev tcell.Event) (input, bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
	case *tcell.EventInterrupt:
		return input{}, a.ctx.Err() != nil
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyCtrlC, ev.Key() == tcell.KeyEscape,
			ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return input{}, true
		case ev.Key() == tcell.KeyTab:
			a.active = a.active.Next()

			return input{}, false
		case ev.Key() == tcell.KeyBacktab:
			a.active = a.active.Prev()

			return input{}, false
		}

		return input{key: ev}, false
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		down := buttons&tcell.Button1 != 0
		wasDown := a.buttons&tcell.Button1 != 0
		a.buttons = buttons

		return input{
			x:        x,
			y:        y,
			pressed:  down && !wasDown,
			held:     down,
			released: !down && wasDown,
		}, false
	}

	return input{}, false
}

// loop draws and polls until the user quits or the screen is finalized.
func (a *app) loop() {
	var in input

	for {
		a.render(in)
		a.screen.Show()

		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}

		var quit bool
		if in, quit = a.handle(ev); quit {
			return
		}
	}
}
