// Package immediate is the immediate-mode front-end built on tcell.
//
// Every frame is drawn from scratch out of the session snapshot. Widgets
// report whether the last input event activated them while they are drawn,
// and the resulting commands are dispatched before the next frame.
package immediate
