// Package retained is the retained-mode front-end built on bubbletea.
//
// The model follows the Elm architecture: key presses and mouse clicks are
// translated into messages, messages become channel commands dispatched
// through the session, and View renders the session snapshot together with
// the tab bar and help line.
package retained
