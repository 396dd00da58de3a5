// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides the in-room workflow for a listening session:
//  1. [BrowseView] : Browse the host's top tracks or search the catalog
//  2. [ReceiptView] : Show the outcome of the last queue submission
//  3. [ClosedView] : Shown when the room disappears on the backend
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern,
// receiving messages via the Msg union type. Search requests carry a sequence
// number so responses that arrive out of order are dropped instead of
// overwriting newer results.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with
// contextual help displayed via charmbracelet/bubbles/help.
package ui
