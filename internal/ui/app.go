// Package ui is the Fyne front end: the interactive sketch canvas, the
// toolbar and the application window with its keyboard shortcuts.
package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"sketchpad/internal/config"
	"sketchpad/internal/state"
)

func RunApp(cfg *config.Config, session *state.Session) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Sketchpad")
	myWindow.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	// Create the interactive sketch widget
	board := NewSketchWidget(session)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, nil, nil, nil, board)
	myWindow.SetContent(content)

	// Ctrl+Z / Ctrl+Y drive the history, Tab accepts a pending preview.
	undoShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}
	myWindow.Canvas().AddShortcut(undoShortcut, func(fyne.Shortcut) { board.Undo() })

	redoShortcut := &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}
	myWindow.Canvas().AddShortcut(redoShortcut, func(fyne.Shortcut) { board.Redo() })

	myWindow.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) {
		if e.Name == fyne.KeyTab {
			board.ConfirmPreview()
		}
	})

	myWindow.ShowAndRun()
}
