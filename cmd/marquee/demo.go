package main

import (
	"fmt"

	"github.com/odvcencio/marquee/pkg/ui/runtime"
	"github.com/odvcencio/marquee/pkg/ui/terminal"
	"github.com/odvcencio/marquee/pkg/ui/views"
)

const (
	statusID = "status"
	clicksID = "clicks"
)

// demo holds the state the demo views share.
type demo struct {
	clicks   int
	autohide bool
	main     runtime.ScreenID
	help     runtime.ScreenID
}

// buildDemo installs the demo screens, menu bar and global hotkeys on app.
func buildDemo(app *runtime.App, autohide bool) *demo {
	d := &demo{autohide: autohide, main: app.ActiveScreen()}

	body := views.NewVertical().
		Add(views.WithID(clockID, views.NewTextView("--:--:--").WithAlignment(views.AlignRight))).
		AddExpanded(views.WithID(statusID, views.NewTextView(
			"Tab moves focus. Esc opens the menu. q quits."))).
		Add(views.WithID(clicksID, views.NewTextView("clicks: 0"))).
		Add(views.NewHorizontal().
			Add(views.NewButton("Click", d.click)).
			AddExpanded(views.NewDummyView()).
			Add(views.NewButton("About", d.showAbout)).
			Add(views.NewButton("Quit", func(a *runtime.App) { a.Quit() })))
	app.AddFullscreenLayer(views.NewPanel(body).WithTitle("marquee"))

	d.help = app.AddScreen()
	helpScreen := app.Root().ScreenAt(d.help)
	helpScreen.AddFullscreenLayer(views.NewPanel(views.NewTextView(
		"Screens keep their own layers.\n\n" +
			"1 and 2 switch screens.\n" +
			"Esc opens the menu bar.\n" +
			"q quits from anywhere.")).WithTitle("help"))

	app.Menubar().
		AddSubtree("File", runtime.NewMenuTree().
			Leaf("About", d.showAbout).
			Delimiter().
			Leaf("Quit", func(a *runtime.App) { a.Quit() })).
		AddSubtree("View", runtime.NewMenuTree().
			Leaf("Main screen", d.showMain).
			Leaf("Help screen", d.showHelp).
			Delimiter().
			Leaf("Toggle menu autohide", d.toggleAutohide)).
		AddLeaf("Help", d.showHelp)

	app.AddGlobalCallback(terminal.Char('q'), func(a *runtime.App) { a.Quit() })
	app.AddGlobalCallback(terminal.KeyPress(terminal.KeyEscape), func(a *runtime.App) { a.SelectMenubar() })
	app.AddGlobalCallback(terminal.Char('1'), d.showMain)
	app.AddGlobalCallback(terminal.Char('2'), d.showHelp)
	return d
}

func (d *demo) click(app *runtime.App) {
	d.clicks++
	app.CallOnID(clicksID, func(v runtime.View) {
		v.(*views.TextView).SetContent(fmt.Sprintf("clicks: %d", d.clicks))
	})
	setStatus(app, "clicked")
}

func (d *demo) showAbout(app *runtime.App) {
	dialog := views.NewVertical().
		Add(views.NewTextView("marquee terminal toolkit demo")).
		Add(views.NewButton("Close", func(a *runtime.App) { a.PopLayer() }))
	app.AddLayer(views.NewPanel(dialog).WithTitle("about"))
}

func (d *demo) showMain(app *runtime.App) { app.SetScreen(d.main) }

func (d *demo) showHelp(app *runtime.App) { app.SetScreen(d.help) }

func (d *demo) toggleAutohide(app *runtime.App) {
	d.autohide = !d.autohide
	app.SetAutohideMenu(d.autohide)
	setStatus(app, fmt.Sprintf("menu autohide: %t", d.autohide))
}

func setStatus(app *runtime.App, msg string) {
	app.CallOnID(statusID, func(v runtime.View) {
		v.(*views.TextView).SetContent(msg)
	})
}
