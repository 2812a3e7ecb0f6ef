package main

import (
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	textColor  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor = color.NRGBA{A: 200}
	buttonIdle = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	buttonHot  = color.NRGBA{R: 0x8a, G: 0x1c, B: 0x1c, A: 0xff}
)

type menuButton struct {
	label   string
	onClick func()
}

// newMenu builds a centered panel with a title and a column of buttons.
// Colored nine-slices and the built-in basic font keep it free of theme
// assets.
func newMenu(titleText string, width, height int, buttons []menuButton) *ebitenui.UI {
	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonIdle),
		Hover:   imageui.NewNineSliceColor(buttonHot),
		Pressed: imageui.NewNineSliceColor(buttonHot),
	}
	btnText := &widget.ButtonTextColor{Idle: textColor}
	center := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/3, height/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(widget.NewText(
		widget.TextOpts.Text(titleText, &face, textColor),
		widget.TextOpts.WidgetOpts(center),
	))
	for _, b := range buttons {
		onClick := b.onClick
		panel.AddChild(widget.NewButton(
			widget.ButtonOpts.Image(btnImg),
			widget.ButtonOpts.Text(b.label, &face, btnText),
			widget.ButtonOpts.WidgetOpts(center),
			widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
				onClick()
			}),
		))
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}

// NewMainMenuUI lists one button per level.
func NewMainMenuUI(g *Game, levels []string) *ebitenui.UI {
	buttons := make([]menuButton, 0, len(levels)+1)
	for _, level := range levels {
		buttons = append(buttons, menuButton{label: level, onClick: func() {
			_ = g.startLevel(level)
		}})
	}
	buttons = append(buttons, menuButton{label: "Quit", onClick: func() { g.quit = true }})
	return newMenu(g.cfg.Window.Title, g.cfg.Window.Width, g.cfg.Window.Height, buttons)
}

func NewPauseUI(g *Game) *ebitenui.UI {
	return newMenu("Paused", g.cfg.Window.Width, g.cfg.Window.Height, []menuButton{
		{label: "Resume", onClick: g.resume},
		{label: "Main Menu", onClick: g.toMenu},
		{label: "Quit", onClick: func() { g.quit = true }},
	})
}
