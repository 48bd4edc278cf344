package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// ToolBar wraps the radio group of tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
}

func (tb *ToolBar) Select(t Tool) {
	if tb == nil {
		return
	}
	if idx := int(t); idx >= 0 && idx < len(tb.buttons) {
		tb.group.SetActive(tb.buttons[idx])
	}
}

func solidNineSlice(c color.Color) *imageui.NineSlice {
	return imageui.NewNineSliceColor(c)
}

func buildUI(e *Editor) (*ebitenui.UI, *ToolBar) {
	var face text.Face = text.NewGoXFace(basicfont.Face7x13)

	btnImage := &widget.ButtonImage{
		Idle:    solidNineSlice(color.RGBA{180, 180, 180, 255}),
		Hover:   solidNineSlice(color.RGBA{200, 200, 200, 255}),
		Pressed: solidNineSlice(color.RGBA{160, 160, 160, 255}),
	}
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(e.width, toolbarHeight),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Left: 8, Right: 8, Bottom: 4}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	newButton := func(label string, opts ...widget.ButtonOpt) *widget.Button {
		opts = append([]widget.ButtonOpt{
			widget.ButtonOpts.Image(btnImage),
			widget.ButtonOpts.Text(label, &face, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 40)),
		}, opts...)
		btn := widget.NewButton(opts...)
		toolbar.AddChild(btn)
		return btn
	}

	var toolButtons []*widget.Button
	for _, t := range []Tool{ToolPlatform, ToolErase} {
		toolButtons = append(toolButtons, newButton(t.String(), widget.ButtonOpts.ToggleMode()))
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}
	group := widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range toolButtons {
				if args.Active == b {
					e.SetTool(Tool(idx))
					return
				}
			}
		}),
	)
	group.SetActive(toolButtons[ToolPlatform])

	action := func(label string, fn func()) {
		newButton(label, widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			fn()
		}))
	}
	action("Undo", e.undo)
	action("Clear", e.clear)
	action("Save", e.save)
	action("Copy JSON", e.copyJSON)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(toolbar)

	return &ebitenui.UI{Container: root}, &ToolBar{group: group, buttons: toolButtons}
}
