package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

const toolbarHeight = 48

// Editor is the ebiten game for placing arena platforms on the tile grid.
type Editor struct {
	doc    *Document
	width  int
	height int

	tool      Tool
	dragStart *[2]int
	ui        *ebitenui.UI
	toolBar   *ToolBar

	clipboardOK bool
	status      string
}

func NewEditor(doc *Document, width, height int) *Editor {
	e := &Editor{doc: doc, width: width, height: height}
	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		e.clipboardOK = true
	}
	e.ui, e.toolBar = buildUI(e)
	return e
}

func (e *Editor) SetTool(t Tool) {
	e.tool = t
	e.dragStart = nil
}

// tileAt maps a screen position to a tile. Positions over the toolbar are
// not on the canvas.
func (e *Editor) tileAt(x, y int) (int, int, bool) {
	if y < toolbarHeight || x < 0 || x >= e.width || y >= e.height {
		return 0, 0, false
	}
	ts := e.doc.Level.TileSize
	return x / ts, y / ts, true
}

func (e *Editor) Update() error {
	e.ui.Update()

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.save()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyZ):
		e.undo()
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.copyJSON()
	case inpututil.IsKeyJustPressed(ebiten.KeyB):
		e.toolBar.Select(ToolPlatform)
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		e.toolBar.Select(ToolErase)
	}

	mx, my := ebiten.CursorPosition()
	tx, ty, onCanvas := e.tileAt(mx, my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && onCanvas {
		e.doc.RemoveAt(tx, ty)
	}

	switch e.tool {
	case ToolPlatform:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onCanvas {
			e.dragStart = &[2]int{tx, ty}
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && e.dragStart != nil {
			if onCanvas {
				p := e.doc.Add(e.dragStart[0], e.dragStart[1], tx, ty)
				e.status = fmt.Sprintf("added %dx%d at (%d,%d)", p.Width, p.Height, p.X, p.Y)
			}
			e.dragStart = nil
		}
	case ToolErase:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onCanvas {
			e.doc.RemoveAt(tx, ty)
		}
	}
	return nil
}

func (e *Editor) save() {
	if err := e.doc.Save(); err != nil {
		log.Printf("save %s: %v", e.doc.Filename, err)
		e.status = "save failed"
		return
	}
	e.status = "saved " + e.doc.Filename
}

func (e *Editor) undo() {
	if e.doc.Undo() {
		e.status = "undo"
	}
}

func (e *Editor) clear() {
	e.doc.Clear()
	e.status = "cleared"
}

func (e *Editor) copyJSON() {
	if !e.clipboardOK {
		e.status = "clipboard unavailable"
		return
	}
	data, err := e.doc.Marshal()
	if err != nil {
		log.Printf("marshal level: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	e.status = "level JSON copied"
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Lightskyblue)
	ts := float32(e.doc.Level.TileSize)

	gridColor := color.NRGBA{A: 40}
	for x := float32(0); x < float32(e.width); x += ts {
		vector.StrokeLine(screen, x, toolbarHeight, x, float32(e.height), 1, gridColor, false)
	}
	for y := float32(0); y < float32(e.height); y += ts {
		if y < toolbarHeight {
			continue
		}
		vector.StrokeLine(screen, 0, y, float32(e.width), y, 1, gridColor, false)
	}

	e.doc.Terrain().Each(func(_ int, bb cp.BB) bool {
		vector.DrawFilledRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), colornames.Saddlebrown, false)
		vector.StrokeRect(screen, float32(bb.L), float32(bb.B), float32(bb.R-bb.L), float32(bb.T-bb.B), 1, colornames.Sienna, false)
		return true
	})

	mx, my := ebiten.CursorPosition()
	if tx, ty, ok := e.tileAt(mx, my); ok {
		p := spanPlatform(tx, ty, tx, ty)
		if e.dragStart != nil {
			p = spanPlatform(e.dragStart[0], e.dragStart[1], tx, ty)
		}
		vector.StrokeRect(screen, float32(p.X)*ts, float32(p.Y)*ts, float32(p.Width)*ts, float32(p.Height)*ts, 2, colornames.Orange, false)
	}

	e.ui.Draw(screen)

	name := e.doc.Filename
	if e.doc.Dirty {
		name += " *"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  %d platforms  tool: %s  %s", name, len(e.doc.Level.Platforms), e.tool, e.status), 10, e.height-20)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.width, e.height
}
