package systems

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"ebiten-dungeon/config"
	"ebiten-dungeon/data"
)

// Panel row layout. Selector rows cycle their index (left half backward,
// right half forward); checkbox rows toggle.
const (
	rowFrameTime = iota
	rowCharacter
	rowEnemy
	rowTile
	rowEnemyRun
	rowWall
	rowLevel
	rowEditing

	rowCount
)

const (
	panelPadding = 12
	lineHeight   = 22
)

var (
	panelBG     = color.RGBA{24, 24, 24, 230}
	panelBorder = color.RGBA{150, 150, 150, 255}
	panelText   = color.RGBA{220, 220, 220, 255}
	panelDim    = color.RGBA{140, 140, 140, 255}
)

// EditorPanel is the selection sidebar: catalog pickers, layer toggles, the
// frame-time line and the message log, drawn straight onto the frame. While
// the pointer is inside it, world clicks are captured.
type EditorPanel struct {
	catalog *data.Catalog
	face    *text.GoTextFace
}

// NewEditorPanel builds the sidebar for a catalog
func NewEditorPanel(catalog *data.Catalog) (*EditorPanel, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load panel font: %w", err)
	}
	return &EditorPanel{
		catalog: catalog,
		face:    &text.GoTextFace{Source: source, Size: 14},
	}, nil
}

// Contains reports whether a screen point is captured by the panel
func (p *EditorPanel) Contains(x, y int) bool {
	return x >= config.PanelX && x < config.WindowWidth &&
		y >= 0 && y < config.WindowHeight
}

// Update applies panel clicks to the selection. It reports whether the
// pointer is captured this tick, whether or not any click landed.
func (p *EditorPanel) Update(sel *Selection) bool {
	mx, my := ebiten.CursorPosition()
	if !p.Contains(mx, my) {
		return false
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}

	row := (my - panelPadding) / lineHeight
	forward := mx >= config.PanelX+config.PanelWidth/2
	switch row {
	case rowCharacter:
		sel.Character = cycleIndex(sel.Character, len(p.catalog.Characters), forward)
	case rowEnemy:
		sel.Enemy = cycleIndex(sel.Enemy, len(p.catalog.Enemies), forward)
	case rowTile:
		sel.Tile = cycleIndex(sel.Tile, len(p.catalog.Tiles), forward)
	case rowEnemyRun:
		sel.EnemyRun = !sel.EnemyRun
	case rowWall:
		sel.Wall = !sel.Wall
	case rowLevel:
		sel.Level = !sel.Level
	case rowEditing:
		sel.Editing = !sel.Editing
	}
	return true
}

// cycleIndex steps a selection index through n entries, wrapping both ways
func cycleIndex(i, n int, forward bool) int {
	if n == 0 {
		return 0
	}
	if forward {
		return (i + 1) % n
	}
	return (i - 1 + n) % n
}

// Draw renders the sidebar and the message log
func (p *EditorPanel) Draw(screen *ebiten.Image, sel *Selection, frameMillis float64) {
	vector.DrawFilledRect(screen, float32(config.PanelX), 0,
		float32(config.PanelWidth), float32(config.WindowHeight), panelBG, false)
	vector.StrokeRect(screen, float32(config.PanelX), 0,
		float32(config.PanelWidth), float32(config.WindowHeight), 1, panelBorder, false)

	p.line(screen, rowFrameTime, fmt.Sprintf("frame ms: %.1f", frameMillis), panelDim)
	p.line(screen, rowCharacter,
		fmt.Sprintf("< character: %s >", p.characterName(sel.Character)), panelText)
	p.line(screen, rowEnemy,
		fmt.Sprintf("< enemy: %s >", p.enemyName(sel.Enemy)), panelText)
	p.line(screen, rowTile,
		fmt.Sprintf("< tile: %s >", p.tileName(sel.Tile)), panelText)
	p.line(screen, rowEnemyRun, checkbox("running", sel.EnemyRun), panelText)
	p.line(screen, rowWall, checkbox("wall", sel.Wall), panelText)
	p.line(screen, rowLevel, checkbox("level", sel.Level), panelText)
	p.line(screen, rowEditing, checkbox("editor mode", sel.Editing), panelText)

	p.drawMessages(screen)
}

func (p *EditorPanel) line(screen *ebiten.Image, row int, str string, clr color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(config.PanelX+panelPadding), float64(panelPadding+row*lineHeight))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, p.face, op)
}

func (p *EditorPanel) drawMessages(screen *ebiten.Image) {
	logTop := panelPadding + (rowCount+1)*lineHeight
	maxLines := (config.WindowHeight - logTop - panelPadding) / lineHeight

	for i, msg := range GetMessageLog().RecentMessages(maxLines) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(config.PanelX+panelPadding), float64(logTop+i*lineHeight))
		op.ColorScale.ScaleWithColor(panelDim)
		text.Draw(screen, msg, p.face, op)
	}
}

func checkbox(label string, on bool) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (p *EditorPanel) characterName(i int) string {
	if len(p.catalog.Characters) == 0 {
		return "none"
	}
	return p.catalog.Characters[p.catalog.ClampCharacter(i)].Name
}

func (p *EditorPanel) enemyName(i int) string {
	if len(p.catalog.Enemies) == 0 {
		return "none"
	}
	return p.catalog.Enemies[p.catalog.ClampEnemy(i)].Name
}

func (p *EditorPanel) tileName(i int) string {
	if len(p.catalog.Tiles) == 0 {
		return "none"
	}
	return p.catalog.Tiles[p.catalog.ClampTile(i)].Name
}
