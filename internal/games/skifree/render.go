package skifree

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-skifree/internal/core"
)

// sprite is a small block of glyphs drawn from its top-left cell.
type sprite struct {
	rows  []string
	color core.Color
}

// objectSprites is the renderer's lookup from terrain kind to glyphs.
var objectSprites = map[Kind]sprite{
	KindTree1:          {[]string{"▲", "┃"}, core.ColorGreen},
	KindTree2:          {[]string{"♣", "┃"}, core.ColorGreen},
	KindTree3:          {[]string{"▲", "▲"}, core.ColorBrightGreen},
	KindTree4:          {[]string{"♠", "┃"}, core.ColorGreen},
	KindBigTree:        {[]string{" ▲ ", "▲▲▲", "▲▲▲", " ┃ "}, core.ColorGreen},
	KindXTree1:         {[]string{"Ⲯ", "┃"}, core.ColorBrown},
	KindXTree2:         {[]string{"ψ", "┃"}, core.ColorBrown},
	KindXTree3:         {[]string{"Y", "┃"}, core.ColorBrown},
	KindStump:          {[]string{"▄"}, core.ColorBrown},
	KindRock:           {[]string{"●"}, core.ColorGray},
	KindMushroom:       {[]string{"♠"}, core.ColorRed},
	KindMogul:          {[]string{"︵"}, core.ColorWhite},
	KindBumpL:          {[]string{"⌒⌒"}, core.ColorWhite},
	KindBumpS:          {[]string{"⌒"}, core.ColorWhite},
	KindRamp:           {[]string{"◢█"}, core.ColorYellow},
	KindLiftTower:      {[]string{"╦", "║", "║", "╩"}, core.ColorGray},
	KindChairUp:        {[]string{"╤", "ö"}, core.ColorBlue},
	KindChairDown:      {[]string{"╤", "╘"}, core.ColorBlue},
	KindSignSlalom:     {[]string{"SLALOM"}, core.ColorOrange},
	KindSignFreestyle:  {[]string{"FREESTYLE"}, core.ColorOrange},
	KindSignTreeSlalom: {[]string{"TREES"}, core.ColorOrange},
}

// skierSprites is the renderer's lookup from skier state to glyphs.
var skierSprites = map[StateKind]sprite{
	StateDownward:  {[]string{"o", "║"}, core.ColorRed},
	StateLeftStop:  {[]string{"o", "═"}, core.ColorRed},
	StateRightStop: {[]string{"o", "═"}, core.ColorRed},
	StateLeftMove:  {[]string{"o", "≡"}, core.ColorRed},
	StateRightMove: {[]string{"o", "≡"}, core.ColorRed},
	StateLeft30:    {[]string{"o", "/"}, core.ColorRed},
	StateLeft45:    {[]string{"o", "⁄"}, core.ColorRed},
	StateRight30:   {[]string{"o", "\\"}, core.ColorRed},
	StateRight45:   {[]string{"o", "⧵"}, core.ColorRed},
	StateFallen:    {[]string{"", "x_"}, core.ColorRed},
	StateSitting:   {[]string{"", "o_"}, core.ColorRed},
	StateJump:      {[]string{"o", "╨"}, core.ColorMagenta},
	StateTrick1:    {[]string{"\\o/", " ║"}, core.ColorMagenta},
	StateTrick2:    {[]string{"o", "═╬═"}, core.ColorMagenta},
}

// flipSprites are indexed by flip phase - 1.
var flipSprites = [4]sprite{
	{[]string{"o", "║"}, core.ColorMagenta},
	{[]string{"o═"}, core.ColorMagenta},
	{[]string{"║", "o"}, core.ColorMagenta},
	{[]string{"═o"}, core.ColorMagenta},
}

func skierSprite(s State) sprite {
	if s.Kind == StateFlip && s.Phase >= 1 && s.Phase <= 4 {
		return flipSprites[s.Phase-1]
	}
	return skierSprites[s.Kind]
}

// viewport maps world units to screen cells, keeping the skier at a fixed
// cell a third of the way down the screen.
type viewport struct {
	cellW, cellH float64
	originX      int
	originY      int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	cw, ch := g.cfg.Display.CellWidth, g.cfg.Display.CellHeight
	if cw <= 0 {
		cw = 8
	}
	if ch <= 0 {
		ch = 16
	}
	return viewport{
		cellW:   cw,
		cellH:   ch,
		originX: dst.Width() / 2,
		originY: dst.Height() / 3,
	}
}

// bounds is the world area covered by a w by h cell screen.
func (v viewport) bounds(w, h int) core.RectF {
	return core.NewRectF(
		PlayerPosition.X-float64(v.originX)*v.cellW,
		PlayerPosition.Y-float64(v.originY)*v.cellH,
		float64(w)*v.cellW,
		float64(h)*v.cellH,
	)
}

func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X-PlayerPosition.X)/v.cellW)) + v.originX
	y := int(math.Floor((p.Y-PlayerPosition.Y)/v.cellH)) + v.originY
	return x, y
}

func drawSprite(dst *core.Screen, x, y int, sp sprite) {
	for dy, row := range sp.rows {
		dst.DrawTextColored(x, y+dy, row, sp.color)
	}
}

// Render draws the current run into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.viewport(dst)
	w := g.sim.World()

	for _, l := range w.Lines() {
		x, y0 := v.cell(l.From)
		_, y1 := v.cell(l.To)
		y0 = core.Max(y0, 0)
		y1 = core.Min(y1, dst.Height())
		if y1 > y0 {
			dst.DrawVLine(x, y0, y1-y0, '│', l.Color)
		}
	}

	visible := w.Visible(v.bounds(dst.Width(), dst.Height()))
	for _, o := range visible {
		x, y := v.cell(o.Position)
		drawSprite(dst, x, y, objectSprites[o.Kind])
	}

	p := g.sim.Player()
	px, py := v.cell(PlayerPosition)
	drawSprite(dst, px, py, skierSprite(p.State()))

	if g.showHitboxes {
		for _, o := range visible {
			g.drawHitbox(dst, v, o.Hitbox())
		}
		g.drawHitbox(dst, v, p.Hitbox())
	}

	if g.cfg.Display.ShowHUD {
		g.drawHUD(dst)
	}

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawHitbox(dst *core.Screen, v viewport, r core.RectF) {
	x0, y0 := v.cell(core.Vec2{X: r.X, Y: r.Y})
	x1, _ := v.cell(core.Vec2{X: r.Right(), Y: r.Y})
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y0, '·', core.ColorRed)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Distance: %dm  Time: %.2fs  Style: %d ",
		g.sim.DistanceMetres(), g.ElapsedSeconds(), g.sim.Style())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	state := g.sim.Player().State().String()
	dst.DrawTextColored(dst.Width()-len(state)-2, 0, state, core.ColorGray)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
