// Package hud draws the health bar, the star counter and the game-over
// panel.
package hud

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/basicfont"

	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/common"
	"github.com/UNRaf-PROGRAMACION/game-with-tile-and-fsm/entity"
)

const (
	barX      = 10
	barY      = 10
	barWidth  = 200
	barHeight = 20

	// healthTweenMillis is how long the bar takes to catch up.
	healthTweenMillis = 200
)

var (
	barBackground = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	barFill       = color.RGBA{G: 0xff, A: 0xff}
	textColor     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// HUD implements scene.Listener.
type HUD struct {
	maxHealth int

	shown  float32
	target int
	tween  *gween.Tween

	stars    int
	defeated int
	gameOver bool

	// OnRestart runs when the game-over panel's button is clicked.
	OnRestart func()

	face       ebtext.Face
	ui         *ebitenui.UI
	starsText  *widget.Text
	enemyText  *widget.Text
	gameOverUI *ebitenui.UI
}

func New(maxHealth int) *HUD {
	if maxHealth <= 0 {
		maxHealth = 100
	}
	return &HUD{
		maxHealth: maxHealth,
		shown:     float32(maxHealth),
		target:    maxHealth,
	}
}

func (h *HUD) OnHealthChanged(value int) {
	h.target = value
	h.tween = gween.New(h.shown, float32(value), healthTweenMillis, ease.InOutSine)
}

func (h *HUD) OnStarCollected() {
	h.stars++
	if h.starsText != nil {
		h.starsText.Label = h.StarsLabel()
	}
}

func (h *HUD) OnEnemyDefeated(string) {
	h.defeated++
	if h.enemyText != nil {
		h.enemyText.Label = h.EnemiesLabel()
	}
}

func (h *HUD) OnSceneSwitch(name string) {
	if name == entity.GameOverScene {
		h.gameOver = true
	}
}

func (h *HUD) StarsLabel() string { return fmt.Sprintf("Stars: %d", h.stars) }

func (h *HUD) EnemiesLabel() string { return fmt.Sprintf("Snowmen: %d", h.defeated) }

func (h *HUD) GameOver() bool { return h.gameOver }

// ShownHealth is the value the bar currently displays.
func (h *HUD) ShownHealth() float32 { return h.shown }

// BarFraction is the filled fraction of the health bar.
func (h *HUD) BarFraction() float32 {
	return common.Clamp(h.shown, 0, float32(h.maxHealth)) / float32(h.maxHealth)
}

// Update advances the health tween by dt milliseconds and updates the
// widgets.
func (h *HUD) Update(dt float64) {
	if h.tween != nil {
		v, done := h.tween.Update(float32(dt))
		h.shown = v
		if done {
			h.tween = nil
		}
	}

	if h.gameOver {
		if h.gameOverUI != nil {
			h.gameOverUI.Update()
		}
		return
	}
	if h.ui != nil {
		h.ui.Update()
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ensureUI()

	vector.FillRect(screen, barX, barY, barWidth, barHeight, barBackground, false)
	if f := h.BarFraction(); f > 0 {
		vector.FillRect(screen, barX, barY, barWidth*f, barHeight, barFill, false)
	}

	h.ui.Draw(screen)
	if h.gameOver {
		if h.gameOverUI == nil {
			h.gameOverUI = newGameOverUI(&h.face, h)
		}
		h.gameOverUI.Draw(screen)
	}
}

// ensureUI builds the widgets on first draw, once a graphics context exists.
func (h *HUD) ensureUI() {
	if h.ui != nil {
		return
	}
	h.face = ebtext.NewGoXFace(basicfont.Face7x13)

	h.starsText = widget.NewText(
		widget.TextOpts.Text(h.StarsLabel(), &h.face, textColor),
	)
	h.enemyText = widget.NewText(
		widget.TextOpts.Text(h.EnemiesLabel(), &h.face, textColor),
	)

	labels := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: barY + barHeight + 8, Left: barX}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionStart, VerticalPosition: widget.AnchorLayoutPositionStart}),
		),
	)
	labels.AddChild(h.starsText)
	labels.AddChild(h.enemyText)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(labels)
	h.ui = &ebitenui.UI{Container: root}
}
