package renderers

import (
	"math"
	"testing"

	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/core"
	"github.com/Stan-breaks/Pixel-drifter/engine"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/parameter/visual"
	"github.com/Stan-breaks/Pixel-drifter/render"
	"github.com/Stan-breaks/Pixel-drifter/render/mocks"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
	"go.uber.org/mock/gomock"
)

// opCanvas records the kind of every draw call in order
type opCanvas struct {
	ops []string
}

func (c *opCanvas) Clear(core.RGBA)                                      { c.ops = append(c.ops, "clear") }
func (c *opCanvas) DrawCircle(int, int, float64, core.RGBA)              { c.ops = append(c.ops, "circle") }
func (c *opCanvas) DrawTriangle(int, int, int, int, int, int, core.RGBA) { c.ops = append(c.ops, "triangle") }
func (c *opCanvas) DrawText(string, int, int, int, core.RGBA)            { c.ops = append(c.ops, "text") }
func (c *opCanvas) MeasureText(text string, size int) int                { return len(text) * size / 2 }

func (c *opCanvas) count(op string) int {
	n := 0
	for _, o := range c.ops {
		if o == op {
			n++
		}
	}
	return n
}

func playingSnapshot() *engine.Snapshot {
	snap := &engine.Snapshot{
		Player: component.NewPlayer(),
		Phase:  engine.PhasePlaying,
	}
	for i := range snap.Enemies {
		snap.Enemies[i] = component.Enemy{
			Position: vmath.V(float64(100*i), 0),
			Radius:   parameter.EnemyRadius,
			Active:   true,
			Color:    visual.RgbaEnemy,
		}
	}
	return snap
}

// TestDefaultPipelinePlaying verifies the full layer stack while playing
func TestDefaultPipelinePlaying(t *testing.T) {
	o := render.NewRenderOrchestrator()
	RegisterDefaults(o)

	c := &opCanvas{}
	o.RenderFrame(c, playingSnapshot())

	if c.ops[0] != "clear" {
		t.Fatalf("Expected clear first, got %s", c.ops[0])
	}
	// Stars + player
	if got := c.count("circle"); got != parameter.StarCount+1 {
		t.Errorf("Expected %d circles, got %d", parameter.StarCount+1, got)
	}
	if got := c.count("triangle"); got != parameter.EnemyPoolSize {
		t.Errorf("Expected %d triangles, got %d", parameter.EnemyPoolSize, got)
	}
	if got := c.count("text"); got != 2 {
		t.Errorf("Expected 2 HUD lines, got %d", got)
	}

	// Stars precede player, player precedes enemies, HUD last
	last := len(c.ops) - 1
	if c.ops[last] != "text" || c.ops[last-2] != "triangle" || c.ops[parameter.StarCount+1] != "circle" {
		t.Errorf("Unexpected draw order %v", c.ops)
	}
}

// TestDefaultPipelineGameOver verifies player hidden, particles and overlay drawn
func TestDefaultPipelineGameOver(t *testing.T) {
	o := render.NewRenderOrchestrator()
	RegisterDefaults(o)

	snap := playingSnapshot()
	snap.Phase = engine.PhaseGameOver
	snap.Particles[3] = component.Particle{Position: vmath.V(5, 5), Lifetime: 0.5, Active: true, Color: visual.RgbaDeathBurst}

	c := &opCanvas{}
	o.RenderFrame(c, snap)

	// Stars + one particle, no player
	if got := c.count("circle"); got != parameter.StarCount+1 {
		t.Errorf("Expected %d circles, got %d", parameter.StarCount+1, got)
	}
	if got := c.count("triangle"); got != parameter.EnemyPoolSize {
		t.Errorf("Expected enemies drawn during game over, got %d", got)
	}
	if got := c.count("text"); got != 4 {
		t.Errorf("Expected HUD + banner + prompt, got %d texts", got)
	}
}

// TestStarsRendererAlphaAndRadius verifies brightness drives alpha and radius
func TestStarsRendererAlphaAndRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	snap := &engine.Snapshot{}
	snap.Stars[0] = component.Star{Position: vmath.V(10.4, 20.6), Brightness: 0.5}

	canvas.EXPECT().DrawCircle(10, 21, 1.5, visual.RgbaStar.WithAlpha(0.5)).Times(1)
	canvas.EXPECT().DrawCircle(0, 0, 1.0, visual.RgbaStar.WithAlpha(0)).Times(parameter.StarCount - 1)

	NewStarsRenderer().Render(snap, canvas)
}

// TestParticlesRendererSkipsInactive verifies only live particles draw, faded by lifetime
func TestParticlesRendererSkipsInactive(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	snap := &engine.Snapshot{}
	col := core.RGBA{R: 255, A: 255}
	snap.Particles[7] = component.Particle{Position: vmath.V(50, 60), Color: col, Lifetime: 0.25, Active: true}
	snap.Particles[8] = component.Particle{Position: vmath.V(70, 80), Color: col, Lifetime: 0.9, Active: false}

	canvas.EXPECT().DrawCircle(50, 60, float64(parameter.ParticleDrawRadius), col.WithAlpha(0.25)).Times(1)

	NewParticlesRenderer().Render(snap, canvas)
}

// TestEnemiesRendererHeading verifies the apex points at the player
func TestEnemiesRendererHeading(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	snap := &engine.Snapshot{Player: component.NewPlayer()}
	snap.Enemies[0] = component.Enemy{Position: vmath.V(100, 300), Radius: 10, Active: true, Color: visual.RgbaEnemy}

	canvas.EXPECT().DrawTriangle(110, 300, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), visual.RgbaEnemy).Times(1)
	canvas.EXPECT().DrawTriangle(0, 0, 0, 0, 0, 0, core.RGBA{}).Times(parameter.EnemyPoolSize - 1)

	NewEnemiesRenderer().Render(snap, canvas)
}

func TestEnemyTriangleEquilateral(t *testing.T) {
	a, b, c := enemyTriangle(vmath.V(0, 0), 10, 0.3)
	ab, bc, ca := vmath.Distance(a, b), vmath.Distance(b, c), vmath.Distance(c, a)
	if math.Abs(ab-bc) > 1e-9 || math.Abs(bc-ca) > 1e-9 {
		t.Errorf("Expected equal sides, got %v %v %v", ab, bc, ca)
	}
}

// TestPlayerRendererVisibility verifies the player only draws while playing
func TestPlayerRendererVisibility(t *testing.T) {
	r := NewPlayerRenderer()
	if !r.IsVisible(&engine.Snapshot{Phase: engine.PhasePlaying}) {
		t.Error("Expected player visible while playing")
	}
	if r.IsVisible(&engine.Snapshot{Phase: engine.PhaseGameOver}) {
		t.Error("Expected player hidden after game over")
	}

	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)
	snap := playingSnapshot()
	canvas.EXPECT().DrawCircle(400, 300, parameter.PlayerRadius, visual.RgbaPlayer).Times(1)
	r.Render(snap, canvas)
}

// TestHUDRendererText verifies score and health lines
func TestHUDRendererText(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	snap := &engine.Snapshot{Score: 30}
	snap.Player.Health = 85

	gomock.InOrder(
		canvas.EXPECT().DrawText("Score: 30", parameter.HUDMarginX, parameter.HUDScoreY, parameter.HUDFontSize, visual.RgbaHUDText),
		canvas.EXPECT().DrawText("Health: 85", parameter.HUDMarginX, parameter.HUDHealthY, parameter.HUDFontSize, visual.RgbaHUDText),
	)

	r := NewHUDRenderer()
	r.Render(snap, canvas)
	if r.Skipped != 0 {
		t.Errorf("Expected no skipped frames, got %d", r.Skipped)
	}
}

// TestHUDRendererNegativeHealth verifies health below zero still formats
func TestHUDRendererNegativeHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	snap := &engine.Snapshot{}
	snap.Player.Health = -5

	canvas.EXPECT().DrawText("Score: 0", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
	canvas.EXPECT().DrawText("Health: -5", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

	NewHUDRenderer().Render(snap, canvas)
}

// TestHUDRendererFormatFailureSkipsFrame verifies a formatting error draws nothing
func TestHUDRendererFormatFailureSkipsFrame(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)
	// No DrawText expectation: any call fails the test

	r := newHUDRenderer(4)
	r.Render(&engine.Snapshot{Score: 12345}, canvas)

	if r.Skipped != 1 {
		t.Errorf("Expected 1 skipped frame, got %d", r.Skipped)
	}
}

// TestGameOverRendererCentered verifies banner and prompt are centered on the playfield
func TestGameOverRendererCentered(t *testing.T) {
	ctrl := gomock.NewController(t)
	canvas := mocks.NewMockCanvas(ctrl)

	canvas.EXPECT().MeasureText(parameter.GameOverText, parameter.GameOverFontSize).Return(90)
	canvas.EXPECT().MeasureText(parameter.RestartPromptText, parameter.HUDFontSize).Return(180)
	gomock.InOrder(
		canvas.EXPECT().DrawText(parameter.GameOverText, 355, 260, parameter.GameOverFontSize, visual.RgbaGameOver),
		canvas.EXPECT().DrawText(parameter.RestartPromptText, 310, 320, parameter.HUDFontSize, visual.RgbaPrompt),
	)

	r := NewGameOverRenderer()
	snap := &engine.Snapshot{Phase: engine.PhaseGameOver}
	if !r.IsVisible(snap) {
		t.Fatal("Expected overlay visible after game over")
	}
	r.Render(snap, canvas)

	if r.IsVisible(&engine.Snapshot{Phase: engine.PhasePlaying}) {
		t.Error("Expected overlay hidden while playing")
	}
}
