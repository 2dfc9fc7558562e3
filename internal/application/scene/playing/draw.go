package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/pitch/internal/application/state"
	"github.com/younwookim/pitch/internal/domain/entity"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{20, 70, 20, 255}
	colorGrass   = color.RGBA{34, 139, 34, 255}
	colorLine    = color.RGBA{235, 235, 235, 255}
	colorGoal    = color.RGBA{255, 255, 255, 140}
	colorBall    = color.RGBA{255, 255, 255, 255}
	colorShadow  = color.RGBA{0, 0, 0, 90}
	colorCursor  = color.RGBA{255, 230, 0, 255}
	colorMarker  = color.RGBA{255, 255, 255, 160}
	colorOverlay = color.RGBA{0, 0, 0, 128}

	// Team shirts, then the highlight for the human-controlled actor
	colorTeam       = [entity.TeamCount]color.RGBA{{40, 70, 220, 255}, {210, 40, 40, 255}}
	colorTeamActive = [entity.TeamCount]color.RGBA{{0, 160, 255, 255}, {255, 140, 0, 255}}
)

const (
	actorRadius = 0.6
	ballRadius  = 0.4
)

// view maps pitch coordinates to screen pixels: the centre spot sits in the
// middle of the screen and +Z points up
type view struct {
	cx, cy float32
	ppu    float32
}

func (p *Playing) viewport(screen *ebiten.Image) view {
	b := screen.Bounds()
	return view{
		cx:  float32(b.Dx()) / 2,
		cy:  float32(b.Dy()) / 2,
		ppu: float32(p.config.Match.Display.PixelsPerUnit),
	}
}

func (v view) point(x, z float64) (float32, float32) {
	return v.cx + float32(x)*v.ppu, v.cy - float32(z)*v.ppu
}

func (v view) length(d float64) float32 {
	return float32(d) * v.ppu
}

// Draw renders the pitch, the actors, the ball and the HUD
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	v := p.viewport(screen)

	p.drawField(screen, v)
	p.drawActors(screen, v)
	p.drawBall(screen, v)
	p.drawHUD(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED - Esc to resume")
	case state.StateGoalFreeze:
		p.drawOverlay(screen, fmt.Sprintf("GOAL! %s", p.score.LastScorer))
	case state.StateFullTime:
		p.drawOverlay(screen, fmt.Sprintf("FULL TIME  %s  - Esc to quit", p.score.String()))
	}
}

func (p *Playing) drawField(screen *ebiten.Image, v view) {
	field := p.config.Match.Field
	hw, hd := field.HalfWidth(), field.HalfDepth()

	x0, y0 := v.point(-hw, hd)
	vector.DrawFilledRect(screen, x0, y0, v.length(field.Width), v.length(field.Depth), colorGrass, false)
	vector.StrokeRect(screen, x0, y0, v.length(field.Width), v.length(field.Depth), 2, colorLine, false)

	// Halfway line and centre circle
	lx0, ly := v.point(-hw, 0)
	lx1, _ := v.point(hw, 0)
	vector.StrokeLine(screen, lx0, ly, lx1, ly, 2, colorLine, false)
	vector.StrokeCircle(screen, v.cx, v.cy, v.length(field.GoalWidth*0.65), 2, colorLine, true)

	// Goal mouths sit one unit behind each end line; the keeper save box
	// reaches inward from it
	keeper := p.config.Match.AI.Keeper
	for _, team := range []entity.Team{entity.TeamHome, entity.TeamAway} {
		c := field.GoalCenter(team)
		goalTop, boxTop := c.Z, c.Z+keeper.SaveBoxDepth
		if c.Z > 0 {
			goalTop, boxTop = c.Z+1, c.Z
		}

		gx, gy := v.point(-field.HalfGoalWidth(), goalTop)
		vector.DrawFilledRect(screen, gx, gy, v.length(field.GoalWidth), v.length(1), colorGoal, false)

		bx, by := v.point(-keeper.SaveBoxWidth/2, boxTop)
		vector.StrokeRect(screen, bx, by, v.length(keeper.SaveBoxWidth), v.length(keeper.SaveBoxDepth), 1, colorLine, false)
	}
}

func (p *Playing) drawActors(screen *ebiten.Image, v view) {
	controlled := p.match.Controlled()
	for _, a := range p.match.Actors() {
		x, y := v.point(a.Position.X, a.Position.Z)
		r := v.length(actorRadius)

		c := colorTeam[a.Team]
		if a == controlled {
			c = colorTeamActive[a.Team]
			vector.StrokeCircle(screen, x, y, r*2, 2, colorCursor, true)
		}
		if a == p.match.Marker(a.Team) {
			vector.StrokeCircle(screen, x, y, r*1.5, 1, colorMarker, true)
		}
		vector.DrawFilledCircle(screen, x, y, r, c, true)

		// Facing tick
		fx, fy := v.point(
			a.Position.X+math.Sin(a.Facing)*actorRadius*1.6,
			a.Position.Z+math.Cos(a.Facing)*actorRadius*1.6,
		)
		vector.StrokeLine(screen, x, y, fx, fy, 2, colorLine, true)

		ebitenutil.DebugPrintAt(screen, a.Label(), int(x)+int(r)+1, int(y)-8)
	}
}

func (p *Playing) drawBall(screen *ebiten.Image, v view) {
	ball := p.match.Ball()
	x, y := v.point(ball.Position.X, ball.Position.Z)

	// The shadow stays on the ground; the ball rises toward the top of the
	// screen with height
	ground := p.config.Match.Ball.GroundHeight
	lift := v.length(math.Max(0, ball.Position.Y-ground) * 0.5)
	vector.DrawFilledCircle(screen, x, y, v.length(ballRadius), colorShadow, true)
	vector.DrawFilledCircle(screen, x, y-lift, v.length(ballRadius), colorBall, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	controlled := "AI"
	if a := p.match.Controlled(); a != nil {
		controlled = a.Label()
	}
	seconds := float64(p.match.Tick()) / float64(p.config.Match.Display.Framerate)
	hud := fmt.Sprintf("%s   %s   control %s   tick %d",
		p.score.String(), formatClock(seconds), controlled, p.match.Tick())
	ebitenutil.DebugPrintAt(screen, hud, 10, 4)

	help := "WASD move  SPACE kick  TAB switch  ESC pause"
	switch {
	case p.recorder == nil:
	case p.recorder.IsRecording():
		help += fmt.Sprintf("  F5 save [REC %d]", p.recorder.FrameCount())
	default:
		help += fmt.Sprintf("  [%d frames]", p.recorder.FrameCount())
	}
	ebitenutil.DebugPrintAt(screen, help, 10, screen.Bounds().Dy()-18)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), colorOverlay, false)
	ebitenutil.DebugPrintAt(screen, text, b.Dx()/2-len(text)*3, b.Dy()/2-8)
}

// formatClock renders elapsed match time as mm:ss
func formatClock(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
