package entity

import "github.com/younwookim/pitch/internal/domain/kinematics"

// Ball is the match ball. Unlike actors it moves in full 3D.
type Ball struct {
	Position kinematics.Vec3
	Velocity kinematics.Vec3

	// LastTouch is the last actor that kicked or pushed the ball
	LastTouch ActorID
}

// NewBall creates a resting ball at the given point
func NewBall(at kinematics.Vec3) *Ball {
	return &Ball{Position: at, LastTouch: NoActor}
}

// Speed returns the full 3D speed
func (b *Ball) Speed() float64 {
	return b.Velocity.Length()
}

// Kickable reports whether a kick may be applied. A ball already travelling
// faster than limit is locked against re-kicks until it slows down.
func (b *Ball) Kickable(limit float64) bool {
	return b.Velocity.LengthSq() <= limit*limit
}

// Reset places the ball at p with zero velocity in one step
func (b *Ball) Reset(p kinematics.Vec3) {
	b.Position = p
	b.Velocity = kinematics.Vec3{}
	b.LastTouch = NoActor
}
