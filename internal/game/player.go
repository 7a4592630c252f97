package game

import (
	"math"

	"github.com/hexaflare/voxelview/internal/engine/render"
)

// HeightSampler is the terrain lookup the player needs for collision.
type HeightSampler interface {
	SampleHeight(x, y int) uint8
}

// Controls is the per-frame movement intent, already decoded from input.
type Controls struct {
	Forward   bool
	Backward  bool
	TurnLeft  bool
	TurnRight bool
	Rise      bool
	Sink      bool
	LookUp    bool
	LookDown  bool
}

// Player owns the camera pose and applies movement with terrain collision.
type Player struct {
	Pose render.Pose

	MoveSpeed  float64 // world units per second
	TurnSpeed  float64 // radians per second
	ClimbSpeed float64 // elevation units per second
	PitchSpeed float64 // horizon pixels per second
	Clearance  float64 // minimum eye height above terrain
}

// Update advances the pose by dt seconds of held controls, then pushes the
// eye up if the terrain under the camera rose above it.
func (p *Player) Update(dt float64, c Controls, t HeightSampler) {
	if c.TurnLeft {
		p.Pose.Yaw += p.TurnSpeed * dt
	}
	if c.TurnRight {
		p.Pose.Yaw -= p.TurnSpeed * dt
	}

	// The view looks along (-sin(yaw), -cos(yaw)).
	sinYaw, cosYaw := math.Sincos(p.Pose.Yaw)
	if c.Forward {
		p.Pose.X -= sinYaw * p.MoveSpeed * dt
		p.Pose.Y -= cosYaw * p.MoveSpeed * dt
	}
	if c.Backward {
		p.Pose.X += sinYaw * p.MoveSpeed * dt
		p.Pose.Y += cosYaw * p.MoveSpeed * dt
	}

	if c.Rise {
		p.Pose.Height += p.ClimbSpeed * dt
	}
	if c.Sink {
		p.Pose.Height -= p.ClimbSpeed * dt
	}
	if c.LookUp {
		p.Pose.Horizon += p.PitchSpeed * dt
	}
	if c.LookDown {
		p.Pose.Horizon -= p.PitchSpeed * dt
	}

	ground := float64(t.SampleHeight(int(p.Pose.X), int(p.Pose.Y)))
	if p.Pose.Height < ground+p.Clearance {
		p.Pose.Height = ground + p.Clearance
	}
}
