package system

import (
	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/input"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

// UpdatePlayer applies one frame of directional movement and clamps the player inside the playfield
func UpdatePlayer(p *component.Player, in input.State) {
	dx, dy := in.Axis()
	move := vmath.V(dx, dy)

	// Diagonal input must not outrun axis-aligned input
	if dx != 0 && dy != 0 {
		move = move.Scale(parameter.DiagonalFactor)
	}

	p.Position = p.Position.Add(move.Scale(p.Speed))
	p.Position = vmath.ClampToRect(p.Position, p.Radius, parameter.PlayfieldWidth, parameter.PlayfieldHeight)
}
