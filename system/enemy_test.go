package system

import (
	"math"
	"testing"

	"github.com/Stan-breaks/Pixel-drifter/component"
	"github.com/Stan-breaks/Pixel-drifter/parameter"
	"github.com/Stan-breaks/Pixel-drifter/vmath"
)

func TestSpawnEnemyOutsideEdge(t *testing.T) {
	rng := vmath.NewFastRand(99)
	for i := 0; i < 1000; i++ {
		e := SpawnEnemy(rng)
		if !e.Active {
			t.Fatal("spawned enemy must be active")
		}
		if e.Radius != parameter.EnemyRadius {
			t.Fatalf("radius = %v, want %v", e.Radius, parameter.EnemyRadius)
		}
		if e.Speed < parameter.EnemyMinSpeed || e.Speed >= parameter.EnemyMaxSpeed {
			t.Fatalf("speed %v outside [2,4)", e.Speed)
		}
		p := e.Position
		inside := p.X >= 0 && p.X <= parameter.PlayfieldWidth && p.Y >= 0 && p.Y <= parameter.PlayfieldHeight
		if inside {
			t.Fatalf("spawn %v is inside the playfield", p)
		}
	}
}

func TestSpawnEnemyAtEachEdge(t *testing.T) {
	rng := vmath.NewFastRand(5)
	tests := []struct {
		edge  Edge
		check func(vmath.Vec2) bool
	}{
		{EdgeTop, func(p vmath.Vec2) bool { return p.Y == -parameter.EnemyRadius }},
		{EdgeRight, func(p vmath.Vec2) bool { return p.X == parameter.PlayfieldWidth+parameter.EnemyRadius }},
		{EdgeBottom, func(p vmath.Vec2) bool { return p.Y == parameter.PlayfieldHeight+parameter.EnemyRadius }},
		{EdgeLeft, func(p vmath.Vec2) bool { return p.X == -parameter.EnemyRadius }},
	}
	for _, tt := range tests {
		e := SpawnEnemyAt(tt.edge, rng)
		if !tt.check(e.Position) {
			t.Errorf("edge %d spawned at %v", tt.edge, e.Position)
		}
	}
}

func TestSpawnEnemyCoversAllEdges(t *testing.T) {
	rng := vmath.NewFastRand(1234)
	seen := map[string]bool{}
	for i := 0; i < 400; i++ {
		p := SpawnEnemy(rng).Position
		switch {
		case p.Y < 0:
			seen["top"] = true
		case p.Y > parameter.PlayfieldHeight:
			seen["bottom"] = true
		case p.X < 0:
			seen["left"] = true
		case p.X > parameter.PlayfieldWidth:
			seen["right"] = true
		}
	}
	if len(seen) != 4 {
		t.Errorf("edges seen = %v, want all four", seen)
	}
}

func TestUpdateEnemiesHomes(t *testing.T) {
	rng := vmath.NewFastRand(1)
	player := component.NewPlayer()
	enemies := []component.Enemy{
		{Position: vmath.V(100, 300), Speed: 3, Radius: 10, Active: true},
	}

	bounty := UpdateEnemies(enemies, &player, rng)
	if bounty != 0 {
		t.Errorf("bounty = %d, want 0", bounty)
	}
	if got := enemies[0].Position; math.Abs(got.X-103) > 1e-9 || got.Y != 300 {
		t.Errorf("position = %v, want {103 300}", got)
	}
}

func TestUpdateEnemiesZeroDistance(t *testing.T) {
	rng := vmath.NewFastRand(1)
	player := component.NewPlayer()
	enemies := []component.Enemy{
		{Position: player.Position, Speed: 3, Radius: 10, Active: true},
	}

	UpdateEnemies(enemies, &player, rng)
	got := enemies[0].Position
	if got != player.Position {
		t.Errorf("enemy at player moved to %v", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatal("enemy position became NaN")
	}
}

func TestUpdateEnemiesRecyclesOutOfBounds(t *testing.T) {
	rng := vmath.NewFastRand(77)
	// Player far left, enemy beyond right margin moving toward it still ends outside
	player := component.NewPlayer()
	player.Position = vmath.V(860, 300)
	enemies := []component.Enemy{
		{Position: vmath.V(851, 300), Speed: 0.5, Radius: 10, Active: true},
		{Position: vmath.V(400, 300), Speed: 2, Radius: 10, Active: true},
	}

	bounty := UpdateEnemies(enemies, &player, rng)
	if bounty != parameter.EnemyBounty {
		t.Fatalf("bounty = %d, want %d", bounty, parameter.EnemyBounty)
	}

	e := enemies[0]
	if !e.Active {
		t.Error("recycled slot must stay active")
	}
	if e.Position.X > parameter.PlayfieldWidth+parameter.OffscreenMargin {
		t.Errorf("recycled enemy still at %v", e.Position)
	}
	if e.Speed < parameter.EnemyMinSpeed || e.Speed >= parameter.EnemyMaxSpeed {
		t.Errorf("recycled speed %v outside spawn range", e.Speed)
	}
}

func TestUpdateEnemiesRespawnsInactiveSlot(t *testing.T) {
	rng := vmath.NewFastRand(3)
	player := component.NewPlayer()
	enemies := make([]component.Enemy, parameter.EnemyPoolSize)

	bounty := UpdateEnemies(enemies, &player, rng)
	if bounty != 0 {
		t.Errorf("bounty for inactive respawn = %d, want 0", bounty)
	}
	for i, e := range enemies {
		if !e.Active {
			t.Errorf("slot %d still inactive", i)
		}
	}
}

func TestRespawnAll(t *testing.T) {
	rng := vmath.NewFastRand(8)
	enemies := make([]component.Enemy, parameter.EnemyPoolSize)
	for i := range enemies {
		enemies[i] = component.Enemy{Position: vmath.V(400, 300), Active: true}
	}

	RespawnAll(enemies, rng)
	for i, e := range enemies {
		if e.Position == vmath.V(400, 300) {
			t.Errorf("slot %d not respawned", i)
		}
		if !e.Active {
			t.Errorf("slot %d inactive after respawn", i)
		}
	}
}
