package systems

import (
	"math"
	"testing"

	"github.com/automoto/alienrun/assets"
	"github.com/automoto/alienrun/components"
	"github.com/automoto/alienrun/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b components.BodyData
		want bool
	}{
		{
			"overlapping",
			components.BodyData{X: 0, Y: 0, W: 10, H: 10},
			components.BodyData{X: 5, Y: 5, W: 10, H: 10},
			true,
		},
		{
			"edge touch is not overlap",
			components.BodyData{X: 0, Y: 0, W: 10, H: 10},
			components.BodyData{X: 10, Y: 0, W: 10, H: 10},
			false,
		},
		{
			"corner touch is not overlap",
			components.BodyData{X: 0, Y: 0, W: 10, H: 10},
			components.BodyData{X: 10, Y: 10, W: 10, H: 10},
			false,
		},
		{
			"separated",
			components.BodyData{X: 0, Y: 0, W: 10, H: 10},
			components.BodyData{X: 30, Y: 0, W: 10, H: 10},
			false,
		},
		{
			"contained",
			components.BodyData{X: 0, Y: 0, W: 100, H: 100},
			components.BodyData{X: 40, Y: 40, W: 10, H: 10},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(&tt.a, &tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Symmetric
			if got := Overlaps(&tt.b, &tt.a); got != tt.want {
				t.Errorf("Overlaps reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveMoverCollisionLandsOnTop(t *testing.T) {
	mover := components.BodyData{X: 0, Y: 9, W: 10, H: 10, VelY: 5, Active: true}
	platform := components.BodyData{X: 0, Y: 10, W: 20, H: 5, Active: true}

	landed := ResolveMoverCollision(&mover, &platform, 0)

	if !landed {
		t.Fatal("expected a top landing")
	}
	if mover.Y != 0 {
		t.Errorf("mover.Y = %v, want 0 (snapped to platform top minus height)", mover.Y)
	}
	if mover.VelY != 0 {
		t.Errorf("mover.VelY = %v, want 0", mover.VelY)
	}
}

func TestResolveMoverCollisionHorizontalPush(t *testing.T) {
	mover := components.BodyData{X: 95, Y: 0, W: 10, H: 10, VelX: 5, Active: true}
	wall := components.BodyData{X: 100, Y: 0, W: 10, H: 50, Active: true}

	landed := ResolveMoverCollision(&mover, &wall, 0)

	if landed {
		t.Fatal("horizontal push must not report a landing")
	}
	if mover.X != 90 {
		t.Errorf("mover.X = %v, want 90 (flush against the wall's left face)", mover.X)
	}
	if mover.VelX != 0 {
		t.Errorf("mover.VelX = %v, want 0", mover.VelX)
	}
	if mover.Y != 0 {
		t.Errorf("mover.Y = %v, want unchanged", mover.Y)
	}
}

func TestResolveMoverCollisionFromBelow(t *testing.T) {
	mover := components.BodyData{X: 0, Y: 48, W: 10, H: 10, VelY: -5, Active: true}
	ceiling := components.BodyData{X: 0, Y: 30, W: 50, H: 20, Active: true}

	landed := ResolveMoverCollision(&mover, &ceiling, 0)

	if landed {
		t.Fatal("hitting a ceiling must not report a landing")
	}
	if mover.Y != 50 {
		t.Errorf("mover.Y = %v, want 50 (pushed below the ceiling)", mover.Y)
	}
	if mover.VelY != 0 {
		t.Errorf("mover.VelY = %v, want 0", mover.VelY)
	}
}

func TestResolveMoverCollisionTiePrefersVertical(t *testing.T) {
	// Equal 5px penetration on both axes while moving down-right.
	mover := components.BodyData{X: 95, Y: 95, W: 10, H: 10, VelX: 1, VelY: 1, Active: true}
	obstacle := components.BodyData{X: 100, Y: 100, W: 50, H: 50, Active: true}

	landed := ResolveMoverCollision(&mover, &obstacle, 0)

	if !landed {
		t.Fatal("tie must resolve vertically, landing on top")
	}
	if mover.Y != 90 {
		t.Errorf("mover.Y = %v, want 90", mover.Y)
	}
	if mover.X != 95 {
		t.Errorf("mover.X = %v, want 95 (horizontal untouched)", mover.X)
	}
	if mover.VelX != 1 {
		t.Errorf("mover.VelX = %v, want 1 (horizontal velocity kept)", mover.VelX)
	}
}

func TestResolveMoverCollisionStationaryMover(t *testing.T) {
	mover := components.BodyData{X: 5, Y: 5, W: 10, H: 10, Active: true}
	obstacle := components.BodyData{X: 0, Y: 0, W: 50, H: 50, Active: true}

	if ResolveMoverCollision(&mover, &obstacle, 0) {
		t.Fatal("stationary mover must not be resolved")
	}
	if mover.X != 5 || mover.Y != 5 {
		t.Errorf("mover moved to (%v,%v), want (5,5)", mover.X, mover.Y)
	}
}

func TestResolveMoverCollisionCarriesOnLanding(t *testing.T) {
	mover := components.BodyData{X: 0, Y: 9, W: 10, H: 10, VelY: 5, Active: true}
	platform := components.BodyData{X: 0, Y: 10, W: 20, H: 5, Active: true}

	if !ResolveMoverCollision(&mover, &platform, 3) {
		t.Fatal("expected a top landing")
	}
	if mover.X != 3 {
		t.Errorf("mover.X = %v, want 3 (carried by the platform's displacement)", mover.X)
	}
}

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

func createTestLevel(e *ecs.ECS, obstacles ...*donburi.Entry) {
	entities := make([]donburi.Entity, 0, len(obstacles))
	for _, o := range obstacles {
		entities = append(entities, o.Entity())
	}
	levelEntry := e.World.Entry(e.World.Create(components.Level))
	components.Level.SetValue(levelEntry, components.LevelData{Obstacles: entities})
}

func TestFirstOverlappingHazardWins(t *testing.T) {
	e := newTestECS()

	spawn := &assets.Level{SpawnX: 500, SpawnY: 500, Height: 1000}
	player := factory.CreatePlayer(e, spawn)
	body := components.Body.Get(player)
	body.X, body.Y = 100, 100
	body.PrevX, body.PrevY = 100, 100

	hazardA := factory.CreatePatrolEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 105, Y: 100, W: 24, H: 32}, Kind: assets.HazardPatrol,
	})
	hazardB := factory.CreatePatrolEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 95, Y: 100, W: 24, H: 32}, Kind: assets.HazardPatrol,
	})
	createTestLevel(e, hazardA, hazardB)

	UpdateCollisions(e)

	ctrl := components.Controller.Get(player)
	if ctrl.Deaths != 1 {
		t.Fatalf("Deaths = %d, want 1 (first hit kills, rest of the pass abandoned)", ctrl.Deaths)
	}
	if body.X != 500 || body.Y != 500 {
		t.Errorf("player at (%v,%v), want respawn at (500,500)", body.X, body.Y)
	}
}

func TestHazardBeforeSolidSkipsResolution(t *testing.T) {
	e := newTestECS()

	spawn := &assets.Level{SpawnX: 500, SpawnY: 500, Height: 1000}
	player := factory.CreatePlayer(e, spawn)
	body := components.Body.Get(player)
	// Overlapping both a hazard and a solid; hazard is first in the list.
	body.X, body.Y = 100, 165
	body.PrevX, body.PrevY = 100, 165
	body.VelY = 5

	hazard := factory.CreatePatrolEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 90, Y: 170, W: 24, H: 32}, Kind: assets.HazardPatrol,
	})
	ground := factory.CreateWall(e, 0, 200, 400, 40)
	createTestLevel(e, hazard, ground)

	UpdateCollisions(e)

	ctrl := components.Controller.Get(player)
	if ctrl.Deaths != 1 {
		t.Fatalf("Deaths = %d, want 1", ctrl.Deaths)
	}
	if ctrl.Grounded {
		t.Error("the kill must abandon the pass before the solid grounds the player")
	}
	if body.X != 500 || body.Y != 500 {
		t.Errorf("player at (%v,%v), want respawn at (500,500)", body.X, body.Y)
	}
}

func TestLandingOnShuttleAttaches(t *testing.T) {
	e := newTestECS()

	spawn := &assets.Level{SpawnX: 140, SpawnY: 161, Height: 10000}
	player := factory.CreatePlayer(e, spawn)
	body := components.Body.Get(player)
	body.VelY = 25
	body.Y = 161.5 // bottom just below the platform top

	platform := factory.CreateShuttlePlatform(e, assets.PlatformSpawn{
		Rect: assets.Rect{X: 100, Y: 200, W: 120, H: 20}, Kind: assets.PlatformShuttle,
		LeftBound: 0, RightBound: 1000, Speed: 180,
	})
	createTestLevel(e, platform)

	UpdateCollisions(e)

	ctrl := components.Controller.Get(player)
	if !ctrl.Grounded || !ctrl.OnPlatform || !ctrl.Attached {
		t.Fatalf("landing state = grounded %v onPlatform %v attached %v, want all true",
			ctrl.Grounded, ctrl.OnPlatform, ctrl.Attached)
	}
	if ctrl.AttachedPlatform != platform.Entity() {
		t.Error("attached to the wrong platform")
	}
	if body.Y != 160 {
		t.Errorf("player.Y = %v, want 160 (resting on the platform top)", body.Y)
	}
}

func TestLandingOnWallGroundsWithoutAttach(t *testing.T) {
	e := newTestECS()

	spawn := &assets.Level{SpawnX: 100, SpawnY: 161, Height: 10000}
	player := factory.CreatePlayer(e, spawn)
	body := components.Body.Get(player)
	body.VelY = 25
	body.Y = 161.5

	ground := factory.CreateWall(e, 0, 201, 400, 40)
	createTestLevel(e, ground)

	UpdateCollisions(e)

	ctrl := components.Controller.Get(player)
	if !ctrl.Grounded {
		t.Fatal("expected the player to be grounded")
	}
	if ctrl.OnPlatform || ctrl.Attached {
		t.Error("static solids must not attach the player")
	}
	if body.Y != 161 {
		t.Errorf("player.Y = %v, want 161", body.Y)
	}
}

// Riding a shuttle follows its displacement with a one frame lag: +3 per frame
// at 180 px/s and a 1/60 step, starting the frame after the landing frame's
// in-resolution carry.
func TestShuttleCarriesRidingPlayer(t *testing.T) {
	e := newTestECS()

	spawn := &assets.Level{SpawnX: 140, SpawnY: 161, Height: 10000}
	player := factory.CreatePlayer(e, spawn)

	platform := factory.CreateShuttlePlatform(e, assets.PlatformSpawn{
		Rect: assets.Rect{X: 100, Y: 200, W: 120, H: 20}, Kind: assets.PlatformShuttle,
		LeftBound: 0, RightBound: 1000, Speed: 180,
	})
	createTestLevel(e, platform)

	step := func() {
		UpdatePlayer(e)
		UpdateBodies(e)
		UpdateShuttles(e)
		UpdateCollisions(e)
	}

	body := components.Body.Get(player)
	ctrl := components.Controller.Get(player)

	// Frame 1: fall onto the platform; the landing itself carries the player
	// by the platform's displacement this frame.
	step()
	if !ctrl.Attached {
		t.Fatal("expected attachment on the landing frame")
	}
	if body.X != 143 {
		t.Fatalf("frame 1: player.X = %v, want 143", body.X)
	}

	// Frame 2: the controller sees the platform position from before this
	// frame's move, so the carry lags one frame.
	step()
	if body.X != 143 {
		t.Fatalf("frame 2: player.X = %v, want 143 (one frame lag)", body.X)
	}

	// From frame 3 on, steady riding: +3 per frame.
	for i, want := range []float64{146, 149} {
		step()
		if math.Abs(body.X-want) > 1e-9 {
			t.Fatalf("frame %d: player.X = %v, want %v", i+3, body.X, want)
		}
	}
	if body.VelX != 0 {
		t.Errorf("riding player VelX = %v, want 0", body.VelX)
	}
}

func TestSettleHazardOnSolid(t *testing.T) {
	e := newTestECS()

	faller := factory.CreateFallingEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 100, Y: 90, W: 24, H: 32}, Kind: assets.HazardFaller, Gravity: 1400,
	})
	fallerBody := components.Body.Get(faller)
	fallerBody.VelY = 300

	ground := factory.CreateWall(e, 0, 100, 300, 50)
	createTestLevel(e, faller, ground)

	UpdateCollisions(e)

	if fallerBody.Y != 68 {
		t.Errorf("faller.Y = %v, want 68 (resting on the solid top)", fallerBody.Y)
	}
	if fallerBody.VelY != 0 {
		t.Errorf("faller.VelY = %v, want 0", fallerBody.VelY)
	}
}

func TestSettleIgnoresHazardFromBelow(t *testing.T) {
	e := newTestECS()

	faller := factory.CreateFallingEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 100, Y: 130, W: 24, H: 32}, Kind: assets.HazardFaller, Gravity: 1400,
	})
	fallerBody := components.Body.Get(faller)
	fallerBody.VelY = -50

	ground := factory.CreateWall(e, 0, 100, 300, 50)
	createTestLevel(e, faller, ground)

	UpdateCollisions(e)

	if fallerBody.Y != 130 {
		t.Errorf("faller.Y = %v, want 130 (untouched when deeper from below)", fallerBody.Y)
	}
	if fallerBody.VelY != -50 {
		t.Errorf("faller.VelY = %v, want -50", fallerBody.VelY)
	}
}

func TestPatrollersDoNotSettle(t *testing.T) {
	e := newTestECS()

	patroller := factory.CreatePatrolEnemy(e, assets.HazardSpawn{
		Rect: assets.Rect{X: 100, Y: 90, W: 24, H: 32}, Kind: assets.HazardPatrol,
		LeftBound: 0, RightBound: 300, Speed: 80,
	})
	patrolBody := components.Body.Get(patroller)

	ground := factory.CreateWall(e, 0, 100, 300, 50)
	createTestLevel(e, patroller, ground)

	UpdateCollisions(e)

	if patrolBody.Y != 90 {
		t.Errorf("patroller.Y = %v, want 90 (settling applies to gravity-bearing hazards only)", patrolBody.Y)
	}
}
