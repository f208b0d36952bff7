package assets

import "testing"

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel("levels/level1.tmx")
	if err != nil {
		t.Fatalf("LoadLevel error: %v", err)
	}

	if level.Name != "level1" {
		t.Errorf("Name = %q, want level1", level.Name)
	}
	if level.Width != 1920 || level.Height != 640 {
		t.Errorf("size = %vx%v, want 1920x640", level.Width, level.Height)
	}
	if level.SpawnX != 64 || level.SpawnY != 500 {
		t.Errorf("spawn = (%v,%v), want (64,500)", level.SpawnX, level.SpawnY)
	}

	if len(level.Solids) != 6 {
		t.Fatalf("len(Solids) = %d, want 6", len(level.Solids))
	}
	if got := level.Solids[0]; got != (Rect{X: 0, Y: 576, W: 960, H: 64}) {
		t.Errorf("Solids[0] = %+v", got)
	}

	if len(level.Platforms) != 2 {
		t.Fatalf("len(Platforms) = %d, want 2", len(level.Platforms))
	}
	shuttle := level.Platforms[0]
	if shuttle.Kind != PlatformShuttle {
		t.Errorf("Platforms[0].Kind = %q, want %q", shuttle.Kind, PlatformShuttle)
	}
	if shuttle.LeftBound != 608 || shuttle.RightBound != 928 || shuttle.Speed != 96 {
		t.Errorf("shuttle params = %+v", shuttle)
	}
	bouncer := level.Platforms[1]
	if bouncer.Kind != PlatformBounce {
		t.Errorf("Platforms[1].Kind = %q, want %q", bouncer.Kind, PlatformBounce)
	}
	if bouncer.Amplitude != 48 || bouncer.Frequency != 2 {
		t.Errorf("bouncer params = %+v", bouncer)
	}

	if len(level.Hazards) != 3 {
		t.Fatalf("len(Hazards) = %d, want 3", len(level.Hazards))
	}
	wantKinds := []string{HazardPatrol, HazardFaller, HazardPatrol}
	for i, want := range wantKinds {
		if level.Hazards[i].Kind != want {
			t.Errorf("Hazards[%d].Kind = %q, want %q", i, level.Hazards[i].Kind, want)
		}
	}
	if level.Hazards[1].Gravity != 1400 {
		t.Errorf("faller gravity = %v, want 1400", level.Hazards[1].Gravity)
	}
}

func TestLoadAllLevels(t *testing.T) {
	levels, err := LoadAllLevels()
	if err != nil {
		t.Fatalf("LoadAllLevels error: %v", err)
	}
	if len(levels) == 0 {
		t.Fatal("no levels loaded")
	}
}

func TestLoadLevelMissing(t *testing.T) {
	if _, err := LoadLevel("levels/missing.tmx"); err == nil {
		t.Fatal("expected an error for a missing level")
	}
}
