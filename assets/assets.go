// Package assets embeds and loads level data. Levels are Tiled maps made of
// object layers only: Solids, Platforms, Hazards and PlayerSpawn.
package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

//go:embed levels/*.tmx
var levelFS embed.FS

// Rect is a static solid rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Platform spawn kinds.
const (
	PlatformShuttle = "shuttle"
	PlatformBounce  = "bounce"
)

// Hazard spawn kinds.
const (
	HazardPatrol = "patrol"
	HazardFaller = "faller"
)

// PlatformSpawn describes a moving platform. Shuttles use LeftBound, RightBound
// and Speed; bouncers use Amplitude and Frequency.
type PlatformSpawn struct {
	Rect
	Kind       string
	LeftBound  float64
	RightBound float64
	Speed      float64
	Amplitude  float64
	Frequency  float64
}

// HazardSpawn describes an enemy. Patrollers use LeftBound, RightBound and
// Speed; fallers use Gravity.
type HazardSpawn struct {
	Rect
	Kind       string
	LeftBound  float64
	RightBound float64
	Speed      float64
	Gravity    float64
}

// Level is a fully parsed scene description, ready to hand to the factories.
type Level struct {
	Name   string
	Width  float64
	Height float64

	SpawnX float64
	SpawnY float64

	Solids    []Rect
	Platforms []PlatformSpawn
	Hazards   []HazardSpawn
}

// LoadLevel parses a single TMX file from the embedded filesystem.
func LoadLevel(path string) (*Level, error) {
	return loadLevelFS(levelFS, path)
}

// LoadAllLevels discovers every embedded .tmx, sorted by name.
func LoadAllLevels() ([]Level, error) {
	matches, err := fs.Glob(levelFS, "levels/*.tmx")
	if err != nil {
		return nil, fmt.Errorf("glob levels: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files embedded under levels/")
	}
	sort.Strings(matches)

	levels := make([]Level, 0, len(matches))
	for _, path := range matches {
		level, err := loadLevelFS(levelFS, path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels = append(levels, *level)
	}
	return levels, nil
}

func loadLevelFS(fsys fs.FS, path string) (*Level, error) {
	levelMap, err := tiled.LoadFile(path, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", path, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(path), ".tmx"),
		Width:  float64(levelMap.Width * levelMap.TileWidth),
		Height: float64(levelMap.Height * levelMap.TileHeight),
	}

	spawnSeen := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Solids":
			for _, o := range og.Objects {
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}

		case "Platforms":
			for _, o := range og.Objects {
				p := PlatformSpawn{
					Rect:       Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind:       o.Properties.GetString("kind"),
					LeftBound:  o.Properties.GetFloat("leftBound"),
					RightBound: o.Properties.GetFloat("rightBound"),
					Speed:      o.Properties.GetFloat("speed"),
					Amplitude:  o.Properties.GetFloat("amplitude"),
					Frequency:  o.Properties.GetFloat("frequency"),
				}
				if p.Kind != PlatformShuttle && p.Kind != PlatformBounce {
					return nil, fmt.Errorf("%s: platform %q has unknown kind %q", path, o.Name, p.Kind)
				}
				level.Platforms = append(level.Platforms, p)
			}

		case "Hazards":
			for _, o := range og.Objects {
				h := HazardSpawn{
					Rect:       Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height},
					Kind:       o.Properties.GetString("kind"),
					LeftBound:  o.Properties.GetFloat("leftBound"),
					RightBound: o.Properties.GetFloat("rightBound"),
					Speed:      o.Properties.GetFloat("speed"),
					Gravity:    o.Properties.GetFloat("gravity"),
				}
				if h.Kind != HazardPatrol && h.Kind != HazardFaller {
					return nil, fmt.Errorf("%s: hazard %q has unknown kind %q", path, o.Name, h.Kind)
				}
				level.Hazards = append(level.Hazards, h)
			}

		case "PlayerSpawn":
			if len(og.Objects) > 0 {
				level.SpawnX = og.Objects[0].X
				level.SpawnY = og.Objects[0].Y
				spawnSeen = true
			}
		}
	}

	if !spawnSeen {
		return nil, fmt.Errorf("%s: no PlayerSpawn object group", path)
	}
	if len(level.Solids) == 0 {
		return nil, fmt.Errorf("%s: no Solids object group", path)
	}
	return level, nil
}
