package systems

import (
	"fmt"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/fonts"
	"github.com/automoto/alienrun/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin = 10
	hudLine   = 22
)

// DrawHUD renders the deaths counter and the control hints.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	ctrl := components.Controller.Get(playerEntry)

	hudFont := fonts.HUD.Get()
	text.Draw(screen, fmt.Sprintf("DEATHS %d", ctrl.Deaths), hudFont, hudMargin, hudMargin+hudLine, cfg.White)

	hintFont := fonts.Small.Get()
	hint := "ARROWS/WASD move   SPACE jump   ESC pause   F1 debug"
	text.Draw(screen, hint, hintFont, hudMargin, screen.Bounds().Dy()-hudMargin, cfg.White)
}
