package systems

import (
	"fmt"
	"os"

	"github.com/automoto/alienrun/components"
	cfg "github.com/automoto/alienrun/config"
	"github.com/automoto/alienrun/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMenu creates an UpdateMenu system with scene transition capability
func NewUpdateMenu(sceneChanger SceneChanger, createPlatformerScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		// Navigate menu with wrap-around
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch menu.Options[menu.SelectedIndex] {
			case components.MainMenuStart:
				sceneChanger.ChangeScene(createPlatformerScene())
			case components.MainMenuDebug:
				settings := GetOrCreateSettings(e)
				settings.Debug = !settings.Debug
				SaveCurrentSettings(settings)
			case components.MainMenuFullscreen:
				settings := GetOrCreateSettings(e)
				settings.Fullscreen = !settings.Fullscreen
				ebiten.SetFullscreen(settings.Fullscreen)
				SaveCurrentSettings(settings)
			case components.MainMenuExit:
				os.Exit(0)
			}
		}

		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// GetOrCreateMenu returns the singleton menu component.
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Options: []components.MenuOption{
				components.MainMenuStart,
				components.MainMenuDebug,
				components.MainMenuFullscreen,
				components.MainMenuExit,
			},
		})
	}
	return components.Menu.Get(entry)
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	settings := GetOrCreateSettings(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.Menu.BackgroundColor, false)

	titleFont := fonts.Title.Get()
	title := cfg.Menu.Title
	titleWidth := len(title) * 20 // Approximate width for the title font
	titleX := (int(width) - titleWidth) / 2
	text.Draw(screen, title, titleFont, titleX, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Menu.Get()
	for i, option := range menu.Options {
		label := menuLabel(option, settings)
		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorActive
			label = "> " + label
		}
		x := int(width)/2 - 90
		y := cfg.Menu.MenuStartY + float64(i)*cfg.Menu.MenuItemHeight
		text.Draw(screen, label, menuFont, x, int(y), textColor)
	}

	hintFont := fonts.Small.Get()
	hint := "UP/DOWN select, ENTER confirm, ESC quit"
	hintX := int(width)/2 - 120
	text.Draw(screen, hint, hintFont, hintX, int(height)-12, cfg.Menu.TextColorNormal)
}

func menuLabel(option components.MenuOption, settings *components.SettingsData) string {
	switch option {
	case components.MainMenuStart:
		return "START"
	case components.MainMenuDebug:
		return fmt.Sprintf("DEBUG OVERLAY: %s", onOff(settings.Debug))
	case components.MainMenuFullscreen:
		return fmt.Sprintf("FULLSCREEN: %s", onOff(settings.Fullscreen))
	case components.MainMenuExit:
		return "EXIT"
	}
	return ""
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
