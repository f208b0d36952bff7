package components

import "github.com/yohamta/donburi"

// MenuOption identifies a main menu entry.
type MenuOption int

const (
	MainMenuStart MenuOption = iota
	MainMenuDebug
	MainMenuFullscreen
	MainMenuExit
)

type MenuData struct {
	SelectedIndex int
	Options       []MenuOption
}

var Menu = donburi.NewComponentType[MenuData]()
