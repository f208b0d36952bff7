package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Title FontName = "title"
	Menu  FontName = "menu"
	HUD   FontName = "hud"
	Small FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers all faces used by the game.
func LoadDefaults() {
	LoadFontWithSize(Title, goregular.TTF, 32)
	LoadFontWithSize(Menu, goregular.TTF, 20)
	LoadFontWithSize(HUD, goregular.TTF, 16)
	LoadFontWithSize(Small, goregular.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) {
	fontData, _ := truetype.Parse(ttf)
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
