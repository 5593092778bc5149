package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// ToothShader adds a metallic highlight to zipper teeth
	ToothShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	toothSrc, err := shaderFS.ReadFile("shaders/tooth.kage")
	if err != nil {
		return err
	}
	ToothShader, err = ebiten.NewShader(toothSrc)
	if err != nil {
		return err
	}

	return nil
}
