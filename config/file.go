package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig is the layout of an optional TOML tuning file. Every section and
// key is optional; missing keys keep their compiled-in defaults.
type fileConfig struct {
	Window      Config            `toml:"window"`
	Zipper      ZipperConfig      `toml:"zipper"`
	Gizmo       GizmoConfig       `toml:"gizmo"`
	Colors      ColorConfig       `toml:"colors"`
	Camera      CameraConfig      `toml:"camera"`
	Audio       AudioConfig       `toml:"audio"`
	ZipperSound ZipperSoundConfig `toml:"sound"`
}

// LoadFile applies the TOML tuning file at path on top of the current
// configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to apply config %s: %w", path, err)
	}
	return nil
}

// Apply decodes TOML data on top of the current configuration. On error the
// configuration is left unchanged.
func Apply(data []byte) error {
	f := fileConfig{
		Window:      *C,
		Zipper:      Zipper,
		Gizmo:       Gizmo,
		Colors:      Colors,
		Camera:      Camera,
		Audio:       Audio,
		ZipperSound: ZipperSound,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return err
	}

	*C = f.Window
	Zipper = f.Zipper
	Gizmo = f.Gizmo
	Colors = f.Colors
	Camera = f.Camera
	Audio = f.Audio
	ZipperSound = f.ZipperSound
	return nil
}
