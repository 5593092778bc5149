package config

// SettingsConfig contains defaults for user settings persisted between runs
type SettingsConfig struct {
	AppName      string // gdata application name
	SettingsItem string
	RigItemFmt   string // item key for a recorded zipper rig, by zipper name
	VolumeSteps  []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName:      "zipper",
		SettingsItem: "settings",
		RigItemFmt:   "rig-%s",
		VolumeSteps:  []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
