package config

import (
	"testing"

	"voxelink/internal/shading"
)

func TestSkyModeSelectsMatchingSunPreset(t *testing.T) {
	SetSkyMode(shading.SkySun)
	if !UseFixedSunPreset() {
		t.Error("fixed sun mode should select the screen-fixed preset")
	}
	if got := SkyParams().SunCoreRadius; got != 0.07 {
		t.Errorf("fixed sun mode core radius = %v, want 0.07", got)
	}

	SetSkyMode(shading.SkyDynamic)
	if UseFixedSunPreset() {
		t.Error("dynamic sun mode should select the camera-relative preset")
	}
	if got := SkyParams().SunCoreRadius; got != 0.12 {
		t.Errorf("dynamic sun mode core radius = %v, want 0.12", got)
	}
}

func TestFlatSkyKeepsCurrentPreset(t *testing.T) {
	SetSkyMode(shading.SkySun)
	SetSkyMode(shading.SkyFlat)
	if !UseFixedSunPreset() {
		t.Error("flat sky should not touch the sun preset")
	}
	SetSkyMode(shading.SkyDynamic)
}

func TestPresetToggleOverridesModeDefault(t *testing.T) {
	SetSkyMode(shading.SkySun)
	SetFixedSunPreset(false)
	if got := SkyParams().SunCoreRadius; got != 0.12 {
		t.Errorf("overridden fixed sun mode core radius = %v, want 0.12", got)
	}
	SetSkyMode(shading.SkyDynamic)
}
