package config

import (
	"sync"

	"voxelink/internal/shading"
)

// Settings holds render configuration shared between the GL viewer and the
// snapshot renderer. Single writer (input/flags), many readers (render loop).
type Settings struct {
	mu        sync.RWMutex
	skyMode   shading.SkyMode
	shadeMode shading.VoxelShadeMode
	fixedSun  bool
}

var global = &Settings{
	skyMode:   shading.SkyDynamic,
	shadeMode: shading.ShadeNormalLit,
}

// GetSkyMode returns the active sky pipeline mode.
func GetSkyMode() shading.SkyMode {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.skyMode
}

// SetSkyMode selects the sky pipeline mode. Selecting a sun mode also
// selects the matching constant preset (screen-fixed constants for the
// fixed sun, camera-relative constants for the tracking sun), so each
// mode renders its own look by default. SetFixedSunPreset can still
// override the pairing afterwards. SkyFlat draws no sun and leaves the
// preset alone.
func SetSkyMode(m shading.SkyMode) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.skyMode = m
	switch m {
	case shading.SkySun:
		global.fixedSun = true
	case shading.SkyDynamic:
		global.fixedSun = false
	}
}

// GetShadeMode returns the active voxel fragment variant.
func GetShadeMode() shading.VoxelShadeMode {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.shadeMode
}

// SetShadeMode selects the voxel fragment variant. The mesher must rebuild
// its vertex buffer afterwards: the two variants use different layouts.
func SetShadeMode(m shading.VoxelShadeMode) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.shadeMode = m
}

// UseFixedSunPreset reports whether the screen-fixed sun constants should be
// used instead of the camera-relative preset. Both are first-class presets.
func UseFixedSunPreset() bool {
	global.mu.RLock()
	defer global.mu.RUnlock()
	return global.fixedSun
}

// SetFixedSunPreset toggles the screen-fixed sun preset.
func SetFixedSunPreset(v bool) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fixedSun = v
}

// SkyParams resolves the preset matching the current settings.
func SkyParams() shading.SkyParams {
	if UseFixedSunPreset() {
		return shading.FixedSunSky()
	}
	return shading.DynamicSky()
}
