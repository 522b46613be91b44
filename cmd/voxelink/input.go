package main

import (
	"voxelink/internal/config"
	"voxelink/internal/graphics"
	"voxelink/internal/shading"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	mouseSensitivity = 0.12
	flySpeed         = 8.0
)

// inputState implements a fly camera plus pipeline-mode hotkeys:
// 1/2/3 select the sky mode, F toggles the flat-outline voxel variant,
// P toggles the screen-fixed sun preset.
type inputState struct {
	cam       *graphics.Camera
	lastX     float64
	lastY     float64
	firstMove bool
}

func newInputState(cam *graphics.Camera) *inputState {
	return &inputState{cam: cam, firstMove: true}
}

func (s *inputState) onCursorMove(_ *glfw.Window, x, y float64) {
	if s.firstMove {
		s.lastX, s.lastY = x, y
		s.firstMove = false
		return
	}
	dx := float32(x-s.lastX) * mouseSensitivity
	dy := float32(y-s.lastY) * mouseSensitivity
	s.lastX, s.lastY = x, y

	s.cam.Yaw += dx
	s.cam.Pitch -= dy
	if s.cam.Pitch > 89 {
		s.cam.Pitch = 89
	}
	if s.cam.Pitch < -89 {
		s.cam.Pitch = -89
	}
}

func (s *inputState) onKey(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		w.SetShouldClose(true)
	case glfw.Key1:
		config.SetSkyMode(shading.SkyFlat)
	case glfw.Key2:
		config.SetSkyMode(shading.SkySun)
	case glfw.Key3:
		config.SetSkyMode(shading.SkyDynamic)
	case glfw.KeyF:
		if config.GetShadeMode() == shading.ShadeNormalLit {
			config.SetShadeMode(shading.ShadeFlatOutline)
		} else {
			config.SetShadeMode(shading.ShadeNormalLit)
		}
	case glfw.KeyP:
		config.SetFixedSunPreset(!config.UseFixedSunPreset())
	}
}

func (s *inputState) processMovement(w *glfw.Window, dt float64) {
	front := s.cam.Front()
	right := front.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	step := float32(dt * flySpeed)

	move := mgl32.Vec3{}
	if w.GetKey(glfw.KeyW) == glfw.Press {
		move = move.Add(front)
	}
	if w.GetKey(glfw.KeyS) == glfw.Press {
		move = move.Sub(front)
	}
	if w.GetKey(glfw.KeyD) == glfw.Press {
		move = move.Add(right)
	}
	if w.GetKey(glfw.KeyA) == glfw.Press {
		move = move.Sub(right)
	}
	if w.GetKey(glfw.KeySpace) == glfw.Press {
		move = move.Add(mgl32.Vec3{0, 1, 0})
	}
	if w.GetKey(glfw.KeyLeftShift) == glfw.Press {
		move = move.Sub(mgl32.Vec3{0, 1, 0})
	}
	if move.Len() > 0 {
		s.cam.Position = s.cam.Position.Add(move.Normalize().Mul(step))
	}
}
