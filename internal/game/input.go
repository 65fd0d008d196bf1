package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"bilsim/internal/sim"
)

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func anyDown(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// DriveInput samples WASD and the arrow keys.
func DriveInput(window *glfw.Window) sim.Input {
	return sim.Input{
		Accelerate: anyDown(window, glfw.KeyW, glfw.KeyUp),
		Brake:      anyDown(window, glfw.KeyS, glfw.KeyDown),
		TurnLeft:   anyDown(window, glfw.KeyA, glfw.KeyLeft),
		TurnRight:  anyDown(window, glfw.KeyD, glfw.KeyRight),
	}
}

// UpdateCameraZoom handles E/Q zoom while held.
func UpdateCameraZoom(cam *Camera, window *glfw.Window, dt float64) {
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.ZoomBy(ZoomRate, dt)
	}
	if window.GetKey(glfw.KeyQ) == glfw.Press {
		cam.ZoomBy(-ZoomRate, dt)
	}
}
