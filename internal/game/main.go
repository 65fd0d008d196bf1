package game

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"bilsim/internal/logger"
)

// RunDesktop opens the window and runs the game until it is closed.
func RunDesktop(cfg Config, log *logger.Logger) error {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	sound := PlaySoundWithGain
	if cfg.Mute {
		sound = nil
	} else if err := InitAudio(); err != nil {
		log.Printf("audio init failed (continuing without sound): %v", err)
		sound = nil
	} else {
		SetSFXVolume(cfg.SFXVolume)
	}

	session, err := NewSession(cfg, log, sound)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}

	rend, err := NewRenderer()
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer rend.Destroy()

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.ClearColor(Palette.Ground.F32(1))

	input := NewInput()
	var hud Mesh

	log.Printf("started: %d pickups, %d gates, seed %d", session.Game.World.TotalPickups(), len(session.Game.World.Gates()), cfg.Seed)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > MaxFrameDelta {
			dt = MaxFrameDelta
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}
		if input.JustPressed(window, glfw.KeyR) {
			session.Game.Reset()
		}
		if input.JustPressed(window, glfw.KeyM) {
			session.Overview = !session.Overview
		}
		UpdateCameraZoom(&session.Cam, window, dt)

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		session.Update(dt, DriveInput(window))

		cam := session.ViewCamera(fbW, fbH)
		view := cam.ViewRect(fbW, fbH)
		viewProj := cam.ViewProj(fbW, fbH)
		session.BuildScene(view, now)
		BuildHUD(&hud, session.Game, fbW, fbH, now)

		rend.BeginFrame(fbW, fbH)
		rend.DrawGlow(&session.Scene.Glow, viewProj, cam.Zoom)
		rend.DrawMesh(&session.Scene.World, viewProj)
		rend.DrawPickups(&session.Scene.Effects, viewProj, cam.Zoom)
		rend.DrawPickups(&session.Scene.Pickups, viewProj, cam.Zoom)
		rend.DrawMesh(&hud, ScreenProj(fbW, fbH))

		window.SwapBuffers()
	}
	log.Printf("closed after %d attempts, best %.2fs", session.Game.Attempts, session.Game.BestTime)
	return nil
}
