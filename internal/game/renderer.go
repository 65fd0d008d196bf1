package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Flat triangle program (world + HUD).
	flatProg uint32
	flatVAO  uint32
	flatVBO  uint32

	flatUViewProj int32

	// Sprite programs share one streaming VAO.
	spriteVAO uint32
	spriteVBO uint32

	pickupProg      uint32
	pickupUViewProj int32
	pickupUZoom     int32

	glowProg      uint32
	glowUViewProj int32
	glowUZoom     int32
}

func NewRenderer() (*Renderer, error) {
	flatProg, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	pickupProg, err := linkProgram(spriteVertSrc, pickupFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		return nil, fmt.Errorf("pickup program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		gl.DeleteProgram(pickupProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		flatProg:   flatProg,
		pickupProg: pickupProg,
		glowProg:   glowProg,
	}

	// Flat VAO/VBO: streaming triangles, FloatsPerVertex floats each.
	var fVAO, fVBO uint32
	gl.GenVertexArrays(1, &fVAO)
	gl.GenBuffers(1, &fVBO)
	gl.BindVertexArray(fVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, fVBO)

	fStride := int32(FloatsPerVertex * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxRectVerts*int(fStride), nil, gl.STREAM_DRAW)
	// aPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, fStride, glOffset(0))
	// aColor (vec4)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, fStride, glOffset(2*4))
	r.flatVAO = fVAO
	r.flatVBO = fVBO

	gl.UseProgram(flatProg)
	r.flatUViewProj = gl.GetUniformLocation(flatProg, gl.Str("uViewProj\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: x, z, size, r, g, b, a, rotation.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	sStride := int32(FloatsPerSprite * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(sStride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, sStride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, sStride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, sStride, glOffset(3*4))
	// aRotation (float)
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, sStride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(pickupProg)
	r.pickupUViewProj = gl.GetUniformLocation(pickupProg, gl.Str("uViewProj\x00"))
	r.pickupUZoom = gl.GetUniformLocation(pickupProg, gl.Str("uZoom\x00"))

	gl.UseProgram(glowProg)
	r.glowUViewProj = gl.GetUniformLocation(glowProg, gl.Str("uViewProj\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.flatVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.flatVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.flatProg, r.pickupProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// DrawMesh renders coloured triangles with alpha blending.
func (r *Renderer) DrawMesh(m *Mesh, viewProj mgl32.Mat4) {
	n := m.Vertices()
	if n == 0 {
		return
	}
	gl.UseProgram(r.flatProg)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	gl.UniformMatrix4fv(r.flatUViewProj, 1, false, &viewProj[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, n*FloatsPerVertex*4, gl.Ptr(m.Data()), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(n))
	gl.Disable(gl.BLEND)
}

// DrawPickups renders rotated diamond sprites: pickups and debris. zoom converts sprite sizes to pixels.
func (r *Renderer) DrawPickups(s *Sprites, viewProj mgl32.Mat4, zoom float64) {
	r.drawSprites(s, r.pickupProg, r.pickupUViewProj, r.pickupUZoom, viewProj, zoom, false)
}

// DrawGlow renders light sprites with additive blending and radial falloff.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlow(s *Sprites, viewProj mgl32.Mat4, zoom float64) {
	r.drawSprites(s, r.glowProg, r.glowUViewProj, r.glowUZoom, viewProj, zoom, true)
}

func (r *Renderer) drawSprites(s *Sprites, prog uint32, uViewProj, uZoom int32, viewProj mgl32.Mat4, zoom float64, additive bool) {
	count := s.Count()
	if count == 0 {
		return
	}
	gl.UseProgram(prog)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.UniformMatrix4fv(uViewProj, 1, false, &viewProj[0])
	gl.Uniform1f(uZoom, float32(zoom))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.BufferData(gl.ARRAY_BUFFER, count*FloatsPerSprite*4, gl.Ptr(s.Data()), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
