package game

// FitRect centres the camera on r and zooms so all of r fits the framebuffer
// with OverviewMargin pixels to spare on the tighter axis.
func (c *Camera) FitRect(r RectF, fbW, fbH int) {
	w, h := r.X1-r.X0, r.Y1-r.Y0
	if w <= 0 || h <= 0 || fbW <= 2*OverviewMargin || fbH <= 2*OverviewMargin {
		return
	}
	zoomW := float64(fbW-2*OverviewMargin) / w
	zoomH := float64(fbH-2*OverviewMargin) / h
	c.Zoom = min(zoomW, zoomH, MaxZoom)
	c.X = (r.X0 + r.X1) / 2
	c.Z = (r.Y0 + r.Y1) / 2
	c.ShakeX, c.ShakeZ = 0, 0
}

// ViewCamera is the camera to draw with this frame: the follow camera, or a
// copy fitted to the whole map while the overview is on.
func (s *Session) ViewCamera(fbW, fbH int) Camera {
	if !s.Overview {
		return s.Cam
	}
	c := s.Cam
	c.FitRect(s.Scene.Extent(), fbW, fbH)
	return c
}
