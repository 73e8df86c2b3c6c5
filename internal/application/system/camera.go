package system

// CameraOffset centres a viewport on the target and clamps each axis to
// [0, max(level-view, 0)]. Levels smaller than the view pin the camera to 0.
func CameraOffset(targetX, targetY, levelW, levelH, viewW, viewH int) (camX, camY int) {
	return clampAxis(targetX-viewW/2, levelW-viewW), clampAxis(targetY-viewH/2, levelH-viewH)
}

func clampAxis(v, maxV int) int {
	if maxV < 0 {
		maxV = 0
	}
	if v > maxV {
		v = maxV
	}
	if v < 0 {
		v = 0
	}
	return v
}
