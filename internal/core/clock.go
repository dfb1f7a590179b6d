package core

// The simulation runs on a fixed timestep: one tick equals one frame at the
// configured frame rate. These helpers convert between frame counts and
// elapsed real time so physics constants can be expressed in px/ms.
// fps must be > 0; that is a caller contract, not enforced here.

// FramesToMsec converts a frame count to elapsed milliseconds at the given
// frame rate.
func FramesToMsec(frames, fps float64) float64 {
	return 1000.0 * frames / fps
}

// MsecToFrames converts elapsed milliseconds to a frame count at the given
// frame rate.
func MsecToFrames(msec, fps float64) float64 {
	return fps * msec / 1000.0
}
