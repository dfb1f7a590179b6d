package core

import (
	"math"
	"testing"
)

func TestFramesToMsec(t *testing.T) {
	tests := []struct {
		frames   float64
		fps      float64
		expected float64
	}{
		{frames: 60, fps: 60, expected: 1000},
		{frames: 1, fps: 60, expected: 1000.0 / 60.0},
		{frames: 180, fps: 60, expected: 3000},
		{frames: 0, fps: 60, expected: 0},
		{frames: 30, fps: 30, expected: 1000},
	}

	for _, tc := range tests {
		if got := FramesToMsec(tc.frames, tc.fps); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("FramesToMsec(%v, %v) = %v, expected %v", tc.frames, tc.fps, got, tc.expected)
		}
	}
}

func TestMsecToFrames(t *testing.T) {
	tests := []struct {
		msec     float64
		fps      float64
		expected float64
	}{
		{msec: 1000, fps: 60, expected: 60},
		{msec: 3000, fps: 60, expected: 180},
		{msec: 0, fps: 60, expected: 0},
		{msec: 500, fps: 30, expected: 15},
	}

	for _, tc := range tests {
		if got := MsecToFrames(tc.msec, tc.fps); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("MsecToFrames(%v, %v) = %v, expected %v", tc.msec, tc.fps, got, tc.expected)
		}
	}
}

// Round-tripping a duration through frames and back should be lossless up to
// floating point error.
func TestClockRoundTrip(t *testing.T) {
	for _, msec := range []float64{0, 2, 333.3, 1000, 3000} {
		got := FramesToMsec(MsecToFrames(msec, 60), 60)
		if math.Abs(got-msec) > 1e-9 {
			t.Errorf("round trip of %vms = %vms", msec, got)
		}
	}
}
