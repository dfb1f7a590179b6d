package config

import (
	_ "embed"
)

//go:embed defaults/flappyterm.yaml
var defaultYAML []byte

// DefaultConfig returns the classic tuning: a 568x512 field at 60 fps with
// the original sink/climb speeds and a pipe every three seconds.
func DefaultConfig() Config {
	return Config{
		FPS: 60,
		Field: FieldConfig{
			Width:  568,
			Height: 512,
		},
		Bird: BirdConfig{
			X:                 50,
			Width:             32,
			Height:            32,
			SinkSpeed:         0.18,
			ClimbSpeed:        0.3,
			ClimbDurationMsec: 333.3,
			InitialClimbMsec:  2,
		},
		Pipes: PipeConfig{
			Width:           80,
			PieceHeight:     32,
			AddIntervalMsec: 3000,
			ScrollSpeed:     0.18,
		},
	}
}
