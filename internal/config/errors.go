package config

import "errors"

var (
	// ErrParse indicates the config file is not valid YAML for Config.
	ErrParse = errors.New("config: cannot parse file")

	// ErrUnknownPreset indicates a preset name with no registered viewport.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrInvalidViewport indicates non-finite or unordered bounds.
	ErrInvalidViewport = errors.New("config: invalid viewport (need xmin < xmax, ymin < ymax)")

	ErrZoomFactor = errors.New("config: zoom_factor must be in (0, 1)")
	ErrMaxFrames  = errors.New("config: max_frames must be at least 1")
	ErrFrameDelay = errors.New("config: frame_delay must not be negative")
)
