// Package config centralizes the session loop's tunable parameters.
package config

import "time"

// Max render resolution - the render area is clamped to this size and centered
// in larger terminals so a match looks the same on any screen.
const (
	MaxTermWidth  = 140 // Columns
	MaxTermHeight = 50  // Rows
)

// Centre line
const (
	CenterLineDash = 10.0 // Logical units per dash
	CenterLineGap  = 25.0 // Logical units between dashes
)

// HUD placement as fractions of the arena height
const (
	ScoreInset      = 0.04 // Score pair, near the top edge
	CountdownHeight = 0.38 // Countdown, just above the ball
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// MaxFrameDelta caps the time fed to the round per frame so a stalled
// connection does not skip a whole countdown at once.
const MaxFrameDelta = 250 * time.Millisecond
