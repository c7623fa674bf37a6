//go:build window

package main

import (
	// Native window backend, needs cgo
	_ "github.com/vovakirdan/pong13/internal/platform/window"
)
