// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/string16/internal/adapters/charset"
	_ "go.trai.ch/string16/internal/adapters/config"
	_ "go.trai.ch/string16/internal/adapters/jsruntime"
	_ "go.trai.ch/string16/internal/adapters/logger"
	_ "go.trai.ch/string16/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/string16/internal/app"
)
