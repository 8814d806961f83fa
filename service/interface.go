// Package service runs long-lived subsystems in dependency order
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio output, timers, pointer surfaces
//
// Lifecycle:
//  1. Construction
//  2. Start() - acquire resources, arm timers
//  3. [runtime operation]
//  4. Stop() - release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Start before this one
	Dependencies() []string

	// Start begins service operation
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
