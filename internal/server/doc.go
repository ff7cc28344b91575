// Package server runs the development server's bff and gateway listeners.
//
// Both listeners speak the configured protocol. Run blocks until its
// context ends or a termination signal arrives, then stops them gracefully.
package server
