// Package tui is the terminal front end of the axle client.
//
// It renders the projects and users list stores, keeps a live feed of
// gateway events and issues project mutations through the bff clients.
// Store changes and stream callbacks reach the bubbletea program as
// messages.
package tui
