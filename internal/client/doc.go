// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the transport provider, typed bff and gateway clients, list
// stores, the terminal UI and the background refresh job into a single
// process lifecycle.
package client
