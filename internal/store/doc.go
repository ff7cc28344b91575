// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store exposes unary list RPCs as observable UI state.
//
// A [ListStore] holds three observables: the projected items, a loading
// flag and an error message. Refresh issues one call and applies its result
// only if no newer refresh was issued in the meantime, so overlapping
// refreshes resolve in issuance order regardless of arrival order.
package store
