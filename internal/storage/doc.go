// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package storage persists projects and users for the development server.
//
// Three backends are available behind the same repository interfaces:
//   - memory: process-local maps, the default;
//   - sqlite3: a file database through mattn/go-sqlite3;
//   - pgx: PostgreSQL through the pgx stdlib driver.
//
// SQL backends share one query layer built with squirrel; the placeholder
// format is chosen per dialect. Schema migrations are applied with goose on
// open.
package storage
