// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transport provides the channel abstraction used by typed RPC
// clients to reach the axle backend services.
//
// A [Transport] performs unary and server-streaming exchanges against one
// base endpoint. Two implementations ship with the package: a Connect
// protocol transport speaking JSON over HTTP through resty (the default,
// wire compatible with the web client), and a gRPC transport built on
// grpc-go with a JSON codec.
//
// Every failure leaving a Transport is a [*CallError] so callers can use
// [errors.As] to read a transport-agnostic code and message.
//
// [Provider] resolves symbolic endpoint names ("bff", "gateway") to shared
// transports and validates base URLs when it is constructed.
package transport
