// Package service implements the business logic of the development server:
// the bff.v1 project and user services and the gateway.v1 event stream.
//
// Mutating project and user calls publish domain events to the [Hub], which
// fans them out to streaming subscribers.
package service
