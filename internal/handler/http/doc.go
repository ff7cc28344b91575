// Package http serves bff.v1 and gateway.v1 over the Connect protocol with
// JSON messages.
//
// Unary procedures are POST routes at "/<service>/<method>" and answer with
// a JSON body or a {"code","message"} error. The event stream answers with
// envelope-framed events and finishes with an end-stream frame.
package http
