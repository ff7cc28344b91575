// Package utils holds small helpers shared by the client runtime and the
// development server: the resty client wrapper, JSON response helpers and
// time-ordered id generation.
package utils
