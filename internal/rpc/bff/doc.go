// Package bff contains typed clients for the backend-for-frontend services
// bff.v1.ProjectService and bff.v1.UserService.
package bff
