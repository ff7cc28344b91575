// Package config provides configuration loading, merging, and validation
// facilities for the axle client.
//
// Configuration is assembled from multiple sources. Earlier sources win for
// every non-zero field:
//  1. Command-line flags
//  2. Environment variables (AXLE_ prefix)
//  3. JSON config file
//  4. Built-in local-development defaults
//
// The main entry point is [GetClientConfig]. Endpoint base URLs are resolved
// once through it and treated as immutable afterwards.
package config
