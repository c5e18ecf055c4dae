// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file (only fills variables not already in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Defaults are applied last, to whatever is still unset.
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetDaemonConfig] for the headless daemon.
package config
