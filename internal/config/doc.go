// Package config provides configuration loading, merging, and validation
// facilities for the erp-session client.
//
// Configuration is assembled from multiple sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables (a ".env" file in the working directory is
//     loaded first; real environment variables take precedence over it)
//  2. Command-line flags
//  3. Config file (JSON, or YAML when the path ends in .yaml/.yml)
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
