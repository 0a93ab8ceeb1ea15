// Package config provides configuration loading, merging and validation for
// the notebook.
//
// Configuration is assembled from these sources, highest precedence first:
//  1. command-line flags (see [Flags])
//  2. NOTEBOOK_* environment variables
//  3. JSON config file named by --config or NOTEBOOK_CONFIG
//  4. [Defaults]
//
// The entry point is [GetStructuredConfig].
package config
