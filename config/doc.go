// Package config loads the YAML build configuration: profiling knobs,
// reduction-rule selection, and the logging/persistence settings the
// cmd/lookaheadctl CLI and telemetry package read at startup.
package config
