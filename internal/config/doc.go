// Package config loads svcpart's CLI/environment configuration through
// viper: defaults, an optional YAML file, and environment overrides, in
// that precedence order.
package config
