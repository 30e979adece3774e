// Package config defines the settings of the gadget page and provides
// helpers to load, validate and save them in YAML format.
package config
