// Package config loads parser options from an optional HCL file. Every
// knob has a default, so an absent file yields a fully usable Options
// value. Validation collects every problem before failing.
package config
