// Package automation plays scripted tours: YAML files listing presets or
// viewports to animate one after another.
package automation
