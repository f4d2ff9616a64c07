// Package config defines the booklet build configuration: page geometry,
// index typography, the instrument list and output locations. It loads YAML
// configuration files and validates the result before a build starts.
package config
