// Package config defines the format-agnostic word library model, along with
// the Loader interface for reading it from various sources.
//
// A word library names stack effect diagrams so they can be compiled in
// bulk. Concrete loaders, such as for HCL and YAML, are provided in
// separate packages.
package config
