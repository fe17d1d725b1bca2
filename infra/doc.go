// Package infra contains technical adapters such as file format
// readers and metrics exporters. These packages should depend only on
// the interfaces and types defined in the core packages.
package infra
