// Package driven defines the outbound ports: interfaces the core depends
// on for persistence and catalog access, implemented by adapters.
package driven
