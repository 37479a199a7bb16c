// Package application provides application initialization and dependency
// wiring. It ties configuration, logging, input collection, planning, and
// rendering together, keeping the main package focused on CLI parsing.
package application
