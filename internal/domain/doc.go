// Package domain defines the data models and interfaces shared by the decode
// service, the state store and the command-line and HTTP front ends.
// It contains plain types (state/results) and contracts (interfaces) only.
package domain
