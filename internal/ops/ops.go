// Package ops implements the caller-facing operations over the password,
// strength, and history packages. Surfaces (CLI, MCP) translate their inputs
// into the Input structs here and render the Output structs back out.
package ops

// MaxGenerateCount bounds generate_many batch size.
const MaxGenerateCount = 100
