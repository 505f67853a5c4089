package ui

// Unicode symbols for status indicators.
const (
	SymbolSuccess  = "✓" // Probe or command succeeded
	SymbolFail     = "✗" // Probe or command failed
	SymbolPending  = "○" // Not yet started
	SymbolComplete = "●" // Done
	SymbolSkipped  = "⊘" // Skipped
)
