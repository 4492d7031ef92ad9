// Package session holds the state of one interactive tableau editing session:
// the owned tableau, its undo history, the Edit/Pivot mode and the raw text
// typed into each cell.
//
// Cells are edited as text and parsed only on Commit (the moment a cell loses
// focus). Text that does not parse commits as zero and the parse error is
// returned so the caller can show it. Every mutation that changes the tableau
// pushes a snapshot first, so Undo always restores the previous state; a
// mutation that fails leaves neither a changed tableau nor a snapshot behind.
//
// A Session is not safe for concurrent use.
package session
