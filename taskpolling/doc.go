/*
Package taskpolling provides a cooperative interval-based task execution
framework for Go applications.

This package lets you wrap zero-argument units of work in periodic tasks and
drive them from a polling loop that you own. No goroutine, ticker, or event
loop is created internally; a task only makes progress when its Update method
is called.

The guidelines of this package include:
- The caller owns the polling cadence; correctness never depends on it.
- A task fires at most once per Update call, even after a long poll gap.
*/
package taskpolling

import (
	_ "embed"
)

//go:embed doc.go
var doc string
