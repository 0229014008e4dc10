// Package iox provides small I/O cleanup helpers.
package iox

// DiscardErr calls fn and discards the returned error. For defer statements
// where a cleanup error is unactionable, such as closing the log sink:
//
//	defer iox.DiscardErr(closeLog)
func DiscardErr(fn func() error) { _ = fn() }
