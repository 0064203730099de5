//go:build !debug
// +build !debug

package wolter

const debugBuild = false

func DebugLog(format string, args ...interface{}) {}

func DebugLogOnce(format string, args ...interface{}) {}
