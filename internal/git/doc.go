// Package git is the command execution and parsing engine for the server.
//
// It builds injection-free argument vectors (CommandSpec), executes them
// against a working directory with bounded time and output (Runner), and
// parses git's text output into typed records using a shared delimiter
// protocol. All functions in this package are call-scoped: nothing is
// cached or shared between invocations.
package git
