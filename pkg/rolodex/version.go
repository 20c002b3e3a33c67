// Package rolodex is the public entry point for building a ContactStore.
package rolodex

// Version is the release version reported by the CLI.
// It is a variable so release builds can stamp it with -ldflags -X.
var Version = "0.1.0"

// ModulePath is the Go module path of this repository.
const ModulePath = "github.com/mesh-intelligence/rolodex"
