package pathgrid

// Version is the release string, overridden at build time with
// -ldflags "-X github.com/katalvlaran/pathgrid.Version=...".
var Version = "0.1.0"
