package config

// Build information, stamped by the linker
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// SetBuildFlags records the build information passed to main
func SetBuildFlags(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date
}
