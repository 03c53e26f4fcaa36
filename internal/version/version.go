package version

// Version is the current version of the argo-journal service.
// This value is set at build time using ldflags:
// -ldflags "-X github.com/rxtech-lab/argo-journal/internal/version.Version=1.2.3"
// The default value indicates a development build.
var Version = "main"

// GetVersion returns the current version of the service.
func GetVersion() string {
	return Version
}
