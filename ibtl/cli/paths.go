package cli

// AppPaths determines application specific paths. Configuration files are
// located by schukonf, so we only need a place for trace output.
type AppPaths interface {
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag, a string identifying the application.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}
