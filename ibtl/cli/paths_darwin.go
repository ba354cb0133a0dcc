package cli

import (
	"os"
	"path/filepath"
)

func appHome(appTag string) (appPaths, error) {
	home, err := os.UserHomeDir()
	return appPaths{tag: appTag, home: home}, err
}

func (a appPaths) LogDir() string {
	return filepath.Join(a.home, "Library", "Logs", a.tag)
}
