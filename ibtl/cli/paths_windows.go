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
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, a.tag, "Logs")
}
