//go:build aix || dragonfly || freebsd || (js && wasm) || nacl || linux || netbsd || openbsd || solaris
// +build aix dragonfly freebsd js,wasm nacl linux netbsd openbsd solaris

package cli

import (
	"os"
	"path/filepath"
	"strings"
)

func appHome(appTag string) (appPaths, error) {
	home, err := os.UserHomeDir()
	return appPaths{tag: strings.ToLower(appTag), home: home}, err
}

// LogDir is $XDG_CACHE_HOME/logs/<tag>, falling back to the home directory.
func (a appPaths) LogDir() string {
	c, err := os.UserCacheDir()
	if err != nil {
		c = a.home
	}
	return filepath.Join(c, "logs", a.tag)
}
