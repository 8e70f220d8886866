package basedir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEmptyRoot is returned when a provider is constructed with an empty root directory.
var ErrEmptyRoot = errors.New("root directory must not be empty")

// ErrEmptyAppName is returned when the OS provider is constructed with an empty application name.
var ErrEmptyAppName = errors.New("application name must not be empty")

// Provider resolves the base configuration directory for an owner
// namespace. Implementations must be deterministic: the same owner always
// resolves to the same directory.
type Provider interface {
	ConfigDir(owner string) (string, error)
}

type static struct {
	root string
}

// Static returns a Provider that resolves every owner to its own
// subdirectory of root: <root>/<owner>. This mirrors hosts that keep one
// configuration directory per plugin.
func Static(root string) (Provider, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}

	return static{root: filepath.Clean(root)}, nil
}

func (p static) ConfigDir(owner string) (string, error) {
	return filepath.Join(p.root, owner), nil
}

type flat struct {
	root string
}

// Flat returns a Provider that resolves every owner to the same root
// directory. The owner namespace then only scopes the bundled-defaults
// lookup, not the on-disk layout.
func Flat(root string) (Provider, error) {
	if root == "" {
		return nil, ErrEmptyRoot
	}

	return flat{root: filepath.Clean(root)}, nil
}

func (p flat) ConfigDir(string) (string, error) {
	return p.root, nil
}

type osProvider struct {
	appName string
}

// OS returns a Provider rooted at the platform's user configuration
// directory: <UserConfigDir>/<appName>/<owner>.
func OS(appName string) (Provider, error) {
	if appName == "" {
		return nil, ErrEmptyAppName
	}

	return osProvider{appName: appName}, nil
}

func (p osProvider) ConfigDir(owner string) (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}

	return filepath.Join(base, p.appName, owner), nil
}
