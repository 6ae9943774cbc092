package auth

import (
	"errors"
	"github.com/zalando/go-keyring"
	"os"
)

const (
	appName = "fwgate"
	keyName = "access-key"
)

func Save(key string) error {
	return keyring.Set(appName, keyName, key)
}

// Get returns the saved access key. FWGATE_ACCESS_KEY takes precedence and
// a missing key is not an error, the daemon may run without one.
func Get() (string, error) {
	if key := os.Getenv("FWGATE_ACCESS_KEY"); key != "" {
		return key, nil
	}

	key, err := keyring.Get(appName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return key, err
}

func Delete() error {
	err := keyring.Delete(appName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
