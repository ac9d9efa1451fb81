package cli

import (
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	profileDir = ".config/biletbudur"
)

func homeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, profileDir), nil
}
