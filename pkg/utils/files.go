// Package utils holds small filesystem helpers shared by the command
// shells.
package utils

import "path/filepath"

// Resolve turns a working-directory-relative file name into an absolute,
// cleaned path. cmfront resolves input.txt through this before reading it.
func Resolve(name string) (string, error) {
	full, err := filepath.Abs(name)
	if err != nil {
		return "", err
	}
	return full, nil
}
