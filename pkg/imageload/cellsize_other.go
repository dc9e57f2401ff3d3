//go:build !unix

package imageload

import "errors"

func cellSizeFromTTY() (int, int, error) {
	return 0, 0, errors.New("cell size query not supported on this platform")
}
