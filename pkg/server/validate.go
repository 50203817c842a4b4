package server

import (
	"fmt"

	"github.com/mikekulinski/zkclient/pkg/zookeeper"
)

// maxDataSize caps the payload of a node.
const maxDataSize = 1 << 20

// validatePath checks a request path. Creating or deleting the root is not
// allowed, reading and writing its data is.
func validatePath(path string, allowRoot bool) error {
	if err := zookeeper.ValidatePath(path); err != nil {
		return err
	}
	if path == "/" && !allowRoot {
		return fmt.Errorf("%w: the root cannot be created or deleted", zookeeper.ErrInvalidPath)
	}
	return nil
}

func validateData(path string, data []byte) error {
	if len(data) > maxDataSize {
		return fmt.Errorf("%w: %d bytes for %s exceed the limit of %d", zookeeper.ErrBadRequest, len(data), path, maxDataSize)
	}
	return nil
}
