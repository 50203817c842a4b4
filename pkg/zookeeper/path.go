package zookeeper

import (
	"fmt"
	"strings"
)

// ValidatePath checks that path is absolute, has no empty segments and does
// not end in a '/'. The root "/" is valid.
func ValidatePath(path string) error {
	if path == "/" {
		return nil
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("%w: %q does not start at the root", ErrInvalidPath, path)
	}
	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("%w: %q should end in a node name", ErrInvalidPath, path)
	}
	// Since we have a leading /, then we expect the first name to be empty.
	for _, name := range strings.Split(path, "/")[1:] {
		if name == "" {
			return fmt.Errorf("%w: %q contains an empty node name", ErrInvalidPath, path)
		}
		if name == "." || name == ".." {
			return fmt.Errorf("%w: %q contains a relative segment", ErrInvalidPath, path)
		}
	}
	return nil
}

// Parent returns the parent of path. The parent of a top level node and of
// the root is "/".
func Parent(path string) string {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return "/"
	}
	return path[:i]
}

// Base returns the last segment of path.
func Base(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

// Join appends name to parent.
func Join(parent, name string) string {
	if parent == "/" {
		return "/" + name
	}
	return parent + "/" + name
}
