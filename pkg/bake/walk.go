package bake

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Order controls the sequence in which sibling directories are visited
type Order int

const (
	// OrderNative keeps the order the file system returns
	OrderNative Order = iota
	// OrderReverse visits sibling directories in descending name order
	OrderReverse
)

func (o Order) String() string {
	switch o {
	case OrderNative:
		return "native"
	case OrderReverse:
		return "reverse"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses "native" or "reverse"
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "native":
		return OrderNative, nil
	case "reverse":
		return OrderReverse, nil
	default:
		return OrderNative, fmt.Errorf("unknown order %q (expected native or reverse)", s)
	}
}

// Walk calls fn for every non-directory entry below root. Each directory's
// files are visited before its subdirectories, files always in native order.
// Symbolic links to directories are not followed.
func Walk(root string, order Order, fn func(path string) error) error {
	dir, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	entries, err := dir.ReadDir(-1)
	dir.Close()
	if err != nil {
		return fmt.Errorf("failed to read directory %s: %w", root, err)
	}

	var subdirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry.Name())
			continue
		}
		if err := fn(filepath.Join(root, entry.Name())); err != nil {
			return err
		}
	}

	if order == OrderReverse {
		sort.Sort(sort.Reverse(sort.StringSlice(subdirs)))
	}

	for _, name := range subdirs {
		if err := Walk(filepath.Join(root, name), order, fn); err != nil {
			return err
		}
	}
	return nil
}
