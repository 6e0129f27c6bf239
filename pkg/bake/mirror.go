package bake

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	// DefaultDatasetName is the source dataset directory name
	DefaultDatasetName = "ModelNet40"

	// SourceExt marks the files that are converted
	SourceExt = ".off"

	// OutputExt replaces SourceExt in the destination name
	OutputExt = ".path"
)

// OutputDatasetName returns the mirrored dataset directory name,
// e.g. "ModelNet40-path-3"
func OutputDatasetName(datasetName, layers string) string {
	return fmt.Sprintf("%s-path-%s", datasetName, layers)
}

// IsSource reports whether a file name is a mesh to convert
func IsSource(name string) bool {
	return strings.HasSuffix(name, SourceExt)
}

// DestinationPath maps a source mesh path to its path graph path. Every path
// element equal to datasetName is renamed to the output dataset name and the
// .off extension becomes .path; everything else is kept as is.
func DestinationPath(src, datasetName, layers string) string {
	dst := replaceElement(src, datasetName, OutputDatasetName(datasetName, layers))
	if IsSource(dst) {
		dst = strings.TrimSuffix(dst, SourceExt) + OutputExt
	}
	return dst
}

// OutputRoot returns the directory that receives the mirrored tree when
// walking root. A root inside the dataset maps to its mirrored location,
// any other root gets the output dataset directory as a child.
func OutputRoot(root, datasetName, layers string) string {
	outputName := OutputDatasetName(datasetName, layers)
	mapped := replaceElement(root, datasetName, outputName)
	if mapped != root {
		return mapped
	}
	return filepath.Join(root, outputName)
}

// KnownOutputRoot returns OutputRoot when the walk from root is known to
// write there: root lies inside the dataset or holds the dataset directory
// directly. For any other root the dataset sits deeper (or is absent) and
// ok is false.
func KnownOutputRoot(root, datasetName, layers string) (dir string, ok bool) {
	dir = OutputRoot(root, datasetName, layers)
	if dir != filepath.Join(root, OutputDatasetName(datasetName, layers)) {
		return dir, true
	}
	info, err := os.Stat(filepath.Join(root, datasetName))
	if err != nil || !info.IsDir() {
		return "", false
	}
	return dir, true
}

func replaceElement(path, from, to string) string {
	sep := string(filepath.Separator)
	elements := strings.Split(path, sep)
	for i, element := range elements {
		if element == from {
			elements[i] = to
		}
	}
	return strings.Join(elements, sep)
}

// Exists reports whether path is an existing regular file
func Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
