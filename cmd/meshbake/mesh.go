package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/bake"
	"github.com/philipparndt/meshbake/pkg/dataset"
)

// resolveMesh turns an argument into a mesh path. Anything ending in .off
// or naming an existing file is used as is; otherwise it is looked up as an
// object id in the metadata.
func resolveMesh(cfg config.Config, target string) (string, error) {
	if bake.IsSource(strings.ToLower(target)) {
		return target, nil
	}
	if info, err := os.Stat(target); err == nil && info.Mode().IsRegular() {
		return target, nil
	}

	meta, err := dataset.LoadMetadata(cfg.Metadata)
	if err != nil {
		return "", err
	}
	entry, ok := meta.Find(target)
	if !ok {
		return "", fmt.Errorf("object %q not found in %s", target, cfg.Metadata)
	}
	return entry.Path(cfg.DatasetRoot()), nil
}
