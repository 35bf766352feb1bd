// Package fileset walks a directory tree collecting files that pass
// name/folder/extension inclusion and exclusion criteria.
package fileset

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/maseology/mmio"
)

// Criteria filters files by substring of their folder path, substring of their
// base name, or exact extension (with leading dot).
type Criteria struct {
	Folders, Names, Extensions []string
}

func (c *Criteria) hit(dir, name, ext string) (folder, fname, fext bool) {
	if c == nil {
		return
	}
	for _, f := range c.Folders {
		if strings.Contains(dir, f) {
			folder = true
			break
		}
	}
	for _, n := range c.Names {
		if strings.Contains(name, n) {
			fname = true
			break
		}
	}
	for _, x := range c.Extensions {
		if ext == x {
			fext = true
			break
		}
	}
	return
}

// keep applies exclusions first, then inclusions; an inclusion category left
// empty passes everything.
func keep(root, fp string, include, exclude *Criteria) bool {
	dir := strings.TrimPrefix(filepath.ToSlash(filepath.Dir(fp)), filepath.ToSlash(root))
	name := mmio.FileName(fp, false)
	ext := mmio.GetExtension(fp)
	if exclude != nil {
		xf, xn, xx := exclude.hit(dir, name, ext)
		if xf || xn || xx {
			return false
		}
	}
	if include != nil {
		inf, inn, inx := include.hit(dir, name, ext)
		if len(include.Folders) > 0 && !inf {
			return false
		}
		if len(include.Names) > 0 && !inn {
			return false
		}
		if len(include.Extensions) > 0 && !inx {
			return false
		}
	}
	return true
}

// List returns every file under root passing the criteria, in walk order.
func List(root string, include, exclude *Criteria) ([]string, error) {
	if !mmio.DirExists(root) {
		return nil, fmt.Errorf(" fileset.List: no directory found at %s", root)
	}
	var out []string
	err := filepath.WalkDir(root, func(fp string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if keep(root, fp, include, exclude) {
			out = append(out, filepath.ToSlash(fp))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(" fileset.List: %v", err)
	}
	return out, nil
}
