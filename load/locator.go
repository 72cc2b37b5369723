// Copyright © 2026 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package load resolves named render assets — scene descriptions and
// the textures they reference — to readable files, either directly
// from disk for development or from a zip bundle attached to the
// binary for a packaged render. sceneio and texture both go through
// a Locator rather than opening files directly, so a scene can ship
// alongside its textures in a single zip without either package
// knowing about archives.
package load

import (
	"archive/zip"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Locator knows how to search disk based locations for files.
// Locator uses a built in knowledge of paths and file types.
// It uses a convention for locating file types in directories where
// the defaults can be overridden or added to using the Dir method.
type Locator interface {
	Dir(ext, dir string) Locator // Map a file extension to a directory.
	Dispose()                    // Properly terminate asset loading.

	// GetResource locates and opens a named resource: a scene
	// description or a texture image. The caller is responsible for
	// closing the returned file.
	GetResource(name string) (file io.ReadCloser, err error)
}

// NewLocator returns the default asset locator. It looks directly to
// disk for development builds and for a zip file attached to the
// binary for packaged builds; locations are directories relative to
// the application location. Default directories:
//
//	PNG, BMP      : "textures"
//	YAML          : "scenes"
//	OBJ           : "meshes"
func NewLocator() Locator { return newLocator() }

// ===========================================================================
// locator implements Locator.

// locator knows where to find asset data on disk.
type locator struct {
	reader *zip.ReadCloser   // Used as the resource file if set.
	dirs   map[string]string //
}

// newLocator returns the default Locator implementation and asset
// directory locations.
func newLocator() *locator {
	var resources *zip.ReadCloser // packaged resources.
	programName := os.Args[0]     // qualified path to executable
	assetZip := path.Join(path.Dir(programName), "../Resources/assets.zip")
	if reader, err := zip.OpenReader(assetZip); err == nil {
		resources = reader // OSX packaged application.
	} else if reader, err := zip.OpenReader(programName); err == nil {
		resources = reader // windows non-store exe. Zip with Exe.
	} else {
		// windows store app.
		// use absolute path to executable since relative files
		// are not located when running as a properly installed appx.
		programName = filepath.Dir(os.Args[0])
		absDir, err0 := filepath.Abs(programName)
		assetZip = path.Join(absDir, "Assets/assets.zip")
		if reader, err := zip.OpenReader(assetZip); err0 == nil && err == nil {
			resources = reader // Windows
		}
	}

	// if resources is still nil then this is likely a debug build
	// and GetResource below will attempt to read directly from disk.
	l := &locator{reader: resources}
	l.dirs = map[string]string{ // default directories for file locations.
		"PNG":  "textures",
		"BMP":  "textures",
		"YAML": "scenes",
		"YML":  "scenes",
		"OBJ":  "meshes",
	}
	return l
}

// GetResource locates the named resource. This is expected to be used
// either in production where the resources have been included with
// the application, or development where the resources are on disk in
// the local directory.
func (l *locator) GetResource(name string) (file io.ReadCloser, err error) {
	prefix, ext := "", ""
	if sep := strings.LastIndexAny(name, "."); sep != -1 {
		ext = strings.ToUpper(name[sep+1:])
	}
	if val, defined := l.dirs[ext]; defined { // optional group lookup.
		prefix = val
	}
	filePath := strings.TrimSpace(path.Join(prefix, name))
	if l.reader != nil {
		for _, resource := range l.reader.File {
			if filePath == resource.Name {
				rc, zerr := resource.Open()
				if zerr != nil {
					log.Printf("Could not open resource %s: %s", resource.Name, zerr)
					return nil, zerr
				}
				return rc, nil
			}
		}
	}
	return os.Open(filePath)
}

// Dir maps a file extension to a directory. Having a convention means
// that only the file name needs to be specified.
func (l *locator) Dir(ext, dir string) Locator {
	l.dirs[strings.ToUpper(ext)] = dir
	return l
}

// Dispose properly terminates the loader. This is only needed when
// the loader has been reading resources from a zip file.
func (l *locator) Dispose() {
	if l.reader != nil {
		l.reader.Close()
	}
}
