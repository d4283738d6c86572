// Package assets loads animation clips from a directory tree: every
// top-level directory is a clip and the image files inside it, in name
// order, are its frames.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"gopkg.in/yaml.v3"

	"github.com/younwookim/webslinger/internal/domain/animation"
)

// DurationsFile optionally overrides the frame durations of the clip
// directory it sits in.
const DurationsFile = "durations.yaml"

// ErrNoClips is returned when an asset root holds no clip directories
var ErrNoClips = errors.New("assets: no clip directories")

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Catalog holds decoded clip frames before they are turned into handles
type Catalog struct {
	Clips     map[string][]image.Image
	Durations map[string][]float64 // only clips with a durations file
}

// durationsDoc is the shape of DurationsFile
type durationsDoc struct {
	Frames []float64 `yaml:"frames"`
}

// Load reads every clip directory directly under the root of fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read asset root: %w", err)
	}

	cat := &Catalog{
		Clips:     make(map[string][]image.Image),
		Durations: make(map[string][]float64),
	}
	for _, e := range entries {
		if !e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if err := cat.loadClip(fsys, e.Name()); err != nil {
			return nil, err
		}
	}
	if len(cat.Clips) == 0 {
		return nil, ErrNoClips
	}
	return cat, nil
}

func (c *Catalog) loadClip(fsys fs.FS, clip string) error {
	entries, err := fs.ReadDir(fsys, clip)
	if err != nil {
		return fmt.Errorf("read clip %q: %w", clip, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Name() == DurationsFile {
			durations, err := readDurations(fsys, path.Join(clip, e.Name()))
			if err != nil {
				return fmt.Errorf("clip %q: %w", clip, err)
			}
			c.Durations[clip] = durations
			continue
		}
		if imageExts[strings.ToLower(path.Ext(e.Name()))] {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("%w: clip %q has no images", animation.ErrInvalidFormat, clip)
	}
	sort.Strings(names)

	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		p := path.Join(clip, name)
		b, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return fmt.Errorf("%w: decode %s: %v", animation.ErrInvalidFormat, p, err)
		}
		frames = append(frames, img)
	}
	c.Clips[clip] = frames
	return nil
}

func readDurations(fsys fs.FS, p string) ([]float64, error) {
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	var doc durationsDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", animation.ErrInvalidFormat, p, err)
	}
	return doc.Frames, nil
}

// Names returns the clip names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Clips))
	for name := range c.Clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build converts every frame with convert and applies the durations files.
func Build[H any](c *Catalog, convert func(image.Image) H) (*animation.ClipSet[H], error) {
	handles := make(map[string][]H, len(c.Clips))
	for name, frames := range c.Clips {
		hs := make([]H, len(frames))
		for i, img := range frames {
			hs[i] = convert(img)
		}
		handles[name] = hs
	}

	set, err := animation.NewClipSet(handles)
	if err != nil {
		return nil, err
	}
	for _, name := range c.Names() {
		durations, ok := c.Durations[name]
		if !ok {
			continue
		}
		if set, err = set.WithDurations(name, durations); err != nil {
			return nil, err
		}
	}
	return set, nil
}
