package assets

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"golang.org/x/image/colornames"
)

var placeholderColors = []color.RGBA{
	colornames.Seagreen,
	colornames.Tomato,
	colornames.Goldenrod,
	colornames.Steelblue,
	colornames.Orchid,
}

// Placeholder builds a catalog of generated frames, one clip per entry of
// counts (clip name to frame count). Each clip gets its own color and each
// frame a marker bar whose length grows with the frame index. The right
// half of every frame is lighter so mirroring stays visible.
func Placeholder(counts map[string]int, width, height int) *Catalog {
	cat := &Catalog{
		Clips:     make(map[string][]image.Image, len(counts)),
		Durations: make(map[string][]float64),
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		n := counts[name]
		if n <= 0 {
			continue
		}
		base := placeholderColors[i%len(placeholderColors)]
		frames := make([]image.Image, n)
		for f := 0; f < n; f++ {
			frames[f] = placeholderFrame(base, f, n, width, height)
		}
		cat.Clips[name] = frames
	}
	return cat
}

func placeholderFrame(base color.RGBA, index, count, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: base}, image.Point{}, draw.Src)

	light := color.RGBA{R: lighten(base.R), G: lighten(base.G), B: lighten(base.B), A: 255}
	draw.Draw(img, image.Rect(width/2, 0, width, height/2), &image.Uniform{C: light}, image.Point{}, draw.Src)

	barW := width * (index + 1) / count
	draw.Draw(img, image.Rect(0, height-3, barW, height), &image.Uniform{C: colornames.White}, image.Point{}, draw.Src)
	return img
}

func lighten(v uint8) uint8 {
	return v + (255-v)/2
}
