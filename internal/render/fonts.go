package render

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontCache parses the embedded typeface once and memoizes faces per
// point size. Best-fit searches and the 2x upscale both need faces at
// many sizes, so faces are created lazily.
type fontCache struct {
	ft *opentype.Font

	mu    sync.Mutex
	faces map[int]font.Face
}

func newFontCache() (*fontCache, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	return &fontCache{ft: ft, faces: make(map[int]font.Face)}, nil
}

func (fc *fontCache) face(size int) (font.Face, error) {
	if size < 1 {
		size = 1
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if f, ok := fc.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(fc.ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %dpt face: %w", size, err)
	}
	fc.faces[size] = f
	return f, nil
}
