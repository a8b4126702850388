package game

import (
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io/fs"
	"log"
	"path"

	"github.com/decker502/buttontransitions/pkg/transition"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultImageCacheSize 解码图片缓存的默认容量
const DefaultImageCacheSize = 64

// ImageStore resolves opaque ImageRef handles to drawable images.
//
// It is the asset-loading side of the button host: transition styles only
// carry ImageRef values, and the render system asks the store for the actual
// *ebiten.Image when drawing.
//
// Lookup order:
//   - images registered with Register (pinned, never evicted)
//   - the LRU cache of previously decoded files
//   - decoding from the source file system
//
// A ref with a file extension is used as a path inside the source FS;
// otherwise it is looked up as "assets/images/<ref>.png".
//
// Thread Safety Note: like the rest of the game loop, ImageStore is meant to
// be used from a single goroutine.
type ImageStore struct {
	source     fs.FS
	registered map[transition.ImageRef]*ebiten.Image
	cache      *lru.Cache[transition.ImageRef, *ebiten.Image]
	reported   map[transition.ImageRef]bool
}

// NewImageStore creates a store reading from source (may be nil when every
// image is registered up front) with an LRU cache of cacheSize decoded images.
func NewImageStore(source fs.FS, cacheSize int) (*ImageStore, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultImageCacheSize
	}
	cache, err := lru.New[transition.ImageRef, *ebiten.Image](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create image cache: %w", err)
	}
	return &ImageStore{
		source:     source,
		registered: make(map[transition.ImageRef]*ebiten.Image),
		cache:      cache,
		reported:   make(map[transition.ImageRef]bool),
	}, nil
}

// Register pins an already created image under ref.
func (s *ImageStore) Register(ref transition.ImageRef, img *ebiten.Image) {
	s.registered[ref] = img
}

// Load returns the image for ref, decoding it from the source FS on first use.
func (s *ImageStore) Load(ref transition.ImageRef) (*ebiten.Image, error) {
	if ref == "" {
		return nil, fmt.Errorf("empty image ref")
	}
	if img, ok := s.registered[ref]; ok {
		return img, nil
	}
	if img, ok := s.cache.Get(ref); ok {
		return img, nil
	}
	if s.source == nil {
		return nil, fmt.Errorf("image %s not registered and no asset source configured", ref)
	}

	p := ImagePath(ref)
	file, err := s.source.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	img := ebiten.NewImageFromImage(decoded)
	s.cache.Add(ref, img)
	return img, nil
}

// Get is Load for draw paths: failures are logged once per ref and nil is
// returned so the caller can skip drawing.
func (s *ImageStore) Get(ref transition.ImageRef) *ebiten.Image {
	img, err := s.Load(ref)
	if err != nil {
		if !s.reported[ref] {
			s.reported[ref] = true
			log.Printf("[ImageStore] Warning: %v", err)
		}
		return nil
	}
	return img
}

// CachedCount 当前 LRU 缓存中的图片数量（不含 Register 的图片）
func (s *ImageStore) CachedCount() int {
	return s.cache.Len()
}

// ImagePath maps an image ref to its path inside the asset FS.
func ImagePath(ref transition.ImageRef) string {
	p := string(ref)
	if path.Ext(p) != "" {
		return p
	}
	return "assets/images/" + p + ".png"
}
