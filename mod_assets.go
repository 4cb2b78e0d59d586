package litscene

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/google/uuid"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var ErrTextureDecode = errors.New("texture decode failed")

type AssetId string

type TextureAsset struct {
	Path   string
	Width  int32
	Height int32
	// Texels is tightly packed RGBA8, top row first.
	Texels []uint8
}

type AssetServer struct {
	textures map[AssetId]TextureAsset
	log      Logger
}

type AssetServerModule struct{}

func NewAssetServer(log Logger) *AssetServer {
	if log == nil {
		log = NewNopLogger()
	}
	return &AssetServer{
		textures: make(map[AssetId]TextureAsset),
		log:      log,
	}
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(NewAssetServer(app.Logger()))
}

// LoadTexture decodes an image file into RGBA8. On failure it logs a
// warning and returns an empty id with the error; callers are expected to
// carry on with a missing texture.
func (server *AssetServer) LoadTexture(filename string) (AssetId, error) {
	asset, err := decodeTexture(filename)
	if err != nil {
		server.log.Warnf("texture failed to load at path %s: %v", filename, err)
		return "", err
	}

	id := makeAssetId()
	server.textures[id] = asset
	server.log.Debugf("texture %s loaded as %s (%dx%d)", filename, id, asset.Width, asset.Height)
	return id, nil
}

func (server *AssetServer) Texture(id AssetId) (TextureAsset, bool) {
	asset, ok := server.textures[id]
	return asset, ok
}

// ReleaseTexels drops the CPU copy once the texture lives on the GPU.
func (server *AssetServer) ReleaseTexels(id AssetId) {
	if asset, ok := server.textures[id]; ok {
		asset.Texels = nil
		server.textures[id] = asset
	}
}

func decodeTexture(filename string) (TextureAsset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return TextureAsset{}, fmt.Errorf("open texture: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return TextureAsset{}, fmt.Errorf("%w: %s: %v", ErrTextureDecode, filename, err)
	}

	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != bounds.Dx()*4 || bounds.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}

	return TextureAsset{
		Path:   filename,
		Width:  int32(bounds.Dx()),
		Height: int32(bounds.Dy()),
		Texels: rgba.Pix,
	}, nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
