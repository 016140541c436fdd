package assets

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	logoWidth  = 400
	logoHeight = 120
)

// brand orange on white
var logoTextColor = color.RGBA{R: 255, G: 87, B: 34, A: 255}

// GenerateLogo renders a placeholder logo PNG with the business name
// centered on it and returns the stored filename. Purely cosmetic: a
// failure here should not block admin registration.
func GenerateLogo(dir, business string) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, logoWidth, logoHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(logoTextColor),
		Face: face,
	}
	textWidth := drawer.MeasureString(business)
	drawer.Dot = fixed.Point26_6{
		X: (fixed.I(logoWidth) - textWidth) / 2,
		Y: fixed.I((logoHeight + face.Height) / 2),
	}
	drawer.DrawString(business)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := UniqueName(".png")
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return name, nil
}
