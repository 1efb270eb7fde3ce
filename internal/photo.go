package internal

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/imaging"
)

const (
	// upperHalfBlock is drawn with the upper pixel as foreground and the lower one as background,
	// which gives two square-ish pixels per terminal cell.
	upperHalfBlock = "▀"
	// DefaultPhotoRoot is where resource paths like /planes/commercial1.jpg are looked up.
	DefaultPhotoRoot = "./public"
)

var ErrPhotoUnavailable = errors.New("photo unavailable")

// PhotoInfo is what the lightbox knows about a photo file.
type PhotoInfo struct {
	Record ImageRecord
	Path   string
	Width  int
	Height int
	Image  image.Image
}

// ResolvePhotoPath maps the resource path of a record onto the photo root.
func ResolvePhotoPath(root string, src string) string {
	relative := filepath.FromSlash(strings.TrimLeft(src, "/"))
	if root == "" {
		return relative
	}
	return filepath.Join(root, relative)
}

// ProbePhoto opens and decodes the photo of the given record.
func ProbePhoto(root string, record ImageRecord) (PhotoInfo, error) {
	path := ResolvePhotoPath(root, record.Src)
	info := PhotoInfo{Record: record, Path: path}

	img, openErr := imaging.Open(path, imaging.AutoOrientation(true))
	if openErr != nil {
		return info, fmt.Errorf("probePhoto: %w: %s: %w", ErrPhotoUnavailable, path, openErr)
	}

	bounds := img.Bounds()
	info.Width = bounds.Dx()
	info.Height = bounds.Dy()
	info.Image = img

	return info, nil
}

// RenderPreview scales the image to the given number of terminal columns and draws it with
// coloured half blocks. The aspect ratio is kept.
func RenderPreview(img image.Image, width int) string {
	if img == nil || width <= 0 {
		return ""
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	height := width * bounds.Dy() / bounds.Dx()
	if height < 2 {
		height = 2
	}
	if height%2 != 0 {
		height++
	}

	scaled := imaging.Resize(img, width, height, imaging.Box)

	lines := make([]string, 0, height/2)
	for y := 0; y < height; y += 2 {
		var line strings.Builder
		for x := range width {
			cell := lipgloss.NewStyle().
				Foreground(hexColor(scaled.At(x, y))).
				Background(hexColor(scaled.At(x, y+1)))
			line.WriteString(cell.Render(upperHalfBlock))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}

func hexColor(c color.Color) lipgloss.Color {
	nrgba, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", nrgba.R, nrgba.G, nrgba.B))
}
