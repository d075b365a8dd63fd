package imagepkg

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/youruser/bingoapp/internal/util"
)

// LoadTemplate opens the sheet template from a file path or an http(s) URL.
// An empty location yields BlankTemplate(layout).
func LoadTemplate(location string, layout Layout) (image.Image, error) {
	switch {
	case location == "":
		return BlankTemplate(layout), nil
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		img, err := DownloadImage(location)
		if err != nil {
			return nil, fmt.Errorf("downloading template %s: %w", location, err)
		}
		return img, nil
	default:
		img, err := imaging.Open(location)
		if err != nil {
			return nil, fmt.Errorf("opening template %s: %w", location, err)
		}
		return img, nil
	}
}

// Output is one image to be written as Name.png.
type Output struct {
	Name  string
	Image image.Image
}

// WriteAll encodes every output into dir as PNG. Files are staged under temporary
// names and only renamed into place once all of them were written, so a failure
// leaves no partial set behind.
func WriteAll(dir string, outputs []Output) ([]string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	staged := make([]string, 0, len(outputs))
	cleanup := func() {
		for _, p := range staged {
			os.Remove(p)
		}
	}
	for _, o := range outputs {
		if o.Name == "" || strings.ContainsAny(o.Name, `/\`) {
			cleanup()
			return nil, fmt.Errorf("invalid output name %q", o.Name)
		}
		tmp, err := os.CreateTemp(dir, ".bingo-*.png")
		if err != nil {
			cleanup()
			return nil, err
		}
		staged = append(staged, tmp.Name())
		err = imaging.Encode(tmp, o.Image, imaging.PNG)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			cleanup()
			return nil, fmt.Errorf("encoding %s: %w", o.Name, err)
		}
	}

	written := make([]string, 0, len(outputs))
	for i, o := range outputs {
		dst := filepath.Join(dir, o.Name+".png")
		if err := os.Rename(staged[i], dst); err != nil {
			cleanup()
			return written, fmt.Errorf("moving %s into place: %w", dst, err)
		}
		written = append(written, dst)
	}
	return written, nil
}
