// Package fonts loads the badge typefaces from an ordered list of
// candidate files, falling back to the next candidate on any failure.
package fonts

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// ErrNoFont is returned when no candidate could supply every requested size.
var ErrNoFont = errors.New("fonts: no usable font candidate")

// Source is a font candidate. Data, when set, is used instead of
// reading Path from disk.
type Source struct {
	Path string
	Data []byte
}

func (s Source) String() string {
	if s.Data != nil && s.Path == "" {
		return "<embedded>"
	}
	return s.Path
}

// SystemCandidates are the bold-ish system fonts tried by default, in order.
var SystemCandidates = []Source{
	{Path: "/System/Library/Fonts/Helvetica.ttc"},
	{Path: "/System/Library/Fonts/Supplemental/Arial.ttf"},
	{Path: "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"},
	{Path: "arial.ttf"},
}

// GoBold is the embedded last-resort font.
var GoBold = Source{Path: "gobold (embedded)", Data: gobold.TTF}

// Load opens src at size pixels.
func Load(src Source, size float64) (font.Face, error) {
	data, err := src.bytes()
	if err != nil {
		return nil, err
	}
	return Parse(data, size)
}

func (s Source) bytes() ([]byte, error) {
	if s.Data != nil {
		return s.Data, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", s, err)
	}
	return data, nil
}

// Parse builds a face from TTF, OTF or collection bytes. Collections
// use their first font. Sizes are pixels (72 DPI).
func Parse(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %v", size)
	}
	face, sfntErr := parseSFNT(data, size)
	if sfntErr == nil {
		return face, nil
	}
	// freetype accepts some older TrueType files sfnt rejects.
	tt, ttErr := truetype.Parse(data)
	if ttErr != nil {
		return nil, fmt.Errorf("parse font: %w", errors.Join(sfntErr, ttErr))
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

func parseSFNT(data []byte, size float64) (font.Face, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	if coll.NumFonts() == 0 {
		return nil, errors.New("empty font collection")
	}
	f, err := coll.Font(0)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Set maps pixel sizes to faces loaded from one source. A nil or
// empty Set has no faces; callers skip text that needs one.
type Set map[float64]font.Face

// Face returns the face for size, if loaded.
func (s Set) Face(size float64) (font.Face, bool) {
	face, ok := s[size]
	return face, ok && face != nil
}

// Close releases every face in the set.
func (s Set) Close() error {
	var errs []error
	for _, face := range s {
		if err := face.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Loader tries candidates in order and keeps the first one that loads
// at every requested size.
type Loader struct {
	Candidates []Source
	Logger     interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// LoadSet returns the faces of the first usable candidate and that
// candidate. When none works it returns an empty Set and ErrNoFont.
func (l Loader) LoadSet(sizes ...float64) (Set, Source, error) {
	sizes = uniqueSizes(sizes)
	for _, src := range l.Candidates {
		set, err := loadAll(src, sizes)
		if err != nil {
			if l.Logger != nil {
				l.Logger.Errorf("fonts", "skipping %s: %v", src, err)
			}
			continue
		}
		if l.Logger != nil {
			l.Logger.Infof("fonts", "loaded %s at %d sizes", src, len(sizes))
		}
		return set, src, nil
	}
	return Set{}, Source{}, ErrNoFont
}

func loadAll(src Source, sizes []float64) (Set, error) {
	data, err := src.bytes()
	if err != nil {
		return nil, err
	}
	set := make(Set, len(sizes))
	for _, size := range sizes {
		face, err := Parse(data, size)
		if err != nil {
			_ = set.Close()
			return nil, fmt.Errorf("size %v: %w", size, err)
		}
		set[size] = face
	}
	return set, nil
}

func uniqueSizes(sizes []float64) []float64 {
	seen := make(map[float64]bool, len(sizes))
	out := make([]float64, 0, len(sizes))
	for _, s := range sizes {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Float64s(out)
	return out
}
