package model

import (
	"path/filepath"
	"strings"
)

// ScoreImage represents one source image in an instrument's catalog
type ScoreImage struct {
	Identifier   string // Path or other opaque handle, unique within a catalog
	Width        int    // Pixel width (positive)
	Height       int    // Pixel height (positive)
	Title        string // Human title derived from the identifier
	ExternalLink string // Optional URL attached to the rendered image
}

// NewScoreImage creates a score image with its title derived from the
// identifier via DeriveTitle.
func NewScoreImage(identifier string, width, height int, titleSuffix string) ScoreImage {
	return ScoreImage{
		Identifier: identifier,
		Width:      width,
		Height:     height,
		Title:      DeriveTitle(identifier, titleSuffix),
	}
}

// DeriveTitle converts an image identifier into its human title: the base
// name minus extension and the instrument-specific suffix, with underscores
// read as spaces.
func DeriveTitle(identifier, titleSuffix string) string {
	name := filepath.Base(identifier)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if titleSuffix != "" {
		name = strings.TrimSuffix(name, titleSuffix)
	}
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

// ScaledItem pairs a score image with its dimensions under one booklet's
// shared scale factor. Derived per run, never persisted.
type ScaledItem struct {
	Image        ScoreImage
	ScaledWidth  float64
	ScaledHeight float64
}

// NewScaledItem applies a scale factor to a score image
func NewScaledItem(img ScoreImage, scale float64) ScaledItem {
	return ScaledItem{
		Image:        img,
		ScaledWidth:  float64(img.Width) * scale,
		ScaledHeight: float64(img.Height) * scale,
	}
}

// PlacedImage is a scaled image fixed at a position on a rendered page
type PlacedImage struct {
	Identifier   string
	BBox         BBox
	ExternalLink string // Empty when the image carries no link
}
