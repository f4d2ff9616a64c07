package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/text/language"

	"github.com/pauljohnleonard/booklet/index"
	"github.com/pauljohnleonard/booklet/layout"
	"github.com/pauljohnleonard/booklet/render"
)

// Default configuration values. Lengths are millimetres, font sizes points.
const (
	// DefaultPageWidth and DefaultPageHeight describe an A4 portrait page.
	DefaultPageWidth  = 210.0
	DefaultPageHeight = 297.0

	// DefaultMargin is applied on all four page sides.
	DefaultMargin = 10.0

	// DefaultGap is the vertical space between images on the same page.
	DefaultGap = 5.0

	// DefaultFontSize is the index entry font size.
	DefaultFontSize = 11.0

	// DefaultBannerFontSize is the font size of the booklet title on the
	// first index page.
	DefaultBannerFontSize = 22.0

	// DefaultLineHeight is the vertical advance of one index line.
	DefaultLineHeight = 8.0

	// DefaultBannerHeight is the space the first index page reserves for
	// the title banner.
	DefaultBannerHeight = 24.0

	// DefaultNumberColumnWidth is the width reserved for the right-aligned
	// page number on an index line.
	DefaultNumberColumnWidth = 12.0

	// DefaultTitleFont and DefaultBodyFont are PDF core font families, so
	// no font files need shipping.
	DefaultTitleFont = "Helvetica"
	DefaultBodyFont  = "Helvetica"

	// DefaultAppendixLabel marks the first appendix page.
	DefaultAppendixLabel = "Appendix"

	// DefaultOutputDir is where booklet PDFs are written.
	DefaultOutputDir = "booklets"

	// DefaultConcurrency is the number of instruments built in parallel.
	DefaultConcurrency = 4

	// AppName is the application name used for XDG directory paths.
	AppName = "booklet"
)

// Config holds all build options. It is populated from defaults, then a
// YAML file, then CLI flags, and passed through the application explicitly
// rather than via global state.
type Config struct {
	// PageWidth and PageHeight are the physical page size in millimetres.
	PageWidth  float64 `yaml:"pageWidth"`
	PageHeight float64 `yaml:"pageHeight"`

	// Margin is applied on all four page sides. The content area is the
	// page minus twice the margin in each direction.
	Margin float64 `yaml:"margin"`

	// Gap is the vertical space between images on the same page. It must
	// be positive; the packer refuses to run otherwise.
	Gap float64 `yaml:"gap"`

	// LimitUpscale caps the shared scale factor at 1, so images narrower
	// than the content width are never enlarged.
	LimitUpscale bool `yaml:"limitUpscale"`

	// Locale is the BCP 47 tag selecting index collation rules, e.g. "en",
	// "de", "sv". Empty means locale-neutral ordering.
	Locale string `yaml:"locale,omitempty"`

	// Index typography.
	FontSize          float64 `yaml:"fontSize"`
	BannerFontSize    float64 `yaml:"bannerFontSize"`
	LineHeight        float64 `yaml:"lineHeight"`
	BannerHeight      float64 `yaml:"bannerHeight"`
	NumberColumnWidth float64 `yaml:"numberColumnWidth"`

	// TitleFont and BodyFont are PDF core font families (Helvetica, Times,
	// Courier).
	TitleFont string `yaml:"titleFont"`
	BodyFont  string `yaml:"bodyFont"`

	// PageNumbers prints each image page's printed number in the footer.
	PageNumbers bool `yaml:"pageNumbers"`

	// AppendixLabel is drawn in the top margin of the first appendix page.
	// Empty disables the marker.
	AppendixLabel string `yaml:"appendixLabel,omitempty"`

	// OutputDir is the directory booklet PDFs are written to. It is
	// created if missing.
	OutputDir string `yaml:"outputDir"`

	// DataDir is the directory holding the baseline database. Defaults to
	// the XDG data directory.
	DataDir string `yaml:"dataDir,omitempty"`

	// Concurrency is the number of instruments built in parallel.
	Concurrency int `yaml:"concurrency"`

	// Verbose enables debug-level log output.
	Verbose bool `yaml:"verbose"`

	// ReportFile is the markdown build-report path. Empty disables the
	// report.
	ReportFile string `yaml:"reportFile,omitempty"`

	// Instruments lists the booklets to build, in output order.
	Instruments []Instrument `yaml:"instruments"`
}

// NewConfig creates a Config with default values. Callers override specific
// fields after creation.
func NewConfig() *Config {
	return &Config{
		PageWidth:         DefaultPageWidth,
		PageHeight:        DefaultPageHeight,
		Margin:            DefaultMargin,
		Gap:               DefaultGap,
		FontSize:          DefaultFontSize,
		BannerFontSize:    DefaultBannerFontSize,
		LineHeight:        DefaultLineHeight,
		BannerHeight:      DefaultBannerHeight,
		NumberColumnWidth: DefaultNumberColumnWidth,
		TitleFont:         DefaultTitleFont,
		BodyFont:          DefaultBodyFont,
		PageNumbers:       true,
		AppendixLabel:     DefaultAppendixLabel,
		OutputDir:         DefaultOutputDir,
		DataDir:           XDGDataDir(),
		Concurrency:       DefaultConcurrency,
	}
}

// XDGDataDir returns the XDG data directory for the booklet tool, the
// default home of the baseline database.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// ContentWidth returns the usable page width after margins.
func (c *Config) ContentWidth() float64 {
	return c.PageWidth - 2*c.Margin
}

// ContentHeight returns the usable page height after margins.
func (c *Config) ContentHeight() float64 {
	return c.PageHeight - 2*c.Margin
}

// ParseLocale returns the collation locale as a language tag. An empty
// locale yields the neutral tag.
func (c *Config) ParseLocale() (language.Tag, error) {
	if c.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.Und, err
	}
	return tag, nil
}

// LayoutConfig returns the page geometry in the layout engine's terms.
func (c *Config) LayoutConfig() layout.Config {
	return layout.Config{
		ContentWidth:  c.ContentWidth(),
		ContentHeight: c.ContentHeight(),
		Gap:           c.Gap,
		LimitUpscale:  c.LimitUpscale,
	}
}

// IndexConfig returns the index geometry and typography. The locale must
// have been validated beforehand; an unparsable locale falls back to
// neutral ordering here.
func (c *Config) IndexConfig() index.Config {
	locale, err := c.ParseLocale()
	if err != nil {
		locale = language.Und
	}
	return index.Config{
		ContentWidth:      c.ContentWidth(),
		ContentHeight:     c.ContentHeight(),
		LineHeight:        c.LineHeight,
		BannerHeight:      c.BannerHeight,
		NumberColumnWidth: c.NumberColumnWidth,
		FontSize:          c.FontSize,
		Locale:            locale,
	}
}

// RenderConfig returns the document geometry for the PDF renderer.
func (c *Config) RenderConfig() render.Config {
	return render.Config{
		PageWidth:         c.PageWidth,
		PageHeight:        c.PageHeight,
		Margin:            c.Margin,
		TitleFont:         c.TitleFont,
		BodyFont:          c.BodyFont,
		FontSize:          c.FontSize,
		BannerFontSize:    c.BannerFontSize,
		LineHeight:        c.LineHeight,
		BannerHeight:      c.BannerHeight,
		NumberColumnWidth: c.NumberColumnWidth,
		PageNumbers:       c.PageNumbers,
		AppendixLabel:     c.AppendixLabel,
	}
}

// Validate checks the configuration and returns the first problem found.
// It runs once after flag parsing, before any build begins.
func (c *Config) Validate() error {
	if len(c.Instruments) == 0 {
		return ErrNoInstruments
	}

	seen := make(map[string]bool, len(c.Instruments))
	for i := range c.Instruments {
		if err := c.Instruments[i].validate(); err != nil {
			return err
		}
		key := c.Instruments[i].Key
		if seen[key] {
			return wrapInstrument(ErrDuplicateInstrument, key)
		}
		seen[key] = true
	}

	if c.ContentWidth() <= 0 || c.ContentHeight() < 0 {
		return ErrInvalidGeometry
	}
	if c.Gap <= 0 {
		return ErrInvalidGap
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if _, err := c.ParseLocale(); err != nil {
		return ErrInvalidLocale
	}

	return nil
}
