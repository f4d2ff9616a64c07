package config

// Instrument describes one booklet to build: where its images live and how
// their filenames map to titles.
type Instrument struct {
	// Key identifies the instrument in the baseline database and in output
	// filenames, e.g. "bb" or "concert". Keys must be unique.
	Key string `yaml:"key"`

	// Title is shown on the index banner, e.g. "Jazz Standards (Bb)".
	// Empty falls back to the key.
	Title string `yaml:"title,omitempty"`

	// Dir is the directory holding the instrument's score images.
	Dir string `yaml:"dir"`

	// TitleSuffix is the filename suffix stripped when deriving titles,
	// e.g. "_Bb".
	TitleSuffix string `yaml:"titleSuffix,omitempty"`

	// LinksFile points to an external-link side channel, a YAML map or an
	// HTML page of anchors. Empty means no links.
	LinksFile string `yaml:"linksFile,omitempty"`
}

// DisplayTitle returns the banner title, falling back to the key.
func (in *Instrument) DisplayTitle() string {
	if in.Title != "" {
		return in.Title
	}
	return in.Key
}

func (in *Instrument) validate() error {
	if in.Key == "" {
		return ErrMissingInstrumentKey
	}
	if in.Dir == "" {
		return wrapInstrument(ErrMissingInstrumentDir, in.Key)
	}
	return nil
}
