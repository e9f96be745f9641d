package corpus

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/oteomoura/klingon-lid-experiment/internal/script"
)

const (
	defaultMinChars         = 1
	defaultMaxChars         = 100000
	defaultJaccardThreshold = 0.85
	defaultNGram            = 5
	defaultTrainRatio       = 0.8
	defaultDevRatio         = 0.1
	defaultTestRatio        = 0.1
	defaultSeed             = 7
	defaultShortMax         = 50
	defaultMediumMax        = 150
	defaultLatinThreshold   = 0.6
	defaultConfounderLabel  = "__label__tlh_Latn"
)

// NearDupConfig controls near-duplicate detection.
type NearDupConfig struct {
	Enabled          bool    `yaml:"enabled" json:"enabled"`
	JaccardThreshold float64 `yaml:"jaccard_threshold" json:"jaccard_threshold"`
	NGram            int     `yaml:"ngram" json:"ngram"`
}

// SplitConfig controls the stratified train/dev/test splitter.
type SplitConfig struct {
	TrainRatio           float64 `yaml:"train_ratio" json:"train_ratio"`
	DevRatio             float64 `yaml:"dev_ratio" json:"dev_ratio"`
	TestRatio            float64 `yaml:"test_ratio" json:"test_ratio"`
	Seed                 int64   `yaml:"seed" json:"seed"`
	ShortMax             int     `yaml:"short_max" json:"short_max"`
	MediumMax            int     `yaml:"medium_max" json:"medium_max"`
	FilterRomanizedTrain bool    `yaml:"filter_romanized_train" json:"filter_romanized_train"`
}

// ScriptConfig controls script tagging and romanization estimates.
type ScriptConfig struct {
	LatinThreshold float64             `yaml:"latin_threshold" json:"latin_threshold"`
	Expected       map[string]string   `yaml:"expected" json:"expected"`
	Groups         map[string][]string `yaml:"groups" json:"groups"`
}

// ExperimentConfig controls the classification harness and reports.
type ExperimentConfig struct {
	ConfounderLabel string            `yaml:"confounder_label" json:"confounder_label"`
	CodeMapping     map[string]string `yaml:"code_mapping" json:"code_mapping"`
	Names           map[string]string `yaml:"names" json:"names"`
	Categories      map[string]string `yaml:"categories" json:"categories"`
	ControlMarkers  []string          `yaml:"control_markers" json:"control_markers"`
}

// Config controls the corpus pipeline and the identification experiment.
type Config struct {
	Sources    []string         `yaml:"sources" json:"sources"`
	Ignore     []string         `yaml:"ignore" json:"ignore"`
	MinChars   int              `yaml:"min_chars" json:"min_chars"`
	MaxChars   int              `yaml:"max_chars" json:"max_chars"`
	NearDup    NearDupConfig    `yaml:"near_dup" json:"near_dup"`
	Split      SplitConfig      `yaml:"split" json:"split"`
	Script     ScriptConfig     `yaml:"script" json:"script"`
	Experiment ExperimentConfig `yaml:"experiment" json:"experiment"`
}

// LoadConfig loads a pipeline config from YAML and validates it.
func LoadConfig(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config yaml: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	var cfg Config
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if len(cfg.Sources) == 0 {
		cfg.Sources = []string{"wikipedia", "tatoeba", "udhr"}
	}
	if cfg.MinChars == 0 {
		cfg.MinChars = defaultMinChars
	}
	if cfg.MaxChars == 0 {
		cfg.MaxChars = defaultMaxChars
	}
	if cfg.NearDup.JaccardThreshold == 0 {
		cfg.NearDup.JaccardThreshold = defaultJaccardThreshold
	}
	if cfg.NearDup.NGram == 0 {
		cfg.NearDup.NGram = defaultNGram
	}
	if cfg.Split.TrainRatio == 0 {
		cfg.Split.TrainRatio = defaultTrainRatio
	}
	if cfg.Split.DevRatio == 0 {
		cfg.Split.DevRatio = defaultDevRatio
	}
	if cfg.Split.TestRatio == 0 {
		cfg.Split.TestRatio = defaultTestRatio
	}
	if cfg.Split.Seed == 0 {
		cfg.Split.Seed = defaultSeed
	}
	if cfg.Split.ShortMax == 0 {
		cfg.Split.ShortMax = defaultShortMax
	}
	if cfg.Split.MediumMax == 0 {
		cfg.Split.MediumMax = defaultMediumMax
	}
	if cfg.Script.LatinThreshold == 0 {
		cfg.Script.LatinThreshold = defaultLatinThreshold
	}
	if cfg.Script.Expected == nil {
		cfg.Script.Expected = defaultExpectedScripts()
	}
	if cfg.Script.Groups == nil {
		cfg.Script.Groups = map[string][]string{
			"ja": {"Han", "Hiragana", "Katakana"},
		}
	}
	if cfg.Experiment.ConfounderLabel == "" {
		cfg.Experiment.ConfounderLabel = defaultConfounderLabel
	}
	if cfg.Experiment.CodeMapping == nil {
		cfg.Experiment.CodeMapping = defaultCodeMapping()
	}
	if cfg.Experiment.Names == nil {
		cfg.Experiment.Names = map[string]string{}
	}
	if cfg.Experiment.Categories == nil {
		cfg.Experiment.Categories = map[string]string{}
	}
	if cfg.Experiment.ControlMarkers == nil {
		cfg.Experiment.ControlMarkers = defaultControlMarkers()
	}
}

func (cfg Config) validate() error {
	if cfg.MinChars < 0 {
		return fmt.Errorf("min_chars must be >= 0")
	}
	if cfg.MaxChars != 0 && cfg.MaxChars < cfg.MinChars {
		return fmt.Errorf("max_chars must be >= min_chars")
	}

	seen := make(map[string]bool, len(cfg.Sources))
	for _, source := range cfg.Sources {
		name := strings.TrimSpace(source)
		if name == "" {
			return fmt.Errorf("source name is required")
		}
		if seen[name] {
			return fmt.Errorf("duplicate source name: %s", name)
		}
		seen[name] = true
	}

	if cfg.NearDup.JaccardThreshold < 0 || cfg.NearDup.JaccardThreshold > 1 {
		return fmt.Errorf("near_dup.jaccard_threshold must be between 0 and 1")
	}
	if cfg.NearDup.NGram < 1 {
		return fmt.Errorf("near_dup.ngram must be >= 1")
	}

	ratios := SplitRatios{
		Train: cfg.Split.TrainRatio,
		Dev:   cfg.Split.DevRatio,
		Test:  cfg.Split.TestRatio,
	}
	if err := ValidateRatios(ratios); err != nil {
		return err
	}
	if cfg.Split.ShortMax < 1 {
		return fmt.Errorf("split.short_max must be >= 1")
	}
	if cfg.Split.MediumMax <= cfg.Split.ShortMax {
		return fmt.Errorf("split.medium_max must be greater than split.short_max")
	}

	if cfg.Script.LatinThreshold < 0 || cfg.Script.LatinThreshold > 1 {
		return fmt.Errorf("script.latin_threshold must be between 0 and 1")
	}
	for lang, group := range cfg.Script.Groups {
		for _, name := range group {
			if !script.Known(name) {
				return fmt.Errorf("script group for %s names unknown script %q", lang, name)
			}
		}
	}

	return nil
}

// SplitOptions assembles splitter options from the config.
func (cfg Config) SplitOptions() SplitOptions {
	return SplitOptions{
		Ratios: SplitRatios{
			Train: cfg.Split.TrainRatio,
			Dev:   cfg.Split.DevRatio,
			Test:  cfg.Split.TestRatio,
		},
		Seed:                 cfg.Split.Seed,
		ShortMax:             cfg.Split.ShortMax,
		MediumMax:            cfg.Split.MediumMax,
		FilterRomanizedTrain: cfg.Split.FilterRomanizedTrain,
	}
}

// DedupOptions assembles dedup options from the config.
func (cfg Config) DedupOptions() DedupOptions {
	return DedupOptions{
		NearDup:          cfg.NearDup.Enabled,
		JaccardThreshold: cfg.NearDup.JaccardThreshold,
		NGram:            cfg.NearDup.NGram,
	}
}

// TagOptions assembles tagging options from the config.
func (cfg Config) TagOptions() TagOptions {
	return TagOptions{
		Expected:       cfg.Script.Expected,
		Groups:         cfg.Script.Groups,
		LatinThreshold: cfg.Script.LatinThreshold,
	}
}

func defaultExpectedScripts() map[string]string {
	return map[string]string{
		"am": "Ethiopic", "ka": "Georgian", "ur": "Arabic", "lo": "Lao",
		"km": "Khmer", "my": "Myanmar", "dz": "Tibetan", "ja": "Japanese",
		"yo": "Latin", "en": "Latin", "pt": "Latin", "es": "Latin",
		"tr": "Latin", "eo": "Latin", "ia": "Latin", "io": "Latin",
		"ie": "Latin", "lfn": "Latin", "vo": "Latin", "avk": "Latin",
		"jbo": "Latin", "tok": "Latin", "kek": "Latin", "fuf": "Latin",
	}
}

func defaultCodeMapping() map[string]string {
	return map[string]string{
		"man":     "msc",
		"amc":     "kaq",
		"hva":     "hus",
		"nah":     "nch",
		"nym":     "suk",
		"mix":     "xtm",
		"lns":     "vut",
		"huu":     "huu",
		"quc":     "quc",
		"mam":     "mam",
		"arn":     "arn",
		"yua":     "yua",
		"maz":     "maz",
		"nav":     "nav",
		"not":     "not",
		"amr":     "amr",
		"ame":     "ame",
		"cni":     "cni",
		"agr":     "agr",
		"acu":     "acu",
		"arl":     "arl",
		"lun":     "lun",
		"lue":     "lue",
		"nba":     "nba",
		"kde":     "kde",
		"men":     "men",
		"lia":     "lia",
		"kpe":     "kpe",
		"mad":     "mad",
		"min":     "min",
		"mic":     "mic",
		"mcf":     "mcf",
		"miq":     "miq",
		"ido":     "ido",
		"ina":     "ina",
		"kal":     "kal",
		"kri":     "kri",
		"pcm":     "pcm",
		"klingon": "tlh",
	}
}

func defaultControlMarkers() []string {
	return []string{"'", "tlh", "Qapla'", "Hol", "jI", "bI", "Daj", "pu'", "QonoS", "QIt", "yI", "'oH"}
}
