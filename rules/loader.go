package rules

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
	"voyager.com/solorpg/poker"
)

var rulesLogger = log.With().Str("logger_name", "rules::loader").Logger()

type rankEntry struct {
	Rank       string   `yaml:"rank"`
	Base       *int     `yaml:"base"`
	Multiplier *float64 `yaml:"multiplier"`
	Health     *int     `yaml:"health"`
}

type bonusHandEntry struct {
	Rank       string  `yaml:"rank"`
	Multiplier float64 `yaml:"multiplier"`
}

type rulesFile struct {
	Rules      `yaml:",inline"`
	Ranks      []rankEntry      `yaml:"ranks"`
	BonusHands []bonusHandEntry `yaml:"bonus-hand-multipliers"`
}

// Load reads a YAML rules file. Settings missing from the file keep their defaults.
func Load(path string) (*Rules, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to read rules file %s", path)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to load rules file %s", path)
	}
	rulesLogger.Info().Str("path", path).Int("maxRounds", r.MaxRounds).Msg("Loaded rules")
	return r, nil
}

func Parse(data []byte) (*Rules, error) {
	f := rulesFile{Rules: *Default()}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "Error while parsing rules yaml")
	}
	r := f.Rules.Clone()

	for _, e := range f.Ranks {
		rank, err := poker.ParseHandRank(e.Rank)
		if err != nil {
			return nil, err
		}
		t := r.RankTable(rank)
		if e.Base != nil {
			t.BasePoints = *e.Base
		}
		if e.Multiplier != nil {
			t.Multiplier = *e.Multiplier
		}
		if e.Health != nil {
			t.HealthDelta = *e.Health
		}
		r.Ranks[rank] = t
	}
	for _, e := range f.BonusHands {
		rank, err := poker.ParseHandRank(e.Rank)
		if err != nil {
			return nil, err
		}
		r.BonusHandMultipliers[rank] = e.Multiplier
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}
