// Package deadmoney validates and parses the per-league dead money percentage
// table and previews the dead money a hypothetical cut would create.
package deadmoney

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// Input is an unvalidated config as received from a client or read from
// storage. Pointers distinguish a missing value from zero.
type Input struct {
	CurrentSeason *float64            `json:"currentSeason"`
	FutureSeasons map[string]*float64 `json:"futureSeasons"`
}

// Default returns the documented fallback: the whole current salary now and a
// quarter of it for each remaining year.
func Default() models.DeadMoneyConfig {
	return models.DeadMoneyConfig{
		CurrentSeason: 1.0,
		FutureSeasons: [models.DeadMoneyBuckets]float64{0.25, 0.25, 0.25, 0.25},
	}
}

// ToInput converts a typed config back into its wire shape.
func ToInput(cfg models.DeadMoneyConfig) Input {
	in := Input{
		CurrentSeason: ptr(cfg.CurrentSeason),
		FutureSeasons: make(map[string]*float64, models.DeadMoneyBuckets),
	}
	for i, v := range cfg.FutureSeasons {
		in.FutureSeasons[strconv.Itoa(i+1)] = ptr(v)
	}
	return in
}

// Validate checks shape and ranges and builds the typed config. Sums of
// currentSeason and a future bucket above 1 are legal and reported as
// warnings.
func Validate(in Input) (models.DeadMoneyConfig, []string, error) {
	var cfg models.DeadMoneyConfig

	if in.CurrentSeason == nil {
		return cfg, nil, apperr.Validation("dead money config: currentSeason is required")
	}
	if err := checkRate("currentSeason", *in.CurrentSeason); err != nil {
		return cfg, nil, err
	}
	cfg.CurrentSeason = *in.CurrentSeason

	if in.FutureSeasons == nil {
		return cfg, nil, apperr.Validation("dead money config: futureSeasons is required")
	}
	for key := range in.FutureSeasons {
		n, err := strconv.Atoi(key)
		if err != nil || n < 1 || n > models.DeadMoneyBuckets || key != strconv.Itoa(n) {
			return cfg, nil, apperr.Validation("dead money config: unexpected futureSeasons key %q", key)
		}
	}

	var warnings []string
	for i := range cfg.FutureSeasons {
		key := strconv.Itoa(i + 1)
		v, ok := in.FutureSeasons[key]
		if !ok || v == nil {
			return cfg, nil, apperr.Validation("dead money config: futureSeasons[%q] is required", key)
		}
		if err := checkRate(fmt.Sprintf("futureSeasons[%q]", key), *v); err != nil {
			return cfg, nil, err
		}
		cfg.FutureSeasons[i] = *v

		if sum := cfg.CurrentSeason + *v; sum > 1 {
			warnings = append(warnings, fmt.Sprintf(
				"currentSeason + futureSeasons[%q] = %.2f charges more than 100%% of salary", key, sum))
		}
	}
	sort.Strings(warnings)

	return cfg, warnings, nil
}

func checkRate(field string, v float64) error {
	// NaN fails both comparisons
	if !(v >= 0 && v <= 1) {
		return apperr.Validation("dead money config: %s must be between 0 and 1, got %v", field, v)
	}
	return nil
}

// Parse strictly decodes and validates a stored or submitted config. A value
// stored as a JSON string holding the object is unwrapped first.
func Parse(raw []byte) (models.DeadMoneyConfig, []string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.DeadMoneyConfig{}, nil, apperr.Validation("dead money config: empty")
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return models.DeadMoneyConfig{}, nil, apperr.Validation("dead money config: %v", err)
		}
		raw = []byte(inner)
	}

	var in Input
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return models.DeadMoneyConfig{}, nil, apperr.Validation("dead money config: %v", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return models.DeadMoneyConfig{}, nil, apperr.Validation("dead money config: unexpected data after object")
	}
	return Validate(in)
}

// ParseOrDefault is the lenient read path: a missing or corrupt stored config
// falls back to Default.
func ParseOrDefault(raw []byte) models.DeadMoneyConfig {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Default()
	}
	cfg, _, err := Parse(raw)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid stored dead money config, using default")
		return Default()
	}
	return cfg
}

// NeedsRepair reports whether a stored config should be rewritten to the
// default, and why. Configs with a zero one-year bucket block dead money for
// one-year cuts and are repaired too.
func NeedsRepair(raw []byte) (bool, string) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return true, "missing"
	}
	cfg, _, err := Parse(raw)
	if err != nil {
		return true, err.Error()
	}
	if cfg.FutureSeasons[0] == 0 {
		return true, `futureSeasons["1"] is 0`
	}
	return false, ""
}

func ptr(v float64) *float64 {
	return &v
}
