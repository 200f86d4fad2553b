package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/HarryWarriner/UNO/consts"
	"github.com/joho/godotenv"
)

const (
	envPlayers          = "UNO_PLAYERS"
	envVsAI             = "UNO_VS_AI"
	envShowAIHand       = "UNO_SHOW_AI_HAND"
	envAIDeclareChance  = "UNO_AI_DECLARE_CHANCE"
	envFalseCallPenalty = "UNO_FALSE_CALL_PENALTY"
)

type Config struct {
	Players          int
	VsAI             bool
	ShowAIHand       bool
	AIDeclareChance  int
	FalseCallPenalty int
}

func Default() Config {
	return Config{
		Players:          consts.MinPlayers,
		VsAI:             true,
		ShowAIHand:       false,
		AIDeclareChance:  consts.AIDeclareChance,
		FalseCallPenalty: consts.FalseCallPenalty,
	}
}

// Load reads the given .env files, or ./.env when none are named, and then
// the environment. Missing files are fine; variables already set in the
// environment win over the files.
func Load(filenames ...string) (Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from lookup, falling back to Default for unset variables.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error
	if c.Players, err = intVar(lookup, envPlayers, c.Players, consts.MinPlayers, consts.MaxPlayers); err != nil {
		return Config{}, err
	}
	if c.VsAI, err = boolVar(lookup, envVsAI, c.VsAI); err != nil {
		return Config{}, err
	}
	if c.ShowAIHand, err = boolVar(lookup, envShowAIHand, c.ShowAIHand); err != nil {
		return Config{}, err
	}
	if c.AIDeclareChance, err = intVar(lookup, envAIDeclareChance, c.AIDeclareChance, 0, 100); err != nil {
		return Config{}, err
	}
	if c.FalseCallPenalty, err = intVar(lookup, envFalseCallPenalty, c.FalseCallPenalty, 0, consts.HandSize); err != nil {
		return Config{}, err
	}
	return c, nil
}

func intVar(lookup func(string) (string, bool), name string, fallback, minimum, maximum int) (int, error) {
	raw, ok := lookup(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < minimum || value > maximum {
		return 0, fmt.Errorf("%w%s=%q, expected %d..%d", consts.ErrorsInputInvalid, name, raw, minimum, maximum)
	}
	return value, nil
}

func boolVar(lookup func(string) (string, bool), name string, fallback bool) (bool, error) {
	raw, ok := lookup(name)
	if !ok || raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w%s=%q, expected true or false", consts.ErrorsInputInvalid, name, raw)
	}
	return value, nil
}
