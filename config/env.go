package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides.
const (
	EnvWidth    = "EMPYREUS_WIDTH"
	EnvHeight   = "EMPYREUS_HEIGHT"
	EnvSeed     = "EMPYREUS_SEED"
	EnvHopBound = "EMPYREUS_HOP_BOUND"
)

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() error { return c.applyEnv(os.Getenv) }

func (c *Config) applyEnv(getenv func(string) string) error {
	var err error
	getenvInt := func(key string, def int) int {
		v := getenv(key)
		if v == "" || err != nil {
			return def
		}
		i, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%w: %s=%q", ErrBadEnv, key, v)
			return def
		}
		return i
	}

	c.Board.Width = getenvInt(EnvWidth, c.Board.Width)
	c.Board.Height = getenvInt(EnvHeight, c.Board.Height)
	c.Board.HopBound = getenvInt(EnvHopBound, c.Board.HopBound)
	if v := getenv(EnvSeed); v != "" && err == nil {
		s, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return fmt.Errorf("%w: %s=%q", ErrBadEnv, EnvSeed, v)
		}
		c.Seed = s
	}
	return err
}
