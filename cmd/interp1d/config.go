package main

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/Maxime2/interp1d"
)

// Config is read from an INI-style file:
//
//	[samples]
//	file = samples.txt
//	xcolumn = 0
//	ycolumn = 1
//	sorted = false
//	integer = false
//
//	[query]
//	file = queries.txt
//	column = 0
//	mode = clamp
//	workers = 0
//	chunksize = 1024
type Config struct {
	Samples SamplesConfig
	Query   QueryConfig
}

type SamplesConfig struct {
	File             string
	XColumn, YColumn int
	Sorted           bool
	Integer          bool
}

type QueryConfig struct {
	File      string
	Column    int
	Mode      string
	Workers   int
	ChunkSize int
}

func DefaultConfig() Config {
	return Config{
		Samples: SamplesConfig{XColumn: 0, YColumn: 1},
		Query:   QueryConfig{Column: 0, Mode: "clamp", ChunkSize: 1024},
	}
}

func ReadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadFileInto(&c, path); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func ReadConfigString(s string) (Config, error) {
	c := DefaultConfig()
	if err := gcfg.ReadStringInto(&c, s); err != nil {
		return c, err
	}
	return c, c.Validate()
}

func (c *Config) Validate() error {
	if c.Samples.File == "" {
		return fmt.Errorf("need to specify [samples] file")
	}
	if c.Query.File == "" {
		return fmt.Errorf("need to specify [query] file")
	}
	if c.Samples.XColumn < 0 || c.Samples.YColumn < 0 || c.Query.Column < 0 {
		return fmt.Errorf("column indices must be non-negative")
	}
	if c.Samples.XColumn == c.Samples.YColumn {
		return fmt.Errorf("xcolumn and ycolumn are both %d", c.Samples.XColumn)
	}
	if _, err := c.Boundary(); err != nil {
		return err
	}
	return nil
}

// Boundary maps the mode string onto an interp1d.Boundary.
func (c *Config) Boundary() (interp1d.Boundary, error) {
	switch strings.ToLower(c.Query.Mode) {
	case "clamp", "clamped":
		return interp1d.BoundaryClamp, nil
	case "checked", "error":
		return interp1d.BoundaryError, nil
	}
	return 0, fmt.Errorf("unknown query mode '%s'", c.Query.Mode)
}
