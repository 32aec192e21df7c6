package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

//Config holds the configuration of a simulation run
type Config struct {
	Pattern     string   `json:"pattern"`
	Interval    Duration `json:"interval"`
	MaxSteps    int      `json:"max_steps"`
	Expand      string   `json:"expand"`
	Interactive bool     `json:"interactive"`
	Random      bool     `json:"random"`
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Seed        int64    `json:"seed"`
}

//Duration is a time.Duration written as "500ms" in the config file
type Duration time.Duration

//UnmarshalJSON accepts both the duration string and the plain number of nanoseconds
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration: %v", s)
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.Errorf("[Duration] invalid duration: %s", b)
	}
	*d = Duration(n)
	return nil
}

//MarshalJSON writes the duration string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

//Unset marks the numeric field of the override that was not given
const Unset = -1

//Unspecified returns the override with nothing set, see Merge
func Unspecified() Config {
	return Config{Interval: Unset, MaxSteps: Unset, Width: Unset, Height: Unset}
}

//Default returns sensible defaults
func Default() Config {
	return Config{
		Interval: Duration(500 * time.Millisecond),
		Expand:   "edge",
		Width:    40,
		Height:   15,
	}
}

//Load loads configuration from JSON file on top of the defaults
func Load(filename string) (Config, error) {
	config := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

//Merge returns c with every given field of o applied
//numeric fields are given unless Unset, so an explicit zero wins
//strings and the seed are given when not empty, the switches can only be turned on
func (c Config) Merge(o Config) Config {
	if o.Pattern != "" {
		c.Pattern = o.Pattern
	}
	if o.Interval != Unset {
		c.Interval = o.Interval
	}
	if o.MaxSteps != Unset {
		c.MaxSteps = o.MaxSteps
	}
	if o.Expand != "" {
		c.Expand = o.Expand
	}
	if o.Width != Unset {
		c.Width = o.Width
	}
	if o.Height != Unset {
		c.Height = o.Height
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	c.Interactive = c.Interactive || o.Interactive
	c.Random = c.Random || o.Random
	return c
}

//Validate checks the values that can't be used for a run
func (c Config) Validate() error {
	switch {
	case c.Pattern == "" && !c.Random:
		return errors.New("pattern file is required unless the random pattern is requested")
	case c.Interval < 0:
		return errors.Errorf("interval must not be negative: %v", time.Duration(c.Interval))
	case c.MaxSteps < 0:
		return errors.Errorf("max steps must not be negative: %v", c.MaxSteps)
	case c.Random && (c.Width <= 0 || c.Height <= 0):
		return errors.Errorf("random pattern needs positive dimensions: %vx%v", c.Width, c.Height)
	}
	return nil
}
