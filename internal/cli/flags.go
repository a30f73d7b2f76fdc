package cli

import "tdp/internal/config"

// Flags holds command-line flags
type Flags struct {
	Workers    int
	DataPath   string
	NameFilter string
	Locations  bool
	NoSave     bool
	Verbose    bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Workers:    f.Workers,
		DataPath:   f.DataPath,
		NameFilter: f.NameFilter,
		Locations:  f.Locations,
		NoSave:     f.NoSave,
		Verbose:    f.Verbose,
	}
}
