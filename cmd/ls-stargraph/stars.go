package main

import (
	"fmt"
	"strings"

	"github.com/litescript/ls-stargraph/internal/catalog"
)

// starList collects repeated -star flags.
type starList []string

func (s *starList) String() string {
	return strings.Join(*s, "; ")
}

func (s *starList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// entries derives every -star value. Names may not contain commas.
func (s starList) entries(spectral, magnitude bool) ([]catalog.Entry, error) {
	out := make([]catalog.Entry, 0, len(s))
	for _, v := range s {
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("-star %q: want Name,Temperature,Luminosity", v)
		}
		e, err := catalog.Derive(catalog.Input{
			Name:          parts[0],
			Temperature:   parts[1],
			Luminosity:    parts[2],
			SpectralMode:  spectral,
			MagnitudeMode: magnitude,
		})
		if err != nil {
			return nil, fmt.Errorf("-star %q: %w", v, err)
		}
		out = append(out, e)
	}
	return out, nil
}
