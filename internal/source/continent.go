package source

import (
	"fmt"
	"strings"
)

// Continent is the typed candidate set used by the continents source.
type Continent int

const (
	Africa Continent = iota
	America
	Antarctica
	Eurasia
	Oceania
)

var continentNames = [...]string{"Africa", "America", "Antarctica", "Eurasia", "Oceania"}

func (c Continent) String() string {
	if c < 0 || int(c) >= len(continentNames) {
		return fmt.Sprintf("Continent(%d)", int(c))
	}
	return continentNames[c]
}

// Continents returns every continent in declaration order.
func Continents() []Continent {
	out := make([]Continent, len(continentNames))
	for i := range continentNames {
		out[i] = Continent(i)
	}
	return out
}

// ParseContinent accepts a continent name in any case.
func ParseContinent(text string) (Continent, error) {
	for i, name := range continentNames {
		if strings.EqualFold(name, text) {
			return Continent(i), nil
		}
	}
	return 0, fmt.Errorf("no continent named %q", text)
}
