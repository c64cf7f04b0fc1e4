package catalog

import (
	"sort"
	"strconv"

	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

// Catalog is the process-wide read-only registry of races, hull templates and
// component archetypes. Lookups hand out shared pointers; callers must not
// modify them.
type Catalog struct {
	races      map[int]Race
	hulls      map[string]*Hull
	bound      map[boundHullKey]*Hull
	components map[string]*Component
}

// boundHullKey identifies a hull template bound to one race
type boundHullKey struct {
	name string
	race int
}

// NewCatalog builds a catalog from already validated archetypes.
// Later duplicates replace earlier ones. Every hull is bound to every race up
// front, so repeated lookups return the same pointer.
func NewCatalog(races []Race, hulls []*Hull, components []*Component) *Catalog {
	c := &Catalog{
		races:      make(map[int]Race, len(races)),
		hulls:      make(map[string]*Hull, len(hulls)),
		components: make(map[string]*Component, len(components)),
	}
	for _, race := range races {
		c.races[race.Index] = race
	}
	for _, hull := range hulls {
		c.hulls[hull.Name] = hull
	}
	for _, comp := range components {
		c.components[comp.Name] = comp
	}

	c.bound = make(map[boundHullKey]*Hull, len(c.hulls)*len(c.races))
	for name, template := range c.hulls {
		for index, race := range c.races {
			c.bound[boundHullKey{name: name, race: index}] = template.withRace(race)
		}
	}
	return c
}

// Race returns the race registered under a save-file index
func (c *Catalog) Race(index int) (Race, error) {
	race, ok := c.races[index]
	if !ok {
		return Race{}, shared.NewUnknownArchetypeError("race", strconv.Itoa(index))
	}
	return race, nil
}

// RaceByName returns a race by its display name
func (c *Catalog) RaceByName(name string) (Race, error) {
	for _, race := range c.races {
		if race.Name == name {
			return race, nil
		}
	}
	return Race{}, shared.NewUnknownArchetypeError("race", name)
}

// HullByName returns the named hull bound to the race with the given index
func (c *Catalog) HullByName(name string, raceIndex int) (*Hull, error) {
	if _, ok := c.hulls[name]; !ok {
		return nil, shared.NewUnknownArchetypeError("hull", name)
	}
	if _, err := c.Race(raceIndex); err != nil {
		return nil, err
	}
	return c.bound[boundHullKey{name: name, race: raceIndex}], nil
}

// ComponentByName returns the shared component archetype with the given name
func (c *Catalog) ComponentByName(name string) (*Component, error) {
	comp, ok := c.components[name]
	if !ok {
		return nil, shared.NewUnknownArchetypeError("component", name)
	}
	return comp, nil
}

// ComponentsByName resolves an ordered list of component names
func (c *Catalog) ComponentsByName(names []string) ([]*Component, error) {
	comps := make([]*Component, 0, len(names))
	for _, name := range names {
		comp, err := c.ComponentByName(name)
		if err != nil {
			return nil, err
		}
		comps = append(comps, comp)
	}
	return comps, nil
}

// Races lists races ordered by index
func (c *Catalog) Races() []Race {
	races := make([]Race, 0, len(c.races))
	for _, race := range c.races {
		races = append(races, race)
	}
	sort.Slice(races, func(i, j int) bool { return races[i].Index < races[j].Index })
	return races
}

// HullNames lists hull template names alphabetically
func (c *Catalog) HullNames() []string {
	names := make([]string, 0, len(c.hulls))
	for name := range c.hulls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Components lists component archetypes ordered by type then name
func (c *Catalog) Components() []*Component {
	comps := make([]*Component, 0, len(c.components))
	for _, comp := range c.components {
		comps = append(comps, comp)
	}
	sort.Slice(comps, func(i, j int) bool {
		if comps[i].Type != comps[j].Type {
			return comps[i].Type < comps[j].Type
		}
		return comps[i].Name < comps[j].Name
	})
	return comps
}
