package catalog_test

import (
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/shared"
)

const minimalCatalog = `
races:
  - { index: 0, name: Humans, trooper_power: 10 }
  - { index: 6, name: Teuthidaes, cloak_bonus: 10, trooper_power: 10 }
hulls:
  - { name: Scout Mk1, size: SMALL, type: NORMAL, max_slot: 3, slot_hull: 1 }
components:
  - { name: Laser Mk1, type: WEAPON_BEAM, damage: 1, hit_chance: 75, energy_requirement: 1 }
  - { name: Nuclear drive Mk1, type: ENGINE, speed: 1, energy_resource: 2 }
`

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	// Act
	c := catalog.Default()

	// Assert
	require.NotNil(t, c)
	assert.NotEmpty(t, c.HullNames())
	assert.NotEmpty(t, c.Components())
	assert.Len(t, c.Races(), 10)
}

func TestDefault_TeuthidaesCarryCloakBonusAsData(t *testing.T) {
	c := catalog.Default()

	race, err := c.RaceByName("Teuthidaes")

	require.NoError(t, err)
	assert.Equal(t, 10, race.CloakBonus)

	human, err := c.Race(0)
	require.NoError(t, err)
	assert.Equal(t, 0, human.CloakBonus)
}

func TestParse_Minimal(t *testing.T) {
	// Act
	c, err := catalog.Parse([]byte(minimalCatalog))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Scout Mk1"}, c.HullNames())

	laser, err := c.ComponentByName("Laser Mk1")
	require.NoError(t, err)
	assert.Equal(t, catalog.ComponentWeaponBeam, laser.Type)
	assert.Equal(t, 75, laser.HitChance)
	assert.True(t, laser.IsWeapon())
	assert.True(t, laser.RequiresEnergy())
}

func TestHullByName_BindsRace(t *testing.T) {
	// Arrange
	c, err := catalog.Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	// Act
	hull, err := c.HullByName("Scout Mk1", 6)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Teuthidaes", hull.Race.Name)
	assert.Equal(t, 3, hull.MaxHullPoints())

	// The template itself stays unbound
	other, err := c.HullByName("Scout Mk1", 0)
	require.NoError(t, err)
	assert.Equal(t, "Humans", other.Race.Name)
}

func TestHullByName_SharesBoundHulls(t *testing.T) {
	c, err := catalog.Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	first, err := c.HullByName("Scout Mk1", 6)
	require.NoError(t, err)
	second, err := c.HullByName("Scout Mk1", 6)
	require.NoError(t, err)
	human, err := c.HullByName("Scout Mk1", 0)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, human)
}

func TestLookups_UnknownNames(t *testing.T) {
	c, err := catalog.Parse([]byte(minimalCatalog))
	require.NoError(t, err)

	tests := []struct {
		name   string
		lookup func() error
		kind   string
	}{
		{"hull", func() error { _, err := c.HullByName("Titan", 0); return err }, "hull"},
		{"race", func() error { _, err := c.HullByName("Scout Mk1", 42); return err }, "race"},
		{"component", func() error { _, err := c.ComponentByName("Death ray"); return err }, "component"},
		{"component list", func() error { _, err := c.ComponentsByName([]string{"Laser Mk1", "Nope"}); return err }, "component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.lookup()

			var unknown *shared.UnknownArchetypeError
			require.True(t, errors.As(err, &unknown))
			assert.Equal(t, tt.kind, unknown.Kind)
		})
	}
}

func TestParse_RejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name: "unknown component type",
			doc: `
races: [{ index: 0, name: Humans }]
hulls: [{ name: H, size: SMALL, type: NORMAL, max_slot: 1, slot_hull: 1 }]
components: [{ name: X, type: DEATH_RAY }]
`,
			wantErr: "component_type",
		},
		{
			name: "bad hull size",
			doc: `
races: [{ index: 0, name: Humans }]
hulls: [{ name: H, size: TINY, type: NORMAL, max_slot: 1, slot_hull: 1 }]
components: [{ name: X, type: ARMOR }]
`,
			wantErr: "oneof",
		},
		{
			name: "zero slots",
			doc: `
races: [{ index: 0, name: Humans }]
hulls: [{ name: H, size: SMALL, type: NORMAL, max_slot: 0, slot_hull: 1 }]
components: [{ name: X, type: ARMOR }]
`,
			wantErr: "min",
		},
		{
			name: "duplicate component",
			doc: `
races: [{ index: 0, name: Humans }]
hulls: [{ name: H, size: SMALL, type: NORMAL, max_slot: 1, slot_hull: 1 }]
components: [{ name: X, type: ARMOR }, { name: X, type: SHIELD }]
`,
			wantErr: "duplicate component",
		},
		{
			name:    "malformed yaml",
			doc:     "races: [",
			wantErr: "failed to parse catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.doc))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_FromFilesystem(t *testing.T) {
	// Arrange
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/etc/starship/catalog.yaml", []byte(minimalCatalog), 0o644))

	// Act
	c, err := catalog.Load(fs, "/etc/starship/catalog.yaml")

	// Assert
	require.NoError(t, err)
	assert.Len(t, c.Components(), 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(afero.NewMemMapFs(), "/missing.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog")
}

func TestComponents_OrderedByTypeThenName(t *testing.T) {
	c := catalog.NewCatalog(nil, nil, []*catalog.Component{
		{Name: "B", Type: catalog.ComponentShield},
		{Name: "A", Type: catalog.ComponentShield},
		{Name: "Z", Type: catalog.ComponentArmor},
	})

	comps := c.Components()

	require.Len(t, comps, 3)
	assert.Equal(t, "Z", comps[0].Name)
	assert.Equal(t, "A", comps[1].Name)
	assert.Equal(t, "B", comps[2].Name)
}
