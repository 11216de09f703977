// Package catalog loads the static workout content the app trains from.
// The catalog is immutable after load; sessions reference it by workout id.
package catalog

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/claude/hooplab/internal/models"
	"gopkg.in/yaml.v3"
)

// Catalog is an immutable, ordered set of workouts indexed by id.
type Catalog struct {
	workouts []models.Workout
	byID     map[string]*models.Workout
}

type catalogFile struct {
	Workouts []models.Workout `yaml:"workouts"`
}

// Load parses a catalog from YAML read out of fsys at path.
func Load(fsys fs.FS, path string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	return parse(data)
}

// LoadFile parses a catalog from a YAML file on disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	c := &Catalog{
		workouts: file.Workouts,
		byID:     make(map[string]*models.Workout, len(file.Workouts)),
	}
	for i := range c.workouts {
		w := &c.workouts[i]
		if err := validateWorkout(w); err != nil {
			return nil, fmt.Errorf("workout %q: %w", w.ID, err)
		}
		if _, dup := c.byID[w.ID]; dup {
			return nil, fmt.Errorf("duplicate workout id %q", w.ID)
		}
		c.byID[w.ID] = w
	}
	return c, nil
}

func validateWorkout(w *models.Workout) error {
	if w.ID == "" {
		return fmt.Errorf("missing id")
	}
	if w.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(w.Drills) == 0 {
		return fmt.Errorf("no drills")
	}
	switch w.Category {
	case models.CategoryShooting, models.CategoryDribbling, models.CategoryDefense, models.CategoryConditioning:
	default:
		return fmt.Errorf("unknown category %q", w.Category)
	}
	switch w.SkillLevel {
	case models.SkillBeginner, models.SkillIntermediate, models.SkillAdvanced:
	default:
		return fmt.Errorf("unknown skill level %q", w.SkillLevel)
	}
	seen := make(map[string]bool, len(w.Drills))
	for _, d := range w.Drills {
		if d.ID == "" {
			return fmt.Errorf("drill with missing id")
		}
		if seen[d.ID] {
			return fmt.Errorf("duplicate drill id %q", d.ID)
		}
		seen[d.ID] = true
	}
	return nil
}

// Workouts returns all workouts in catalog order.
func (c *Catalog) Workouts() []models.Workout {
	return c.workouts
}

// Get returns the workout with the given id, or nil if absent.
func (c *Catalog) Get(id string) *models.Workout {
	return c.byID[id]
}
