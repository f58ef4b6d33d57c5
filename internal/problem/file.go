package problem

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"nautilus/internal/logging"
	"nautilus/internal/mcdm"
)

// File is the YAML layout of a point-set problem.
type File struct {
	Name       string      `yaml:"name"`
	Objectives []string    `yaml:"objectives,omitempty"`
	Nadir      []float64   `yaml:"nadir,omitempty"`
	Ideal      []float64   `yaml:"ideal,omitempty"`
	Points     [][]float64 `yaml:"points"`
}

// Load reads a point-set problem from a YAML file. Dominated points are
// dropped; missing ideal or nadir points are estimated from the rest.
func Load(path string) (*mcdm.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse problem file %s: %w", path, err)
	}
	p, err := f.Problem()
	if err != nil {
		return nil, fmt.Errorf("problem file %s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = filepath.Base(path)
	}
	logging.Problem("loaded %s: %d objectives, %d of %d points non-dominated", p.Name, p.NumObjectives(), len(p.Points), len(f.Points))
	return p, nil
}

// Problem validates the file contents and converts them.
func (f *File) Problem() (*mcdm.Problem, error) {
	if len(f.Points) == 0 {
		return nil, fmt.Errorf("no points")
	}
	n := len(f.Points[0])
	if n == 0 {
		return nil, fmt.Errorf("points have no objectives")
	}

	points := make([]mcdm.Point, len(f.Points))
	for i, row := range f.Points {
		if len(row) != n {
			return nil, fmt.Errorf("point %d has %d objectives, expected %d", i+1, len(row), n)
		}
		points[i] = mcdm.Point(row)
	}
	if len(f.Objectives) != 0 && len(f.Objectives) != n {
		return nil, fmt.Errorf("%d objective names for %d objectives", len(f.Objectives), n)
	}

	front := ParetoFilter(points)
	ideal, nadir, err := Bounds(front)
	if err != nil {
		return nil, err
	}
	if f.Ideal != nil {
		if len(f.Ideal) != n {
			return nil, fmt.Errorf("ideal has %d objectives, expected %d", len(f.Ideal), n)
		}
		ideal = mcdm.Point(f.Ideal)
	}
	if f.Nadir != nil {
		if len(f.Nadir) != n {
			return nil, fmt.Errorf("nadir has %d objectives, expected %d", len(f.Nadir), n)
		}
		nadir = mcdm.Point(f.Nadir)
	}
	for i := range ideal {
		if ideal[i] > nadir[i] {
			return nil, fmt.Errorf("ideal exceeds nadir in objective %d", i+1)
		}
	}

	return &mcdm.Problem{
		Name:       f.Name,
		Objectives: f.Objectives,
		Ideal:      ideal,
		Nadir:      nadir,
		Points:     front,
	}, nil
}

// Save writes p in the format Load reads.
func Save(path string, p *mcdm.Problem) error {
	f := File{
		Name:       p.Name,
		Objectives: p.Objectives,
		Nadir:      p.Nadir,
		Ideal:      p.Ideal,
		Points:     make([][]float64, len(p.Points)),
	}
	for i, pt := range p.Points {
		f.Points[i] = pt
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("failed to marshal problem: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create problem directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write problem: %w", err)
	}
	logging.ProblemDebug("wrote %s: %d points to %s", p.Name, len(p.Points), path)
	return nil
}
