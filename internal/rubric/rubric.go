package rubric

import "fmt"

// Pillar is a sub-criterion inside a section's prompt. Its weight is the
// number of points it contributes to the section score.
type Pillar struct {
	Name        string
	Description string
	Weight      int
	Questions   []string
}

// Section is a scored sub-unit of a category, evaluated by one model call.
// Name is the stable identifier used to join model output back to structure.
type Section struct {
	Name     string
	Category string
	MaxScore int
	Pillars  []Pillar
}

// Category groups sections sharing a minimum-score gate.
type Category struct {
	Name            string
	MaxScore        int
	MinimumRequired int
	Sections        []string
}

// Rubric is the fixed category/section/pillar hierarchy for one contest
// type. It is built once at process start and never mutated afterwards.
type Rubric struct {
	Name       string
	Categories []Category
	Sections   []Section
}

// Load returns the default rubric, validated. Configuration errors surface
// here, at process start, instead of mid-evaluation.
func Load() (*Rubric, error) {
	r := Default()
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("rubric %q: %w", r.Name, err)
	}
	return r, nil
}

// Validate checks the structural invariants of the rubric.
func (r *Rubric) Validate() error {
	if len(r.Categories) == 0 {
		return fmt.Errorf("no categories defined")
	}

	sections := make(map[string]*Section, len(r.Sections))
	for i := range r.Sections {
		s := &r.Sections[i]
		if _, dup := sections[s.Name]; dup {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		if s.MaxScore <= 0 {
			return fmt.Errorf("section %q: max_score must be positive, got %d", s.Name, s.MaxScore)
		}
		weight := 0
		for _, p := range s.Pillars {
			weight += p.Weight
		}
		if weight != s.MaxScore {
			return fmt.Errorf("section %q: pillar weights sum to %d, max_score is %d", s.Name, weight, s.MaxScore)
		}
		sections[s.Name] = s
	}

	owner := make(map[string]string, len(sections))
	catNames := make(map[string]struct{}, len(r.Categories))
	for _, c := range r.Categories {
		if _, dup := catNames[c.Name]; dup {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		catNames[c.Name] = struct{}{}

		if len(c.Sections) == 0 {
			return fmt.Errorf("category %q: no sections", c.Name)
		}
		if c.MinimumRequired <= 0 || c.MinimumRequired > c.MaxScore {
			return fmt.Errorf("category %q: minimum_required %d out of range (1..%d)", c.Name, c.MinimumRequired, c.MaxScore)
		}

		sum := 0
		for _, name := range c.Sections {
			s, ok := sections[name]
			if !ok {
				return fmt.Errorf("category %q references undefined section %q", c.Name, name)
			}
			if prev, claimed := owner[name]; claimed {
				return fmt.Errorf("section %q referenced by both %q and %q", name, prev, c.Name)
			}
			owner[name] = c.Name
			if s.Category != c.Name {
				return fmt.Errorf("section %q declares parent %q but is listed under %q", name, s.Category, c.Name)
			}
			sum += s.MaxScore
		}
		if sum != c.MaxScore {
			return fmt.Errorf("category %q: declared max_score %d, sections sum to %d", c.Name, c.MaxScore, sum)
		}
	}

	for name := range sections {
		if _, claimed := owner[name]; !claimed {
			return fmt.Errorf("section %q belongs to no category", name)
		}
	}
	return nil
}

// SectionByName returns the section with the given name, or nil.
func (r *Rubric) SectionByName(name string) *Section {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// CategoryByName returns the category with the given name, or nil.
func (r *Rubric) CategoryByName(name string) *Category {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i]
		}
	}
	return nil
}

// TotalMaxScore is the sum of all category max scores.
func (r *Rubric) TotalMaxScore() int {
	total := 0
	for _, c := range r.Categories {
		total += c.MaxScore
	}
	return total
}
