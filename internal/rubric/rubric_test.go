package rubric

import (
	"strings"
	"testing"
)

func TestLoadDefaultRubric(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := len(r.Categories); got != 4 {
		t.Errorf("categories = %d, want 4", got)
	}
	if got := len(r.Sections); got != 7 {
		t.Errorf("sections = %d, want 7", got)
	}
	if got := r.TotalMaxScore(); got != 100 {
		t.Errorf("TotalMaxScore = %d, want 100", got)
	}
}

func TestDefaultRubricGates(t *testing.T) {
	r, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := map[string]struct{ max, min int }{
		"Problem Recognition":  {30, 18},
		"Solution Feasibility": {30, 18},
		"Growth Strategy":      {20, 12},
		"Team Composition":     {20, 12},
	}
	for name, w := range want {
		c := r.CategoryByName(name)
		if c == nil {
			t.Errorf("missing category %q", name)
			continue
		}
		if c.MaxScore != w.max || c.MinimumRequired != w.min {
			t.Errorf("category %q = %d/%d, want %d/%d", name, c.MaxScore, c.MinimumRequired, w.max, w.min)
		}
	}
}

func TestSectionLookup(t *testing.T) {
	r := Default()
	s := r.SectionByName("4.1 Founder and Team Capabilities")
	if s == nil {
		t.Fatal("SectionByName returned nil for a defined section")
	}
	if s.Category != "Team Composition" || s.MaxScore != 20 {
		t.Errorf("section = %+v, want Team Composition / 20", s)
	}
	if r.SectionByName("nope") != nil {
		t.Error("SectionByName returned non-nil for undefined section")
	}
}

func TestEverySectionHasPillarsWithQuestions(t *testing.T) {
	r := Default()
	for _, s := range r.Sections {
		if len(s.Pillars) == 0 {
			t.Errorf("section %q has no pillars", s.Name)
		}
		for _, p := range s.Pillars {
			if p.Weight <= 0 {
				t.Errorf("section %q pillar %q: weight %d", s.Name, p.Name, p.Weight)
			}
			if len(p.Questions) == 0 {
				t.Errorf("section %q pillar %q: no review questions", s.Name, p.Name)
			}
		}
	}
}

func TestValidateRejectsBrokenRubrics(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Rubric)
		wantMsg string
	}{
		{
			"category max mismatch",
			func(r *Rubric) { r.Categories[0].MaxScore = 29 },
			"sections sum",
		},
		{
			"minimum above max",
			func(r *Rubric) { r.Categories[0].MinimumRequired = 31 },
			"out of range",
		},
		{
			"zero minimum",
			func(r *Rubric) { r.Categories[0].MinimumRequired = 0 },
			"out of range",
		},
		{
			"undefined section reference",
			func(r *Rubric) { r.Categories[0].Sections[0] = "0.0 Ghost" },
			"undefined section",
		},
		{
			"section owned twice",
			func(r *Rubric) {
				r.Categories[1].Sections[0] = r.Categories[0].Sections[0]
			},
			"referenced by both",
		},
		{
			"pillar weights mismatch",
			func(r *Rubric) { r.Sections[0].Pillars[0].Weight++ },
			"pillar weights",
		},
		{
			"duplicate category",
			func(r *Rubric) { r.Categories[1].Name = r.Categories[0].Name },
			"duplicate category",
		},
		{
			"duplicate section",
			func(r *Rubric) { r.Sections[1].Name = r.Sections[0].Name },
			"duplicate section",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := Default()
			c.mutate(r)
			err := r.Validate()
			if err == nil {
				t.Fatal("Validate accepted a broken rubric")
			}
			if !strings.Contains(err.Error(), c.wantMsg) {
				t.Errorf("error %q does not mention %q", err, c.wantMsg)
			}
		})
	}
}

func TestValidateRejectsOrphanSection(t *testing.T) {
	r := Default()
	r.Sections = append(r.Sections, Section{
		Name:     "5.1 Unattached",
		Category: "Team Composition",
		MaxScore: 5,
		Pillars:  []Pillar{{Name: "x", Weight: 5, Questions: []string{"?"}}},
	})
	err := r.Validate()
	if err == nil || !strings.Contains(err.Error(), "belongs to no category") {
		t.Errorf("orphan section: err = %v", err)
	}
}
