package schema

import (
	"testing"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
)

func cascadeOnDelete(t *testing.T, edges []ent.Edge, name string) bool {
	t.Helper()
	for _, e := range edges {
		d := e.Descriptor()
		if d.Name != name {
			continue
		}
		for _, a := range d.Annotations {
			switch ann := a.(type) {
			case entsql.Annotation:
				if ann.OnDelete == entsql.Cascade {
					return true
				}
			case *entsql.Annotation:
				if ann.OnDelete == entsql.Cascade {
					return true
				}
			}
		}
		return false
	}
	t.Fatalf("edge %q not defined", name)
	return false
}

// Deleting a plan must take its jobs and reports with it; deleting a job
// must take its report. Without these the plan delete endpoint trips FK
// constraints on any plan that has ever been evaluated.
func TestChildRowsCascadeOnDelete(t *testing.T) {
	if !cascadeOnDelete(t, EvaluationJob{}.Edges(), "plan") {
		t.Error("evaluation_job.plan_id does not cascade on plan delete")
	}
	if !cascadeOnDelete(t, EvaluationReport{}.Edges(), "plan") {
		t.Error("evaluation_report.plan_id does not cascade on plan delete")
	}
	if !cascadeOnDelete(t, EvaluationReport{}.Edges(), "job") {
		t.Error("evaluation_report.job_id does not cascade on job delete")
	}
}
