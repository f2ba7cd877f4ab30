package constants

// Assessment is the overall verdict stored on an evaluation report.
// The gating engine derives it from recomputed category scores; the model's
// own wording is advisory only.
type Assessment string

const (
	AssessmentPassLikely    Assessment = "PASS_LIKELY"
	AssessmentRejectionRisk Assessment = "REJECTION_RISK"
)

var Assessments = []string{
	string(AssessmentPassLikely),
	string(AssessmentRejectionRisk),
}

// AssessmentForRisk maps the recomputed risk-of-rejection flag to a verdict.
func AssessmentForRisk(riskOfRejection bool) Assessment {
	if riskOfRejection {
		return AssessmentRejectionRisk
	}
	return AssessmentPassLikely
}
