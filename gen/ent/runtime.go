// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/seojun-park/planscore/db/ent/schema"
	"github.com/seojun-park/planscore/gen/ent/businessplan"
	"github.com/seojun-park/planscore/gen/ent/evaluationjob"
	"github.com/seojun-park/planscore/gen/ent/evaluationreport"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	businessplanFields := schema.BusinessPlan{}.Fields()
	_ = businessplanFields
	// businessplanDescTitle is the schema descriptor for title field.
	businessplanDescTitle := businessplanFields[2].Descriptor()
	// businessplan.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	businessplan.TitleValidator = businessplanDescTitle.Validators[0].(func(string) error)
	// businessplanDescObjectKey is the schema descriptor for object_key field.
	businessplanDescObjectKey := businessplanFields[3].Descriptor()
	// businessplan.ObjectKeyValidator is a validator for the "object_key" field. It is called by the builders before save.
	businessplan.ObjectKeyValidator = businessplanDescObjectKey.Validators[0].(func(string) error)
	// businessplanDescPageCount is the schema descriptor for page_count field.
	businessplanDescPageCount := businessplanFields[5].Descriptor()
	// businessplan.DefaultPageCount holds the default value on creation for the page_count field.
	businessplan.DefaultPageCount = businessplanDescPageCount.Default.(int)
	// businessplanDescSizeBytes is the schema descriptor for size_bytes field.
	businessplanDescSizeBytes := businessplanFields[6].Descriptor()
	// businessplan.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	businessplan.DefaultSizeBytes = businessplanDescSizeBytes.Default.(int)
	// businessplanDescStatus is the schema descriptor for status field.
	businessplanDescStatus := businessplanFields[7].Descriptor()
	// businessplan.DefaultStatus holds the default value on creation for the status field.
	businessplan.DefaultStatus = businessplanDescStatus.Default.(string)
	// businessplan.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	businessplan.StatusValidator = businessplanDescStatus.Validators[0].(func(string) error)
	// businessplanDescCreatedAt is the schema descriptor for created_at field.
	businessplanDescCreatedAt := businessplanFields[9].Descriptor()
	// businessplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	businessplan.DefaultCreatedAt = businessplanDescCreatedAt.Default.(func() time.Time)
	// businessplanDescUpdatedAt is the schema descriptor for updated_at field.
	businessplanDescUpdatedAt := businessplanFields[10].Descriptor()
	// businessplan.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	businessplan.DefaultUpdatedAt = businessplanDescUpdatedAt.Default.(func() time.Time)
	// businessplan.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	businessplan.UpdateDefaultUpdatedAt = businessplanDescUpdatedAt.UpdateDefault.(func() time.Time)
	// businessplanDescID is the schema descriptor for id field.
	businessplanDescID := businessplanFields[0].Descriptor()
	// businessplan.DefaultID holds the default value on creation for the id field.
	businessplan.DefaultID = businessplanDescID.Default.(func() uuid.UUID)
	evaluationjobFields := schema.EvaluationJob{}.Fields()
	_ = evaluationjobFields
	// evaluationjobDescStatus is the schema descriptor for status field.
	evaluationjobDescStatus := evaluationjobFields[2].Descriptor()
	// evaluationjob.DefaultStatus holds the default value on creation for the status field.
	evaluationjob.DefaultStatus = evaluationjobDescStatus.Default.(string)
	// evaluationjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	evaluationjob.StatusValidator = evaluationjobDescStatus.Validators[0].(func(string) error)
	// evaluationjobDescSectionsAnalyzed is the schema descriptor for sections_analyzed field.
	evaluationjobDescSectionsAnalyzed := evaluationjobFields[6].Descriptor()
	// evaluationjob.DefaultSectionsAnalyzed holds the default value on creation for the sections_analyzed field.
	evaluationjob.DefaultSectionsAnalyzed = evaluationjobDescSectionsAnalyzed.Default.(int)
	// evaluationjobDescStartedAt is the schema descriptor for started_at field.
	evaluationjobDescStartedAt := evaluationjobFields[7].Descriptor()
	// evaluationjob.DefaultStartedAt holds the default value on creation for the started_at field.
	evaluationjob.DefaultStartedAt = evaluationjobDescStartedAt.Default.(func() time.Time)
	// evaluationjobDescID is the schema descriptor for id field.
	evaluationjobDescID := evaluationjobFields[0].Descriptor()
	// evaluationjob.DefaultID holds the default value on creation for the id field.
	evaluationjob.DefaultID = evaluationjobDescID.Default.(func() uuid.UUID)
	evaluationreportFields := schema.EvaluationReport{}.Fields()
	_ = evaluationreportFields
	// evaluationreportDescOverallAssessment is the schema descriptor for overall_assessment field.
	evaluationreportDescOverallAssessment := evaluationreportFields[4].Descriptor()
	// evaluationreport.OverallAssessmentValidator is a validator for the "overall_assessment" field. It is called by the builders before save.
	evaluationreport.OverallAssessmentValidator = func() func(string) error {
		validators := evaluationreportDescOverallAssessment.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(overall_assessment string) error {
			for _, fn := range fns {
				if err := fn(overall_assessment); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// evaluationreportDescRiskOfRejection is the schema descriptor for risk_of_rejection field.
	evaluationreportDescRiskOfRejection := evaluationreportFields[5].Descriptor()
	// evaluationreport.DefaultRiskOfRejection holds the default value on creation for the risk_of_rejection field.
	evaluationreport.DefaultRiskOfRejection = evaluationreportDescRiskOfRejection.Default.(bool)
	// evaluationreportDescCreatedAt is the schema descriptor for created_at field.
	evaluationreportDescCreatedAt := evaluationreportFields[13].Descriptor()
	// evaluationreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationreport.DefaultCreatedAt = evaluationreportDescCreatedAt.Default.(func() time.Time)
	// evaluationreportDescID is the schema descriptor for id field.
	evaluationreportDescID := evaluationreportFields[0].Descriptor()
	// evaluationreport.DefaultID holds the default value on creation for the id field.
	evaluationreport.DefaultID = evaluationreportDescID.Default.(func() uuid.UUID)
}
