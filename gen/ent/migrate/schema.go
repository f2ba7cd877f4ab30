// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BusinessPlanColumns holds the columns for the "business_plan" table.
	BusinessPlanColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "object_key", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeString, Nullable: true},
		{Name: "page_count", Type: field.TypeInt, Default: 0},
		{Name: "size_bytes", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "UPLOADED"},
		{Name: "latest_job_id", Type: field.TypeUUID, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BusinessPlanTable holds the schema information for the "business_plan" table.
	BusinessPlanTable = &schema.Table{
		Name:       "business_plan",
		Columns:    BusinessPlanColumns,
		PrimaryKey: []*schema.Column{BusinessPlanColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "businessplan_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BusinessPlanColumns[1], BusinessPlanColumns[9]},
			},
			{
				Name:    "businessplan_object_key",
				Unique:  false,
				Columns: []*schema.Column{BusinessPlanColumns[3]},
			},
		},
	}
	// EvaluationJobColumns holds the columns for the "evaluation_job" table.
	EvaluationJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "error_kind", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "model_name", Type: field.TypeString, Nullable: true},
		{Name: "sections_analyzed", Type: field.TypeInt, Default: 0},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "plan_id", Type: field.TypeUUID},
	}
	// EvaluationJobTable holds the schema information for the "evaluation_job" table.
	EvaluationJobTable = &schema.Table{
		Name:       "evaluation_job",
		Columns:    EvaluationJobColumns,
		PrimaryKey: []*schema.Column{EvaluationJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_job_business_plan_jobs",
				Columns:    []*schema.Column{EvaluationJobColumns[8]},
				RefColumns: []*schema.Column{BusinessPlanColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationjob_plan_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationJobColumns[8], EvaluationJobColumns[1], EvaluationJobColumns[6]},
			},
			{
				Name:    "evaluationjob_status",
				Unique:  false,
				Columns: []*schema.Column{EvaluationJobColumns[1]},
			},
		},
	}
	// EvaluationReportColumns holds the columns for the "evaluation_report" table.
	EvaluationReportColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "total_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "overall_assessment", Type: field.TypeString},
		{Name: "risk_of_rejection", Type: field.TypeBool, Default: false},
		{Name: "failed_categories", Type: field.TypeJSON, Nullable: true},
		{Name: "category_results", Type: field.TypeJSON},
		{Name: "section_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "strengths", Type: field.TypeJSON, Nullable: true},
		{Name: "weaknesses", Type: field.TypeJSON, Nullable: true},
		{Name: "improvement_suggestions", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_report", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "plan_id", Type: field.TypeUUID},
		{Name: "job_id", Type: field.TypeUUID, Unique: true},
	}
	// EvaluationReportTable holds the schema information for the "evaluation_report" table.
	EvaluationReportTable = &schema.Table{
		Name:       "evaluation_report",
		Columns:    EvaluationReportColumns,
		PrimaryKey: []*schema.Column{EvaluationReportColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_report_business_plan_reports",
				Columns:    []*schema.Column{EvaluationReportColumns[12]},
				RefColumns: []*schema.Column{BusinessPlanColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "evaluation_report_evaluation_job_report",
				Columns:    []*schema.Column{EvaluationReportColumns[13]},
				RefColumns: []*schema.Column{EvaluationJobColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluationreport_job_id",
				Unique:  true,
				Columns: []*schema.Column{EvaluationReportColumns[13]},
			},
			{
				Name:    "evaluationreport_plan_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationReportColumns[12], EvaluationReportColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BusinessPlanTable,
		EvaluationJobTable,
		EvaluationReportTable,
	}
)

func init() {
	BusinessPlanTable.Annotation = &entsql.Annotation{
		Table: "business_plan",
	}
	EvaluationJobTable.ForeignKeys[0].RefTable = BusinessPlanTable
	EvaluationJobTable.Annotation = &entsql.Annotation{
		Table: "evaluation_job",
	}
	EvaluationReportTable.ForeignKeys[0].RefTable = BusinessPlanTable
	EvaluationReportTable.ForeignKeys[1].RefTable = EvaluationJobTable
	EvaluationReportTable.Annotation = &entsql.Annotation{
		Table: "evaluation_report",
	}
}
