// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: planscore/v1/planscore.proto

package planscorev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BusinessPlan struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId       string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Title         string                 `protobuf:"bytes,3,opt,name=title,proto3" json:"title,omitempty"`
	ObjectKey     string                 `protobuf:"bytes,4,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	PageCount     int32                  `protobuf:"varint,5,opt,name=page_count,json=pageCount,proto3" json:"page_count,omitempty"`
	SizeBytes     int64                  `protobuf:"varint,6,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	LatestJobId   string                 `protobuf:"bytes,8,opt,name=latest_job_id,json=latestJobId,proto3" json:"latest_job_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BusinessPlan) Reset() {
	*x = BusinessPlan{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BusinessPlan) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BusinessPlan) ProtoMessage() {}

func (x *BusinessPlan) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BusinessPlan.ProtoReflect.Descriptor instead.
func (*BusinessPlan) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{0}
}

func (x *BusinessPlan) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *BusinessPlan) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *BusinessPlan) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *BusinessPlan) GetObjectKey() string {
	if x != nil {
		return x.ObjectKey
	}
	return ""
}

func (x *BusinessPlan) GetPageCount() int32 {
	if x != nil {
		return x.PageCount
	}
	return 0
}

func (x *BusinessPlan) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *BusinessPlan) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BusinessPlan) GetLatestJobId() string {
	if x != nil {
		return x.LatestJobId
	}
	return ""
}

func (x *BusinessPlan) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *BusinessPlan) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type EvaluationJob struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PlanId           string                 `protobuf:"bytes,2,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Status           string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ErrorKind        string                 `protobuf:"bytes,4,opt,name=error_kind,json=errorKind,proto3" json:"error_kind,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ModelName        string                 `protobuf:"bytes,6,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	SectionsAnalyzed int32                  `protobuf:"varint,7,opt,name=sections_analyzed,json=sectionsAnalyzed,proto3" json:"sections_analyzed,omitempty"`
	StartedAt        string                 `protobuf:"bytes,8,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt       string                 `protobuf:"bytes,9,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *EvaluationJob) Reset() {
	*x = EvaluationJob{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluationJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluationJob) ProtoMessage() {}

func (x *EvaluationJob) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluationJob.ProtoReflect.Descriptor instead.
func (*EvaluationJob) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{1}
}

func (x *EvaluationJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EvaluationJob) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *EvaluationJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *EvaluationJob) GetErrorKind() string {
	if x != nil {
		return x.ErrorKind
	}
	return ""
}

func (x *EvaluationJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *EvaluationJob) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *EvaluationJob) GetSectionsAnalyzed() int32 {
	if x != nil {
		return x.SectionsAnalyzed
	}
	return 0
}

func (x *EvaluationJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *EvaluationJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type CategoryOutcome struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Score           float64                `protobuf:"fixed64,1,opt,name=score,proto3" json:"score,omitempty"`
	MaxScore        int32                  `protobuf:"varint,2,opt,name=max_score,json=maxScore,proto3" json:"max_score,omitempty"`
	MinimumRequired int32                  `protobuf:"varint,3,opt,name=minimum_required,json=minimumRequired,proto3" json:"minimum_required,omitempty"`
	Passed          bool                   `protobuf:"varint,4,opt,name=passed,proto3" json:"passed,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CategoryOutcome) Reset() {
	*x = CategoryOutcome{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CategoryOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CategoryOutcome) ProtoMessage() {}

func (x *CategoryOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CategoryOutcome.ProtoReflect.Descriptor instead.
func (*CategoryOutcome) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{2}
}

func (x *CategoryOutcome) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *CategoryOutcome) GetMaxScore() int32 {
	if x != nil {
		return x.MaxScore
	}
	return 0
}

func (x *CategoryOutcome) GetMinimumRequired() int32 {
	if x != nil {
		return x.MinimumRequired
	}
	return 0
}

func (x *CategoryOutcome) GetPassed() bool {
	if x != nil {
		return x.Passed
	}
	return false
}

type EvaluationReport struct {
	state                  protoimpl.MessageState      `protogen:"open.v1"`
	Id                     string                      `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId                  string                      `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	PlanId                 string                      `protobuf:"bytes,3,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	TotalScore             float64                     `protobuf:"fixed64,4,opt,name=total_score,json=totalScore,proto3" json:"total_score,omitempty"`
	OverallAssessment      string                      `protobuf:"bytes,5,opt,name=overall_assessment,json=overallAssessment,proto3" json:"overall_assessment,omitempty"`
	RiskOfRejection        bool                        `protobuf:"varint,6,opt,name=risk_of_rejection,json=riskOfRejection,proto3" json:"risk_of_rejection,omitempty"`
	FailedCategories       []string                    `protobuf:"bytes,7,rep,name=failed_categories,json=failedCategories,proto3" json:"failed_categories,omitempty"`
	CategoryResults        map[string]*CategoryOutcome `protobuf:"bytes,8,rep,name=category_results,json=categoryResults,proto3" json:"category_results,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	SectionScores          map[string]float64          `protobuf:"bytes,9,rep,name=section_scores,json=sectionScores,proto3" json:"section_scores,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"fixed64,2,opt,name=value"`
	Strengths              []string                    `protobuf:"bytes,10,rep,name=strengths,proto3" json:"strengths,omitempty"`
	Weaknesses             []string                    `protobuf:"bytes,11,rep,name=weaknesses,proto3" json:"weaknesses,omitempty"`
	ImprovementSuggestions []string                    `protobuf:"bytes,12,rep,name=improvement_suggestions,json=improvementSuggestions,proto3" json:"improvement_suggestions,omitempty"`
	RawReport              string                      `protobuf:"bytes,13,opt,name=raw_report,json=rawReport,proto3" json:"raw_report,omitempty"`
	CreatedAt              string                      `protobuf:"bytes,14,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields          protoimpl.UnknownFields
	sizeCache              protoimpl.SizeCache
}

func (x *EvaluationReport) Reset() {
	*x = EvaluationReport{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluationReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluationReport) ProtoMessage() {}

func (x *EvaluationReport) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluationReport.ProtoReflect.Descriptor instead.
func (*EvaluationReport) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{3}
}

func (x *EvaluationReport) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *EvaluationReport) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *EvaluationReport) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *EvaluationReport) GetTotalScore() float64 {
	if x != nil {
		return x.TotalScore
	}
	return 0
}

func (x *EvaluationReport) GetOverallAssessment() string {
	if x != nil {
		return x.OverallAssessment
	}
	return ""
}

func (x *EvaluationReport) GetRiskOfRejection() bool {
	if x != nil {
		return x.RiskOfRejection
	}
	return false
}

func (x *EvaluationReport) GetFailedCategories() []string {
	if x != nil {
		return x.FailedCategories
	}
	return nil
}

func (x *EvaluationReport) GetCategoryResults() map[string]*CategoryOutcome {
	if x != nil {
		return x.CategoryResults
	}
	return nil
}

func (x *EvaluationReport) GetSectionScores() map[string]float64 {
	if x != nil {
		return x.SectionScores
	}
	return nil
}

func (x *EvaluationReport) GetStrengths() []string {
	if x != nil {
		return x.Strengths
	}
	return nil
}

func (x *EvaluationReport) GetWeaknesses() []string {
	if x != nil {
		return x.Weaknesses
	}
	return nil
}

func (x *EvaluationReport) GetImprovementSuggestions() []string {
	if x != nil {
		return x.ImprovementSuggestions
	}
	return nil
}

func (x *EvaluationReport) GetRawReport() string {
	if x != nil {
		return x.RawReport
	}
	return ""
}

func (x *EvaluationReport) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateUploadURLRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUploadURLRequest) Reset() {
	*x = CreateUploadURLRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUploadURLRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUploadURLRequest) ProtoMessage() {}

func (x *CreateUploadURLRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUploadURLRequest.ProtoReflect.Descriptor instead.
func (*CreateUploadURLRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{4}
}

func (x *CreateUploadURLRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *CreateUploadURLRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateUploadURLRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type CreateUploadURLResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UploadUrl     string                 `protobuf:"bytes,1,opt,name=upload_url,json=uploadUrl,proto3" json:"upload_url,omitempty"`
	ObjectKey     string                 `protobuf:"bytes,2,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateUploadURLResponse) Reset() {
	*x = CreateUploadURLResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateUploadURLResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateUploadURLResponse) ProtoMessage() {}

func (x *CreateUploadURLResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateUploadURLResponse.ProtoReflect.Descriptor instead.
func (*CreateUploadURLResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{5}
}

func (x *CreateUploadURLResponse) GetUploadUrl() string {
	if x != nil {
		return x.UploadUrl
	}
	return ""
}

func (x *CreateUploadURLResponse) GetObjectKey() string {
	if x != nil {
		return x.ObjectKey
	}
	return ""
}

type RegisterPlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Title         string                 `protobuf:"bytes,2,opt,name=title,proto3" json:"title,omitempty"`
	ObjectKey     string                 `protobuf:"bytes,3,opt,name=object_key,json=objectKey,proto3" json:"object_key,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterPlanRequest) Reset() {
	*x = RegisterPlanRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterPlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterPlanRequest) ProtoMessage() {}

func (x *RegisterPlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterPlanRequest.ProtoReflect.Descriptor instead.
func (*RegisterPlanRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{6}
}

func (x *RegisterPlanRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RegisterPlanRequest) GetTitle() string {
	if x != nil {
		return x.Title
	}
	return ""
}

func (x *RegisterPlanRequest) GetObjectKey() string {
	if x != nil {
		return x.ObjectKey
	}
	return ""
}

type RegisterPlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *BusinessPlan          `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterPlanResponse) Reset() {
	*x = RegisterPlanResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterPlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterPlanResponse) ProtoMessage() {}

func (x *RegisterPlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterPlanResponse.ProtoReflect.Descriptor instead.
func (*RegisterPlanResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{7}
}

func (x *RegisterPlanResponse) GetPlan() *BusinessPlan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type GetPlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPlanRequest) Reset() {
	*x = GetPlanRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPlanRequest) ProtoMessage() {}

func (x *GetPlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPlanRequest.ProtoReflect.Descriptor instead.
func (*GetPlanRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{8}
}

func (x *GetPlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type GetPlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plan          *BusinessPlan          `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPlanResponse) Reset() {
	*x = GetPlanResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPlanResponse) ProtoMessage() {}

func (x *GetPlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPlanResponse.ProtoReflect.Descriptor instead.
func (*GetPlanResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{9}
}

func (x *GetPlanResponse) GetPlan() *BusinessPlan {
	if x != nil {
		return x.Plan
	}
	return nil
}

type ListPlansRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlansRequest) Reset() {
	*x = ListPlansRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlansRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlansRequest) ProtoMessage() {}

func (x *ListPlansRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlansRequest.ProtoReflect.Descriptor instead.
func (*ListPlansRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{10}
}

func (x *ListPlansRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

type ListPlansResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Plans         []*BusinessPlan        `protobuf:"bytes,1,rep,name=plans,proto3" json:"plans,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPlansResponse) Reset() {
	*x = ListPlansResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPlansResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPlansResponse) ProtoMessage() {}

func (x *ListPlansResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPlansResponse.ProtoReflect.Descriptor instead.
func (*ListPlansResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{11}
}

func (x *ListPlansResponse) GetPlans() []*BusinessPlan {
	if x != nil {
		return x.Plans
	}
	return nil
}

type DeletePlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePlanRequest) Reset() {
	*x = DeletePlanRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePlanRequest) ProtoMessage() {}

func (x *DeletePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePlanRequest.ProtoReflect.Descriptor instead.
func (*DeletePlanRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{12}
}

func (x *DeletePlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type DeletePlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeletePlanResponse) Reset() {
	*x = DeletePlanResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeletePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeletePlanResponse) ProtoMessage() {}

func (x *DeletePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeletePlanResponse.ProtoReflect.Descriptor instead.
func (*DeletePlanResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{13}
}

func (x *DeletePlanResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type EvaluatePlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluatePlanRequest) Reset() {
	*x = EvaluatePlanRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluatePlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluatePlanRequest) ProtoMessage() {}

func (x *EvaluatePlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluatePlanRequest.ProtoReflect.Descriptor instead.
func (*EvaluatePlanRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{14}
}

func (x *EvaluatePlanRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type EvaluatePlanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *EvaluationJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Report        *EvaluationReport      `protobuf:"bytes,2,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EvaluatePlanResponse) Reset() {
	*x = EvaluatePlanResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EvaluatePlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EvaluatePlanResponse) ProtoMessage() {}

func (x *EvaluatePlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EvaluatePlanResponse.ProtoReflect.Descriptor instead.
func (*EvaluatePlanResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{15}
}

func (x *EvaluatePlanResponse) GetJob() *EvaluationJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *EvaluatePlanResponse) GetReport() *EvaluationReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type SubmitEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEvaluationRequest) Reset() {
	*x = SubmitEvaluationRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEvaluationRequest) ProtoMessage() {}

func (x *SubmitEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEvaluationRequest.ProtoReflect.Descriptor instead.
func (*SubmitEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{16}
}

func (x *SubmitEvaluationRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type SubmitEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	Queued        bool                   `protobuf:"varint,2,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitEvaluationResponse) Reset() {
	*x = SubmitEvaluationResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitEvaluationResponse) ProtoMessage() {}

func (x *SubmitEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitEvaluationResponse.ProtoReflect.Descriptor instead.
func (*SubmitEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{17}
}

func (x *SubmitEvaluationResponse) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

func (x *SubmitEvaluationResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type GetEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEvaluationRequest) Reset() {
	*x = GetEvaluationRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEvaluationRequest) ProtoMessage() {}

func (x *GetEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEvaluationRequest.ProtoReflect.Descriptor instead.
func (*GetEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{18}
}

func (x *GetEvaluationRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *EvaluationJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Report        *EvaluationReport      `protobuf:"bytes,2,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEvaluationResponse) Reset() {
	*x = GetEvaluationResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEvaluationResponse) ProtoMessage() {}

func (x *GetEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEvaluationResponse.ProtoReflect.Descriptor instead.
func (*GetEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{19}
}

func (x *GetEvaluationResponse) GetJob() *EvaluationJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetEvaluationResponse) GetReport() *EvaluationReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type GetLatestEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestEvaluationRequest) Reset() {
	*x = GetLatestEvaluationRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestEvaluationRequest) ProtoMessage() {}

func (x *GetLatestEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestEvaluationRequest.ProtoReflect.Descriptor instead.
func (*GetLatestEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{20}
}

func (x *GetLatestEvaluationRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type GetLatestEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Report        *EvaluationReport      `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestEvaluationResponse) Reset() {
	*x = GetLatestEvaluationResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestEvaluationResponse) ProtoMessage() {}

func (x *GetLatestEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestEvaluationResponse.ProtoReflect.Descriptor instead.
func (*GetLatestEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{21}
}

func (x *GetLatestEvaluationResponse) GetReport() *EvaluationReport {
	if x != nil {
		return x.Report
	}
	return nil
}

type ListEvaluationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsRequest) Reset() {
	*x = ListEvaluationsRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsRequest) ProtoMessage() {}

func (x *ListEvaluationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsRequest.ProtoReflect.Descriptor instead.
func (*ListEvaluationsRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{22}
}

func (x *ListEvaluationsRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type ListEvaluationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*EvaluationJob       `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsResponse) Reset() {
	*x = ListEvaluationsResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsResponse) ProtoMessage() {}

func (x *ListEvaluationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsResponse.ProtoReflect.Descriptor instead.
func (*ListEvaluationsResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{23}
}

func (x *ListEvaluationsResponse) GetJobs() []*EvaluationJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type DeleteEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReportId      string                 `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEvaluationRequest) Reset() {
	*x = DeleteEvaluationRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEvaluationRequest) ProtoMessage() {}

func (x *DeleteEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEvaluationRequest.ProtoReflect.Descriptor instead.
func (*DeleteEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{24}
}

func (x *DeleteEvaluationRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type DeleteEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Deleted       bool                   `protobuf:"varint,1,opt,name=deleted,proto3" json:"deleted,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteEvaluationResponse) Reset() {
	*x = DeleteEvaluationResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteEvaluationResponse) ProtoMessage() {}

func (x *DeleteEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteEvaluationResponse.ProtoReflect.Descriptor instead.
func (*DeleteEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{25}
}

func (x *DeleteEvaluationResponse) GetDeleted() bool {
	if x != nil {
		return x.Deleted
	}
	return false
}

type ExportEvaluationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PlanId        string                 `protobuf:"bytes,1,opt,name=plan_id,json=planId,proto3" json:"plan_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationsRequest) Reset() {
	*x = ExportEvaluationsRequest{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationsRequest) ProtoMessage() {}

func (x *ExportEvaluationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationsRequest.ProtoReflect.Descriptor instead.
func (*ExportEvaluationsRequest) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{26}
}

func (x *ExportEvaluationsRequest) GetPlanId() string {
	if x != nil {
		return x.PlanId
	}
	return ""
}

type ExportEvaluationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationsResponse) Reset() {
	*x = ExportEvaluationsResponse{}
	mi := &file_planscore_v1_planscore_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationsResponse) ProtoMessage() {}

func (x *ExportEvaluationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_planscore_v1_planscore_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationsResponse.ProtoReflect.Descriptor instead.
func (*ExportEvaluationsResponse) Descriptor() ([]byte, []int) {
	return file_planscore_v1_planscore_proto_rawDescGZIP(), []int{27}
}

func (x *ExportEvaluationsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_planscore_v1_planscore_proto protoreflect.FileDescriptor

const file_planscore_v1_planscore_proto_rawDesc = "" +
	"\n" +
	"\x1cplanscore/v1/planscore.proto\x12\fplanscore.v1\"\xa6\x02\n" +
	"\fBusinessPlan\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x14\n" +
	"\x05title\x18\x03 \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"object_key\x18\x04 \x01(\tR\tobjectKey\x12\x1d\n" +
	"\n" +
	"page_count\x18\x05 \x01(\x05R\tpageCount\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x06 \x01(\x03R\tsizeBytes\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\"\n" +
	"\rlatest_job_id\x18\b \x01(\tR\vlatestJobId\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xa0\x02\n" +
	"\rEvaluationJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\aplan_id\x18\x02 \x01(\tR\x06planId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1d\n" +
	"\n" +
	"error_kind\x18\x04 \x01(\tR\terrorKind\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"model_name\x18\x06 \x01(\tR\tmodelName\x12+\n" +
	"\x11sections_analyzed\x18\a \x01(\x05R\x10sectionsAnalyzed\x12\x1d\n" +
	"\n" +
	"started_at\x18\b \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\t \x01(\tR\n" +
	"finishedAt\"\x87\x01\n" +
	"\x0fCategoryOutcome\x12\x14\n" +
	"\x05score\x18\x01 \x01(\x01R\x05score\x12\x1b\n" +
	"\tmax_score\x18\x02 \x01(\x05R\bmaxScore\x12)\n" +
	"\x10minimum_required\x18\x03 \x01(\x05R\x0fminimumRequired\x12\x16\n" +
	"\x06passed\x18\x04 \x01(\bR\x06passed\"\x8f\x06\n" +
	"\x10EvaluationReport\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x17\n" +
	"\aplan_id\x18\x03 \x01(\tR\x06planId\x12\x1f\n" +
	"\vtotal_score\x18\x04 \x01(\x01R\n" +
	"totalScore\x12-\n" +
	"\x12overall_assessment\x18\x05 \x01(\tR\x11overallAssessment\x12*\n" +
	"\x11risk_of_rejection\x18\x06 \x01(\bR\x0friskOfRejection\x12+\n" +
	"\x11failed_categories\x18\a \x03(\tR\x10failedCategories\x12^\n" +
	"\x10category_results\x18\b \x03(\v23.planscore.v1.EvaluationReport.CategoryResultsEntryR\x0fcategoryResults\x12X\n" +
	"\x0esection_scores\x18\t \x03(\v21.planscore.v1.EvaluationReport.SectionScoresEntryR\rsectionScores\x12\x1c\n" +
	"\tstrengths\x18\n" +
	" \x03(\tR\tstrengths\x12\x1e\n" +
	"\n" +
	"weaknesses\x18\v \x03(\tR\n" +
	"weaknesses\x127\n" +
	"\x17improvement_suggestions\x18\f \x03(\tR\x16improvementSuggestions\x12\x1d\n" +
	"\n" +
	"raw_report\x18\r \x01(\tR\trawReport\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0e \x01(\tR\tcreatedAt\x1aa\n" +
	"\x14CategoryResultsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x123\n" +
	"\x05value\x18\x02 \x01(\v2\x1d.planscore.v1.CategoryOutcomeR\x05value:\x028\x01\x1a@\n" +
	"\x12SectionScoresEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x01R\x05value:\x028\x01\"r\n" +
	"\x16CreateUploadURLRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\"W\n" +
	"\x17CreateUploadURLResponse\x12\x1d\n" +
	"\n" +
	"upload_url\x18\x01 \x01(\tR\tuploadUrl\x12\x1d\n" +
	"\n" +
	"object_key\x18\x02 \x01(\tR\tobjectKey\"e\n" +
	"\x13RegisterPlanRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x14\n" +
	"\x05title\x18\x02 \x01(\tR\x05title\x12\x1d\n" +
	"\n" +
	"object_key\x18\x03 \x01(\tR\tobjectKey\"F\n" +
	"\x14RegisterPlanResponse\x12.\n" +
	"\x04plan\x18\x01 \x01(\v2\x1a.planscore.v1.BusinessPlanR\x04plan\")\n" +
	"\x0eGetPlanRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"A\n" +
	"\x0fGetPlanResponse\x12.\n" +
	"\x04plan\x18\x01 \x01(\v2\x1a.planscore.v1.BusinessPlanR\x04plan\"-\n" +
	"\x10ListPlansRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\"E\n" +
	"\x11ListPlansResponse\x120\n" +
	"\x05plans\x18\x01 \x03(\v2\x1a.planscore.v1.BusinessPlanR\x05plans\",\n" +
	"\x11DeletePlanRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\".\n" +
	"\x12DeletePlanResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\".\n" +
	"\x13EvaluatePlanRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"}\n" +
	"\x14EvaluatePlanResponse\x12-\n" +
	"\x03job\x18\x01 \x01(\v2\x1b.planscore.v1.EvaluationJobR\x03job\x126\n" +
	"\x06report\x18\x02 \x01(\v2\x1e.planscore.v1.EvaluationReportR\x06report\"2\n" +
	"\x17SubmitEvaluationRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"K\n" +
	"\x18SubmitEvaluationResponse\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\x12\x16\n" +
	"\x06queued\x18\x02 \x01(\bR\x06queued\"-\n" +
	"\x14GetEvaluationRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"~\n" +
	"\x15GetEvaluationResponse\x12-\n" +
	"\x03job\x18\x01 \x01(\v2\x1b.planscore.v1.EvaluationJobR\x03job\x126\n" +
	"\x06report\x18\x02 \x01(\v2\x1e.planscore.v1.EvaluationReportR\x06report\"5\n" +
	"\x1aGetLatestEvaluationRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"U\n" +
	"\x1bGetLatestEvaluationResponse\x126\n" +
	"\x06report\x18\x01 \x01(\v2\x1e.planscore.v1.EvaluationReportR\x06report\"1\n" +
	"\x16ListEvaluationsRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"J\n" +
	"\x17ListEvaluationsResponse\x12/\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1b.planscore.v1.EvaluationJobR\x04jobs\"6\n" +
	"\x17DeleteEvaluationRequest\x12\x1b\n" +
	"\treport_id\x18\x01 \x01(\tR\breportId\"4\n" +
	"\x18DeleteEvaluationResponse\x12\x18\n" +
	"\adeleted\x18\x01 \x01(\bR\adeleted\"3\n" +
	"\x18ExportEvaluationsRequest\x12\x17\n" +
	"\aplan_id\x18\x01 \x01(\tR\x06planId\"/\n" +
	"\x19ExportEvaluationsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xac\x03\n" +
	"\fPlansService\x12^\n" +
	"\x0fCreateUploadURL\x12$.planscore.v1.CreateUploadURLRequest\x1a%.planscore.v1.CreateUploadURLResponse\x12U\n" +
	"\fRegisterPlan\x12!.planscore.v1.RegisterPlanRequest\x1a\".planscore.v1.RegisterPlanResponse\x12F\n" +
	"\aGetPlan\x12\x1c.planscore.v1.GetPlanRequest\x1a\x1d.planscore.v1.GetPlanResponse\x12L\n" +
	"\tListPlans\x12\x1e.planscore.v1.ListPlansRequest\x1a\x1f.planscore.v1.ListPlansResponse\x12O\n" +
	"\n" +
	"DeletePlan\x12\x1f.planscore.v1.DeletePlanRequest\x1a .planscore.v1.DeletePlanResponse2\xd7\x04\n" +
	"\x12EvaluationsService\x12U\n" +
	"\fEvaluatePlan\x12!.planscore.v1.EvaluatePlanRequest\x1a\".planscore.v1.EvaluatePlanResponse\x12a\n" +
	"\x10SubmitEvaluation\x12%.planscore.v1.SubmitEvaluationRequest\x1a&.planscore.v1.SubmitEvaluationResponse\x12X\n" +
	"\rGetEvaluation\x12\".planscore.v1.GetEvaluationRequest\x1a#.planscore.v1.GetEvaluationResponse\x12j\n" +
	"\x13GetLatestEvaluation\x12(.planscore.v1.GetLatestEvaluationRequest\x1a).planscore.v1.GetLatestEvaluationResponse\x12^\n" +
	"\x0fListEvaluations\x12$.planscore.v1.ListEvaluationsRequest\x1a%.planscore.v1.ListEvaluationsResponse\x12a\n" +
	"\x10DeleteEvaluation\x12%.planscore.v1.DeleteEvaluationRequest\x1a&.planscore.v1.DeleteEvaluationResponse2u\n" +
	"\rExportService\x12d\n" +
	"\x11ExportEvaluations\x12&.planscore.v1.ExportEvaluationsRequest\x1a'.planscore.v1.ExportEvaluationsResponseBEZCgithub.com/seojun-park/planscore/gen/proto/planscore/v1;planscorev1b\x06proto3"

var (
	file_planscore_v1_planscore_proto_rawDescOnce sync.Once
	file_planscore_v1_planscore_proto_rawDescData []byte
)

func file_planscore_v1_planscore_proto_rawDescGZIP() []byte {
	file_planscore_v1_planscore_proto_rawDescOnce.Do(func() {
		file_planscore_v1_planscore_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_planscore_v1_planscore_proto_rawDesc), len(file_planscore_v1_planscore_proto_rawDesc)))
	})
	return file_planscore_v1_planscore_proto_rawDescData
}

var file_planscore_v1_planscore_proto_msgTypes = make([]protoimpl.MessageInfo, 30)
var file_planscore_v1_planscore_proto_goTypes = []any{
	(*BusinessPlan)(nil),                // 0: planscore.v1.BusinessPlan
	(*EvaluationJob)(nil),               // 1: planscore.v1.EvaluationJob
	(*CategoryOutcome)(nil),             // 2: planscore.v1.CategoryOutcome
	(*EvaluationReport)(nil),            // 3: planscore.v1.EvaluationReport
	(*CreateUploadURLRequest)(nil),      // 4: planscore.v1.CreateUploadURLRequest
	(*CreateUploadURLResponse)(nil),     // 5: planscore.v1.CreateUploadURLResponse
	(*RegisterPlanRequest)(nil),         // 6: planscore.v1.RegisterPlanRequest
	(*RegisterPlanResponse)(nil),        // 7: planscore.v1.RegisterPlanResponse
	(*GetPlanRequest)(nil),              // 8: planscore.v1.GetPlanRequest
	(*GetPlanResponse)(nil),             // 9: planscore.v1.GetPlanResponse
	(*ListPlansRequest)(nil),            // 10: planscore.v1.ListPlansRequest
	(*ListPlansResponse)(nil),           // 11: planscore.v1.ListPlansResponse
	(*DeletePlanRequest)(nil),           // 12: planscore.v1.DeletePlanRequest
	(*DeletePlanResponse)(nil),          // 13: planscore.v1.DeletePlanResponse
	(*EvaluatePlanRequest)(nil),         // 14: planscore.v1.EvaluatePlanRequest
	(*EvaluatePlanResponse)(nil),        // 15: planscore.v1.EvaluatePlanResponse
	(*SubmitEvaluationRequest)(nil),     // 16: planscore.v1.SubmitEvaluationRequest
	(*SubmitEvaluationResponse)(nil),    // 17: planscore.v1.SubmitEvaluationResponse
	(*GetEvaluationRequest)(nil),        // 18: planscore.v1.GetEvaluationRequest
	(*GetEvaluationResponse)(nil),       // 19: planscore.v1.GetEvaluationResponse
	(*GetLatestEvaluationRequest)(nil),  // 20: planscore.v1.GetLatestEvaluationRequest
	(*GetLatestEvaluationResponse)(nil), // 21: planscore.v1.GetLatestEvaluationResponse
	(*ListEvaluationsRequest)(nil),      // 22: planscore.v1.ListEvaluationsRequest
	(*ListEvaluationsResponse)(nil),     // 23: planscore.v1.ListEvaluationsResponse
	(*DeleteEvaluationRequest)(nil),     // 24: planscore.v1.DeleteEvaluationRequest
	(*DeleteEvaluationResponse)(nil),    // 25: planscore.v1.DeleteEvaluationResponse
	(*ExportEvaluationsRequest)(nil),    // 26: planscore.v1.ExportEvaluationsRequest
	(*ExportEvaluationsResponse)(nil),   // 27: planscore.v1.ExportEvaluationsResponse
	nil,                                 // 28: planscore.v1.EvaluationReport.CategoryResultsEntry
	nil,                                 // 29: planscore.v1.EvaluationReport.SectionScoresEntry
}
var file_planscore_v1_planscore_proto_depIdxs = []int32{
	28, // 0: planscore.v1.EvaluationReport.category_results:type_name -> planscore.v1.EvaluationReport.CategoryResultsEntry
	29, // 1: planscore.v1.EvaluationReport.section_scores:type_name -> planscore.v1.EvaluationReport.SectionScoresEntry
	0,  // 2: planscore.v1.RegisterPlanResponse.plan:type_name -> planscore.v1.BusinessPlan
	0,  // 3: planscore.v1.GetPlanResponse.plan:type_name -> planscore.v1.BusinessPlan
	0,  // 4: planscore.v1.ListPlansResponse.plans:type_name -> planscore.v1.BusinessPlan
	1,  // 5: planscore.v1.EvaluatePlanResponse.job:type_name -> planscore.v1.EvaluationJob
	3,  // 6: planscore.v1.EvaluatePlanResponse.report:type_name -> planscore.v1.EvaluationReport
	1,  // 7: planscore.v1.GetEvaluationResponse.job:type_name -> planscore.v1.EvaluationJob
	3,  // 8: planscore.v1.GetEvaluationResponse.report:type_name -> planscore.v1.EvaluationReport
	3,  // 9: planscore.v1.GetLatestEvaluationResponse.report:type_name -> planscore.v1.EvaluationReport
	1,  // 10: planscore.v1.ListEvaluationsResponse.jobs:type_name -> planscore.v1.EvaluationJob
	2,  // 11: planscore.v1.EvaluationReport.CategoryResultsEntry.value:type_name -> planscore.v1.CategoryOutcome
	4,  // 12: planscore.v1.PlansService.CreateUploadURL:input_type -> planscore.v1.CreateUploadURLRequest
	6,  // 13: planscore.v1.PlansService.RegisterPlan:input_type -> planscore.v1.RegisterPlanRequest
	8,  // 14: planscore.v1.PlansService.GetPlan:input_type -> planscore.v1.GetPlanRequest
	10, // 15: planscore.v1.PlansService.ListPlans:input_type -> planscore.v1.ListPlansRequest
	12, // 16: planscore.v1.PlansService.DeletePlan:input_type -> planscore.v1.DeletePlanRequest
	14, // 17: planscore.v1.EvaluationsService.EvaluatePlan:input_type -> planscore.v1.EvaluatePlanRequest
	16, // 18: planscore.v1.EvaluationsService.SubmitEvaluation:input_type -> planscore.v1.SubmitEvaluationRequest
	18, // 19: planscore.v1.EvaluationsService.GetEvaluation:input_type -> planscore.v1.GetEvaluationRequest
	20, // 20: planscore.v1.EvaluationsService.GetLatestEvaluation:input_type -> planscore.v1.GetLatestEvaluationRequest
	22, // 21: planscore.v1.EvaluationsService.ListEvaluations:input_type -> planscore.v1.ListEvaluationsRequest
	24, // 22: planscore.v1.EvaluationsService.DeleteEvaluation:input_type -> planscore.v1.DeleteEvaluationRequest
	26, // 23: planscore.v1.ExportService.ExportEvaluations:input_type -> planscore.v1.ExportEvaluationsRequest
	5,  // 24: planscore.v1.PlansService.CreateUploadURL:output_type -> planscore.v1.CreateUploadURLResponse
	7,  // 25: planscore.v1.PlansService.RegisterPlan:output_type -> planscore.v1.RegisterPlanResponse
	9,  // 26: planscore.v1.PlansService.GetPlan:output_type -> planscore.v1.GetPlanResponse
	11, // 27: planscore.v1.PlansService.ListPlans:output_type -> planscore.v1.ListPlansResponse
	13, // 28: planscore.v1.PlansService.DeletePlan:output_type -> planscore.v1.DeletePlanResponse
	15, // 29: planscore.v1.EvaluationsService.EvaluatePlan:output_type -> planscore.v1.EvaluatePlanResponse
	17, // 30: planscore.v1.EvaluationsService.SubmitEvaluation:output_type -> planscore.v1.SubmitEvaluationResponse
	19, // 31: planscore.v1.EvaluationsService.GetEvaluation:output_type -> planscore.v1.GetEvaluationResponse
	21, // 32: planscore.v1.EvaluationsService.GetLatestEvaluation:output_type -> planscore.v1.GetLatestEvaluationResponse
	23, // 33: planscore.v1.EvaluationsService.ListEvaluations:output_type -> planscore.v1.ListEvaluationsResponse
	25, // 34: planscore.v1.EvaluationsService.DeleteEvaluation:output_type -> planscore.v1.DeleteEvaluationResponse
	27, // 35: planscore.v1.ExportService.ExportEvaluations:output_type -> planscore.v1.ExportEvaluationsResponse
	24, // [24:36] is the sub-list for method output_type
	12, // [12:24] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_planscore_v1_planscore_proto_init() }
func file_planscore_v1_planscore_proto_init() {
	if File_planscore_v1_planscore_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_planscore_v1_planscore_proto_rawDesc), len(file_planscore_v1_planscore_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   30,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_planscore_v1_planscore_proto_goTypes,
		DependencyIndexes: file_planscore_v1_planscore_proto_depIdxs,
		MessageInfos:      file_planscore_v1_planscore_proto_msgTypes,
	}.Build()
	File_planscore_v1_planscore_proto = out.File
	file_planscore_v1_planscore_proto_goTypes = nil
	file_planscore_v1_planscore_proto_depIdxs = nil
}
