// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

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

type ExtractionJob struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobName              string                 `protobuf:"bytes,2,opt,name=job_name,json=jobName,proto3" json:"job_name,omitempty"`
	TargetUrl            string                 `protobuf:"bytes,3,opt,name=target_url,json=targetUrl,proto3" json:"target_url,omitempty"`
	AdapterName          string                 `protobuf:"bytes,4,opt,name=adapter_name,json=adapterName,proto3" json:"adapter_name,omitempty"`
	ExtractionMode       string                 `protobuf:"bytes,5,opt,name=extraction_mode,json=extractionMode,proto3" json:"extraction_mode,omitempty"`
	PatientIdentifier    string                 `protobuf:"bytes,6,opt,name=patient_identifier,json=patientIdentifier,proto3" json:"patient_identifier,omitempty"`
	DoctorName           string                 `protobuf:"bytes,7,opt,name=doctor_name,json=doctorName,proto3" json:"doctor_name,omitempty"`
	Medication           string                 `protobuf:"bytes,8,opt,name=medication,proto3" json:"medication,omitempty"`
	StartDate            string                 `protobuf:"bytes,9,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate              string                 `protobuf:"bytes,10,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`      // YYYY-MM-DD
	ResultsFilePath      string                 `protobuf:"bytes,11,opt,name=results_file_path,json=resultsFilePath,proto3" json:"results_file_path,omitempty"`
	Status               string                 `protobuf:"bytes,12,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,13,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	RawExtractedDataJson string                 `protobuf:"bytes,14,opt,name=raw_extracted_data_json,json=rawExtractedDataJson,proto3" json:"raw_extracted_data_json,omitempty"`
	CreatedAt            string                 `protobuf:"bytes,15,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt            string                 `protobuf:"bytes,16,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ExtractionJob) Reset() {
	*x = ExtractionJob{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionJob) ProtoMessage() {}

func (x *ExtractionJob) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionJob.ProtoReflect.Descriptor instead.
func (*ExtractionJob) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractionJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionJob) GetJobName() string {
	if x != nil {
		return x.JobName
	}
	return ""
}

func (x *ExtractionJob) GetTargetUrl() string {
	if x != nil {
		return x.TargetUrl
	}
	return ""
}

func (x *ExtractionJob) GetAdapterName() string {
	if x != nil {
		return x.AdapterName
	}
	return ""
}

func (x *ExtractionJob) GetExtractionMode() string {
	if x != nil {
		return x.ExtractionMode
	}
	return ""
}

func (x *ExtractionJob) GetPatientIdentifier() string {
	if x != nil {
		return x.PatientIdentifier
	}
	return ""
}

func (x *ExtractionJob) GetDoctorName() string {
	if x != nil {
		return x.DoctorName
	}
	return ""
}

func (x *ExtractionJob) GetMedication() string {
	if x != nil {
		return x.Medication
	}
	return ""
}

func (x *ExtractionJob) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *ExtractionJob) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *ExtractionJob) GetResultsFilePath() string {
	if x != nil {
		return x.ResultsFilePath
	}
	return ""
}

func (x *ExtractionJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractionJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractionJob) GetRawExtractedDataJson() string {
	if x != nil {
		return x.RawExtractedDataJson
	}
	return ""
}

func (x *ExtractionJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ExtractionJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type SubmitJobRequest struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Provider          string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	JobName           string                 `protobuf:"bytes,2,opt,name=job_name,json=jobName,proto3" json:"job_name,omitempty"`
	TargetUrl         string                 `protobuf:"bytes,3,opt,name=target_url,json=targetUrl,proto3" json:"target_url,omitempty"`
	AdapterName       string                 `protobuf:"bytes,4,opt,name=adapter_name,json=adapterName,proto3" json:"adapter_name,omitempty"`
	ExtractionMode    string                 `protobuf:"bytes,5,opt,name=extraction_mode,json=extractionMode,proto3" json:"extraction_mode,omitempty"`
	PatientIdentifier string                 `protobuf:"bytes,6,opt,name=patient_identifier,json=patientIdentifier,proto3" json:"patient_identifier,omitempty"`
	DoctorName        string                 `protobuf:"bytes,7,opt,name=doctor_name,json=doctorName,proto3" json:"doctor_name,omitempty"`
	Medication        string                 `protobuf:"bytes,8,opt,name=medication,proto3" json:"medication,omitempty"`
	StartDate         string                 `protobuf:"bytes,9,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate           string                 `protobuf:"bytes,10,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`      // YYYY-MM-DD
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SubmitJobRequest) Reset() {
	*x = SubmitJobRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobRequest) ProtoMessage() {}

func (x *SubmitJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitJobRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{1}
}

func (x *SubmitJobRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *SubmitJobRequest) GetJobName() string {
	if x != nil {
		return x.JobName
	}
	return ""
}

func (x *SubmitJobRequest) GetTargetUrl() string {
	if x != nil {
		return x.TargetUrl
	}
	return ""
}

func (x *SubmitJobRequest) GetAdapterName() string {
	if x != nil {
		return x.AdapterName
	}
	return ""
}

func (x *SubmitJobRequest) GetExtractionMode() string {
	if x != nil {
		return x.ExtractionMode
	}
	return ""
}

func (x *SubmitJobRequest) GetPatientIdentifier() string {
	if x != nil {
		return x.PatientIdentifier
	}
	return ""
}

func (x *SubmitJobRequest) GetDoctorName() string {
	if x != nil {
		return x.DoctorName
	}
	return ""
}

func (x *SubmitJobRequest) GetMedication() string {
	if x != nil {
		return x.Medication
	}
	return ""
}

func (x *SubmitJobRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *SubmitJobRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

type SubmitJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Decision      *ReuseDecision         `protobuf:"bytes,1,opt,name=decision,proto3" json:"decision,omitempty"`
	Job           *ExtractionJob         `protobuf:"bytes,2,opt,name=job,proto3" json:"job,omitempty"` // unset when stored data is reused
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitJobResponse) Reset() {
	*x = SubmitJobResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitJobResponse) ProtoMessage() {}

func (x *SubmitJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitJobResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{2}
}

func (x *SubmitJobResponse) GetDecision() *ReuseDecision {
	if x != nil {
		return x.Decision
	}
	return nil
}

func (x *SubmitJobResponse) GetJob() *ExtractionJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractionJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{4}
}

func (x *GetJobResponse) GetJob() *ExtractionJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type AdvanceJobRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	JobId string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	// One of: browser_launched, login_prompt_detected, user_confirmed,
	// extraction_started, extraction_completed, extraction_failed.
	Event         string `protobuf:"bytes,2,opt,name=event,proto3" json:"event,omitempty"`
	ErrorMessage  string `protobuf:"bytes,3,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"` // extraction_failed only
	PayloadJson   string `protobuf:"bytes,4,opt,name=payload_json,json=payloadJson,proto3" json:"payload_json,omitempty"`    // extraction_completed only
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdvanceJobRequest) Reset() {
	*x = AdvanceJobRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceJobRequest) ProtoMessage() {}

func (x *AdvanceJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceJobRequest.ProtoReflect.Descriptor instead.
func (*AdvanceJobRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{5}
}

func (x *AdvanceJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *AdvanceJobRequest) GetEvent() string {
	if x != nil {
		return x.Event
	}
	return ""
}

func (x *AdvanceJobRequest) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *AdvanceJobRequest) GetPayloadJson() string {
	if x != nil {
		return x.PayloadJson
	}
	return ""
}

type AdvanceJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractionJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AdvanceJobResponse) Reset() {
	*x = AdvanceJobResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AdvanceJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AdvanceJobResponse) ProtoMessage() {}

func (x *AdvanceJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AdvanceJobResponse.ProtoReflect.Descriptor instead.
func (*AdvanceJobResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{6}
}

func (x *AdvanceJobResponse) GetJob() *ExtractionJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type CancelJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Reason        string                 `protobuf:"bytes,2,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobRequest) Reset() {
	*x = CancelJobRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobRequest) ProtoMessage() {}

func (x *CancelJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobRequest.ProtoReflect.Descriptor instead.
func (*CancelJobRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{7}
}

func (x *CancelJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *CancelJobRequest) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

type CancelJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractionJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelJobResponse) Reset() {
	*x = CancelJobResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelJobResponse) ProtoMessage() {}

func (x *CancelJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelJobResponse.ProtoReflect.Descriptor instead.
func (*CancelJobResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{8}
}

func (x *CancelJobResponse) GetJob() *ExtractionJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportJobResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportJobResultsRequest) Reset() {
	*x = ExportJobResultsRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobResultsRequest) ProtoMessage() {}

func (x *ExportJobResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportJobResultsRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{9}
}

func (x *ExportJobResultsRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExportJobResultsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ResultsFilePath string                 `protobuf:"bytes,1,opt,name=results_file_path,json=resultsFilePath,proto3" json:"results_file_path,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExportJobResultsResponse) Reset() {
	*x = ExportJobResultsResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportJobResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportJobResultsResponse) ProtoMessage() {}

func (x *ExportJobResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportJobResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportJobResultsResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{10}
}

func (x *ExportJobResultsResponse) GetResultsFilePath() string {
	if x != nil {
		return x.ResultsFilePath
	}
	return ""
}

type DecideReuseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Provider      string                 `protobuf:"bytes,1,opt,name=provider,proto3" json:"provider,omitempty"`
	Medication    string                 `protobuf:"bytes,2,opt,name=medication,proto3" json:"medication,omitempty"`
	StartDate     string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate       string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`       // YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DecideReuseRequest) Reset() {
	*x = DecideReuseRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DecideReuseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DecideReuseRequest) ProtoMessage() {}

func (x *DecideReuseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DecideReuseRequest.ProtoReflect.Descriptor instead.
func (*DecideReuseRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{11}
}

func (x *DecideReuseRequest) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *DecideReuseRequest) GetMedication() string {
	if x != nil {
		return x.Medication
	}
	return ""
}

func (x *DecideReuseRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *DecideReuseRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

type SessionSummary struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Medication        string                 `protobuf:"bytes,2,opt,name=medication,proto3" json:"medication,omitempty"`
	StartDate         string                 `protobuf:"bytes,3,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate           string                 `protobuf:"bytes,4,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	ProcessedPatients int32                  `protobuf:"varint,6,opt,name=processed_patients,json=processedPatients,proto3" json:"processed_patients,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SessionSummary) Reset() {
	*x = SessionSummary{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionSummary) ProtoMessage() {}

func (x *SessionSummary) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionSummary.ProtoReflect.Descriptor instead.
func (*SessionSummary) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{12}
}

func (x *SessionSummary) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *SessionSummary) GetMedication() string {
	if x != nil {
		return x.Medication
	}
	return ""
}

func (x *SessionSummary) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *SessionSummary) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

func (x *SessionSummary) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *SessionSummary) GetProcessedPatients() int32 {
	if x != nil {
		return x.ProcessedPatients
	}
	return 0
}

type PatientEvidence struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	PatientId       string                 `protobuf:"bytes,1,opt,name=patient_id,json=patientId,proto3" json:"patient_id,omitempty"`
	PatientName     string                 `protobuf:"bytes,2,opt,name=patient_name,json=patientName,proto3" json:"patient_name,omitempty"`
	MedicationCount int32                  `protobuf:"varint,3,opt,name=medication_count,json=medicationCount,proto3" json:"medication_count,omitempty"`
	DiagnosisCount  int32                  `protobuf:"varint,4,opt,name=diagnosis_count,json=diagnosisCount,proto3" json:"diagnosis_count,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *PatientEvidence) Reset() {
	*x = PatientEvidence{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PatientEvidence) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PatientEvidence) ProtoMessage() {}

func (x *PatientEvidence) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PatientEvidence.ProtoReflect.Descriptor instead.
func (*PatientEvidence) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{13}
}

func (x *PatientEvidence) GetPatientId() string {
	if x != nil {
		return x.PatientId
	}
	return ""
}

func (x *PatientEvidence) GetPatientName() string {
	if x != nil {
		return x.PatientName
	}
	return ""
}

func (x *PatientEvidence) GetMedicationCount() int32 {
	if x != nil {
		return x.MedicationCount
	}
	return 0
}

func (x *PatientEvidence) GetDiagnosisCount() int32 {
	if x != nil {
		return x.DiagnosisCount
	}
	return 0
}

type ReuseDecision struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	ShouldReuse        bool                   `protobuf:"varint,1,opt,name=should_reuse,json=shouldReuse,proto3" json:"should_reuse,omitempty"`
	Action             string                 `protobuf:"bytes,2,opt,name=action,proto3" json:"action,omitempty"`
	Reason             string                 `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	BestSession        *SessionSummary        `protobuf:"bytes,4,opt,name=best_session,json=bestSession,proto3" json:"best_session,omitempty"`
	Sessions           []*SessionSummary      `protobuf:"bytes,5,rep,name=sessions,proto3" json:"sessions,omitempty"`
	SampleEvidence     []*PatientEvidence     `protobuf:"bytes,6,rep,name=sample_evidence,json=sampleEvidence,proto3" json:"sample_evidence,omitempty"`
	CoveragePercentage float64                `protobuf:"fixed64,7,opt,name=coverage_percentage,json=coveragePercentage,proto3" json:"coverage_percentage,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *ReuseDecision) Reset() {
	*x = ReuseDecision{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReuseDecision) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReuseDecision) ProtoMessage() {}

func (x *ReuseDecision) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReuseDecision.ProtoReflect.Descriptor instead.
func (*ReuseDecision) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{14}
}

func (x *ReuseDecision) GetShouldReuse() bool {
	if x != nil {
		return x.ShouldReuse
	}
	return false
}

func (x *ReuseDecision) GetAction() string {
	if x != nil {
		return x.Action
	}
	return ""
}

func (x *ReuseDecision) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *ReuseDecision) GetBestSession() *SessionSummary {
	if x != nil {
		return x.BestSession
	}
	return nil
}

func (x *ReuseDecision) GetSessions() []*SessionSummary {
	if x != nil {
		return x.Sessions
	}
	return nil
}

func (x *ReuseDecision) GetSampleEvidence() []*PatientEvidence {
	if x != nil {
		return x.SampleEvidence
	}
	return nil
}

func (x *ReuseDecision) GetCoveragePercentage() float64 {
	if x != nil {
		return x.CoveragePercentage
	}
	return 0
}

type DecideReuseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Decision      *ReuseDecision         `protobuf:"bytes,1,opt,name=decision,proto3" json:"decision,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DecideReuseResponse) Reset() {
	*x = DecideReuseResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DecideReuseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DecideReuseResponse) ProtoMessage() {}

func (x *DecideReuseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DecideReuseResponse.ProtoReflect.Descriptor instead.
func (*DecideReuseResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{15}
}

func (x *DecideReuseResponse) GetDecision() *ReuseDecision {
	if x != nil {
		return x.Decision
	}
	return nil
}

type ListAdaptersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActiveOnly    bool                   `protobuf:"varint,1,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAdaptersRequest) Reset() {
	*x = ListAdaptersRequest{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAdaptersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAdaptersRequest) ProtoMessage() {}

func (x *ListAdaptersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAdaptersRequest.ProtoReflect.Descriptor instead.
func (*ListAdaptersRequest) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{16}
}

func (x *ListAdaptersRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

type PortalAdapter struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name             string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	ScriptIdentifier string                 `protobuf:"bytes,3,opt,name=script_identifier,json=scriptIdentifier,proto3" json:"script_identifier,omitempty"`
	Description      string                 `protobuf:"bytes,4,opt,name=description,proto3" json:"description,omitempty"`
	IsActive         bool                   `protobuf:"varint,5,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *PortalAdapter) Reset() {
	*x = PortalAdapter{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PortalAdapter) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PortalAdapter) ProtoMessage() {}

func (x *PortalAdapter) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PortalAdapter.ProtoReflect.Descriptor instead.
func (*PortalAdapter) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{17}
}

func (x *PortalAdapter) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *PortalAdapter) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PortalAdapter) GetScriptIdentifier() string {
	if x != nil {
		return x.ScriptIdentifier
	}
	return ""
}

func (x *PortalAdapter) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *PortalAdapter) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

type ListAdaptersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Adapters      []*PortalAdapter       `protobuf:"bytes,1,rep,name=adapters,proto3" json:"adapters,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListAdaptersResponse) Reset() {
	*x = ListAdaptersResponse{}
	mi := &file_extraction_v1_extraction_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListAdaptersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListAdaptersResponse) ProtoMessage() {}

func (x *ListAdaptersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_extraction_v1_extraction_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListAdaptersResponse.ProtoReflect.Descriptor instead.
func (*ListAdaptersResponse) Descriptor() ([]byte, []int) {
	return file_extraction_v1_extraction_proto_rawDescGZIP(), []int{18}
}

func (x *ListAdaptersResponse) GetAdapters() []*PortalAdapter {
	if x != nil {
		return x.Adapters
	}
	return nil
}

var File_extraction_v1_extraction_proto protoreflect.FileDescriptor

const file_extraction_v1_extraction_proto_rawDesc = "" +
	"\n" +
	"\x1eextraction/v1/extraction.proto\x12\rextraction.v1\"\xad\x04\n" +
	"\rExtractionJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bjob_name\x18\x02 \x01(\tR\ajobName\x12\x1d\n" +
	"\n" +
	"target_url\x18\x03 \x01(\tR\ttargetUrl\x12!\n" +
	"\fadapter_name\x18\x04 \x01(\tR\vadapterName\x12'\n" +
	"\x0fextraction_mode\x18\x05 \x01(\tR\x0eextractionMode\x12-\n" +
	"\x12patient_identifier\x18\x06 \x01(\tR\x11patientIdentifier\x12\x1f\n" +
	"\vdoctor_name\x18\a \x01(\tR\n" +
	"doctorName\x12\x1e\n" +
	"\n" +
	"medication\x18\b \x01(\tR\n" +
	"medication\x12\x1d\n" +
	"\n" +
	"start_date\x18\t \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\n" +
	" \x01(\tR\aendDate\x12*\n" +
	"\x11results_file_path\x18\v \x01(\tR\x0fresultsFilePath\x12\x16\n" +
	"\x06status\x18\f \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\r \x01(\tR\ferrorMessage\x125\n" +
	"\x17raw_extracted_data_json\x18\x0e \x01(\tR\x14rawExtractedDataJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\x0f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x10 \x01(\tR\tupdatedAt\"\xde\x02\n" +
	"\x10SubmitJobRequest\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12\x19\n" +
	"\bjob_name\x18\x02 \x01(\tR\ajobName\x12\x1d\n" +
	"\n" +
	"target_url\x18\x03 \x01(\tR\ttargetUrl\x12!\n" +
	"\fadapter_name\x18\x04 \x01(\tR\vadapterName\x12'\n" +
	"\x0fextraction_mode\x18\x05 \x01(\tR\x0eextractionMode\x12-\n" +
	"\x12patient_identifier\x18\x06 \x01(\tR\x11patientIdentifier\x12\x1f\n" +
	"\vdoctor_name\x18\a \x01(\tR\n" +
	"doctorName\x12\x1e\n" +
	"\n" +
	"medication\x18\b \x01(\tR\n" +
	"medication\x12\x1d\n" +
	"\n" +
	"start_date\x18\t \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\n" +
	" \x01(\tR\aendDate\"}\n" +
	"\x11SubmitJobResponse\x128\n" +
	"\bdecision\x18\x01 \x01(\v2\x1c.extraction.v1.ReuseDecisionR\bdecision\x12.\n" +
	"\x03job\x18\x02 \x01(\v2\x1c.extraction.v1.ExtractionJobR\x03job\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"@\n" +
	"\x0eGetJobResponse\x12.\n" +
	"\x03job\x18\x01 \x01(\v2\x1c.extraction.v1.ExtractionJobR\x03job\"\x88\x01\n" +
	"\x11AdvanceJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x14\n" +
	"\x05event\x18\x02 \x01(\tR\x05event\x12#\n" +
	"\rerror_message\x18\x03 \x01(\tR\ferrorMessage\x12!\n" +
	"\fpayload_json\x18\x04 \x01(\tR\vpayloadJson\"D\n" +
	"\x12AdvanceJobResponse\x12.\n" +
	"\x03job\x18\x01 \x01(\v2\x1c.extraction.v1.ExtractionJobR\x03job\"A\n" +
	"\x10CancelJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06reason\x18\x02 \x01(\tR\x06reason\"C\n" +
	"\x11CancelJobResponse\x12.\n" +
	"\x03job\x18\x01 \x01(\v2\x1c.extraction.v1.ExtractionJobR\x03job\"0\n" +
	"\x17ExportJobResultsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"F\n" +
	"\x18ExportJobResultsResponse\x12*\n" +
	"\x11results_file_path\x18\x01 \x01(\tR\x0fresultsFilePath\"\x8a\x01\n" +
	"\x12DecideReuseRequest\x12\x1a\n" +
	"\bprovider\x18\x01 \x01(\tR\bprovider\x12\x1e\n" +
	"\n" +
	"medication\x18\x02 \x01(\tR\n" +
	"medication\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\"\xc8\x01\n" +
	"\x0eSessionSummary\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1e\n" +
	"\n" +
	"medication\x18\x02 \x01(\tR\n" +
	"medication\x12\x1d\n" +
	"\n" +
	"start_date\x18\x03 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x04 \x01(\tR\aendDate\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12-\n" +
	"\x12processed_patients\x18\x06 \x01(\x05R\x11processedPatients\"\xa7\x01\n" +
	"\x0fPatientEvidence\x12\x1d\n" +
	"\n" +
	"patient_id\x18\x01 \x01(\tR\tpatientId\x12!\n" +
	"\fpatient_name\x18\x02 \x01(\tR\vpatientName\x12)\n" +
	"\x10medication_count\x18\x03 \x01(\x05R\x0fmedicationCount\x12'\n" +
	"\x0fdiagnosis_count\x18\x04 \x01(\x05R\x0ediagnosisCount\"\xd9\x02\n" +
	"\rReuseDecision\x12!\n" +
	"\fshould_reuse\x18\x01 \x01(\bR\vshouldReuse\x12\x16\n" +
	"\x06action\x18\x02 \x01(\tR\x06action\x12\x16\n" +
	"\x06reason\x18\x03 \x01(\tR\x06reason\x12@\n" +
	"\fbest_session\x18\x04 \x01(\v2\x1d.extraction.v1.SessionSummaryR\vbestSession\x129\n" +
	"\bsessions\x18\x05 \x03(\v2\x1d.extraction.v1.SessionSummaryR\bsessions\x12G\n" +
	"\x0fsample_evidence\x18\x06 \x03(\v2\x1e.extraction.v1.PatientEvidenceR\x0esampleEvidence\x12/\n" +
	"\x13coverage_percentage\x18\a \x01(\x01R\x12coveragePercentage\"O\n" +
	"\x13DecideReuseResponse\x128\n" +
	"\bdecision\x18\x01 \x01(\v2\x1c.extraction.v1.ReuseDecisionR\bdecision\"6\n" +
	"\x13ListAdaptersRequest\x12\x1f\n" +
	"\vactive_only\x18\x01 \x01(\bR\n" +
	"activeOnly\"\x9f\x01\n" +
	"\rPortalAdapter\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12+\n" +
	"\x11script_identifier\x18\x03 \x01(\tR\x10scriptIdentifier\x12 \n" +
	"\vdescription\x18\x04 \x01(\tR\vdescription\x12\x1b\n" +
	"\tis_active\x18\x05 \x01(\bR\bisActive\"P\n" +
	"\x14ListAdaptersResponse\x128\n" +
	"\badapters\x18\x01 \x03(\v2\x1c.extraction.v1.PortalAdapterR\badapters2\xb6\x03\n" +
	"\x15ExtractionJobsService\x12N\n" +
	"\tSubmitJob\x12\x1f.extraction.v1.SubmitJobRequest\x1a .extraction.v1.SubmitJobResponse\x12E\n" +
	"\x06GetJob\x12\x1c.extraction.v1.GetJobRequest\x1a\x1d.extraction.v1.GetJobResponse\x12Q\n" +
	"\n" +
	"AdvanceJob\x12 .extraction.v1.AdvanceJobRequest\x1a!.extraction.v1.AdvanceJobResponse\x12N\n" +
	"\tCancelJob\x12\x1f.extraction.v1.CancelJobRequest\x1a .extraction.v1.CancelJobResponse\x12c\n" +
	"\x10ExportJobResults\x12&.extraction.v1.ExportJobResultsRequest\x1a'.extraction.v1.ExportJobResultsResponse2d\n" +
	"\fReuseService\x12T\n" +
	"\vDecideReuse\x12!.extraction.v1.DecideReuseRequest\x1a\".extraction.v1.DecideReuseResponse2j\n" +
	"\x0fAdaptersService\x12W\n" +
	"\fListAdapters\x12\".extraction.v1.ListAdaptersRequest\x1a#.extraction.v1.ListAdaptersResponseBLZJgithub.com/chartpull/portal-extractor/gen/proto/extraction/v1;extractionv1b\x06proto3"

var (
	file_extraction_v1_extraction_proto_rawDescOnce sync.Once
	file_extraction_v1_extraction_proto_rawDescData []byte
)

func file_extraction_v1_extraction_proto_rawDescGZIP() []byte {
	file_extraction_v1_extraction_proto_rawDescOnce.Do(func() {
		file_extraction_v1_extraction_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)))
	})
	return file_extraction_v1_extraction_proto_rawDescData
}

var file_extraction_v1_extraction_proto_msgTypes = make([]protoimpl.MessageInfo, 19)
var file_extraction_v1_extraction_proto_goTypes = []any{
	(*ExtractionJob)(nil),            // 0: extraction.v1.ExtractionJob
	(*SubmitJobRequest)(nil),         // 1: extraction.v1.SubmitJobRequest
	(*SubmitJobResponse)(nil),        // 2: extraction.v1.SubmitJobResponse
	(*GetJobRequest)(nil),            // 3: extraction.v1.GetJobRequest
	(*GetJobResponse)(nil),           // 4: extraction.v1.GetJobResponse
	(*AdvanceJobRequest)(nil),        // 5: extraction.v1.AdvanceJobRequest
	(*AdvanceJobResponse)(nil),       // 6: extraction.v1.AdvanceJobResponse
	(*CancelJobRequest)(nil),         // 7: extraction.v1.CancelJobRequest
	(*CancelJobResponse)(nil),        // 8: extraction.v1.CancelJobResponse
	(*ExportJobResultsRequest)(nil),  // 9: extraction.v1.ExportJobResultsRequest
	(*ExportJobResultsResponse)(nil), // 10: extraction.v1.ExportJobResultsResponse
	(*DecideReuseRequest)(nil),       // 11: extraction.v1.DecideReuseRequest
	(*SessionSummary)(nil),           // 12: extraction.v1.SessionSummary
	(*PatientEvidence)(nil),          // 13: extraction.v1.PatientEvidence
	(*ReuseDecision)(nil),            // 14: extraction.v1.ReuseDecision
	(*DecideReuseResponse)(nil),      // 15: extraction.v1.DecideReuseResponse
	(*ListAdaptersRequest)(nil),      // 16: extraction.v1.ListAdaptersRequest
	(*PortalAdapter)(nil),            // 17: extraction.v1.PortalAdapter
	(*ListAdaptersResponse)(nil),     // 18: extraction.v1.ListAdaptersResponse
}
var file_extraction_v1_extraction_proto_depIdxs = []int32{
	14, // 0: extraction.v1.SubmitJobResponse.decision:type_name -> extraction.v1.ReuseDecision
	0,  // 1: extraction.v1.SubmitJobResponse.job:type_name -> extraction.v1.ExtractionJob
	0,  // 2: extraction.v1.GetJobResponse.job:type_name -> extraction.v1.ExtractionJob
	0,  // 3: extraction.v1.AdvanceJobResponse.job:type_name -> extraction.v1.ExtractionJob
	0,  // 4: extraction.v1.CancelJobResponse.job:type_name -> extraction.v1.ExtractionJob
	12, // 5: extraction.v1.ReuseDecision.best_session:type_name -> extraction.v1.SessionSummary
	12, // 6: extraction.v1.ReuseDecision.sessions:type_name -> extraction.v1.SessionSummary
	13, // 7: extraction.v1.ReuseDecision.sample_evidence:type_name -> extraction.v1.PatientEvidence
	14, // 8: extraction.v1.DecideReuseResponse.decision:type_name -> extraction.v1.ReuseDecision
	17, // 9: extraction.v1.ListAdaptersResponse.adapters:type_name -> extraction.v1.PortalAdapter
	1,  // 10: extraction.v1.ExtractionJobsService.SubmitJob:input_type -> extraction.v1.SubmitJobRequest
	3,  // 11: extraction.v1.ExtractionJobsService.GetJob:input_type -> extraction.v1.GetJobRequest
	5,  // 12: extraction.v1.ExtractionJobsService.AdvanceJob:input_type -> extraction.v1.AdvanceJobRequest
	7,  // 13: extraction.v1.ExtractionJobsService.CancelJob:input_type -> extraction.v1.CancelJobRequest
	9,  // 14: extraction.v1.ExtractionJobsService.ExportJobResults:input_type -> extraction.v1.ExportJobResultsRequest
	11, // 15: extraction.v1.ReuseService.DecideReuse:input_type -> extraction.v1.DecideReuseRequest
	16, // 16: extraction.v1.AdaptersService.ListAdapters:input_type -> extraction.v1.ListAdaptersRequest
	2,  // 17: extraction.v1.ExtractionJobsService.SubmitJob:output_type -> extraction.v1.SubmitJobResponse
	4,  // 18: extraction.v1.ExtractionJobsService.GetJob:output_type -> extraction.v1.GetJobResponse
	6,  // 19: extraction.v1.ExtractionJobsService.AdvanceJob:output_type -> extraction.v1.AdvanceJobResponse
	8,  // 20: extraction.v1.ExtractionJobsService.CancelJob:output_type -> extraction.v1.CancelJobResponse
	10, // 21: extraction.v1.ExtractionJobsService.ExportJobResults:output_type -> extraction.v1.ExportJobResultsResponse
	15, // 22: extraction.v1.ReuseService.DecideReuse:output_type -> extraction.v1.DecideReuseResponse
	18, // 23: extraction.v1.AdaptersService.ListAdapters:output_type -> extraction.v1.ListAdaptersResponse
	17, // [17:24] is the sub-list for method output_type
	10, // [10:17] is the sub-list for method input_type
	10, // [10:10] is the sub-list for extension type_name
	10, // [10:10] is the sub-list for extension extendee
	0,  // [0:10] is the sub-list for field type_name
}

func init() { file_extraction_v1_extraction_proto_init() }
func file_extraction_v1_extraction_proto_init() {
	if File_extraction_v1_extraction_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_extraction_v1_extraction_proto_rawDesc), len(file_extraction_v1_extraction_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   19,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_extraction_v1_extraction_proto_goTypes,
		DependencyIndexes: file_extraction_v1_extraction_proto_depIdxs,
		MessageInfos:      file_extraction_v1_extraction_proto_msgTypes,
	}.Build()
	File_extraction_v1_extraction_proto = out.File
	file_extraction_v1_extraction_proto_goTypes = nil
	file_extraction_v1_extraction_proto_depIdxs = nil
}
