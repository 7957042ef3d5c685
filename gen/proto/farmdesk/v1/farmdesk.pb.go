// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: farmdesk/v1/farmdesk.proto

package farmdeskv1

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

type Farm struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CountryCode     string                 `protobuf:"bytes,3,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	LegalForm       string                 `protobuf:"bytes,5,opt,name=legal_form,json=legalForm,proto3" json:"legal_form,omitempty"`
	ContactEmail    string                 `protobuf:"bytes,6,opt,name=contact_email,json=contactEmail,proto3" json:"contact_email,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,8,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Farm) Reset() {
	*x = Farm{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Farm) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Farm) ProtoMessage() {}

func (x *Farm) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Farm.ProtoReflect.Descriptor instead.
func (*Farm) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{0}
}

func (x *Farm) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Farm) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Farm) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *Farm) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Farm) GetLegalForm() string {
	if x != nil {
		return x.LegalForm
	}
	return ""
}

func (x *Farm) GetContactEmail() string {
	if x != nil {
		return x.ContactEmail
	}
	return ""
}

func (x *Farm) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Farm) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FarmId        string                 `protobuf:"bytes,2,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	FileUrl       string                 `protobuf:"bytes,3,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	Filename      string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	FileExt       string                 `protobuf:"bytes,5,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	DocType       string                 `protobuf:"bytes,6,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	FileSize      int64                  `protobuf:"varint,7,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,8,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{1}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *Document) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *Document) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

func (x *Document) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *Document) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

type ProcessingJob struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId       string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FarmId           string                 `protobuf:"bytes,3,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	Status           string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	Priority         string                 `protobuf:"bytes,5,opt,name=priority,proto3" json:"priority,omitempty"`
	RetryAttempt     int32                  `protobuf:"varint,6,opt,name=retry_attempt,json=retryAttempt,proto3" json:"retry_attempt,omitempty"`
	MaxRetries       int32                  `protobuf:"varint,7,opt,name=max_retries,json=maxRetries,proto3" json:"max_retries,omitempty"`
	ScheduledFor     string                 `protobuf:"bytes,8,opt,name=scheduled_for,json=scheduledFor,proto3" json:"scheduled_for,omitempty"`
	StartedAt        string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt      string                 `protobuf:"bytes,10,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	ProcessingTimeMs int64                  `protobuf:"varint,11,opt,name=processing_time_ms,json=processingTimeMs,proto3" json:"processing_time_ms,omitempty"`
	ErrorMessage     string                 `protobuf:"bytes,12,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt        string                 `protobuf:"bytes,13,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ProcessingJob) Reset() {
	*x = ProcessingJob{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessingJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessingJob) ProtoMessage() {}

func (x *ProcessingJob) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessingJob.ProtoReflect.Descriptor instead.
func (*ProcessingJob) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{2}
}

func (x *ProcessingJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessingJob) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ProcessingJob) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *ProcessingJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ProcessingJob) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

func (x *ProcessingJob) GetRetryAttempt() int32 {
	if x != nil {
		return x.RetryAttempt
	}
	return 0
}

func (x *ProcessingJob) GetMaxRetries() int32 {
	if x != nil {
		return x.MaxRetries
	}
	return 0
}

func (x *ProcessingJob) GetScheduledFor() string {
	if x != nil {
		return x.ScheduledFor
	}
	return ""
}

func (x *ProcessingJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ProcessingJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *ProcessingJob) GetProcessingTimeMs() int64 {
	if x != nil {
		return x.ProcessingTimeMs
	}
	return 0
}

func (x *ProcessingJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ProcessingJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractedField struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Name  string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	// JSON-encoded value so numbers and strings round-trip losslessly
	ValueJson     string  `protobuf:"bytes,2,opt,name=value_json,json=valueJson,proto3" json:"value_json,omitempty"`
	Confidence    float64 `protobuf:"fixed64,3,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Source        string  `protobuf:"bytes,4,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractedField) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ExtractedField) GetValueJson() string {
	if x != nil {
		return x.ValueJson
	}
	return ""
}

func (x *ExtractedField) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ExtractedField) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type ExtractionResult struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId        string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FarmId            string                 `protobuf:"bytes,3,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	JobId             string                 `protobuf:"bytes,4,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Succeeded         bool                   `protobuf:"varint,5,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Fields            []*ExtractedField      `protobuf:"bytes,6,rep,name=fields,proto3" json:"fields,omitempty"`
	OverallConfidence float32                `protobuf:"fixed32,7,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	ExtractedCount    int32                  `protobuf:"varint,8,opt,name=extracted_count,json=extractedCount,proto3" json:"extracted_count,omitempty"`
	TotalFields       int32                  `protobuf:"varint,9,opt,name=total_fields,json=totalFields,proto3" json:"total_fields,omitempty"`
	Degraded          bool                   `protobuf:"varint,10,opt,name=degraded,proto3" json:"degraded,omitempty"`
	ErrorMessage      string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ExtractionResult) Reset() {
	*x = ExtractionResult{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionResult) ProtoMessage() {}

func (x *ExtractionResult) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionResult.ProtoReflect.Descriptor instead.
func (*ExtractionResult) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractionResult) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractionResult) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractionResult) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *ExtractionResult) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ExtractionResult) GetSucceeded() bool {
	if x != nil {
		return x.Succeeded
	}
	return false
}

func (x *ExtractionResult) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

func (x *ExtractionResult) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *ExtractionResult) GetExtractedCount() int32 {
	if x != nil {
		return x.ExtractedCount
	}
	return 0
}

func (x *ExtractionResult) GetTotalFields() int32 {
	if x != nil {
		return x.TotalFields
	}
	return 0
}

func (x *ExtractionResult) GetDegraded() bool {
	if x != nil {
		return x.Degraded
	}
	return false
}

func (x *ExtractionResult) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractionResult) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type FormState struct {
	state  protoimpl.MessageState `protogen:"open.v1"`
	FarmId string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	// JSON object of field values plus _source / _sync_timestamp shadow keys
	DataJson      string `protobuf:"bytes,2,opt,name=data_json,json=dataJson,proto3" json:"data_json,omitempty"`
	UpdatedAt     string `protobuf:"bytes,3,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FormState) Reset() {
	*x = FormState{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FormState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FormState) ProtoMessage() {}

func (x *FormState) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FormState.ProtoReflect.Descriptor instead.
func (*FormState) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{5}
}

func (x *FormState) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *FormState) GetDataJson() string {
	if x != nil {
		return x.DataJson
	}
	return ""
}

func (x *FormState) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateFarmRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CountryCode     string                 `protobuf:"bytes,2,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	LegalForm       string                 `protobuf:"bytes,4,opt,name=legal_form,json=legalForm,proto3" json:"legal_form,omitempty"`
	ContactEmail    string                 `protobuf:"bytes,5,opt,name=contact_email,json=contactEmail,proto3" json:"contact_email,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateFarmRequest) Reset() {
	*x = CreateFarmRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFarmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFarmRequest) ProtoMessage() {}

func (x *CreateFarmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFarmRequest.ProtoReflect.Descriptor instead.
func (*CreateFarmRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{6}
}

func (x *CreateFarmRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateFarmRequest) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *CreateFarmRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *CreateFarmRequest) GetLegalForm() string {
	if x != nil {
		return x.LegalForm
	}
	return ""
}

func (x *CreateFarmRequest) GetContactEmail() string {
	if x != nil {
		return x.ContactEmail
	}
	return ""
}

type CreateFarmResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farm          *Farm                  `protobuf:"bytes,1,opt,name=farm,proto3" json:"farm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateFarmResponse) Reset() {
	*x = CreateFarmResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateFarmResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateFarmResponse) ProtoMessage() {}

func (x *CreateFarmResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateFarmResponse.ProtoReflect.Descriptor instead.
func (*CreateFarmResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{7}
}

func (x *CreateFarmResponse) GetFarm() *Farm {
	if x != nil {
		return x.Farm
	}
	return nil
}

type GetFarmRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFarmRequest) Reset() {
	*x = GetFarmRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFarmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFarmRequest) ProtoMessage() {}

func (x *GetFarmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFarmRequest.ProtoReflect.Descriptor instead.
func (*GetFarmRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{8}
}

func (x *GetFarmRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type GetFarmResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farm          *Farm                  `protobuf:"bytes,1,opt,name=farm,proto3" json:"farm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFarmResponse) Reset() {
	*x = GetFarmResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFarmResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFarmResponse) ProtoMessage() {}

func (x *GetFarmResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFarmResponse.ProtoReflect.Descriptor instead.
func (*GetFarmResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{9}
}

func (x *GetFarmResponse) GetFarm() *Farm {
	if x != nil {
		return x.Farm
	}
	return nil
}

type ListFarmsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFarmsRequest) Reset() {
	*x = ListFarmsRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFarmsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFarmsRequest) ProtoMessage() {}

func (x *ListFarmsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFarmsRequest.ProtoReflect.Descriptor instead.
func (*ListFarmsRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{10}
}

type ListFarmsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farms         []*Farm                `protobuf:"bytes,1,rep,name=farms,proto3" json:"farms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFarmsResponse) Reset() {
	*x = ListFarmsResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFarmsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFarmsResponse) ProtoMessage() {}

func (x *ListFarmsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFarmsResponse.ProtoReflect.Descriptor instead.
func (*ListFarmsResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{11}
}

func (x *ListFarmsResponse) GetFarms() []*Farm {
	if x != nil {
		return x.Farms
	}
	return nil
}

type UpdateFarmRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	FarmId          string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CountryCode     string                 `protobuf:"bytes,3,opt,name=country_code,json=countryCode,proto3" json:"country_code,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	LegalForm       string                 `protobuf:"bytes,5,opt,name=legal_form,json=legalForm,proto3" json:"legal_form,omitempty"`
	ContactEmail    string                 `protobuf:"bytes,6,opt,name=contact_email,json=contactEmail,proto3" json:"contact_email,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *UpdateFarmRequest) Reset() {
	*x = UpdateFarmRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFarmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFarmRequest) ProtoMessage() {}

func (x *UpdateFarmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFarmRequest.ProtoReflect.Descriptor instead.
func (*UpdateFarmRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{12}
}

func (x *UpdateFarmRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *UpdateFarmRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateFarmRequest) GetCountryCode() string {
	if x != nil {
		return x.CountryCode
	}
	return ""
}

func (x *UpdateFarmRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *UpdateFarmRequest) GetLegalForm() string {
	if x != nil {
		return x.LegalForm
	}
	return ""
}

func (x *UpdateFarmRequest) GetContactEmail() string {
	if x != nil {
		return x.ContactEmail
	}
	return ""
}

type UpdateFarmResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Farm          *Farm                  `protobuf:"bytes,1,opt,name=farm,proto3" json:"farm,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateFarmResponse) Reset() {
	*x = UpdateFarmResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateFarmResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateFarmResponse) ProtoMessage() {}

func (x *UpdateFarmResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateFarmResponse.ProtoReflect.Descriptor instead.
func (*UpdateFarmResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{13}
}

func (x *UpdateFarmResponse) GetFarm() *Farm {
	if x != nil {
		return x.Farm
	}
	return nil
}

type DeleteFarmRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFarmRequest) Reset() {
	*x = DeleteFarmRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFarmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFarmRequest) ProtoMessage() {}

func (x *DeleteFarmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFarmRequest.ProtoReflect.Descriptor instead.
func (*DeleteFarmRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{14}
}

func (x *DeleteFarmRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type DeleteFarmResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteFarmResponse) Reset() {
	*x = DeleteFarmResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteFarmResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteFarmResponse) ProtoMessage() {}

func (x *DeleteFarmResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteFarmResponse.ProtoReflect.Descriptor instead.
func (*DeleteFarmResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{15}
}

type ExportFarmRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFarmRequest) Reset() {
	*x = ExportFarmRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFarmRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFarmRequest) ProtoMessage() {}

func (x *ExportFarmRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFarmRequest.ProtoReflect.Descriptor instead.
func (*ExportFarmRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{16}
}

func (x *ExportFarmRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type ExportFarmResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportFarmResponse) Reset() {
	*x = ExportFarmResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportFarmResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportFarmResponse) ProtoMessage() {}

func (x *ExportFarmResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportFarmResponse.ProtoReflect.Descriptor instead.
func (*ExportFarmResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{17}
}

func (x *ExportFarmResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportFarmResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type RegisterDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	FileUrl       string                 `protobuf:"bytes,2,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	DocType       string                 `protobuf:"bytes,4,opt,name=doc_type,json=docType,proto3" json:"doc_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterDocumentRequest) Reset() {
	*x = RegisterDocumentRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentRequest) ProtoMessage() {}

func (x *RegisterDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentRequest.ProtoReflect.Descriptor instead.
func (*RegisterDocumentRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{18}
}

func (x *RegisterDocumentRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

func (x *RegisterDocumentRequest) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *RegisterDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *RegisterDocumentRequest) GetDocType() string {
	if x != nil {
		return x.DocType
	}
	return ""
}

type RegisterDocumentResponse struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Document *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	// true when the same content was already registered for this farm
	AlreadyRegistered bool `protobuf:"varint,2,opt,name=already_registered,json=alreadyRegistered,proto3" json:"already_registered,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *RegisterDocumentResponse) Reset() {
	*x = RegisterDocumentResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterDocumentResponse) ProtoMessage() {}

func (x *RegisterDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterDocumentResponse.ProtoReflect.Descriptor instead.
func (*RegisterDocumentResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{19}
}

func (x *RegisterDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *RegisterDocumentResponse) GetAlreadyRegistered() bool {
	if x != nil {
		return x.AlreadyRegistered
	}
	return false
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{20}
}

func (x *ListDocumentsRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{21}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentRequest.ProtoReflect.Descriptor instead.
func (*DeleteDocumentRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{22}
}

func (x *DeleteDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type DeleteDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentResponse) Reset() {
	*x = DeleteDocumentResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteDocumentResponse.ProtoReflect.Descriptor instead.
func (*DeleteDocumentResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{23}
}

type EnqueueExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Priority      string                 `protobuf:"bytes,2,opt,name=priority,proto3" json:"priority,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionRequest) Reset() {
	*x = EnqueueExtractionRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionRequest) ProtoMessage() {}

func (x *EnqueueExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionRequest.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{24}
}

func (x *EnqueueExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *EnqueueExtractionRequest) GetPriority() string {
	if x != nil {
		return x.Priority
	}
	return ""
}

type EnqueueExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EnqueueExtractionResponse) Reset() {
	*x = EnqueueExtractionResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EnqueueExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EnqueueExtractionResponse) ProtoMessage() {}

func (x *EnqueueExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EnqueueExtractionResponse.ProtoReflect.Descriptor instead.
func (*EnqueueExtractionResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{25}
}

func (x *EnqueueExtractionResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetJobStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusRequest) Reset() {
	*x = GetJobStatusRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusRequest) ProtoMessage() {}

func (x *GetJobStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusRequest.ProtoReflect.Descriptor instead.
func (*GetJobStatusRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{26}
}

func (x *GetJobStatusRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ProcessingJob         `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobStatusResponse) Reset() {
	*x = GetJobStatusResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobStatusResponse) ProtoMessage() {}

func (x *GetJobStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobStatusResponse.ProtoReflect.Descriptor instead.
func (*GetJobStatusResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{27}
}

func (x *GetJobStatusResponse) GetJob() *ProcessingJob {
	if x != nil {
		return x.Job
	}
	return nil
}

// every job ever enqueued for the document, newest first
type ListDocumentJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentJobsRequest) Reset() {
	*x = ListDocumentJobsRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentJobsRequest) ProtoMessage() {}

func (x *ListDocumentJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentJobsRequest.ProtoReflect.Descriptor instead.
func (*ListDocumentJobsRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{28}
}

func (x *ListDocumentJobsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ListDocumentJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ProcessingJob       `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentJobsResponse) Reset() {
	*x = ListDocumentJobsResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentJobsResponse) ProtoMessage() {}

func (x *ListDocumentJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListDocumentJobsResponse.ProtoReflect.Descriptor instead.
func (*ListDocumentJobsResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{29}
}

func (x *ListDocumentJobsResponse) GetJobs() []*ProcessingJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type GetLatestResultRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestResultRequest) Reset() {
	*x = GetLatestResultRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestResultRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestResultRequest) ProtoMessage() {}

func (x *GetLatestResultRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestResultRequest.ProtoReflect.Descriptor instead.
func (*GetLatestResultRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{30}
}

func (x *GetLatestResultRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type GetLatestResultResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Result        *ExtractionResult      `protobuf:"bytes,1,opt,name=result,proto3" json:"result,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetLatestResultResponse) Reset() {
	*x = GetLatestResultResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetLatestResultResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetLatestResultResponse) ProtoMessage() {}

func (x *GetLatestResultResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetLatestResultResponse.ProtoReflect.Descriptor instead.
func (*GetLatestResultResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{31}
}

func (x *GetLatestResultResponse) GetResult() *ExtractionResult {
	if x != nil {
		return x.Result
	}
	return nil
}

type SaveReviewEditRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	FieldName     string                 `protobuf:"bytes,2,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	ValueJson     string                 `protobuf:"bytes,3,opt,name=value_json,json=valueJson,proto3" json:"value_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveReviewEditRequest) Reset() {
	*x = SaveReviewEditRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveReviewEditRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveReviewEditRequest) ProtoMessage() {}

func (x *SaveReviewEditRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveReviewEditRequest.ProtoReflect.Descriptor instead.
func (*SaveReviewEditRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{32}
}

func (x *SaveReviewEditRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *SaveReviewEditRequest) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *SaveReviewEditRequest) GetValueJson() string {
	if x != nil {
		return x.ValueJson
	}
	return ""
}

type SaveReviewEditResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *FormState             `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SaveReviewEditResponse) Reset() {
	*x = SaveReviewEditResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SaveReviewEditResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SaveReviewEditResponse) ProtoMessage() {}

func (x *SaveReviewEditResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SaveReviewEditResponse.ProtoReflect.Descriptor instead.
func (*SaveReviewEditResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{33}
}

func (x *SaveReviewEditResponse) GetForm() *FormState {
	if x != nil {
		return x.Form
	}
	return nil
}

type AcceptExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptExtractionRequest) Reset() {
	*x = AcceptExtractionRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptExtractionRequest) ProtoMessage() {}

func (x *AcceptExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptExtractionRequest.ProtoReflect.Descriptor instead.
func (*AcceptExtractionRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{34}
}

func (x *AcceptExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type AcceptExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *FormState             `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AcceptExtractionResponse) Reset() {
	*x = AcceptExtractionResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AcceptExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AcceptExtractionResponse) ProtoMessage() {}

func (x *AcceptExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AcceptExtractionResponse.ProtoReflect.Descriptor instead.
func (*AcceptExtractionResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{35}
}

func (x *AcceptExtractionResponse) GetForm() *FormState {
	if x != nil {
		return x.Form
	}
	return nil
}

type RejectExtractionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectExtractionRequest) Reset() {
	*x = RejectExtractionRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectExtractionRequest) ProtoMessage() {}

func (x *RejectExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectExtractionRequest.ProtoReflect.Descriptor instead.
func (*RejectExtractionRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{36}
}

func (x *RejectExtractionRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type RejectExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *FormState             `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RejectExtractionResponse) Reset() {
	*x = RejectExtractionResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RejectExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RejectExtractionResponse) ProtoMessage() {}

func (x *RejectExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RejectExtractionResponse.ProtoReflect.Descriptor instead.
func (*RejectExtractionResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{37}
}

func (x *RejectExtractionResponse) GetForm() *FormState {
	if x != nil {
		return x.Form
	}
	return nil
}

type GetFormStateRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFormStateRequest) Reset() {
	*x = GetFormStateRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFormStateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFormStateRequest) ProtoMessage() {}

func (x *GetFormStateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFormStateRequest.ProtoReflect.Descriptor instead.
func (*GetFormStateRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{38}
}

func (x *GetFormStateRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type GetFormStateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *FormState             `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetFormStateResponse) Reset() {
	*x = GetFormStateResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetFormStateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFormStateResponse) ProtoMessage() {}

func (x *GetFormStateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFormStateResponse.ProtoReflect.Descriptor instead.
func (*GetFormStateResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{39}
}

func (x *GetFormStateResponse) GetForm() *FormState {
	if x != nil {
		return x.Form
	}
	return nil
}

type SyncFormRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FarmId        string                 `protobuf:"bytes,1,opt,name=farm_id,json=farmId,proto3" json:"farm_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncFormRequest) Reset() {
	*x = SyncFormRequest{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncFormRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncFormRequest) ProtoMessage() {}

func (x *SyncFormRequest) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncFormRequest.ProtoReflect.Descriptor instead.
func (*SyncFormRequest) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{40}
}

func (x *SyncFormRequest) GetFarmId() string {
	if x != nil {
		return x.FarmId
	}
	return ""
}

type SyncFormResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Form          *FormState             `protobuf:"bytes,1,opt,name=form,proto3" json:"form,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SyncFormResponse) Reset() {
	*x = SyncFormResponse{}
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SyncFormResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SyncFormResponse) ProtoMessage() {}

func (x *SyncFormResponse) ProtoReflect() protoreflect.Message {
	mi := &file_farmdesk_v1_farmdesk_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SyncFormResponse.ProtoReflect.Descriptor instead.
func (*SyncFormResponse) Descriptor() ([]byte, []int) {
	return file_farmdesk_v1_farmdesk_proto_rawDescGZIP(), []int{41}
}

func (x *SyncFormResponse) GetForm() *FormState {
	if x != nil {
		return x.Form
	}
	return nil
}

var File_farmdesk_v1_farmdesk_proto protoreflect.FileDescriptor

const file_farmdesk_v1_farmdesk_proto_rawDesc = "" +
	"\n" +
	"\x1afarmdesk/v1/farmdesk.proto\x12\vfarmdesk.v1\"\xfa\x01\n" +
	"\x04Farm\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fcountry_code\x18\x03 \x01(\tR\vcountryCode\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"legal_form\x18\x05 \x01(\tR\tlegalForm\x12#\n" +
	"\rcontact_email\x18\x06 \x01(\tR\fcontactEmail\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\b \x01(\tR\tupdatedAt\"\xde\x01\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afarm_id\x18\x02 \x01(\tR\x06farmId\x12\x19\n" +
	"\bfile_url\x18\x03 \x01(\tR\afileUrl\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12\x19\n" +
	"\bfile_ext\x18\x05 \x01(\tR\afileExt\x12\x19\n" +
	"\bdoc_type\x18\x06 \x01(\tR\adocType\x12\x1b\n" +
	"\tfile_size\x18\a \x01(\x03R\bfileSize\x12\x1f\n" +
	"\vuploaded_at\x18\b \x01(\tR\n" +
	"uploadedAt\"\xac\x03\n" +
	"\rProcessingJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\afarm_id\x18\x03 \x01(\tR\x06farmId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12\x1a\n" +
	"\bpriority\x18\x05 \x01(\tR\bpriority\x12#\n" +
	"\rretry_attempt\x18\x06 \x01(\x05R\fretryAttempt\x12\x1f\n" +
	"\vmax_retries\x18\a \x01(\x05R\n" +
	"maxRetries\x12#\n" +
	"\rscheduled_for\x18\b \x01(\tR\fscheduledFor\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\n" +
	" \x01(\tR\vcompletedAt\x12,\n" +
	"\x12processing_time_ms\x18\v \x01(\x03R\x10processingTimeMs\x12#\n" +
	"\rerror_message\x18\f \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\r \x01(\tR\tcreatedAt\"{\n" +
	"\x0eExtractedField\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1d\n" +
	"\n" +
	"value_json\x18\x02 \x01(\tR\tvalueJson\x12\x1e\n" +
	"\n" +
	"confidence\x18\x03 \x01(\x01R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x04 \x01(\tR\x06source\"\xa1\x03\n" +
	"\x10ExtractionResult\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\afarm_id\x18\x03 \x01(\tR\x06farmId\x12\x15\n" +
	"\x06job_id\x18\x04 \x01(\tR\x05jobId\x12\x1c\n" +
	"\tsucceeded\x18\x05 \x01(\bR\tsucceeded\x123\n" +
	"\x06fields\x18\x06 \x03(\v2\x1b.farmdesk.v1.ExtractedFieldR\x06fields\x12-\n" +
	"\x12overall_confidence\x18\a \x01(\x02R\x11overallConfidence\x12'\n" +
	"\x0fextracted_count\x18\b \x01(\x05R\x0eextractedCount\x12!\n" +
	"\ftotal_fields\x18\t \x01(\x05R\vtotalFields\x12\x1a\n" +
	"\bdegraded\x18\n" +
	" \x01(\bR\bdegraded\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\"`\n" +
	"\tFormState\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\x12\x1b\n" +
	"\tdata_json\x18\x02 \x01(\tR\bdataJson\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x03 \x01(\tR\tupdatedAt\"\xb9\x01\n" +
	"\x11CreateFarmRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcountry_code\x18\x02 \x01(\tR\vcountryCode\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"legal_form\x18\x04 \x01(\tR\tlegalForm\x12#\n" +
	"\rcontact_email\x18\x05 \x01(\tR\fcontactEmail\";\n" +
	"\x12CreateFarmResponse\x12%\n" +
	"\x04farm\x18\x01 \x01(\v2\x11.farmdesk.v1.FarmR\x04farm\")\n" +
	"\x0eGetFarmRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\"8\n" +
	"\x0fGetFarmResponse\x12%\n" +
	"\x04farm\x18\x01 \x01(\v2\x11.farmdesk.v1.FarmR\x04farm\"\x12\n" +
	"\x10ListFarmsRequest\"<\n" +
	"\x11ListFarmsResponse\x12'\n" +
	"\x05farms\x18\x01 \x03(\v2\x11.farmdesk.v1.FarmR\x05farms\"\xd2\x01\n" +
	"\x11UpdateFarmRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fcountry_code\x18\x03 \x01(\tR\vcountryCode\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"legal_form\x18\x05 \x01(\tR\tlegalForm\x12#\n" +
	"\rcontact_email\x18\x06 \x01(\tR\fcontactEmail\";\n" +
	"\x12UpdateFarmResponse\x12%\n" +
	"\x04farm\x18\x01 \x01(\v2\x11.farmdesk.v1.FarmR\x04farm\",\n" +
	"\x11DeleteFarmRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\"\x14\n" +
	"\x12DeleteFarmResponse\",\n" +
	"\x11ExportFarmRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\"J\n" +
	"\x12ExportFarmResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent\"\x84\x01\n" +
	"\x17RegisterDocumentRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\x12\x19\n" +
	"\bfile_url\x18\x02 \x01(\tR\afileUrl\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\x12\x19\n" +
	"\bdoc_type\x18\x04 \x01(\tR\adocType\"|\n" +
	"\x18RegisterDocumentResponse\x121\n" +
	"\bdocument\x18\x01 \x01(\v2\x15.farmdesk.v1.DocumentR\bdocument\x12-\n" +
	"\x12already_registered\x18\x02 \x01(\bR\x11alreadyRegistered\"/\n" +
	"\x14ListDocumentsRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\"L\n" +
	"\x15ListDocumentsResponse\x123\n" +
	"\tdocuments\x18\x01 \x03(\v2\x15.farmdesk.v1.DocumentR\tdocuments\"8\n" +
	"\x15DeleteDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"\x18\n" +
	"\x16DeleteDocumentResponse\"W\n" +
	"\x18EnqueueExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1a\n" +
	"\bpriority\x18\x02 \x01(\tR\bpriority\"I\n" +
	"\x19EnqueueExtractionResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.farmdesk.v1.ProcessingJobR\x03job\",\n" +
	"\x13GetJobStatusRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"D\n" +
	"\x14GetJobStatusResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.farmdesk.v1.ProcessingJobR\x03job\":\n" +
	"\x17ListDocumentJobsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"J\n" +
	"\x18ListDocumentJobsResponse\x12.\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1a.farmdesk.v1.ProcessingJobR\x04jobs\"9\n" +
	"\x16GetLatestResultRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"P\n" +
	"\x17GetLatestResultResponse\x125\n" +
	"\x06result\x18\x01 \x01(\v2\x1d.farmdesk.v1.ExtractionResultR\x06result\"v\n" +
	"\x15SaveReviewEditRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1d\n" +
	"\n" +
	"field_name\x18\x02 \x01(\tR\tfieldName\x12\x1d\n" +
	"\n" +
	"value_json\x18\x03 \x01(\tR\tvalueJson\"D\n" +
	"\x16SaveReviewEditResponse\x12*\n" +
	"\x04form\x18\x01 \x01(\v2\x16.farmdesk.v1.FormStateR\x04form\":\n" +
	"\x17AcceptExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"F\n" +
	"\x18AcceptExtractionResponse\x12*\n" +
	"\x04form\x18\x01 \x01(\v2\x16.farmdesk.v1.FormStateR\x04form\":\n" +
	"\x17RejectExtractionRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\"F\n" +
	"\x18RejectExtractionResponse\x12*\n" +
	"\x04form\x18\x01 \x01(\v2\x16.farmdesk.v1.FormStateR\x04form\".\n" +
	"\x13GetFormStateRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\"B\n" +
	"\x14GetFormStateResponse\x12*\n" +
	"\x04form\x18\x01 \x01(\v2\x16.farmdesk.v1.FormStateR\x04form\"*\n" +
	"\x0fSyncFormRequest\x12\x17\n" +
	"\afarm_id\x18\x01 \x01(\tR\x06farmId\">\n" +
	"\x10SyncFormResponse\x12*\n" +
	"\x04form\x18\x01 \x01(\v2\x16.farmdesk.v1.FormStateR\x04form2\xdc\x03\n" +
	"\fFarmsService\x12M\n" +
	"\n" +
	"CreateFarm\x12\x1e.farmdesk.v1.CreateFarmRequest\x1a\x1f.farmdesk.v1.CreateFarmResponse\x12D\n" +
	"\aGetFarm\x12\x1b.farmdesk.v1.GetFarmRequest\x1a\x1c.farmdesk.v1.GetFarmResponse\x12J\n" +
	"\tListFarms\x12\x1d.farmdesk.v1.ListFarmsRequest\x1a\x1e.farmdesk.v1.ListFarmsResponse\x12M\n" +
	"\n" +
	"UpdateFarm\x12\x1e.farmdesk.v1.UpdateFarmRequest\x1a\x1f.farmdesk.v1.UpdateFarmResponse\x12M\n" +
	"\n" +
	"DeleteFarm\x12\x1e.farmdesk.v1.DeleteFarmRequest\x1a\x1f.farmdesk.v1.DeleteFarmResponse\x12M\n" +
	"\n" +
	"ExportFarm\x12\x1e.farmdesk.v1.ExportFarmRequest\x1a\x1f.farmdesk.v1.ExportFarmResponse2\xa6\x02\n" +
	"\x10DocumentsService\x12_\n" +
	"\x10RegisterDocument\x12$.farmdesk.v1.RegisterDocumentRequest\x1a%.farmdesk.v1.RegisterDocumentResponse\x12V\n" +
	"\rListDocuments\x12!.farmdesk.v1.ListDocumentsRequest\x1a\".farmdesk.v1.ListDocumentsResponse\x12Y\n" +
	"\x0eDeleteDocument\x12\".farmdesk.v1.DeleteDocumentRequest\x1a#.farmdesk.v1.DeleteDocumentResponse2\xc6\x06\n" +
	"\x11ExtractionService\x12b\n" +
	"\x11EnqueueExtraction\x12%.farmdesk.v1.EnqueueExtractionRequest\x1a&.farmdesk.v1.EnqueueExtractionResponse\x12S\n" +
	"\fGetJobStatus\x12 .farmdesk.v1.GetJobStatusRequest\x1a!.farmdesk.v1.GetJobStatusResponse\x12_\n" +
	"\x10ListDocumentJobs\x12$.farmdesk.v1.ListDocumentJobsRequest\x1a%.farmdesk.v1.ListDocumentJobsResponse\x12\\\n" +
	"\x0fGetLatestResult\x12#.farmdesk.v1.GetLatestResultRequest\x1a$.farmdesk.v1.GetLatestResultResponse\x12Y\n" +
	"\x0eSaveReviewEdit\x12\".farmdesk.v1.SaveReviewEditRequest\x1a#.farmdesk.v1.SaveReviewEditResponse\x12_\n" +
	"\x10AcceptExtraction\x12$.farmdesk.v1.AcceptExtractionRequest\x1a%.farmdesk.v1.AcceptExtractionResponse\x12_\n" +
	"\x10RejectExtraction\x12$.farmdesk.v1.RejectExtractionRequest\x1a%.farmdesk.v1.RejectExtractionResponse\x12S\n" +
	"\fGetFormState\x12 .farmdesk.v1.GetFormStateRequest\x1a!.farmdesk.v1.GetFormStateResponse\x12G\n" +
	"\bSyncForm\x12\x1c.farmdesk.v1.SyncFormRequest\x1a\x1d.farmdesk.v1.SyncFormResponseB@Z>github.com/agrosuivi/farmdesk/gen/proto/farmdesk/v1;farmdeskv1b\x06proto3"

var (
	file_farmdesk_v1_farmdesk_proto_rawDescOnce sync.Once
	file_farmdesk_v1_farmdesk_proto_rawDescData []byte
)

func file_farmdesk_v1_farmdesk_proto_rawDescGZIP() []byte {
	file_farmdesk_v1_farmdesk_proto_rawDescOnce.Do(func() {
		file_farmdesk_v1_farmdesk_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_farmdesk_v1_farmdesk_proto_rawDesc), len(file_farmdesk_v1_farmdesk_proto_rawDesc)))
	})
	return file_farmdesk_v1_farmdesk_proto_rawDescData
}

var file_farmdesk_v1_farmdesk_proto_msgTypes = make([]protoimpl.MessageInfo, 42)
var file_farmdesk_v1_farmdesk_proto_goTypes = []any{
	(*Farm)(nil),                      // 0: farmdesk.v1.Farm
	(*Document)(nil),                  // 1: farmdesk.v1.Document
	(*ProcessingJob)(nil),             // 2: farmdesk.v1.ProcessingJob
	(*ExtractedField)(nil),            // 3: farmdesk.v1.ExtractedField
	(*ExtractionResult)(nil),          // 4: farmdesk.v1.ExtractionResult
	(*FormState)(nil),                 // 5: farmdesk.v1.FormState
	(*CreateFarmRequest)(nil),         // 6: farmdesk.v1.CreateFarmRequest
	(*CreateFarmResponse)(nil),        // 7: farmdesk.v1.CreateFarmResponse
	(*GetFarmRequest)(nil),            // 8: farmdesk.v1.GetFarmRequest
	(*GetFarmResponse)(nil),           // 9: farmdesk.v1.GetFarmResponse
	(*ListFarmsRequest)(nil),          // 10: farmdesk.v1.ListFarmsRequest
	(*ListFarmsResponse)(nil),         // 11: farmdesk.v1.ListFarmsResponse
	(*UpdateFarmRequest)(nil),         // 12: farmdesk.v1.UpdateFarmRequest
	(*UpdateFarmResponse)(nil),        // 13: farmdesk.v1.UpdateFarmResponse
	(*DeleteFarmRequest)(nil),         // 14: farmdesk.v1.DeleteFarmRequest
	(*DeleteFarmResponse)(nil),        // 15: farmdesk.v1.DeleteFarmResponse
	(*ExportFarmRequest)(nil),         // 16: farmdesk.v1.ExportFarmRequest
	(*ExportFarmResponse)(nil),        // 17: farmdesk.v1.ExportFarmResponse
	(*RegisterDocumentRequest)(nil),   // 18: farmdesk.v1.RegisterDocumentRequest
	(*RegisterDocumentResponse)(nil),  // 19: farmdesk.v1.RegisterDocumentResponse
	(*ListDocumentsRequest)(nil),      // 20: farmdesk.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),     // 21: farmdesk.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),     // 22: farmdesk.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),    // 23: farmdesk.v1.DeleteDocumentResponse
	(*EnqueueExtractionRequest)(nil),  // 24: farmdesk.v1.EnqueueExtractionRequest
	(*EnqueueExtractionResponse)(nil), // 25: farmdesk.v1.EnqueueExtractionResponse
	(*GetJobStatusRequest)(nil),       // 26: farmdesk.v1.GetJobStatusRequest
	(*GetJobStatusResponse)(nil),      // 27: farmdesk.v1.GetJobStatusResponse
	(*ListDocumentJobsRequest)(nil),   // 28: farmdesk.v1.ListDocumentJobsRequest
	(*ListDocumentJobsResponse)(nil),  // 29: farmdesk.v1.ListDocumentJobsResponse
	(*GetLatestResultRequest)(nil),    // 30: farmdesk.v1.GetLatestResultRequest
	(*GetLatestResultResponse)(nil),   // 31: farmdesk.v1.GetLatestResultResponse
	(*SaveReviewEditRequest)(nil),     // 32: farmdesk.v1.SaveReviewEditRequest
	(*SaveReviewEditResponse)(nil),    // 33: farmdesk.v1.SaveReviewEditResponse
	(*AcceptExtractionRequest)(nil),   // 34: farmdesk.v1.AcceptExtractionRequest
	(*AcceptExtractionResponse)(nil),  // 35: farmdesk.v1.AcceptExtractionResponse
	(*RejectExtractionRequest)(nil),   // 36: farmdesk.v1.RejectExtractionRequest
	(*RejectExtractionResponse)(nil),  // 37: farmdesk.v1.RejectExtractionResponse
	(*GetFormStateRequest)(nil),       // 38: farmdesk.v1.GetFormStateRequest
	(*GetFormStateResponse)(nil),      // 39: farmdesk.v1.GetFormStateResponse
	(*SyncFormRequest)(nil),           // 40: farmdesk.v1.SyncFormRequest
	(*SyncFormResponse)(nil),          // 41: farmdesk.v1.SyncFormResponse
}
var file_farmdesk_v1_farmdesk_proto_depIdxs = []int32{
	3,  // 0: farmdesk.v1.ExtractionResult.fields:type_name -> farmdesk.v1.ExtractedField
	0,  // 1: farmdesk.v1.CreateFarmResponse.farm:type_name -> farmdesk.v1.Farm
	0,  // 2: farmdesk.v1.GetFarmResponse.farm:type_name -> farmdesk.v1.Farm
	0,  // 3: farmdesk.v1.ListFarmsResponse.farms:type_name -> farmdesk.v1.Farm
	0,  // 4: farmdesk.v1.UpdateFarmResponse.farm:type_name -> farmdesk.v1.Farm
	1,  // 5: farmdesk.v1.RegisterDocumentResponse.document:type_name -> farmdesk.v1.Document
	1,  // 6: farmdesk.v1.ListDocumentsResponse.documents:type_name -> farmdesk.v1.Document
	2,  // 7: farmdesk.v1.EnqueueExtractionResponse.job:type_name -> farmdesk.v1.ProcessingJob
	2,  // 8: farmdesk.v1.GetJobStatusResponse.job:type_name -> farmdesk.v1.ProcessingJob
	2,  // 9: farmdesk.v1.ListDocumentJobsResponse.jobs:type_name -> farmdesk.v1.ProcessingJob
	4,  // 10: farmdesk.v1.GetLatestResultResponse.result:type_name -> farmdesk.v1.ExtractionResult
	5,  // 11: farmdesk.v1.SaveReviewEditResponse.form:type_name -> farmdesk.v1.FormState
	5,  // 12: farmdesk.v1.AcceptExtractionResponse.form:type_name -> farmdesk.v1.FormState
	5,  // 13: farmdesk.v1.RejectExtractionResponse.form:type_name -> farmdesk.v1.FormState
	5,  // 14: farmdesk.v1.GetFormStateResponse.form:type_name -> farmdesk.v1.FormState
	5,  // 15: farmdesk.v1.SyncFormResponse.form:type_name -> farmdesk.v1.FormState
	6,  // 16: farmdesk.v1.FarmsService.CreateFarm:input_type -> farmdesk.v1.CreateFarmRequest
	8,  // 17: farmdesk.v1.FarmsService.GetFarm:input_type -> farmdesk.v1.GetFarmRequest
	10, // 18: farmdesk.v1.FarmsService.ListFarms:input_type -> farmdesk.v1.ListFarmsRequest
	12, // 19: farmdesk.v1.FarmsService.UpdateFarm:input_type -> farmdesk.v1.UpdateFarmRequest
	14, // 20: farmdesk.v1.FarmsService.DeleteFarm:input_type -> farmdesk.v1.DeleteFarmRequest
	16, // 21: farmdesk.v1.FarmsService.ExportFarm:input_type -> farmdesk.v1.ExportFarmRequest
	18, // 22: farmdesk.v1.DocumentsService.RegisterDocument:input_type -> farmdesk.v1.RegisterDocumentRequest
	20, // 23: farmdesk.v1.DocumentsService.ListDocuments:input_type -> farmdesk.v1.ListDocumentsRequest
	22, // 24: farmdesk.v1.DocumentsService.DeleteDocument:input_type -> farmdesk.v1.DeleteDocumentRequest
	24, // 25: farmdesk.v1.ExtractionService.EnqueueExtraction:input_type -> farmdesk.v1.EnqueueExtractionRequest
	26, // 26: farmdesk.v1.ExtractionService.GetJobStatus:input_type -> farmdesk.v1.GetJobStatusRequest
	28, // 27: farmdesk.v1.ExtractionService.ListDocumentJobs:input_type -> farmdesk.v1.ListDocumentJobsRequest
	30, // 28: farmdesk.v1.ExtractionService.GetLatestResult:input_type -> farmdesk.v1.GetLatestResultRequest
	32, // 29: farmdesk.v1.ExtractionService.SaveReviewEdit:input_type -> farmdesk.v1.SaveReviewEditRequest
	34, // 30: farmdesk.v1.ExtractionService.AcceptExtraction:input_type -> farmdesk.v1.AcceptExtractionRequest
	36, // 31: farmdesk.v1.ExtractionService.RejectExtraction:input_type -> farmdesk.v1.RejectExtractionRequest
	38, // 32: farmdesk.v1.ExtractionService.GetFormState:input_type -> farmdesk.v1.GetFormStateRequest
	40, // 33: farmdesk.v1.ExtractionService.SyncForm:input_type -> farmdesk.v1.SyncFormRequest
	7,  // 34: farmdesk.v1.FarmsService.CreateFarm:output_type -> farmdesk.v1.CreateFarmResponse
	9,  // 35: farmdesk.v1.FarmsService.GetFarm:output_type -> farmdesk.v1.GetFarmResponse
	11, // 36: farmdesk.v1.FarmsService.ListFarms:output_type -> farmdesk.v1.ListFarmsResponse
	13, // 37: farmdesk.v1.FarmsService.UpdateFarm:output_type -> farmdesk.v1.UpdateFarmResponse
	15, // 38: farmdesk.v1.FarmsService.DeleteFarm:output_type -> farmdesk.v1.DeleteFarmResponse
	17, // 39: farmdesk.v1.FarmsService.ExportFarm:output_type -> farmdesk.v1.ExportFarmResponse
	19, // 40: farmdesk.v1.DocumentsService.RegisterDocument:output_type -> farmdesk.v1.RegisterDocumentResponse
	21, // 41: farmdesk.v1.DocumentsService.ListDocuments:output_type -> farmdesk.v1.ListDocumentsResponse
	23, // 42: farmdesk.v1.DocumentsService.DeleteDocument:output_type -> farmdesk.v1.DeleteDocumentResponse
	25, // 43: farmdesk.v1.ExtractionService.EnqueueExtraction:output_type -> farmdesk.v1.EnqueueExtractionResponse
	27, // 44: farmdesk.v1.ExtractionService.GetJobStatus:output_type -> farmdesk.v1.GetJobStatusResponse
	29, // 45: farmdesk.v1.ExtractionService.ListDocumentJobs:output_type -> farmdesk.v1.ListDocumentJobsResponse
	31, // 46: farmdesk.v1.ExtractionService.GetLatestResult:output_type -> farmdesk.v1.GetLatestResultResponse
	33, // 47: farmdesk.v1.ExtractionService.SaveReviewEdit:output_type -> farmdesk.v1.SaveReviewEditResponse
	35, // 48: farmdesk.v1.ExtractionService.AcceptExtraction:output_type -> farmdesk.v1.AcceptExtractionResponse
	37, // 49: farmdesk.v1.ExtractionService.RejectExtraction:output_type -> farmdesk.v1.RejectExtractionResponse
	39, // 50: farmdesk.v1.ExtractionService.GetFormState:output_type -> farmdesk.v1.GetFormStateResponse
	41, // 51: farmdesk.v1.ExtractionService.SyncForm:output_type -> farmdesk.v1.SyncFormResponse
	34, // [34:52] is the sub-list for method output_type
	16, // [16:34] is the sub-list for method input_type
	16, // [16:16] is the sub-list for extension type_name
	16, // [16:16] is the sub-list for extension extendee
	0,  // [0:16] is the sub-list for field type_name
}

func init() { file_farmdesk_v1_farmdesk_proto_init() }
func file_farmdesk_v1_farmdesk_proto_init() {
	if File_farmdesk_v1_farmdesk_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_farmdesk_v1_farmdesk_proto_rawDesc), len(file_farmdesk_v1_farmdesk_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   42,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_farmdesk_v1_farmdesk_proto_goTypes,
		DependencyIndexes: file_farmdesk_v1_farmdesk_proto_depIdxs,
		MessageInfos:      file_farmdesk_v1_farmdesk_proto_msgTypes,
	}.Build()
	File_farmdesk_v1_farmdesk_proto = out.File
	file_farmdesk_v1_farmdesk_proto_goTypes = nil
	file_farmdesk_v1_farmdesk_proto_depIdxs = nil
}
