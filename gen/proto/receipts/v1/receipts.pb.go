// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: receipts/v1/receipts.proto

package receiptsv1

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

type Household struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Currency      string                 `protobuf:"bytes,3,opt,name=currency,proto3" json:"currency,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,5,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Household) Reset() {
	*x = Household{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Household) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Household) ProtoMessage() {}

func (x *Household) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Household.ProtoReflect.Descriptor instead.
func (*Household) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{0}
}

func (x *Household) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Household) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Household) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Household) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Household) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateHouseholdRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"` // ISO 4217, defaults to USD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateHouseholdRequest) Reset() {
	*x = CreateHouseholdRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateHouseholdRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateHouseholdRequest) ProtoMessage() {}

func (x *CreateHouseholdRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateHouseholdRequest.ProtoReflect.Descriptor instead.
func (*CreateHouseholdRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{1}
}

func (x *CreateHouseholdRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateHouseholdRequest) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

type CreateHouseholdResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Household     *Household             `protobuf:"bytes,1,opt,name=household,proto3" json:"household,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateHouseholdResponse) Reset() {
	*x = CreateHouseholdResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateHouseholdResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateHouseholdResponse) ProtoMessage() {}

func (x *CreateHouseholdResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateHouseholdResponse.ProtoReflect.Descriptor instead.
func (*CreateHouseholdResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{2}
}

func (x *CreateHouseholdResponse) GetHousehold() *Household {
	if x != nil {
		return x.Household
	}
	return nil
}

type ListHouseholdsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHouseholdsRequest) Reset() {
	*x = ListHouseholdsRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHouseholdsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHouseholdsRequest) ProtoMessage() {}

func (x *ListHouseholdsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHouseholdsRequest.ProtoReflect.Descriptor instead.
func (*ListHouseholdsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{3}
}

type ListHouseholdsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Households    []*Household           `protobuf:"bytes,1,rep,name=households,proto3" json:"households,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListHouseholdsResponse) Reset() {
	*x = ListHouseholdsResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListHouseholdsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListHouseholdsResponse) ProtoMessage() {}

func (x *ListHouseholdsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListHouseholdsResponse.ProtoReflect.Descriptor instead.
func (*ListHouseholdsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{4}
}

func (x *ListHouseholdsResponse) GetHouseholds() []*Household {
	if x != nil {
		return x.Households
	}
	return nil
}

type ReceiptItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Quantity      int32                  `protobuf:"varint,3,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     string                 `protobuf:"bytes,4,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`    // decimal string, empty when unknown
	TotalPrice    string                 `protobuf:"bytes,5,opt,name=total_price,json=totalPrice,proto3" json:"total_price,omitempty"` // decimal string
	LineNumber    int32                  `protobuf:"varint,6,opt,name=line_number,json=lineNumber,proto3" json:"line_number,omitempty"`
	Confidence    float64                `protobuf:"fixed64,7,opt,name=confidence,proto3" json:"confidence,omitempty"` // 0..1
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReceiptItem) Reset() {
	*x = ReceiptItem{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptItem) ProtoMessage() {}

func (x *ReceiptItem) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptItem.ProtoReflect.Descriptor instead.
func (*ReceiptItem) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{5}
}

func (x *ReceiptItem) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReceiptItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ReceiptItem) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *ReceiptItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *ReceiptItem) GetTotalPrice() string {
	if x != nil {
		return x.TotalPrice
	}
	return ""
}

func (x *ReceiptItem) GetLineNumber() int32 {
	if x != nil {
		return x.LineNumber
	}
	return 0
}

func (x *ReceiptItem) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type Receipt struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId     string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	MerchantName    string                 `protobuf:"bytes,3,opt,name=merchant_name,json=merchantName,proto3" json:"merchant_name,omitempty"`
	ReceiptDate     string                 `protobuf:"bytes,4,opt,name=receipt_date,json=receiptDate,proto3" json:"receipt_date,omitempty"`             // YYYY-MM-DD, empty when not found
	TotalAmount     string                 `protobuf:"bytes,5,opt,name=total_amount,json=totalAmount,proto3" json:"total_amount,omitempty"`             // decimal string, empty when not found
	CalculatedTotal string                 `protobuf:"bytes,6,opt,name=calculated_total,json=calculatedTotal,proto3" json:"calculated_total,omitempty"` // decimal string
	TotalMatches    bool                   `protobuf:"varint,7,opt,name=total_matches,json=totalMatches,proto3" json:"total_matches,omitempty"`
	Verification    string                 `protobuf:"bytes,8,opt,name=verification,proto3" json:"verification,omitempty"`
	Items           []*ReceiptItem         `protobuf:"bytes,9,rep,name=items,proto3" json:"items,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{6}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *Receipt) GetMerchantName() string {
	if x != nil {
		return x.MerchantName
	}
	return ""
}

func (x *Receipt) GetReceiptDate() string {
	if x != nil {
		return x.ReceiptDate
	}
	return ""
}

func (x *Receipt) GetTotalAmount() string {
	if x != nil {
		return x.TotalAmount
	}
	return ""
}

func (x *Receipt) GetCalculatedTotal() string {
	if x != nil {
		return x.CalculatedTotal
	}
	return ""
}

func (x *Receipt) GetTotalMatches() bool {
	if x != nil {
		return x.TotalMatches
	}
	return false
}

func (x *Receipt) GetVerification() string {
	if x != nil {
		return x.Verification
	}
	return ""
}

func (x *Receipt) GetItems() []*ReceiptItem {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Receipt) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ParseJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HouseholdId   string                 `protobuf:"bytes,2,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	ReceiptId     string                 `protobuf:"bytes,3,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"` // empty until parse succeeds
	Status        string                 `protobuf:"bytes,4,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,5,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ItemCount     int32                  `protobuf:"varint,6,opt,name=item_count,json=itemCount,proto3" json:"item_count,omitempty"`
	Confidence    float64                `protobuf:"fixed64,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	NeedsReview   bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	StartedAt     string                 `protobuf:"bytes,9,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,10,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseJob) Reset() {
	*x = ParseJob{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseJob) ProtoMessage() {}

func (x *ParseJob) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseJob.ProtoReflect.Descriptor instead.
func (*ParseJob) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{7}
}

func (x *ParseJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ParseJob) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ParseJob) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

func (x *ParseJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ParseJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ParseJob) GetItemCount() int32 {
	if x != nil {
		return x.ItemCount
	}
	return 0
}

func (x *ParseJob) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *ParseJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ParseJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ParseJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type SubmitParseJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	OcrJson       []byte                 `protobuf:"bytes,2,opt,name=ocr_json,json=ocrJson,proto3" json:"ocr_json,omitempty"` // OCR engine output, validated against the payload schema
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitParseJobRequest) Reset() {
	*x = SubmitParseJobRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitParseJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitParseJobRequest) ProtoMessage() {}

func (x *SubmitParseJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitParseJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitParseJobRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{8}
}

func (x *SubmitParseJobRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *SubmitParseJobRequest) GetOcrJson() []byte {
	if x != nil {
		return x.OcrJson
	}
	return nil
}

type SubmitParseJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ParseJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitParseJobResponse) Reset() {
	*x = SubmitParseJobResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitParseJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitParseJobResponse) ProtoMessage() {}

func (x *SubmitParseJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitParseJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitParseJobResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{9}
}

func (x *SubmitParseJobResponse) GetJob() *ParseJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetParseJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobRequest) Reset() {
	*x = GetParseJobRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobRequest) ProtoMessage() {}

func (x *GetParseJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobRequest.ProtoReflect.Descriptor instead.
func (*GetParseJobRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{10}
}

func (x *GetParseJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetParseJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ParseJob              `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetParseJobResponse) Reset() {
	*x = GetParseJobResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetParseJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetParseJobResponse) ProtoMessage() {}

func (x *GetParseJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetParseJobResponse.ProtoReflect.Descriptor instead.
func (*GetParseJobResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{11}
}

func (x *GetParseJobResponse) GetJob() *ParseJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ParseReceiptRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Either raw receipt text or a full OCR JSON payload.
	Text          string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	OcrJson       []byte `protobuf:"bytes,2,opt,name=ocr_json,json=ocrJson,proto3" json:"ocr_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptRequest) Reset() {
	*x = ParseReceiptRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptRequest) ProtoMessage() {}

func (x *ParseReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptRequest.ProtoReflect.Descriptor instead.
func (*ParseReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{12}
}

func (x *ParseReceiptRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ParseReceiptRequest) GetOcrJson() []byte {
	if x != nil {
		return x.OcrJson
	}
	return nil
}

type DigitFix struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ItemName       string                 `protobuf:"bytes,1,opt,name=item_name,json=itemName,proto3" json:"item_name,omitempty"`
	OriginalPrice  string                 `protobuf:"bytes,2,opt,name=original_price,json=originalPrice,proto3" json:"original_price,omitempty"`    // decimal string
	SuggestedPrice string                 `protobuf:"bytes,3,opt,name=suggested_price,json=suggestedPrice,proto3" json:"suggested_price,omitempty"` // decimal string
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DigitFix) Reset() {
	*x = DigitFix{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DigitFix) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DigitFix) ProtoMessage() {}

func (x *DigitFix) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DigitFix.ProtoReflect.Descriptor instead.
func (*DigitFix) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{13}
}

func (x *DigitFix) GetItemName() string {
	if x != nil {
		return x.ItemName
	}
	return ""
}

func (x *DigitFix) GetOriginalPrice() string {
	if x != nil {
		return x.OriginalPrice
	}
	return ""
}

func (x *DigitFix) GetSuggestedPrice() string {
	if x != nil {
		return x.SuggestedPrice
	}
	return ""
}

type ParseReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	DigitFixes    []*DigitFix            `protobuf:"bytes,2,rep,name=digit_fixes,json=digitFixes,proto3" json:"digit_fixes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseReceiptResponse) Reset() {
	*x = ParseReceiptResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseReceiptResponse) ProtoMessage() {}

func (x *ParseReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseReceiptResponse.ProtoReflect.Descriptor instead.
func (*ParseReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{14}
}

func (x *ParseReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

func (x *ParseReceiptResponse) GetDigitFixes() []*DigitFix {
	if x != nil {
		return x.DigitFixes
	}
	return nil
}

type GetReceiptRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ReceiptId     string                 `protobuf:"bytes,1,opt,name=receipt_id,json=receiptId,proto3" json:"receipt_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptRequest) Reset() {
	*x = GetReceiptRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptRequest) ProtoMessage() {}

func (x *GetReceiptRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptRequest.ProtoReflect.Descriptor instead.
func (*GetReceiptRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{15}
}

func (x *GetReceiptRequest) GetReceiptId() string {
	if x != nil {
		return x.ReceiptId
	}
	return ""
}

type GetReceiptResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetReceiptResponse) Reset() {
	*x = GetReceiptResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetReceiptResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReceiptResponse) ProtoMessage() {}

func (x *GetReceiptResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReceiptResponse.ProtoReflect.Descriptor instead.
func (*GetReceiptResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{16}
}

func (x *GetReceiptResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ListReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsRequest) Reset() {
	*x = ListReceiptsRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsRequest) ProtoMessage() {}

func (x *ListReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ListReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{17}
}

func (x *ListReceiptsRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ListReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipts      []*Receipt             `protobuf:"bytes,1,rep,name=receipts,proto3" json:"receipts,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReceiptsResponse) Reset() {
	*x = ListReceiptsResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReceiptsResponse) ProtoMessage() {}

func (x *ListReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ListReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{18}
}

func (x *ListReceiptsResponse) GetReceipts() []*Receipt {
	if x != nil {
		return x.Receipts
	}
	return nil
}

type ExportReceiptsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HouseholdId   string                 `protobuf:"bytes,1,opt,name=household_id,json=householdId,proto3" json:"household_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{19}
}

func (x *ExportReceiptsRequest) GetHouseholdId() string {
	if x != nil {
		return x.HouseholdId
	}
	return ""
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_receipts_v1_receipts_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_receipts_v1_receipts_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_receipts_v1_receipts_proto_rawDescGZIP(), []int{20}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_receipts_v1_receipts_proto protoreflect.FileDescriptor

const file_receipts_v1_receipts_proto_rawDesc = "" +
	"\n" +
	"\x1areceipts/v1/receipts.proto\x12\vreceipts.v1\"\x89\x01\n" +
	"\tHousehold\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bcurrency\x18\x03 \x01(\tR\bcurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x05 \x01(\tR\tupdatedAt\"H\n" +
	"\x16CreateHouseholdRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\"O\n" +
	"\x17CreateHouseholdResponse\x124\n" +
	"\thousehold\x18\x01 \x01(\v2\x16.receipts.v1.HouseholdR\thousehold\"\x17\n" +
	"\x15ListHouseholdsRequest\"P\n" +
	"\x16ListHouseholdsResponse\x126\n" +
	"\n" +
	"households\x18\x01 \x03(\v2\x16.receipts.v1.HouseholdR\n" +
	"households\"\xce\x01\n" +
	"\vReceiptItem\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bquantity\x18\x03 \x01(\x05R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x04 \x01(\tR\tunitPrice\x12\x1f\n" +
	"\vtotal_price\x18\x05 \x01(\tR\n" +
	"totalPrice\x12\x1f\n" +
	"\vline_number\x18\x06 \x01(\x05R\n" +
	"lineNumber\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x01R\n" +
	"confidence\"\x89\x03\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12#\n" +
	"\rmerchant_name\x18\x03 \x01(\tR\fmerchantName\x12!\n" +
	"\freceipt_date\x18\x04 \x01(\tR\vreceiptDate\x12!\n" +
	"\ftotal_amount\x18\x05 \x01(\tR\vtotalAmount\x12)\n" +
	"\x10calculated_total\x18\x06 \x01(\tR\x0fcalculatedTotal\x12#\n" +
	"\rtotal_matches\x18\a \x01(\bR\ftotalMatches\x12\"\n" +
	"\fverification\x18\b \x01(\tR\fverification\x12.\n" +
	"\x05items\x18\t \x03(\v2\x18.receipts.v1.ReceiptItemR\x05items\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xbb\x02\n" +
	"\bParseJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fhousehold_id\x18\x02 \x01(\tR\vhouseholdId\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x03 \x01(\tR\treceiptId\x12\x16\n" +
	"\x06status\x18\x04 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x05 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"item_count\x18\x06 \x01(\x05R\titemCount\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x01R\n" +
	"confidence\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"started_at\x18\t \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\n" +
	" \x01(\tR\n" +
	"finishedAt\"U\n" +
	"\x15SubmitParseJobRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x19\n" +
	"\bocr_json\x18\x02 \x01(\fR\aocrJson\"A\n" +
	"\x16SubmitParseJobResponse\x12'\n" +
	"\x03job\x18\x01 \x01(\v2\x15.receipts.v1.ParseJobR\x03job\"+\n" +
	"\x12GetParseJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\">\n" +
	"\x13GetParseJobResponse\x12'\n" +
	"\x03job\x18\x01 \x01(\v2\x15.receipts.v1.ParseJobR\x03job\"D\n" +
	"\x13ParseReceiptRequest\x12\x12\n" +
	"\x04text\x18\x01 \x01(\tR\x04text\x12\x19\n" +
	"\bocr_json\x18\x02 \x01(\fR\aocrJson\"w\n" +
	"\bDigitFix\x12\x1b\n" +
	"\titem_name\x18\x01 \x01(\tR\bitemName\x12%\n" +
	"\x0eoriginal_price\x18\x02 \x01(\tR\roriginalPrice\x12'\n" +
	"\x0fsuggested_price\x18\x03 \x01(\tR\x0esuggestedPrice\"~\n" +
	"\x14ParseReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.receipts.v1.ReceiptR\areceipt\x126\n" +
	"\vdigit_fixes\x18\x02 \x03(\v2\x15.receipts.v1.DigitFixR\n" +
	"digitFixes\"2\n" +
	"\x11GetReceiptRequest\x12\x1d\n" +
	"\n" +
	"receipt_id\x18\x01 \x01(\tR\treceiptId\"D\n" +
	"\x12GetReceiptResponse\x12.\n" +
	"\areceipt\x18\x01 \x01(\v2\x14.receipts.v1.ReceiptR\areceipt\"n\n" +
	"\x13ListReceiptsRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"H\n" +
	"\x14ListReceiptsResponse\x120\n" +
	"\breceipts\x18\x01 \x03(\v2\x14.receipts.v1.ReceiptR\breceipts\"p\n" +
	"\x15ExportReceiptsRequest\x12!\n" +
	"\fhousehold_id\x18\x01 \x01(\tR\vhouseholdId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xcc\x01\n" +
	"\x11HouseholdsService\x12\\\n" +
	"\x0fCreateHousehold\x12#.receipts.v1.CreateHouseholdRequest\x1a$.receipts.v1.CreateHouseholdResponse\x12Y\n" +
	"\x0eListHouseholds\x12\".receipts.v1.ListHouseholdsRequest\x1a#.receipts.v1.ListHouseholdsResponse2\x90\x02\n" +
	"\fParseService\x12Y\n" +
	"\x0eSubmitParseJob\x12\".receipts.v1.SubmitParseJobRequest\x1a#.receipts.v1.SubmitParseJobResponse\x12P\n" +
	"\vGetParseJob\x12\x1f.receipts.v1.GetParseJobRequest\x1a .receipts.v1.GetParseJobResponse\x12S\n" +
	"\fParseReceipt\x12 .receipts.v1.ParseReceiptRequest\x1a!.receipts.v1.ParseReceiptResponse2\xb5\x01\n" +
	"\x0fReceiptsService\x12M\n" +
	"\n" +
	"GetReceipt\x12\x1e.receipts.v1.GetReceiptRequest\x1a\x1f.receipts.v1.GetReceiptResponse\x12S\n" +
	"\fListReceipts\x12 .receipts.v1.ListReceiptsRequest\x1a!.receipts.v1.ListReceiptsResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportReceipts\x12\".receipts.v1.ExportReceiptsRequest\x1a#.receipts.v1.ExportReceiptsResponseBHZFgithub.com/splithouse/receipts-engine/gen/proto/receipts/v1;receiptsv1b\x06proto3"

var (
	file_receipts_v1_receipts_proto_rawDescOnce sync.Once
	file_receipts_v1_receipts_proto_rawDescData []byte
)

func file_receipts_v1_receipts_proto_rawDescGZIP() []byte {
	file_receipts_v1_receipts_proto_rawDescOnce.Do(func() {
		file_receipts_v1_receipts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_receipts_v1_receipts_proto_rawDesc), len(file_receipts_v1_receipts_proto_rawDesc)))
	})
	return file_receipts_v1_receipts_proto_rawDescData
}

var file_receipts_v1_receipts_proto_msgTypes = make([]protoimpl.MessageInfo, 21)
var file_receipts_v1_receipts_proto_goTypes = []any{
	(*Household)(nil),               // 0: receipts.v1.Household
	(*CreateHouseholdRequest)(nil),  // 1: receipts.v1.CreateHouseholdRequest
	(*CreateHouseholdResponse)(nil), // 2: receipts.v1.CreateHouseholdResponse
	(*ListHouseholdsRequest)(nil),   // 3: receipts.v1.ListHouseholdsRequest
	(*ListHouseholdsResponse)(nil),  // 4: receipts.v1.ListHouseholdsResponse
	(*ReceiptItem)(nil),             // 5: receipts.v1.ReceiptItem
	(*Receipt)(nil),                 // 6: receipts.v1.Receipt
	(*ParseJob)(nil),                // 7: receipts.v1.ParseJob
	(*SubmitParseJobRequest)(nil),   // 8: receipts.v1.SubmitParseJobRequest
	(*SubmitParseJobResponse)(nil),  // 9: receipts.v1.SubmitParseJobResponse
	(*GetParseJobRequest)(nil),      // 10: receipts.v1.GetParseJobRequest
	(*GetParseJobResponse)(nil),     // 11: receipts.v1.GetParseJobResponse
	(*ParseReceiptRequest)(nil),     // 12: receipts.v1.ParseReceiptRequest
	(*DigitFix)(nil),                // 13: receipts.v1.DigitFix
	(*ParseReceiptResponse)(nil),    // 14: receipts.v1.ParseReceiptResponse
	(*GetReceiptRequest)(nil),       // 15: receipts.v1.GetReceiptRequest
	(*GetReceiptResponse)(nil),      // 16: receipts.v1.GetReceiptResponse
	(*ListReceiptsRequest)(nil),     // 17: receipts.v1.ListReceiptsRequest
	(*ListReceiptsResponse)(nil),    // 18: receipts.v1.ListReceiptsResponse
	(*ExportReceiptsRequest)(nil),   // 19: receipts.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil),  // 20: receipts.v1.ExportReceiptsResponse
}
var file_receipts_v1_receipts_proto_depIdxs = []int32{
	0,  // 0: receipts.v1.CreateHouseholdResponse.household:type_name -> receipts.v1.Household
	0,  // 1: receipts.v1.ListHouseholdsResponse.households:type_name -> receipts.v1.Household
	5,  // 2: receipts.v1.Receipt.items:type_name -> receipts.v1.ReceiptItem
	7,  // 3: receipts.v1.SubmitParseJobResponse.job:type_name -> receipts.v1.ParseJob
	7,  // 4: receipts.v1.GetParseJobResponse.job:type_name -> receipts.v1.ParseJob
	6,  // 5: receipts.v1.ParseReceiptResponse.receipt:type_name -> receipts.v1.Receipt
	13, // 6: receipts.v1.ParseReceiptResponse.digit_fixes:type_name -> receipts.v1.DigitFix
	6,  // 7: receipts.v1.GetReceiptResponse.receipt:type_name -> receipts.v1.Receipt
	6,  // 8: receipts.v1.ListReceiptsResponse.receipts:type_name -> receipts.v1.Receipt
	1,  // 9: receipts.v1.HouseholdsService.CreateHousehold:input_type -> receipts.v1.CreateHouseholdRequest
	3,  // 10: receipts.v1.HouseholdsService.ListHouseholds:input_type -> receipts.v1.ListHouseholdsRequest
	8,  // 11: receipts.v1.ParseService.SubmitParseJob:input_type -> receipts.v1.SubmitParseJobRequest
	10, // 12: receipts.v1.ParseService.GetParseJob:input_type -> receipts.v1.GetParseJobRequest
	12, // 13: receipts.v1.ParseService.ParseReceipt:input_type -> receipts.v1.ParseReceiptRequest
	15, // 14: receipts.v1.ReceiptsService.GetReceipt:input_type -> receipts.v1.GetReceiptRequest
	17, // 15: receipts.v1.ReceiptsService.ListReceipts:input_type -> receipts.v1.ListReceiptsRequest
	19, // 16: receipts.v1.ExportService.ExportReceipts:input_type -> receipts.v1.ExportReceiptsRequest
	2,  // 17: receipts.v1.HouseholdsService.CreateHousehold:output_type -> receipts.v1.CreateHouseholdResponse
	4,  // 18: receipts.v1.HouseholdsService.ListHouseholds:output_type -> receipts.v1.ListHouseholdsResponse
	9,  // 19: receipts.v1.ParseService.SubmitParseJob:output_type -> receipts.v1.SubmitParseJobResponse
	11, // 20: receipts.v1.ParseService.GetParseJob:output_type -> receipts.v1.GetParseJobResponse
	14, // 21: receipts.v1.ParseService.ParseReceipt:output_type -> receipts.v1.ParseReceiptResponse
	16, // 22: receipts.v1.ReceiptsService.GetReceipt:output_type -> receipts.v1.GetReceiptResponse
	18, // 23: receipts.v1.ReceiptsService.ListReceipts:output_type -> receipts.v1.ListReceiptsResponse
	20, // 24: receipts.v1.ExportService.ExportReceipts:output_type -> receipts.v1.ExportReceiptsResponse
	17, // [17:25] is the sub-list for method output_type
	9,  // [9:17] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_receipts_v1_receipts_proto_init() }
func file_receipts_v1_receipts_proto_init() {
	if File_receipts_v1_receipts_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_receipts_v1_receipts_proto_rawDesc), len(file_receipts_v1_receipts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   21,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_receipts_v1_receipts_proto_goTypes,
		DependencyIndexes: file_receipts_v1_receipts_proto_depIdxs,
		MessageInfos:      file_receipts_v1_receipts_proto_msgTypes,
	}.Build()
	File_receipts_v1_receipts_proto = out.File
	file_receipts_v1_receipts_proto_goTypes = nil
	file_receipts_v1_receipts_proto_depIdxs = nil
}
