// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docflow/v1/docflow.proto

package docflowv1

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

type Document struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Category    string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	Status      string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Filename    string                 `protobuf:"bytes,4,opt,name=filename,proto3" json:"filename,omitempty"`
	StoragePath string                 `protobuf:"bytes,5,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	MimeType    string                 `protobuf:"bytes,6,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	SizeBytes   int64                  `protobuf:"varint,7,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	// Raw JSON emitted by the model for the last successful run.
	LlmJson       string `protobuf:"bytes,8,opt,name=llm_json,json=llmJson,proto3" json:"llm_json,omitempty"`
	ErrorMessage  string `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[0]
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
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{0}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *Document) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *Document) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *Document) GetLlmJson() string {
	if x != nil {
		return x.LlmJson
	}
	return ""
}

func (x *Document) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Document) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type InvoiceLine struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      float64                `protobuf:"fixed64,2,opt,name=quantity,proto3" json:"quantity,omitempty"`
	UnitPrice     float64                `protobuf:"fixed64,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"`
	LineTotal     float64                `protobuf:"fixed64,4,opt,name=line_total,json=lineTotal,proto3" json:"line_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *InvoiceLine) Reset() {
	*x = InvoiceLine{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvoiceLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvoiceLine) ProtoMessage() {}

func (x *InvoiceLine) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvoiceLine.ProtoReflect.Descriptor instead.
func (*InvoiceLine) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{1}
}

func (x *InvoiceLine) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *InvoiceLine) GetQuantity() float64 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *InvoiceLine) GetUnitPrice() float64 {
	if x != nil {
		return x.UnitPrice
	}
	return 0
}

func (x *InvoiceLine) GetLineTotal() float64 {
	if x != nil {
		return x.LineTotal
	}
	return 0
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId    string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	VendorName    string                 `protobuf:"bytes,3,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	VendorAddress string                 `protobuf:"bytes,4,opt,name=vendor_address,json=vendorAddress,proto3" json:"vendor_address,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,5,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,6,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"`
	DueDate       string                 `protobuf:"bytes,7,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`
	Subtotal      float64                `protobuf:"fixed64,8,opt,name=subtotal,proto3" json:"subtotal,omitempty"`
	Tax           float64                `protobuf:"fixed64,9,opt,name=tax,proto3" json:"tax,omitempty"`
	Total         float64                `protobuf:"fixed64,10,opt,name=total,proto3" json:"total,omitempty"`
	Currency      string                 `protobuf:"bytes,11,opt,name=currency,proto3" json:"currency,omitempty"`
	Lines         []*InvoiceLine         `protobuf:"bytes,12,rep,name=lines,proto3" json:"lines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{2}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Invoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Invoice) GetVendorAddress() string {
	if x != nil {
		return x.VendorAddress
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetSubtotal() float64 {
	if x != nil {
		return x.Subtotal
	}
	return 0
}

func (x *Invoice) GetTax() float64 {
	if x != nil {
		return x.Tax
	}
	return 0
}

func (x *Invoice) GetTotal() float64 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *Invoice) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Invoice) GetLines() []*InvoiceLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

type Contract struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId     string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	PartyA         string                 `protobuf:"bytes,3,opt,name=party_a,json=partyA,proto3" json:"party_a,omitempty"`
	PartyB         string                 `protobuf:"bytes,4,opt,name=party_b,json=partyB,proto3" json:"party_b,omitempty"`
	EffectiveDate  string                 `protobuf:"bytes,5,opt,name=effective_date,json=effectiveDate,proto3" json:"effective_date,omitempty"`
	ExpirationDate string                 `protobuf:"bytes,6,opt,name=expiration_date,json=expirationDate,proto3" json:"expiration_date,omitempty"`
	Summary        string                 `protobuf:"bytes,7,opt,name=summary,proto3" json:"summary,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Contract) Reset() {
	*x = Contract{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Contract) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Contract) ProtoMessage() {}

func (x *Contract) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Contract.ProtoReflect.Descriptor instead.
func (*Contract) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{3}
}

func (x *Contract) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Contract) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *Contract) GetPartyA() string {
	if x != nil {
		return x.PartyA
	}
	return ""
}

func (x *Contract) GetPartyB() string {
	if x != nil {
		return x.PartyB
	}
	return ""
}

func (x *Contract) GetEffectiveDate() string {
	if x != nil {
		return x.EffectiveDate
	}
	return ""
}

func (x *Contract) GetExpirationDate() string {
	if x != nil {
		return x.ExpirationDate
	}
	return ""
}

func (x *Contract) GetSummary() string {
	if x != nil {
		return x.Summary
	}
	return ""
}

type CreateDocumentRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Filename    string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	StoragePath string                 `protobuf:"bytes,2,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	MimeType    string                 `protobuf:"bytes,3,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	SizeBytes   int64                  `protobuf:"varint,4,opt,name=size_bytes,json=sizeBytes,proto3" json:"size_bytes,omitempty"`
	// Optional operator-assigned category; empty means classify later.
	Category      string `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentRequest) Reset() {
	*x = CreateDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentRequest) ProtoMessage() {}

func (x *CreateDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentRequest.ProtoReflect.Descriptor instead.
func (*CreateDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{4}
}

func (x *CreateDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *CreateDocumentRequest) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *CreateDocumentRequest) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *CreateDocumentRequest) GetSizeBytes() int64 {
	if x != nil {
		return x.SizeBytes
	}
	return 0
}

func (x *CreateDocumentRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type CreateDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateDocumentResponse) Reset() {
	*x = CreateDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateDocumentResponse) ProtoMessage() {}

func (x *CreateDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateDocumentResponse.ProtoReflect.Descriptor instead.
func (*CreateDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{5}
}

func (x *CreateDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

type GetDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentRequest) Reset() {
	*x = GetDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentRequest) ProtoMessage() {}

func (x *GetDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentRequest.ProtoReflect.Descriptor instead.
func (*GetDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{6}
}

func (x *GetDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Document      *Document              `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Invoice       *Invoice               `protobuf:"bytes,2,opt,name=invoice,proto3" json:"invoice,omitempty"`
	Contract      *Contract              `protobuf:"bytes,3,opt,name=contract,proto3" json:"contract,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetDocumentResponse) Reset() {
	*x = GetDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDocumentResponse) ProtoMessage() {}

func (x *GetDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDocumentResponse.ProtoReflect.Descriptor instead.
func (*GetDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{7}
}

func (x *GetDocumentResponse) GetDocument() *Document {
	if x != nil {
		return x.Document
	}
	return nil
}

func (x *GetDocumentResponse) GetInvoice() *Invoice {
	if x != nil {
		return x.Invoice
	}
	return nil
}

func (x *GetDocumentResponse) GetContract() *Contract {
	if x != nil {
		return x.Contract
	}
	return nil
}

type ListDocumentsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Category      string                 `protobuf:"bytes,1,opt,name=category,proto3" json:"category,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Search        string                 `protobuf:"bytes,3,opt,name=search,proto3" json:"search,omitempty"`
	Limit         int32                  `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset        int32                  `protobuf:"varint,5,opt,name=offset,proto3" json:"offset,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsRequest) Reset() {
	*x = ListDocumentsRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsRequest) ProtoMessage() {}

func (x *ListDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[8]
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
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{8}
}

func (x *ListDocumentsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ListDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListDocumentsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *ListDocumentsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

func (x *ListDocumentsRequest) GetOffset() int32 {
	if x != nil {
		return x.Offset
	}
	return 0
}

type ListDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListDocumentsResponse) Reset() {
	*x = ListDocumentsResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListDocumentsResponse) ProtoMessage() {}

func (x *ListDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[9]
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
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{9}
}

func (x *ListDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

type DeleteDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteDocumentRequest) Reset() {
	*x = DeleteDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentRequest) ProtoMessage() {}

func (x *DeleteDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[10]
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
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{10}
}

func (x *DeleteDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
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
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteDocumentResponse) ProtoMessage() {}

func (x *DeleteDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[11]
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
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{11}
}

type ProcessDocumentRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Id    string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	// Force queues the document even if it already reached a terminal
	// status.
	Force         bool `protobuf:"varint,2,opt,name=force,proto3" json:"force,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentRequest) Reset() {
	*x = ProcessDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentRequest) ProtoMessage() {}

func (x *ProcessDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentRequest.ProtoReflect.Descriptor instead.
func (*ProcessDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{12}
}

func (x *ProcessDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ProcessDocumentRequest) GetForce() bool {
	if x != nil {
		return x.Force
	}
	return false
}

type ProcessDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProcessDocumentResponse) Reset() {
	*x = ProcessDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProcessDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProcessDocumentResponse) ProtoMessage() {}

func (x *ProcessDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProcessDocumentResponse.ProtoReflect.Descriptor instead.
func (*ProcessDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{13}
}

func (x *ProcessDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type RetryDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDocumentRequest) Reset() {
	*x = RetryDocumentRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDocumentRequest) ProtoMessage() {}

func (x *RetryDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDocumentRequest.ProtoReflect.Descriptor instead.
func (*RetryDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{14}
}

func (x *RetryDocumentRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type RetryDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Status        string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RetryDocumentResponse) Reset() {
	*x = RetryDocumentResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RetryDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RetryDocumentResponse) ProtoMessage() {}

func (x *RetryDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RetryDocumentResponse.ProtoReflect.Descriptor instead.
func (*RetryDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{15}
}

func (x *RetryDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type ExportInvoicesCsvRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesCsvRequest) Reset() {
	*x = ExportInvoicesCsvRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesCsvRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesCsvRequest) ProtoMessage() {}

func (x *ExportInvoicesCsvRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesCsvRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesCsvRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{16}
}

type ExportInvoicesCsvResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Csv           []byte                 `protobuf:"bytes,1,opt,name=csv,proto3" json:"csv,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesCsvResponse) Reset() {
	*x = ExportInvoicesCsvResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesCsvResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesCsvResponse) ProtoMessage() {}

func (x *ExportInvoicesCsvResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesCsvResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesCsvResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{17}
}

func (x *ExportInvoicesCsvResponse) GetCsv() []byte {
	if x != nil {
		return x.Csv
	}
	return nil
}

type ExportInvoicesXlsxRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesXlsxRequest) Reset() {
	*x = ExportInvoicesXlsxRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesXlsxRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesXlsxRequest) ProtoMessage() {}

func (x *ExportInvoicesXlsxRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesXlsxRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesXlsxRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{18}
}

type ExportInvoicesXlsxResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesXlsxResponse) Reset() {
	*x = ExportInvoicesXlsxResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesXlsxResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesXlsxResponse) ProtoMessage() {}

func (x *ExportInvoicesXlsxResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesXlsxResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesXlsxResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{19}
}

func (x *ExportInvoicesXlsxResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportDocumentJsonRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentJsonRequest) Reset() {
	*x = ExportDocumentJsonRequest{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentJsonRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentJsonRequest) ProtoMessage() {}

func (x *ExportDocumentJsonRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentJsonRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentJsonRequest) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{20}
}

func (x *ExportDocumentJsonRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type ExportDocumentJsonResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Json          []byte                 `protobuf:"bytes,1,opt,name=json,proto3" json:"json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentJsonResponse) Reset() {
	*x = ExportDocumentJsonResponse{}
	mi := &file_docflow_v1_docflow_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentJsonResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentJsonResponse) ProtoMessage() {}

func (x *ExportDocumentJsonResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docflow_v1_docflow_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentJsonResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentJsonResponse) Descriptor() ([]byte, []int) {
	return file_docflow_v1_docflow_proto_rawDescGZIP(), []int{21}
}

func (x *ExportDocumentJsonResponse) GetJson() []byte {
	if x != nil {
		return x.Json
	}
	return nil
}

var File_docflow_v1_docflow_proto protoreflect.FileDescriptor

const file_docflow_v1_docflow_proto_rawDesc = "" +
	"\n" +
	"\x18docflow/v1/docflow.proto\x12\n" +
	"docflow.v1\"\xc7\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x1a\n" +
	"\bfilename\x18\x04 \x01(\tR\bfilename\x12!\n" +
	"\fstorage_path\x18\x05 \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tmime_type\x18\x06 \x01(\tR\bmimeType\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\a \x01(\x03R\tsizeBytes\x12\x19\n" +
	"\bllm_json\x18\b \x01(\tR\allmJson\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\x89\x01\n" +
	"\vInvoiceLine\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\x01R\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\x01R\tunitPrice\x12\x1d\n" +
	"\n" +
	"line_total\x18\x04 \x01(\x01R\tlineTotal\"\xf6\x02\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vvendor_name\x18\x03 \x01(\tR\n" +
	"vendorName\x12%\n" +
	"\x0evendor_address\x18\x04 \x01(\tR\rvendorAddress\x12%\n" +
	"\x0einvoice_number\x18\x05 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x06 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\a \x01(\tR\adueDate\x12\x1a\n" +
	"\bsubtotal\x18\b \x01(\x01R\bsubtotal\x12\x10\n" +
	"\x03tax\x18\t \x01(\x01R\x03tax\x12\x14\n" +
	"\x05total\x18\n" +
	" \x01(\x01R\x05total\x12\x1a\n" +
	"\bcurrency\x18\v \x01(\tR\bcurrency\x12-\n" +
	"\x05lines\x18\f \x03(\v2\x17.docflow.v1.InvoiceLineR\x05lines\"\xd7\x01\n" +
	"\bContract\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x17\n" +
	"\aparty_a\x18\x03 \x01(\tR\x06partyA\x12\x17\n" +
	"\aparty_b\x18\x04 \x01(\tR\x06partyB\x12%\n" +
	"\x0eeffective_date\x18\x05 \x01(\tR\reffectiveDate\x12'\n" +
	"\x0fexpiration_date\x18\x06 \x01(\tR\x0eexpirationDate\x12\x18\n" +
	"\asummary\x18\a \x01(\tR\asummary\"\xae\x01\n" +
	"\x15CreateDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fstorage_path\x18\x02 \x01(\tR\vstoragePath\x12\x1b\n" +
	"\tmime_type\x18\x03 \x01(\tR\bmimeType\x12\x1d\n" +
	"\n" +
	"size_bytes\x18\x04 \x01(\x03R\tsizeBytes\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\"J\n" +
	"\x16CreateDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docflow.v1.DocumentR\bdocument\"$\n" +
	"\x12GetDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\xa8\x01\n" +
	"\x13GetDocumentResponse\x120\n" +
	"\bdocument\x18\x01 \x01(\v2\x14.docflow.v1.DocumentR\bdocument\x12-\n" +
	"\ainvoice\x18\x02 \x01(\v2\x13.docflow.v1.InvoiceR\ainvoice\x120\n" +
	"\bcontract\x18\x03 \x01(\v2\x14.docflow.v1.ContractR\bcontract\"\x90\x01\n" +
	"\x14ListDocumentsRequest\x12\x1a\n" +
	"\bcategory\x18\x01 \x01(\tR\bcategory\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x16\n" +
	"\x06search\x18\x03 \x01(\tR\x06search\x12\x14\n" +
	"\x05limit\x18\x04 \x01(\x05R\x05limit\x12\x16\n" +
	"\x06offset\x18\x05 \x01(\x05R\x06offset\"K\n" +
	"\x15ListDocumentsResponse\x122\n" +
	"\tdocuments\x18\x01 \x03(\v2\x14.docflow.v1.DocumentR\tdocuments\"'\n" +
	"\x15DeleteDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"\x18\n" +
	"\x16DeleteDocumentResponse\">\n" +
	"\x16ProcessDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x14\n" +
	"\x05force\x18\x02 \x01(\bR\x05force\"1\n" +
	"\x17ProcessDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"&\n" +
	"\x14RetryDocumentRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"/\n" +
	"\x15RetryDocumentResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\"\x1a\n" +
	"\x18ExportInvoicesCsvRequest\"-\n" +
	"\x19ExportInvoicesCsvResponse\x12\x10\n" +
	"\x03csv\x18\x01 \x01(\fR\x03csv\"\x1b\n" +
	"\x19ExportInvoicesXlsxRequest\"0\n" +
	"\x1aExportInvoicesXlsxResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"+\n" +
	"\x19ExportDocumentJsonRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"0\n" +
	"\x1aExportDocumentJsonResponse\x12\x12\n" +
	"\x04json\x18\x01 \x01(\fR\x04json2\x9b\x04\n" +
	"\x0fDocumentService\x12W\n" +
	"\x0eCreateDocument\x12!.docflow.v1.CreateDocumentRequest\x1a\".docflow.v1.CreateDocumentResponse\x12N\n" +
	"\vGetDocument\x12\x1e.docflow.v1.GetDocumentRequest\x1a\x1f.docflow.v1.GetDocumentResponse\x12T\n" +
	"\rListDocuments\x12 .docflow.v1.ListDocumentsRequest\x1a!.docflow.v1.ListDocumentsResponse\x12W\n" +
	"\x0eDeleteDocument\x12!.docflow.v1.DeleteDocumentRequest\x1a\".docflow.v1.DeleteDocumentResponse\x12Z\n" +
	"\x0fProcessDocument\x12\".docflow.v1.ProcessDocumentRequest\x1a#.docflow.v1.ProcessDocumentResponse\x12T\n" +
	"\rRetryDocument\x12 .docflow.v1.RetryDocumentRequest\x1a!.docflow.v1.RetryDocumentResponse2\xbb\x02\n" +
	"\rExportService\x12`\n" +
	"\x11ExportInvoicesCsv\x12$.docflow.v1.ExportInvoicesCsvRequest\x1a%.docflow.v1.ExportInvoicesCsvResponse\x12c\n" +
	"\x12ExportInvoicesXlsx\x12%.docflow.v1.ExportInvoicesXlsxRequest\x1a&.docflow.v1.ExportInvoicesXlsxResponse\x12c\n" +
	"\x12ExportDocumentJson\x12%.docflow.v1.ExportDocumentJsonRequest\x1a&.docflow.v1.ExportDocumentJsonResponseBBZ@github.com/joseph-ayodele/docflow/gen/proto/docflow/v1;docflowv1b\x06proto3"

var (
	file_docflow_v1_docflow_proto_rawDescOnce sync.Once
	file_docflow_v1_docflow_proto_rawDescData []byte
)

func file_docflow_v1_docflow_proto_rawDescGZIP() []byte {
	file_docflow_v1_docflow_proto_rawDescOnce.Do(func() {
		file_docflow_v1_docflow_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)))
	})
	return file_docflow_v1_docflow_proto_rawDescData
}

var file_docflow_v1_docflow_proto_msgTypes = make([]protoimpl.MessageInfo, 22)
var file_docflow_v1_docflow_proto_goTypes = []any{
	(*Document)(nil),                   // 0: docflow.v1.Document
	(*InvoiceLine)(nil),                // 1: docflow.v1.InvoiceLine
	(*Invoice)(nil),                    // 2: docflow.v1.Invoice
	(*Contract)(nil),                   // 3: docflow.v1.Contract
	(*CreateDocumentRequest)(nil),      // 4: docflow.v1.CreateDocumentRequest
	(*CreateDocumentResponse)(nil),     // 5: docflow.v1.CreateDocumentResponse
	(*GetDocumentRequest)(nil),         // 6: docflow.v1.GetDocumentRequest
	(*GetDocumentResponse)(nil),        // 7: docflow.v1.GetDocumentResponse
	(*ListDocumentsRequest)(nil),       // 8: docflow.v1.ListDocumentsRequest
	(*ListDocumentsResponse)(nil),      // 9: docflow.v1.ListDocumentsResponse
	(*DeleteDocumentRequest)(nil),      // 10: docflow.v1.DeleteDocumentRequest
	(*DeleteDocumentResponse)(nil),     // 11: docflow.v1.DeleteDocumentResponse
	(*ProcessDocumentRequest)(nil),     // 12: docflow.v1.ProcessDocumentRequest
	(*ProcessDocumentResponse)(nil),    // 13: docflow.v1.ProcessDocumentResponse
	(*RetryDocumentRequest)(nil),       // 14: docflow.v1.RetryDocumentRequest
	(*RetryDocumentResponse)(nil),      // 15: docflow.v1.RetryDocumentResponse
	(*ExportInvoicesCsvRequest)(nil),   // 16: docflow.v1.ExportInvoicesCsvRequest
	(*ExportInvoicesCsvResponse)(nil),  // 17: docflow.v1.ExportInvoicesCsvResponse
	(*ExportInvoicesXlsxRequest)(nil),  // 18: docflow.v1.ExportInvoicesXlsxRequest
	(*ExportInvoicesXlsxResponse)(nil), // 19: docflow.v1.ExportInvoicesXlsxResponse
	(*ExportDocumentJsonRequest)(nil),  // 20: docflow.v1.ExportDocumentJsonRequest
	(*ExportDocumentJsonResponse)(nil), // 21: docflow.v1.ExportDocumentJsonResponse
}
var file_docflow_v1_docflow_proto_depIdxs = []int32{
	1,  // 0: docflow.v1.Invoice.lines:type_name -> docflow.v1.InvoiceLine
	0,  // 1: docflow.v1.CreateDocumentResponse.document:type_name -> docflow.v1.Document
	0,  // 2: docflow.v1.GetDocumentResponse.document:type_name -> docflow.v1.Document
	2,  // 3: docflow.v1.GetDocumentResponse.invoice:type_name -> docflow.v1.Invoice
	3,  // 4: docflow.v1.GetDocumentResponse.contract:type_name -> docflow.v1.Contract
	0,  // 5: docflow.v1.ListDocumentsResponse.documents:type_name -> docflow.v1.Document
	4,  // 6: docflow.v1.DocumentService.CreateDocument:input_type -> docflow.v1.CreateDocumentRequest
	6,  // 7: docflow.v1.DocumentService.GetDocument:input_type -> docflow.v1.GetDocumentRequest
	8,  // 8: docflow.v1.DocumentService.ListDocuments:input_type -> docflow.v1.ListDocumentsRequest
	10, // 9: docflow.v1.DocumentService.DeleteDocument:input_type -> docflow.v1.DeleteDocumentRequest
	12, // 10: docflow.v1.DocumentService.ProcessDocument:input_type -> docflow.v1.ProcessDocumentRequest
	14, // 11: docflow.v1.DocumentService.RetryDocument:input_type -> docflow.v1.RetryDocumentRequest
	16, // 12: docflow.v1.ExportService.ExportInvoicesCsv:input_type -> docflow.v1.ExportInvoicesCsvRequest
	18, // 13: docflow.v1.ExportService.ExportInvoicesXlsx:input_type -> docflow.v1.ExportInvoicesXlsxRequest
	20, // 14: docflow.v1.ExportService.ExportDocumentJson:input_type -> docflow.v1.ExportDocumentJsonRequest
	5,  // 15: docflow.v1.DocumentService.CreateDocument:output_type -> docflow.v1.CreateDocumentResponse
	7,  // 16: docflow.v1.DocumentService.GetDocument:output_type -> docflow.v1.GetDocumentResponse
	9,  // 17: docflow.v1.DocumentService.ListDocuments:output_type -> docflow.v1.ListDocumentsResponse
	11, // 18: docflow.v1.DocumentService.DeleteDocument:output_type -> docflow.v1.DeleteDocumentResponse
	13, // 19: docflow.v1.DocumentService.ProcessDocument:output_type -> docflow.v1.ProcessDocumentResponse
	15, // 20: docflow.v1.DocumentService.RetryDocument:output_type -> docflow.v1.RetryDocumentResponse
	17, // 21: docflow.v1.ExportService.ExportInvoicesCsv:output_type -> docflow.v1.ExportInvoicesCsvResponse
	19, // 22: docflow.v1.ExportService.ExportInvoicesXlsx:output_type -> docflow.v1.ExportInvoicesXlsxResponse
	21, // 23: docflow.v1.ExportService.ExportDocumentJson:output_type -> docflow.v1.ExportDocumentJsonResponse
	15, // [15:24] is the sub-list for method output_type
	6,  // [6:15] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_docflow_v1_docflow_proto_init() }
func file_docflow_v1_docflow_proto_init() {
	if File_docflow_v1_docflow_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docflow_v1_docflow_proto_rawDesc), len(file_docflow_v1_docflow_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   22,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_docflow_v1_docflow_proto_goTypes,
		DependencyIndexes: file_docflow_v1_docflow_proto_depIdxs,
		MessageInfos:      file_docflow_v1_docflow_proto_msgTypes,
	}.Build()
	File_docflow_v1_docflow_proto = out.File
	file_docflow_v1_docflow_proto_goTypes = nil
	file_docflow_v1_docflow_proto_depIdxs = nil
}
