// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: farmdesk/v1/farmdesk.proto

package farmdeskv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	FarmsService_CreateFarm_FullMethodName = "/farmdesk.v1.FarmsService/CreateFarm"
	FarmsService_GetFarm_FullMethodName    = "/farmdesk.v1.FarmsService/GetFarm"
	FarmsService_ListFarms_FullMethodName  = "/farmdesk.v1.FarmsService/ListFarms"
	FarmsService_UpdateFarm_FullMethodName = "/farmdesk.v1.FarmsService/UpdateFarm"
	FarmsService_DeleteFarm_FullMethodName = "/farmdesk.v1.FarmsService/DeleteFarm"
	FarmsService_ExportFarm_FullMethodName = "/farmdesk.v1.FarmsService/ExportFarm"
)

// FarmsServiceClient is the client API for FarmsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// FarmsService manages client farm profiles.
type FarmsServiceClient interface {
	CreateFarm(ctx context.Context, in *CreateFarmRequest, opts ...grpc.CallOption) (*CreateFarmResponse, error)
	GetFarm(ctx context.Context, in *GetFarmRequest, opts ...grpc.CallOption) (*GetFarmResponse, error)
	ListFarms(ctx context.Context, in *ListFarmsRequest, opts ...grpc.CallOption) (*ListFarmsResponse, error)
	UpdateFarm(ctx context.Context, in *UpdateFarmRequest, opts ...grpc.CallOption) (*UpdateFarmResponse, error)
	DeleteFarm(ctx context.Context, in *DeleteFarmRequest, opts ...grpc.CallOption) (*DeleteFarmResponse, error)
	ExportFarm(ctx context.Context, in *ExportFarmRequest, opts ...grpc.CallOption) (*ExportFarmResponse, error)
}

type farmsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFarmsServiceClient(cc grpc.ClientConnInterface) FarmsServiceClient {
	return &farmsServiceClient{cc}
}

func (c *farmsServiceClient) CreateFarm(ctx context.Context, in *CreateFarmRequest, opts ...grpc.CallOption) (*CreateFarmResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateFarmResponse)
	err := c.cc.Invoke(ctx, FarmsService_CreateFarm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmsServiceClient) GetFarm(ctx context.Context, in *GetFarmRequest, opts ...grpc.CallOption) (*GetFarmResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFarmResponse)
	err := c.cc.Invoke(ctx, FarmsService_GetFarm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmsServiceClient) ListFarms(ctx context.Context, in *ListFarmsRequest, opts ...grpc.CallOption) (*ListFarmsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFarmsResponse)
	err := c.cc.Invoke(ctx, FarmsService_ListFarms_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmsServiceClient) UpdateFarm(ctx context.Context, in *UpdateFarmRequest, opts ...grpc.CallOption) (*UpdateFarmResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateFarmResponse)
	err := c.cc.Invoke(ctx, FarmsService_UpdateFarm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmsServiceClient) DeleteFarm(ctx context.Context, in *DeleteFarmRequest, opts ...grpc.CallOption) (*DeleteFarmResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteFarmResponse)
	err := c.cc.Invoke(ctx, FarmsService_DeleteFarm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *farmsServiceClient) ExportFarm(ctx context.Context, in *ExportFarmRequest, opts ...grpc.CallOption) (*ExportFarmResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportFarmResponse)
	err := c.cc.Invoke(ctx, FarmsService_ExportFarm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FarmsServiceServer is the server API for FarmsService service.
// All implementations must embed UnimplementedFarmsServiceServer
// for forward compatibility.
//
// FarmsService manages client farm profiles.
type FarmsServiceServer interface {
	CreateFarm(context.Context, *CreateFarmRequest) (*CreateFarmResponse, error)
	GetFarm(context.Context, *GetFarmRequest) (*GetFarmResponse, error)
	ListFarms(context.Context, *ListFarmsRequest) (*ListFarmsResponse, error)
	UpdateFarm(context.Context, *UpdateFarmRequest) (*UpdateFarmResponse, error)
	DeleteFarm(context.Context, *DeleteFarmRequest) (*DeleteFarmResponse, error)
	ExportFarm(context.Context, *ExportFarmRequest) (*ExportFarmResponse, error)
	mustEmbedUnimplementedFarmsServiceServer()
}

// UnimplementedFarmsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFarmsServiceServer struct{}

func (UnimplementedFarmsServiceServer) CreateFarm(context.Context, *CreateFarmRequest) (*CreateFarmResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateFarm not implemented")
}
func (UnimplementedFarmsServiceServer) GetFarm(context.Context, *GetFarmRequest) (*GetFarmResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFarm not implemented")
}
func (UnimplementedFarmsServiceServer) ListFarms(context.Context, *ListFarmsRequest) (*ListFarmsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFarms not implemented")
}
func (UnimplementedFarmsServiceServer) UpdateFarm(context.Context, *UpdateFarmRequest) (*UpdateFarmResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateFarm not implemented")
}
func (UnimplementedFarmsServiceServer) DeleteFarm(context.Context, *DeleteFarmRequest) (*DeleteFarmResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFarm not implemented")
}
func (UnimplementedFarmsServiceServer) ExportFarm(context.Context, *ExportFarmRequest) (*ExportFarmResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportFarm not implemented")
}
func (UnimplementedFarmsServiceServer) mustEmbedUnimplementedFarmsServiceServer() {}
func (UnimplementedFarmsServiceServer) testEmbeddedByValue()                      {}

// UnsafeFarmsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FarmsServiceServer will
// result in compilation errors.
type UnsafeFarmsServiceServer interface {
	mustEmbedUnimplementedFarmsServiceServer()
}

func RegisterFarmsServiceServer(s grpc.ServiceRegistrar, srv FarmsServiceServer) {
	// If the following call pancis, it indicates UnimplementedFarmsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FarmsService_ServiceDesc, srv)
}

func _FarmsService_CreateFarm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateFarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).CreateFarm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_CreateFarm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).CreateFarm(ctx, req.(*CreateFarmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmsService_GetFarm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).GetFarm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_GetFarm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).GetFarm(ctx, req.(*GetFarmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmsService_ListFarms_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFarmsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).ListFarms(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_ListFarms_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).ListFarms(ctx, req.(*ListFarmsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmsService_UpdateFarm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateFarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).UpdateFarm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_UpdateFarm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).UpdateFarm(ctx, req.(*UpdateFarmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmsService_DeleteFarm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).DeleteFarm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_DeleteFarm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).DeleteFarm(ctx, req.(*DeleteFarmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FarmsService_ExportFarm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportFarmRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FarmsServiceServer).ExportFarm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FarmsService_ExportFarm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FarmsServiceServer).ExportFarm(ctx, req.(*ExportFarmRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FarmsService_ServiceDesc is the grpc.ServiceDesc for FarmsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FarmsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "farmdesk.v1.FarmsService",
	HandlerType: (*FarmsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateFarm",
			Handler:    _FarmsService_CreateFarm_Handler,
		},
		{
			MethodName: "GetFarm",
			Handler:    _FarmsService_GetFarm_Handler,
		},
		{
			MethodName: "ListFarms",
			Handler:    _FarmsService_ListFarms_Handler,
		},
		{
			MethodName: "UpdateFarm",
			Handler:    _FarmsService_UpdateFarm_Handler,
		},
		{
			MethodName: "DeleteFarm",
			Handler:    _FarmsService_DeleteFarm_Handler,
		},
		{
			MethodName: "ExportFarm",
			Handler:    _FarmsService_ExportFarm_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "farmdesk/v1/farmdesk.proto",
}

const (
	DocumentsService_RegisterDocument_FullMethodName = "/farmdesk.v1.DocumentsService/RegisterDocument"
	DocumentsService_ListDocuments_FullMethodName    = "/farmdesk.v1.DocumentsService/ListDocuments"
	DocumentsService_DeleteDocument_FullMethodName   = "/farmdesk.v1.DocumentsService/DeleteDocument"
)

// DocumentsServiceClient is the client API for DocumentsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DocumentsService registers source documents for extraction.
type DocumentsServiceClient interface {
	RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error)
	ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error)
	DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error)
}

type documentsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDocumentsServiceClient(cc grpc.ClientConnInterface) DocumentsServiceClient {
	return &documentsServiceClient{cc}
}

func (c *documentsServiceClient) RegisterDocument(ctx context.Context, in *RegisterDocumentRequest, opts ...grpc.CallOption) (*RegisterDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_RegisterDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) ListDocuments(ctx context.Context, in *ListDocumentsRequest, opts ...grpc.CallOption) (*ListDocumentsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentsResponse)
	err := c.cc.Invoke(ctx, DocumentsService_ListDocuments_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *documentsServiceClient) DeleteDocument(ctx context.Context, in *DeleteDocumentRequest, opts ...grpc.CallOption) (*DeleteDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteDocumentResponse)
	err := c.cc.Invoke(ctx, DocumentsService_DeleteDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DocumentsServiceServer is the server API for DocumentsService service.
// All implementations must embed UnimplementedDocumentsServiceServer
// for forward compatibility.
//
// DocumentsService registers source documents for extraction.
type DocumentsServiceServer interface {
	RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error)
	ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error)
	DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error)
	mustEmbedUnimplementedDocumentsServiceServer()
}

// UnimplementedDocumentsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDocumentsServiceServer struct{}

func (UnimplementedDocumentsServiceServer) RegisterDocument(context.Context, *RegisterDocumentRequest) (*RegisterDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) ListDocuments(context.Context, *ListDocumentsRequest) (*ListDocumentsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocuments not implemented")
}
func (UnimplementedDocumentsServiceServer) DeleteDocument(context.Context, *DeleteDocumentRequest) (*DeleteDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteDocument not implemented")
}
func (UnimplementedDocumentsServiceServer) mustEmbedUnimplementedDocumentsServiceServer() {}
func (UnimplementedDocumentsServiceServer) testEmbeddedByValue()                          {}

// UnsafeDocumentsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DocumentsServiceServer will
// result in compilation errors.
type UnsafeDocumentsServiceServer interface {
	mustEmbedUnimplementedDocumentsServiceServer()
}

func RegisterDocumentsServiceServer(s grpc.ServiceRegistrar, srv DocumentsServiceServer) {
	// If the following call pancis, it indicates UnimplementedDocumentsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DocumentsService_ServiceDesc, srv)
}

func _DocumentsService_RegisterDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_RegisterDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).RegisterDocument(ctx, req.(*RegisterDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_ListDocuments_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_ListDocuments_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).ListDocuments(ctx, req.(*ListDocumentsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DocumentsService_DeleteDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DocumentsServiceServer).DeleteDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DocumentsService_DeleteDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DocumentsServiceServer).DeleteDocument(ctx, req.(*DeleteDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DocumentsService_ServiceDesc is the grpc.ServiceDesc for DocumentsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DocumentsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "farmdesk.v1.DocumentsService",
	HandlerType: (*DocumentsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RegisterDocument",
			Handler:    _DocumentsService_RegisterDocument_Handler,
		},
		{
			MethodName: "ListDocuments",
			Handler:    _DocumentsService_ListDocuments_Handler,
		},
		{
			MethodName: "DeleteDocument",
			Handler:    _DocumentsService_DeleteDocument_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "farmdesk/v1/farmdesk.proto",
}

const (
	ExtractionService_EnqueueExtraction_FullMethodName = "/farmdesk.v1.ExtractionService/EnqueueExtraction"
	ExtractionService_GetJobStatus_FullMethodName      = "/farmdesk.v1.ExtractionService/GetJobStatus"
	ExtractionService_ListDocumentJobs_FullMethodName  = "/farmdesk.v1.ExtractionService/ListDocumentJobs"
	ExtractionService_GetLatestResult_FullMethodName   = "/farmdesk.v1.ExtractionService/GetLatestResult"
	ExtractionService_SaveReviewEdit_FullMethodName    = "/farmdesk.v1.ExtractionService/SaveReviewEdit"
	ExtractionService_AcceptExtraction_FullMethodName  = "/farmdesk.v1.ExtractionService/AcceptExtraction"
	ExtractionService_RejectExtraction_FullMethodName  = "/farmdesk.v1.ExtractionService/RejectExtraction"
	ExtractionService_GetFormState_FullMethodName      = "/farmdesk.v1.ExtractionService/GetFormState"
	ExtractionService_SyncForm_FullMethodName          = "/farmdesk.v1.ExtractionService/SyncForm"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionService drives the hybrid extraction pipeline and the review
// workflow.
type ExtractionServiceClient interface {
	EnqueueExtraction(ctx context.Context, in *EnqueueExtractionRequest, opts ...grpc.CallOption) (*EnqueueExtractionResponse, error)
	GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error)
	ListDocumentJobs(ctx context.Context, in *ListDocumentJobsRequest, opts ...grpc.CallOption) (*ListDocumentJobsResponse, error)
	GetLatestResult(ctx context.Context, in *GetLatestResultRequest, opts ...grpc.CallOption) (*GetLatestResultResponse, error)
	SaveReviewEdit(ctx context.Context, in *SaveReviewEditRequest, opts ...grpc.CallOption) (*SaveReviewEditResponse, error)
	AcceptExtraction(ctx context.Context, in *AcceptExtractionRequest, opts ...grpc.CallOption) (*AcceptExtractionResponse, error)
	RejectExtraction(ctx context.Context, in *RejectExtractionRequest, opts ...grpc.CallOption) (*RejectExtractionResponse, error)
	GetFormState(ctx context.Context, in *GetFormStateRequest, opts ...grpc.CallOption) (*GetFormStateResponse, error)
	SyncForm(ctx context.Context, in *SyncFormRequest, opts ...grpc.CallOption) (*SyncFormResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) EnqueueExtraction(ctx context.Context, in *EnqueueExtractionRequest, opts ...grpc.CallOption) (*EnqueueExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EnqueueExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_EnqueueExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetJobStatus(ctx context.Context, in *GetJobStatusRequest, opts ...grpc.CallOption) (*GetJobStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobStatusResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetJobStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListDocumentJobs(ctx context.Context, in *ListDocumentJobsRequest, opts ...grpc.CallOption) (*ListDocumentJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListDocumentJobsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListDocumentJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetLatestResult(ctx context.Context, in *GetLatestResultRequest, opts ...grpc.CallOption) (*GetLatestResultResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestResultResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetLatestResult_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) SaveReviewEdit(ctx context.Context, in *SaveReviewEditRequest, opts ...grpc.CallOption) (*SaveReviewEditResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SaveReviewEditResponse)
	err := c.cc.Invoke(ctx, ExtractionService_SaveReviewEdit_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) AcceptExtraction(ctx context.Context, in *AcceptExtractionRequest, opts ...grpc.CallOption) (*AcceptExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AcceptExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_AcceptExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) RejectExtraction(ctx context.Context, in *RejectExtractionRequest, opts ...grpc.CallOption) (*RejectExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RejectExtractionResponse)
	err := c.cc.Invoke(ctx, ExtractionService_RejectExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) GetFormState(ctx context.Context, in *GetFormStateRequest, opts ...grpc.CallOption) (*GetFormStateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetFormStateResponse)
	err := c.cc.Invoke(ctx, ExtractionService_GetFormState_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) SyncForm(ctx context.Context, in *SyncFormRequest, opts ...grpc.CallOption) (*SyncFormResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SyncFormResponse)
	err := c.cc.Invoke(ctx, ExtractionService_SyncForm_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
//
// ExtractionService drives the hybrid extraction pipeline and the review
// workflow.
type ExtractionServiceServer interface {
	EnqueueExtraction(context.Context, *EnqueueExtractionRequest) (*EnqueueExtractionResponse, error)
	GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error)
	ListDocumentJobs(context.Context, *ListDocumentJobsRequest) (*ListDocumentJobsResponse, error)
	GetLatestResult(context.Context, *GetLatestResultRequest) (*GetLatestResultResponse, error)
	SaveReviewEdit(context.Context, *SaveReviewEditRequest) (*SaveReviewEditResponse, error)
	AcceptExtraction(context.Context, *AcceptExtractionRequest) (*AcceptExtractionResponse, error)
	RejectExtraction(context.Context, *RejectExtractionRequest) (*RejectExtractionResponse, error)
	GetFormState(context.Context, *GetFormStateRequest) (*GetFormStateResponse, error)
	SyncForm(context.Context, *SyncFormRequest) (*SyncFormResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) EnqueueExtraction(context.Context, *EnqueueExtractionRequest) (*EnqueueExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EnqueueExtraction not implemented")
}
func (UnimplementedExtractionServiceServer) GetJobStatus(context.Context, *GetJobStatusRequest) (*GetJobStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetJobStatus not implemented")
}
func (UnimplementedExtractionServiceServer) ListDocumentJobs(context.Context, *ListDocumentJobsRequest) (*ListDocumentJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListDocumentJobs not implemented")
}
func (UnimplementedExtractionServiceServer) GetLatestResult(context.Context, *GetLatestResultRequest) (*GetLatestResultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLatestResult not implemented")
}
func (UnimplementedExtractionServiceServer) SaveReviewEdit(context.Context, *SaveReviewEditRequest) (*SaveReviewEditResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SaveReviewEdit not implemented")
}
func (UnimplementedExtractionServiceServer) AcceptExtraction(context.Context, *AcceptExtractionRequest) (*AcceptExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcceptExtraction not implemented")
}
func (UnimplementedExtractionServiceServer) RejectExtraction(context.Context, *RejectExtractionRequest) (*RejectExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectExtraction not implemented")
}
func (UnimplementedExtractionServiceServer) GetFormState(context.Context, *GetFormStateRequest) (*GetFormStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFormState not implemented")
}
func (UnimplementedExtractionServiceServer) SyncForm(context.Context, *SyncFormRequest) (*SyncFormResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncForm not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_EnqueueExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EnqueueExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).EnqueueExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_EnqueueExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).EnqueueExtraction(ctx, req.(*EnqueueExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetJobStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetJobStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetJobStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetJobStatus(ctx, req.(*GetJobStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListDocumentJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListDocumentJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListDocumentJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListDocumentJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListDocumentJobs(ctx, req.(*ListDocumentJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetLatestResult_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestResultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetLatestResult(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetLatestResult_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetLatestResult(ctx, req.(*GetLatestResultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_SaveReviewEdit_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SaveReviewEditRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).SaveReviewEdit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_SaveReviewEdit_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).SaveReviewEdit(ctx, req.(*SaveReviewEditRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_AcceptExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).AcceptExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_AcceptExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).AcceptExtraction(ctx, req.(*AcceptExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_RejectExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RejectExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).RejectExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_RejectExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).RejectExtraction(ctx, req.(*RejectExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_GetFormState_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFormStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).GetFormState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_GetFormState_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).GetFormState(ctx, req.(*GetFormStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_SyncForm_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncFormRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).SyncForm(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_SyncForm_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).SyncForm(ctx, req.(*SyncFormRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "farmdesk.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EnqueueExtraction",
			Handler:    _ExtractionService_EnqueueExtraction_Handler,
		},
		{
			MethodName: "GetJobStatus",
			Handler:    _ExtractionService_GetJobStatus_Handler,
		},
		{
			MethodName: "ListDocumentJobs",
			Handler:    _ExtractionService_ListDocumentJobs_Handler,
		},
		{
			MethodName: "GetLatestResult",
			Handler:    _ExtractionService_GetLatestResult_Handler,
		},
		{
			MethodName: "SaveReviewEdit",
			Handler:    _ExtractionService_SaveReviewEdit_Handler,
		},
		{
			MethodName: "AcceptExtraction",
			Handler:    _ExtractionService_AcceptExtraction_Handler,
		},
		{
			MethodName: "RejectExtraction",
			Handler:    _ExtractionService_RejectExtraction_Handler,
		},
		{
			MethodName: "GetFormState",
			Handler:    _ExtractionService_GetFormState_Handler,
		},
		{
			MethodName: "SyncForm",
			Handler:    _ExtractionService_SyncForm_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "farmdesk/v1/farmdesk.proto",
}
