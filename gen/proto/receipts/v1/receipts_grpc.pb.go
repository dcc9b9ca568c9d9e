// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: receipts/v1/receipts.proto

package receiptsv1

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
	HouseholdsService_CreateHousehold_FullMethodName = "/receipts.v1.HouseholdsService/CreateHousehold"
	HouseholdsService_ListHouseholds_FullMethodName  = "/receipts.v1.HouseholdsService/ListHouseholds"
)

// HouseholdsServiceClient is the client API for HouseholdsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// HouseholdsService manages the households receipts hang off.
type HouseholdsServiceClient interface {
	CreateHousehold(ctx context.Context, in *CreateHouseholdRequest, opts ...grpc.CallOption) (*CreateHouseholdResponse, error)
	ListHouseholds(ctx context.Context, in *ListHouseholdsRequest, opts ...grpc.CallOption) (*ListHouseholdsResponse, error)
}

type householdsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewHouseholdsServiceClient(cc grpc.ClientConnInterface) HouseholdsServiceClient {
	return &householdsServiceClient{cc}
}

func (c *householdsServiceClient) CreateHousehold(ctx context.Context, in *CreateHouseholdRequest, opts ...grpc.CallOption) (*CreateHouseholdResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateHouseholdResponse)
	err := c.cc.Invoke(ctx, HouseholdsService_CreateHousehold_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *householdsServiceClient) ListHouseholds(ctx context.Context, in *ListHouseholdsRequest, opts ...grpc.CallOption) (*ListHouseholdsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListHouseholdsResponse)
	err := c.cc.Invoke(ctx, HouseholdsService_ListHouseholds_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HouseholdsServiceServer is the server API for HouseholdsService service.
// All implementations must embed UnimplementedHouseholdsServiceServer
// for forward compatibility.
//
// HouseholdsService manages the households receipts hang off.
type HouseholdsServiceServer interface {
	CreateHousehold(context.Context, *CreateHouseholdRequest) (*CreateHouseholdResponse, error)
	ListHouseholds(context.Context, *ListHouseholdsRequest) (*ListHouseholdsResponse, error)
	mustEmbedUnimplementedHouseholdsServiceServer()
}

// UnimplementedHouseholdsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedHouseholdsServiceServer struct{}

func (UnimplementedHouseholdsServiceServer) CreateHousehold(context.Context, *CreateHouseholdRequest) (*CreateHouseholdResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateHousehold not implemented")
}
func (UnimplementedHouseholdsServiceServer) ListHouseholds(context.Context, *ListHouseholdsRequest) (*ListHouseholdsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListHouseholds not implemented")
}
func (UnimplementedHouseholdsServiceServer) mustEmbedUnimplementedHouseholdsServiceServer() {}
func (UnimplementedHouseholdsServiceServer) testEmbeddedByValue()                           {}

// UnsafeHouseholdsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to HouseholdsServiceServer will
// result in compilation errors.
type UnsafeHouseholdsServiceServer interface {
	mustEmbedUnimplementedHouseholdsServiceServer()
}

func RegisterHouseholdsServiceServer(s grpc.ServiceRegistrar, srv HouseholdsServiceServer) {
	// If the following call pancis, it indicates UnimplementedHouseholdsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&HouseholdsService_ServiceDesc, srv)
}

func _HouseholdsService_CreateHousehold_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateHouseholdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HouseholdsServiceServer).CreateHousehold(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HouseholdsService_CreateHousehold_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HouseholdsServiceServer).CreateHousehold(ctx, req.(*CreateHouseholdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _HouseholdsService_ListHouseholds_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListHouseholdsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HouseholdsServiceServer).ListHouseholds(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: HouseholdsService_ListHouseholds_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(HouseholdsServiceServer).ListHouseholds(ctx, req.(*ListHouseholdsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// HouseholdsService_ServiceDesc is the grpc.ServiceDesc for HouseholdsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var HouseholdsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receipts.v1.HouseholdsService",
	HandlerType: (*HouseholdsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateHousehold",
			Handler:    _HouseholdsService_CreateHousehold_Handler,
		},
		{
			MethodName: "ListHouseholds",
			Handler:    _HouseholdsService_ListHouseholds_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receipts/v1/receipts.proto",
}

const (
	ParseService_SubmitParseJob_FullMethodName = "/receipts.v1.ParseService/SubmitParseJob"
	ParseService_GetParseJob_FullMethodName    = "/receipts.v1.ParseService/GetParseJob"
	ParseService_ParseReceipt_FullMethodName   = "/receipts.v1.ParseService/ParseReceipt"
)

// ParseServiceClient is the client API for ParseService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ParseService accepts OCR payloads and turns them into structured receipts.
type ParseServiceClient interface {
	// SubmitParseJob queues an OCR payload for asynchronous parsing.
	SubmitParseJob(ctx context.Context, in *SubmitParseJobRequest, opts ...grpc.CallOption) (*SubmitParseJobResponse, error)
	// GetParseJob reports job progress and the linked receipt once done.
	GetParseJob(ctx context.Context, in *GetParseJobRequest, opts ...grpc.CallOption) (*GetParseJobResponse, error)
	// ParseReceipt parses synchronously without persisting anything.
	ParseReceipt(ctx context.Context, in *ParseReceiptRequest, opts ...grpc.CallOption) (*ParseReceiptResponse, error)
}

type parseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewParseServiceClient(cc grpc.ClientConnInterface) ParseServiceClient {
	return &parseServiceClient{cc}
}

func (c *parseServiceClient) SubmitParseJob(ctx context.Context, in *SubmitParseJobRequest, opts ...grpc.CallOption) (*SubmitParseJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitParseJobResponse)
	err := c.cc.Invoke(ctx, ParseService_SubmitParseJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parseServiceClient) GetParseJob(ctx context.Context, in *GetParseJobRequest, opts ...grpc.CallOption) (*GetParseJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetParseJobResponse)
	err := c.cc.Invoke(ctx, ParseService_GetParseJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *parseServiceClient) ParseReceipt(ctx context.Context, in *ParseReceiptRequest, opts ...grpc.CallOption) (*ParseReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseReceiptResponse)
	err := c.cc.Invoke(ctx, ParseService_ParseReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ParseServiceServer is the server API for ParseService service.
// All implementations must embed UnimplementedParseServiceServer
// for forward compatibility.
//
// ParseService accepts OCR payloads and turns them into structured receipts.
type ParseServiceServer interface {
	// SubmitParseJob queues an OCR payload for asynchronous parsing.
	SubmitParseJob(context.Context, *SubmitParseJobRequest) (*SubmitParseJobResponse, error)
	// GetParseJob reports job progress and the linked receipt once done.
	GetParseJob(context.Context, *GetParseJobRequest) (*GetParseJobResponse, error)
	// ParseReceipt parses synchronously without persisting anything.
	ParseReceipt(context.Context, *ParseReceiptRequest) (*ParseReceiptResponse, error)
	mustEmbedUnimplementedParseServiceServer()
}

// UnimplementedParseServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedParseServiceServer struct{}

func (UnimplementedParseServiceServer) SubmitParseJob(context.Context, *SubmitParseJobRequest) (*SubmitParseJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitParseJob not implemented")
}
func (UnimplementedParseServiceServer) GetParseJob(context.Context, *GetParseJobRequest) (*GetParseJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetParseJob not implemented")
}
func (UnimplementedParseServiceServer) ParseReceipt(context.Context, *ParseReceiptRequest) (*ParseReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseReceipt not implemented")
}
func (UnimplementedParseServiceServer) mustEmbedUnimplementedParseServiceServer() {}
func (UnimplementedParseServiceServer) testEmbeddedByValue()                      {}

// UnsafeParseServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ParseServiceServer will
// result in compilation errors.
type UnsafeParseServiceServer interface {
	mustEmbedUnimplementedParseServiceServer()
}

func RegisterParseServiceServer(s grpc.ServiceRegistrar, srv ParseServiceServer) {
	// If the following call pancis, it indicates UnimplementedParseServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ParseService_ServiceDesc, srv)
}

func _ParseService_SubmitParseJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitParseJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).SubmitParseJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_SubmitParseJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).SubmitParseJob(ctx, req.(*SubmitParseJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParseService_GetParseJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetParseJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).GetParseJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_GetParseJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).GetParseJob(ctx, req.(*GetParseJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ParseService_ParseReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ParseServiceServer).ParseReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ParseService_ParseReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ParseServiceServer).ParseReceipt(ctx, req.(*ParseReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ParseService_ServiceDesc is the grpc.ServiceDesc for ParseService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ParseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receipts.v1.ParseService",
	HandlerType: (*ParseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitParseJob",
			Handler:    _ParseService_SubmitParseJob_Handler,
		},
		{
			MethodName: "GetParseJob",
			Handler:    _ParseService_GetParseJob_Handler,
		},
		{
			MethodName: "ParseReceipt",
			Handler:    _ParseService_ParseReceipt_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receipts/v1/receipts.proto",
}

const (
	ReceiptsService_GetReceipt_FullMethodName   = "/receipts.v1.ReceiptsService/GetReceipt"
	ReceiptsService_ListReceipts_FullMethodName = "/receipts.v1.ReceiptsService/ListReceipts"
)

// ReceiptsServiceClient is the client API for ReceiptsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReceiptsService reads back parsed receipts.
type ReceiptsServiceClient interface {
	GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error)
	ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error)
}

type receiptsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReceiptsServiceClient(cc grpc.ClientConnInterface) ReceiptsServiceClient {
	return &receiptsServiceClient{cc}
}

func (c *receiptsServiceClient) GetReceipt(ctx context.Context, in *GetReceiptRequest, opts ...grpc.CallOption) (*GetReceiptResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReceiptResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_GetReceipt_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *receiptsServiceClient) ListReceipts(ctx context.Context, in *ListReceiptsRequest, opts ...grpc.CallOption) (*ListReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReceiptsResponse)
	err := c.cc.Invoke(ctx, ReceiptsService_ListReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReceiptsServiceServer is the server API for ReceiptsService service.
// All implementations must embed UnimplementedReceiptsServiceServer
// for forward compatibility.
//
// ReceiptsService reads back parsed receipts.
type ReceiptsServiceServer interface {
	GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error)
	ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error)
	mustEmbedUnimplementedReceiptsServiceServer()
}

// UnimplementedReceiptsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReceiptsServiceServer struct{}

func (UnimplementedReceiptsServiceServer) GetReceipt(context.Context, *GetReceiptRequest) (*GetReceiptResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReceipt not implemented")
}
func (UnimplementedReceiptsServiceServer) ListReceipts(context.Context, *ListReceiptsRequest) (*ListReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReceipts not implemented")
}
func (UnimplementedReceiptsServiceServer) mustEmbedUnimplementedReceiptsServiceServer() {}
func (UnimplementedReceiptsServiceServer) testEmbeddedByValue()                         {}

// UnsafeReceiptsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReceiptsServiceServer will
// result in compilation errors.
type UnsafeReceiptsServiceServer interface {
	mustEmbedUnimplementedReceiptsServiceServer()
}

func RegisterReceiptsServiceServer(s grpc.ServiceRegistrar, srv ReceiptsServiceServer) {
	// If the following call pancis, it indicates UnimplementedReceiptsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReceiptsService_ServiceDesc, srv)
}

func _ReceiptsService_GetReceipt_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReceiptRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).GetReceipt(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_GetReceipt_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).GetReceipt(ctx, req.(*GetReceiptRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReceiptsService_ListReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReceiptsServiceServer).ListReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReceiptsService_ListReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReceiptsServiceServer).ListReceipts(ctx, req.(*ListReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReceiptsService_ServiceDesc is the grpc.ServiceDesc for ReceiptsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReceiptsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receipts.v1.ReceiptsService",
	HandlerType: (*ReceiptsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetReceipt",
			Handler:    _ReceiptsService_GetReceipt_Handler,
		},
		{
			MethodName: "ListReceipts",
			Handler:    _ReceiptsService_ListReceipts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receipts/v1/receipts.proto",
}

const (
	ExportService_ExportReceipts_FullMethodName = "/receipts.v1.ExportService/ExportReceipts"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExportService produces spreadsheet exports.
type ExportServiceClient interface {
	ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReceiptsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
//
// ExportService produces spreadsheet exports.
type ExportServiceServer interface {
	ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReceipts not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportReceipts(ctx, req.(*ExportReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "receipts.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportReceipts",
			Handler:    _ExportService_ExportReceipts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "receipts/v1/receipts.proto",
}
