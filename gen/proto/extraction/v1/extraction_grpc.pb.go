// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: extraction/v1/extraction.proto

package extractionv1

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
	ExtractionJobsService_SubmitJob_FullMethodName        = "/extraction.v1.ExtractionJobsService/SubmitJob"
	ExtractionJobsService_GetJob_FullMethodName           = "/extraction.v1.ExtractionJobsService/GetJob"
	ExtractionJobsService_AdvanceJob_FullMethodName       = "/extraction.v1.ExtractionJobsService/AdvanceJob"
	ExtractionJobsService_CancelJob_FullMethodName        = "/extraction.v1.ExtractionJobsService/CancelJob"
	ExtractionJobsService_ExportJobResults_FullMethodName = "/extraction.v1.ExtractionJobsService/ExportJobResults"
)

// ExtractionJobsServiceClient is the client API for ExtractionJobsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ExtractionJobsService is the integration surface of the job state machine
// and the orchestrator.
type ExtractionJobsServiceClient interface {
	SubmitJob(ctx context.Context, in *SubmitJobRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error)
	GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error)
	AdvanceJob(ctx context.Context, in *AdvanceJobRequest, opts ...grpc.CallOption) (*AdvanceJobResponse, error)
	CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error)
	ExportJobResults(ctx context.Context, in *ExportJobResultsRequest, opts ...grpc.CallOption) (*ExportJobResultsResponse, error)
}

type extractionJobsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionJobsServiceClient(cc grpc.ClientConnInterface) ExtractionJobsServiceClient {
	return &extractionJobsServiceClient{cc}
}

func (c *extractionJobsServiceClient) SubmitJob(ctx context.Context, in *SubmitJobRequest, opts ...grpc.CallOption) (*SubmitJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitJobResponse)
	err := c.cc.Invoke(ctx, ExtractionJobsService_SubmitJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionJobsServiceClient) GetJob(ctx context.Context, in *GetJobRequest, opts ...grpc.CallOption) (*GetJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetJobResponse)
	err := c.cc.Invoke(ctx, ExtractionJobsService_GetJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionJobsServiceClient) AdvanceJob(ctx context.Context, in *AdvanceJobRequest, opts ...grpc.CallOption) (*AdvanceJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AdvanceJobResponse)
	err := c.cc.Invoke(ctx, ExtractionJobsService_AdvanceJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionJobsServiceClient) CancelJob(ctx context.Context, in *CancelJobRequest, opts ...grpc.CallOption) (*CancelJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CancelJobResponse)
	err := c.cc.Invoke(ctx, ExtractionJobsService_CancelJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionJobsServiceClient) ExportJobResults(ctx context.Context, in *ExportJobResultsRequest, opts ...grpc.CallOption) (*ExportJobResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportJobResultsResponse)
	err := c.cc.Invoke(ctx, ExtractionJobsService_ExportJobResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionJobsServiceServer is the server API for ExtractionJobsService service.
// All implementations must embed UnimplementedExtractionJobsServiceServer
// for forward compatibility.
//
// ExtractionJobsService is the integration surface of the job state machine
// and the orchestrator.
type ExtractionJobsServiceServer interface {
	SubmitJob(context.Context, *SubmitJobRequest) (*SubmitJobResponse, error)
	GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error)
	AdvanceJob(context.Context, *AdvanceJobRequest) (*AdvanceJobResponse, error)
	CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error)
	ExportJobResults(context.Context, *ExportJobResultsRequest) (*ExportJobResultsResponse, error)
	mustEmbedUnimplementedExtractionJobsServiceServer()
}

// UnimplementedExtractionJobsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionJobsServiceServer struct{}

func (UnimplementedExtractionJobsServiceServer) SubmitJob(context.Context, *SubmitJobRequest) (*SubmitJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method SubmitJob not implemented")
}
func (UnimplementedExtractionJobsServiceServer) GetJob(context.Context, *GetJobRequest) (*GetJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetJob not implemented")
}
func (UnimplementedExtractionJobsServiceServer) AdvanceJob(context.Context, *AdvanceJobRequest) (*AdvanceJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method AdvanceJob not implemented")
}
func (UnimplementedExtractionJobsServiceServer) CancelJob(context.Context, *CancelJobRequest) (*CancelJobResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelJob not implemented")
}
func (UnimplementedExtractionJobsServiceServer) ExportJobResults(context.Context, *ExportJobResultsRequest) (*ExportJobResultsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportJobResults not implemented")
}
func (UnimplementedExtractionJobsServiceServer) mustEmbedUnimplementedExtractionJobsServiceServer() {}
func (UnimplementedExtractionJobsServiceServer) testEmbeddedByValue()                               {}

// UnsafeExtractionJobsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionJobsServiceServer will
// result in compilation errors.
type UnsafeExtractionJobsServiceServer interface {
	mustEmbedUnimplementedExtractionJobsServiceServer()
}

func RegisterExtractionJobsServiceServer(s grpc.ServiceRegistrar, srv ExtractionJobsServiceServer) {
	// If the following call panics, it indicates UnimplementedExtractionJobsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionJobsService_ServiceDesc, srv)
}

func _ExtractionJobsService_SubmitJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionJobsServiceServer).SubmitJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionJobsService_SubmitJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionJobsServiceServer).SubmitJob(ctx, req.(*SubmitJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionJobsService_GetJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionJobsServiceServer).GetJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionJobsService_GetJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionJobsServiceServer).GetJob(ctx, req.(*GetJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionJobsService_AdvanceJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionJobsServiceServer).AdvanceJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionJobsService_AdvanceJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionJobsServiceServer).AdvanceJob(ctx, req.(*AdvanceJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionJobsService_CancelJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionJobsServiceServer).CancelJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionJobsService_CancelJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionJobsServiceServer).CancelJob(ctx, req.(*CancelJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionJobsService_ExportJobResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportJobResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionJobsServiceServer).ExportJobResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionJobsService_ExportJobResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionJobsServiceServer).ExportJobResults(ctx, req.(*ExportJobResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionJobsService_ServiceDesc is the grpc.ServiceDesc for ExtractionJobsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionJobsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.ExtractionJobsService",
	HandlerType: (*ExtractionJobsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitJob",
			Handler:    _ExtractionJobsService_SubmitJob_Handler,
		},
		{
			MethodName: "GetJob",
			Handler:    _ExtractionJobsService_GetJob_Handler,
		},
		{
			MethodName: "AdvanceJob",
			Handler:    _ExtractionJobsService_AdvanceJob_Handler,
		},
		{
			MethodName: "CancelJob",
			Handler:    _ExtractionJobsService_CancelJob_Handler,
		},
		{
			MethodName: "ExportJobResults",
			Handler:    _ExtractionJobsService_ExportJobResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}

const (
	ReuseService_DecideReuse_FullMethodName = "/extraction.v1.ReuseService/DecideReuse"
)

// ReuseServiceClient is the client API for ReuseService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// ReuseService exposes the reuse decision engine read-only.
type ReuseServiceClient interface {
	DecideReuse(ctx context.Context, in *DecideReuseRequest, opts ...grpc.CallOption) (*DecideReuseResponse, error)
}

type reuseServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewReuseServiceClient(cc grpc.ClientConnInterface) ReuseServiceClient {
	return &reuseServiceClient{cc}
}

func (c *reuseServiceClient) DecideReuse(ctx context.Context, in *DecideReuseRequest, opts ...grpc.CallOption) (*DecideReuseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DecideReuseResponse)
	err := c.cc.Invoke(ctx, ReuseService_DecideReuse_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReuseServiceServer is the server API for ReuseService service.
// All implementations must embed UnimplementedReuseServiceServer
// for forward compatibility.
//
// ReuseService exposes the reuse decision engine read-only.
type ReuseServiceServer interface {
	DecideReuse(context.Context, *DecideReuseRequest) (*DecideReuseResponse, error)
	mustEmbedUnimplementedReuseServiceServer()
}

// UnimplementedReuseServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedReuseServiceServer struct{}

func (UnimplementedReuseServiceServer) DecideReuse(context.Context, *DecideReuseRequest) (*DecideReuseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method DecideReuse not implemented")
}
func (UnimplementedReuseServiceServer) mustEmbedUnimplementedReuseServiceServer() {}
func (UnimplementedReuseServiceServer) testEmbeddedByValue()                      {}

// UnsafeReuseServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ReuseServiceServer will
// result in compilation errors.
type UnsafeReuseServiceServer interface {
	mustEmbedUnimplementedReuseServiceServer()
}

func RegisterReuseServiceServer(s grpc.ServiceRegistrar, srv ReuseServiceServer) {
	// If the following call panics, it indicates UnimplementedReuseServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ReuseService_ServiceDesc, srv)
}

func _ReuseService_DecideReuse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DecideReuseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReuseServiceServer).DecideReuse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReuseService_DecideReuse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReuseServiceServer).DecideReuse(ctx, req.(*DecideReuseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReuseService_ServiceDesc is the grpc.ServiceDesc for ReuseService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ReuseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.ReuseService",
	HandlerType: (*ReuseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DecideReuse",
			Handler:    _ReuseService_DecideReuse_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}

const (
	AdaptersService_ListAdapters_FullMethodName = "/extraction.v1.AdaptersService/ListAdapters"
)

// AdaptersServiceClient is the client API for AdaptersService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AdaptersService lists the registered portal integrations.
type AdaptersServiceClient interface {
	ListAdapters(ctx context.Context, in *ListAdaptersRequest, opts ...grpc.CallOption) (*ListAdaptersResponse, error)
}

type adaptersServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAdaptersServiceClient(cc grpc.ClientConnInterface) AdaptersServiceClient {
	return &adaptersServiceClient{cc}
}

func (c *adaptersServiceClient) ListAdapters(ctx context.Context, in *ListAdaptersRequest, opts ...grpc.CallOption) (*ListAdaptersResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAdaptersResponse)
	err := c.cc.Invoke(ctx, AdaptersService_ListAdapters_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AdaptersServiceServer is the server API for AdaptersService service.
// All implementations must embed UnimplementedAdaptersServiceServer
// for forward compatibility.
//
// AdaptersService lists the registered portal integrations.
type AdaptersServiceServer interface {
	ListAdapters(context.Context, *ListAdaptersRequest) (*ListAdaptersResponse, error)
	mustEmbedUnimplementedAdaptersServiceServer()
}

// UnimplementedAdaptersServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAdaptersServiceServer struct{}

func (UnimplementedAdaptersServiceServer) ListAdapters(context.Context, *ListAdaptersRequest) (*ListAdaptersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAdapters not implemented")
}
func (UnimplementedAdaptersServiceServer) mustEmbedUnimplementedAdaptersServiceServer() {}
func (UnimplementedAdaptersServiceServer) testEmbeddedByValue()                         {}

// UnsafeAdaptersServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AdaptersServiceServer will
// result in compilation errors.
type UnsafeAdaptersServiceServer interface {
	mustEmbedUnimplementedAdaptersServiceServer()
}

func RegisterAdaptersServiceServer(s grpc.ServiceRegistrar, srv AdaptersServiceServer) {
	// If the following call panics, it indicates UnimplementedAdaptersServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AdaptersService_ServiceDesc, srv)
}

func _AdaptersService_ListAdapters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAdaptersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AdaptersServiceServer).ListAdapters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AdaptersService_ListAdapters_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AdaptersServiceServer).ListAdapters(ctx, req.(*ListAdaptersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AdaptersService_ServiceDesc is the grpc.ServiceDesc for AdaptersService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AdaptersService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "extraction.v1.AdaptersService",
	HandlerType: (*AdaptersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListAdapters",
			Handler:    _AdaptersService_ListAdapters_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "extraction/v1/extraction.proto",
}
