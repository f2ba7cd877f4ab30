// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: planscore/v1/planscore.proto

package planscorev1

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
	PlansService_CreateUploadURL_FullMethodName = "/planscore.v1.PlansService/CreateUploadURL"
	PlansService_RegisterPlan_FullMethodName    = "/planscore.v1.PlansService/RegisterPlan"
	PlansService_GetPlan_FullMethodName         = "/planscore.v1.PlansService/GetPlan"
	PlansService_ListPlans_FullMethodName       = "/planscore.v1.PlansService/ListPlans"
	PlansService_DeletePlan_FullMethodName      = "/planscore.v1.PlansService/DeletePlan"
)

// PlansServiceClient is the client API for PlansService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PlansServiceClient interface {
	CreateUploadURL(ctx context.Context, in *CreateUploadURLRequest, opts ...grpc.CallOption) (*CreateUploadURLResponse, error)
	RegisterPlan(ctx context.Context, in *RegisterPlanRequest, opts ...grpc.CallOption) (*RegisterPlanResponse, error)
	GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error)
	ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error)
	DeletePlan(ctx context.Context, in *DeletePlanRequest, opts ...grpc.CallOption) (*DeletePlanResponse, error)
}

type plansServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPlansServiceClient(cc grpc.ClientConnInterface) PlansServiceClient {
	return &plansServiceClient{cc}
}

func (c *plansServiceClient) CreateUploadURL(ctx context.Context, in *CreateUploadURLRequest, opts ...grpc.CallOption) (*CreateUploadURLResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateUploadURLResponse)
	err := c.cc.Invoke(ctx, PlansService_CreateUploadURL_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plansServiceClient) RegisterPlan(ctx context.Context, in *RegisterPlanRequest, opts ...grpc.CallOption) (*RegisterPlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterPlanResponse)
	err := c.cc.Invoke(ctx, PlansService_RegisterPlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plansServiceClient) GetPlan(ctx context.Context, in *GetPlanRequest, opts ...grpc.CallOption) (*GetPlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPlanResponse)
	err := c.cc.Invoke(ctx, PlansService_GetPlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plansServiceClient) ListPlans(ctx context.Context, in *ListPlansRequest, opts ...grpc.CallOption) (*ListPlansResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPlansResponse)
	err := c.cc.Invoke(ctx, PlansService_ListPlans_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *plansServiceClient) DeletePlan(ctx context.Context, in *DeletePlanRequest, opts ...grpc.CallOption) (*DeletePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeletePlanResponse)
	err := c.cc.Invoke(ctx, PlansService_DeletePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlansServiceServer is the server API for PlansService service.
// All implementations must embed UnimplementedPlansServiceServer
// for forward compatibility.
type PlansServiceServer interface {
	CreateUploadURL(context.Context, *CreateUploadURLRequest) (*CreateUploadURLResponse, error)
	RegisterPlan(context.Context, *RegisterPlanRequest) (*RegisterPlanResponse, error)
	GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error)
	ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error)
	DeletePlan(context.Context, *DeletePlanRequest) (*DeletePlanResponse, error)
	mustEmbedUnimplementedPlansServiceServer()
}

// UnimplementedPlansServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPlansServiceServer struct{}

func (UnimplementedPlansServiceServer) CreateUploadURL(context.Context, *CreateUploadURLRequest) (*CreateUploadURLResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateUploadURL not implemented")
}
func (UnimplementedPlansServiceServer) RegisterPlan(context.Context, *RegisterPlanRequest) (*RegisterPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterPlan not implemented")
}
func (UnimplementedPlansServiceServer) GetPlan(context.Context, *GetPlanRequest) (*GetPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPlan not implemented")
}
func (UnimplementedPlansServiceServer) ListPlans(context.Context, *ListPlansRequest) (*ListPlansResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPlans not implemented")
}
func (UnimplementedPlansServiceServer) DeletePlan(context.Context, *DeletePlanRequest) (*DeletePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeletePlan not implemented")
}
func (UnimplementedPlansServiceServer) mustEmbedUnimplementedPlansServiceServer() {}
func (UnimplementedPlansServiceServer) testEmbeddedByValue()                      {}

// UnsafePlansServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PlansServiceServer will
// result in compilation errors.
type UnsafePlansServiceServer interface {
	mustEmbedUnimplementedPlansServiceServer()
}

func RegisterPlansServiceServer(s grpc.ServiceRegistrar, srv PlansServiceServer) {
	// If the following call pancis, it indicates UnimplementedPlansServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PlansService_ServiceDesc, srv)
}

func _PlansService_CreateUploadURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateUploadURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlansServiceServer).CreateUploadURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlansService_CreateUploadURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlansServiceServer).CreateUploadURL(ctx, req.(*CreateUploadURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlansService_RegisterPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlansServiceServer).RegisterPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlansService_RegisterPlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlansServiceServer).RegisterPlan(ctx, req.(*RegisterPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlansService_GetPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlansServiceServer).GetPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlansService_GetPlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlansServiceServer).GetPlan(ctx, req.(*GetPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlansService_ListPlans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPlansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlansServiceServer).ListPlans(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlansService_ListPlans_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlansServiceServer).ListPlans(ctx, req.(*ListPlansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PlansService_DeletePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeletePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PlansServiceServer).DeletePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PlansService_DeletePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PlansServiceServer).DeletePlan(ctx, req.(*DeletePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PlansService_ServiceDesc is the grpc.ServiceDesc for PlansService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PlansService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planscore.v1.PlansService",
	HandlerType: (*PlansServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateUploadURL",
			Handler:    _PlansService_CreateUploadURL_Handler,
		},
		{
			MethodName: "RegisterPlan",
			Handler:    _PlansService_RegisterPlan_Handler,
		},
		{
			MethodName: "GetPlan",
			Handler:    _PlansService_GetPlan_Handler,
		},
		{
			MethodName: "ListPlans",
			Handler:    _PlansService_ListPlans_Handler,
		},
		{
			MethodName: "DeletePlan",
			Handler:    _PlansService_DeletePlan_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "planscore/v1/planscore.proto",
}

const (
	EvaluationsService_EvaluatePlan_FullMethodName        = "/planscore.v1.EvaluationsService/EvaluatePlan"
	EvaluationsService_SubmitEvaluation_FullMethodName    = "/planscore.v1.EvaluationsService/SubmitEvaluation"
	EvaluationsService_GetEvaluation_FullMethodName       = "/planscore.v1.EvaluationsService/GetEvaluation"
	EvaluationsService_GetLatestEvaluation_FullMethodName = "/planscore.v1.EvaluationsService/GetLatestEvaluation"
	EvaluationsService_ListEvaluations_FullMethodName     = "/planscore.v1.EvaluationsService/ListEvaluations"
	EvaluationsService_DeleteEvaluation_FullMethodName    = "/planscore.v1.EvaluationsService/DeleteEvaluation"
)

// EvaluationsServiceClient is the client API for EvaluationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EvaluationsServiceClient interface {
	EvaluatePlan(ctx context.Context, in *EvaluatePlanRequest, opts ...grpc.CallOption) (*EvaluatePlanResponse, error)
	SubmitEvaluation(ctx context.Context, in *SubmitEvaluationRequest, opts ...grpc.CallOption) (*SubmitEvaluationResponse, error)
	GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*GetEvaluationResponse, error)
	GetLatestEvaluation(ctx context.Context, in *GetLatestEvaluationRequest, opts ...grpc.CallOption) (*GetLatestEvaluationResponse, error)
	ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error)
	DeleteEvaluation(ctx context.Context, in *DeleteEvaluationRequest, opts ...grpc.CallOption) (*DeleteEvaluationResponse, error)
}

type evaluationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEvaluationsServiceClient(cc grpc.ClientConnInterface) EvaluationsServiceClient {
	return &evaluationsServiceClient{cc}
}

func (c *evaluationsServiceClient) EvaluatePlan(ctx context.Context, in *EvaluatePlanRequest, opts ...grpc.CallOption) (*EvaluatePlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EvaluatePlanResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_EvaluatePlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) SubmitEvaluation(ctx context.Context, in *SubmitEvaluationRequest, opts ...grpc.CallOption) (*SubmitEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_SubmitEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*GetEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_GetEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) GetLatestEvaluation(ctx context.Context, in *GetLatestEvaluationRequest, opts ...grpc.CallOption) (*GetLatestEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetLatestEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_GetLatestEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEvaluationsResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_ListEvaluations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) DeleteEvaluation(ctx context.Context, in *DeleteEvaluationRequest, opts ...grpc.CallOption) (*DeleteEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_DeleteEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluationsServiceServer is the server API for EvaluationsService service.
// All implementations must embed UnimplementedEvaluationsServiceServer
// for forward compatibility.
type EvaluationsServiceServer interface {
	EvaluatePlan(context.Context, *EvaluatePlanRequest) (*EvaluatePlanResponse, error)
	SubmitEvaluation(context.Context, *SubmitEvaluationRequest) (*SubmitEvaluationResponse, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error)
	GetLatestEvaluation(context.Context, *GetLatestEvaluationRequest) (*GetLatestEvaluationResponse, error)
	ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error)
	DeleteEvaluation(context.Context, *DeleteEvaluationRequest) (*DeleteEvaluationResponse, error)
	mustEmbedUnimplementedEvaluationsServiceServer()
}

// UnimplementedEvaluationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEvaluationsServiceServer struct{}

func (UnimplementedEvaluationsServiceServer) EvaluatePlan(context.Context, *EvaluatePlanRequest) (*EvaluatePlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluatePlan not implemented")
}
func (UnimplementedEvaluationsServiceServer) SubmitEvaluation(context.Context, *SubmitEvaluationRequest) (*SubmitEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) GetLatestEvaluation(context.Context, *GetLatestEvaluationRequest) (*GetLatestEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLatestEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEvaluations not implemented")
}
func (UnimplementedEvaluationsServiceServer) DeleteEvaluation(context.Context, *DeleteEvaluationRequest) (*DeleteEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) mustEmbedUnimplementedEvaluationsServiceServer() {}
func (UnimplementedEvaluationsServiceServer) testEmbeddedByValue()                            {}

// UnsafeEvaluationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EvaluationsServiceServer will
// result in compilation errors.
type UnsafeEvaluationsServiceServer interface {
	mustEmbedUnimplementedEvaluationsServiceServer()
}

func RegisterEvaluationsServiceServer(s grpc.ServiceRegistrar, srv EvaluationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedEvaluationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EvaluationsService_ServiceDesc, srv)
}

func _EvaluationsService_EvaluatePlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EvaluatePlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).EvaluatePlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_EvaluatePlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).EvaluatePlan(ctx, req.(*EvaluatePlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_SubmitEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).SubmitEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_SubmitEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).SubmitEvaluation(ctx, req.(*SubmitEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).GetEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_GetEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).GetEvaluation(ctx, req.(*GetEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_GetLatestEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLatestEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).GetLatestEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_GetLatestEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).GetLatestEvaluation(ctx, req.(*GetLatestEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_ListEvaluations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEvaluationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_ListEvaluations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, req.(*ListEvaluationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_DeleteEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).DeleteEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_DeleteEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).DeleteEvaluation(ctx, req.(*DeleteEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EvaluationsService_ServiceDesc is the grpc.ServiceDesc for EvaluationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EvaluationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planscore.v1.EvaluationsService",
	HandlerType: (*EvaluationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "EvaluatePlan",
			Handler:    _EvaluationsService_EvaluatePlan_Handler,
		},
		{
			MethodName: "SubmitEvaluation",
			Handler:    _EvaluationsService_SubmitEvaluation_Handler,
		},
		{
			MethodName: "GetEvaluation",
			Handler:    _EvaluationsService_GetEvaluation_Handler,
		},
		{
			MethodName: "GetLatestEvaluation",
			Handler:    _EvaluationsService_GetLatestEvaluation_Handler,
		},
		{
			MethodName: "ListEvaluations",
			Handler:    _EvaluationsService_ListEvaluations_Handler,
		},
		{
			MethodName: "DeleteEvaluation",
			Handler:    _EvaluationsService_DeleteEvaluation_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "planscore/v1/planscore.proto",
}

const (
	ExportService_ExportEvaluations_FullMethodName = "/planscore.v1.ExportService/ExportEvaluations"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportEvaluations(ctx context.Context, in *ExportEvaluationsRequest, opts ...grpc.CallOption) (*ExportEvaluationsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportEvaluations(ctx context.Context, in *ExportEvaluationsRequest, opts ...grpc.CallOption) (*ExportEvaluationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportEvaluationsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportEvaluations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportEvaluations(context.Context, *ExportEvaluationsRequest) (*ExportEvaluationsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportEvaluations(context.Context, *ExportEvaluationsRequest) (*ExportEvaluationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportEvaluations not implemented")
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

func _ExportService_ExportEvaluations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportEvaluationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportEvaluations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportEvaluations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportEvaluations(ctx, req.(*ExportEvaluationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "planscore.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportEvaluations",
			Handler:    _ExportService_ExportEvaluations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "planscore/v1/planscore.proto",
}
