// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/rpc/gateway"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/models"
)

var ProjectServiceDesc = grpc.ServiceDesc{
	ServiceName: bff.ProjectServiceName,
	HandlerType: (*service.ProjectService)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(bff.ProjectServiceName, "ListProjects", service.ProjectService.ListProjects),
		unaryMethod(bff.ProjectServiceName, "GetProject", service.ProjectService.GetProject),
		unaryMethod(bff.ProjectServiceName, "CreateProject", service.ProjectService.CreateProject),
		unaryMethod(bff.ProjectServiceName, "UpdateProject", service.ProjectService.UpdateProject),
		unaryMethod(bff.ProjectServiceName, "DeleteProject", service.ProjectService.DeleteProject),
	},
}

var UserServiceDesc = grpc.ServiceDesc{
	ServiceName: bff.UserServiceName,
	HandlerType: (*service.UserService)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(bff.UserServiceName, "ListUsers", service.UserService.ListUsers),
		unaryMethod(bff.UserServiceName, "GetUser", service.UserService.GetUser),
		unaryMethod(bff.UserServiceName, "GetMe", service.UserService.GetMe),
		unaryMethod(bff.UserServiceName, "UpdateUser", service.UserService.UpdateUser),
	},
}

var StreamingServiceDesc = grpc.ServiceDesc{
	ServiceName: gateway.StreamingServiceName,
	HandlerType: (*service.StreamingService)(nil),
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Subscribe",
			Handler:       subscribeHandler,
			ServerStreams: true,
		},
	},
}

// unaryMethod builds the descriptor of one unary method served by an S.
func unaryMethod[S, Req, Resp any](serviceName, method string, call func(S, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	info := &grpc.UnaryServerInfo{FullMethod: "/" + serviceName + "/" + method}

	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}

			handler := func(ctx context.Context, req any) (any, error) {
				resp, err := call(srv.(S), ctx, req.(*Req))
				if err != nil {
					return nil, toStatus(err)
				}
				return resp, nil
			}
			if interceptor == nil {
				return handler(ctx, in)
			}

			callInfo := *info
			callInfo.Server = srv
			return interceptor(ctx, in, &callInfo, handler)
		},
	}
}

func subscribeHandler(srv any, stream grpc.ServerStream) error {
	in := new(models.SubscribeRequest)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}

	err := srv.(service.StreamingService).Subscribe(stream.Context(), in, func(e *models.Event) error {
		return stream.SendMsg(e)
	})
	if err != nil {
		return toStatus(err)
	}
	return nil
}
