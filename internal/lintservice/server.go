// Package lintservice exposes the core as a gRPC service: one request
// carries a filename and source text, one response carries the TypeErrors
// the core found. The wire schema is parsed at startup from schema.go's
// embedded .proto text via protoparse, and requests are served through a
// dynamic.Message, not protoc-generated stubs, following the pattern in
// internal/evaluator/builtins_grpc.go, which builds its own grpc.ServiceDesc
// and dynamic.Message traffic the same way.
package lintservice

import (
	"context"
	"fmt"
	"net"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"

	"github.com/methodray/methodray/internal/analyzer"
	"github.com/methodray/methodray/internal/config"
	"github.com/methodray/methodray/internal/pipeline"
	"github.com/methodray/methodray/internal/typesystem"
)

// Server is one lint service instance. Each Lint RPC builds and discards
// its own *analyzer.Driver — a lint request's receiver, scope, and box
// state have no reason to outlive the request that produced them.
type Server struct {
	grpcServer *grpc.Server
	method     *desc.MethodDescriptor
	seed       func(*analyzer.Driver)
}

// NewServer parses the embedded schema and builds a gRPC server exposing
// the Linter service. seed, if non-nil, is invoked against every request's
// fresh Driver before analysis — the CLI's serve command passes DefaultSeed,
// wrapped to also apply a loaded sigfile.File when --signatures is given;
// a nil seed registers nothing.
func NewServer(seed func(*analyzer.Driver)) (*Server, error) {
	fd, err := parseSchema()
	if err != nil {
		return nil, err
	}
	sd := fd.FindService(serviceFullName)
	if sd == nil {
		return nil, fmt.Errorf("lintservice: service %s not found in schema", serviceFullName)
	}
	methods := sd.GetMethods()
	if len(methods) != 1 {
		return nil, fmt.Errorf("lintservice: expected exactly 1 method, found %d", len(methods))
	}

	s := &Server{method: methods[0], seed: seed}
	gs := grpc.NewServer()
	gs.RegisterService(s.serviceDesc(sd), s)
	s.grpcServer = gs
	return s, nil
}

func parseSchema() (*desc.FileDescriptor, error) {
	p := protoparse.Parser{
		Accessor: protoparse.FileContentsFromMap(map[string]string{schemaFilename: schemaSource}),
	}
	fds, err := p.ParseFiles(schemaFilename)
	if err != nil {
		return nil, fmt.Errorf("lintservice: parse schema: %w", err)
	}
	return fds[0], nil
}

func (s *Server) serviceDesc(sd *desc.ServiceDescriptor) *grpc.ServiceDesc {
	md := s.method
	return &grpc.ServiceDesc{
		ServiceName: sd.GetFullyQualifiedName(),
		HandlerType: (*interface{})(nil),
		Methods: []grpc.MethodDesc{
			{
				MethodName: md.GetName(),
				Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpc.UnaryServerInterceptor) (interface{}, error) {
					return srv.(*Server).handleLint(ctx, dec)
				},
			},
		},
		Metadata: schemaFilename,
	}
}

// Serve accepts connections on lis and blocks until Stop is called.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// ListenAndServe is a convenience wrapper binding addr before serving.
func (s *Server) ListenAndServe(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("lintservice: listen %s: %w", addr, err)
	}
	return s.Serve(lis)
}

// Stop gracefully stops the server, letting in-flight RPCs finish.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

func (s *Server) handleLint(_ context.Context, dec func(interface{}) error) (interface{}, error) {
	reqMsg := dynamic.NewMessage(s.method.GetInputType())
	if err := dec(reqMsg); err != nil {
		return nil, err
	}

	filename, _ := reqMsg.TryGetFieldByName("filename")
	source, _ := reqMsg.TryGetFieldByName("source")
	filenameStr, _ := filename.(string)
	sourceStr, _ := source.(string)

	d := analyzer.New()
	if s.seed != nil {
		s.seed(d)
	}

	p := pipeline.New(pipeline.ParseStage{}, pipeline.AnalyzeStage{Driver: d})
	result := p.Run(&pipeline.PipelineContext{File: filenameStr, Source: sourceStr})

	outType := s.method.GetOutputType()
	respMsg := dynamic.NewMessage(outType)
	errType := outType.FindFieldByName("errors").GetMessageType()

	for _, e := range result.TypeErrors {
		em := dynamic.NewMessage(errType)
		if e.ReceiverType != nil {
			em.SetFieldByName("receiver_type", e.ReceiverType.String())
		}
		em.SetFieldByName("method_name", e.MethodName)
		if e.Location != nil {
			em.SetFieldByName("line", int32(e.Location.Start.Line))
			em.SetFieldByName("column", int32(e.Location.Start.Column))
		}
		respMsg.AddRepeatedFieldByName("errors", em)
	}
	return respMsg, nil
}

// DefaultSeed registers the small set of builtin methods every lint request
// starts from (the serve command applies any sigfile on top), expressed in
// terms of internal/config's shared class and method name constants so
// literal installation (internal/analyzer/literals.go) and this seed agree
// on what a bare "String" or "Integer" literal supports.
func DefaultSeed(d *analyzer.Driver) {
	str := typesystem.Instance{ClassName: config.StringClassName}
	integer := typesystem.Instance{ClassName: config.IntegerClassName}
	array := typesystem.Instance{ClassName: config.ArrayClassName}
	hash := typesystem.Instance{ClassName: config.HashClassName}
	symbol := typesystem.Instance{ClassName: config.SymbolClassName}
	object := typesystem.Instance{ClassName: config.ObjectClassName}

	d.RegisterBuiltinMethod(str, config.UpcaseMethodName, str)
	d.RegisterBuiltinMethod(str, config.DowncaseMethodName, str)
	d.RegisterBuiltinMethod(str, config.LengthMethodName, integer)
	d.RegisterBuiltinMethod(str, config.ToSMethodName, str)
	d.RegisterBuiltinMethod(integer, config.ToSMethodName, str)
	d.RegisterBuiltinMethod(array, config.LengthMethodName, integer)
	d.RegisterBuiltinMethod(hash, config.LengthMethodName, integer)
	d.RegisterBuiltinMethod(symbol, config.ToSMethodName, str)
	d.RegisterBuiltinMethod(object, config.ToSMethodName, str)
}
