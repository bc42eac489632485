package lintservice

import (
	"context"
	"net"
	"testing"

	"github.com/jhump/protoreflect/dynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func TestLintOverGRPC(t *testing.T) {
	srv, err := NewServer(DefaultSeed)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	go srv.Serve(lis)
	defer srv.Stop()

	conn, err := grpc.NewClient(lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer conn.Close()

	fd, err := parseSchema()
	if err != nil {
		t.Fatalf("parseSchema: %v", err)
	}
	sd := fd.FindService(serviceFullName)
	md := sd.GetMethods()[0]

	req := dynamic.NewMessage(md.GetInputType())
	req.SetFieldByName("filename", "t.rb")
	req.SetFieldByName("source", `class User; def test; x = 123; y = x.upcase; end; end`)

	resp := dynamic.NewMessage(md.GetOutputType())
	if err := conn.Invoke(context.Background(), "/"+serviceFullName+"/Lint", req, resp); err != nil {
		t.Fatalf("Invoke: %v", err)
	}

	errsField, err := resp.TryGetFieldByName("errors")
	if err != nil {
		t.Fatalf("errors field: %v", err)
	}
	list, ok := errsField.([]interface{})
	if !ok || len(list) != 1 {
		t.Fatalf("expected exactly 1 error, got %#v", errsField)
	}

	em, ok := list[0].(*dynamic.Message)
	if !ok {
		t.Fatalf("expected *dynamic.Message, got %T", list[0])
	}
	method, _ := em.TryGetFieldByName("method_name")
	if method != "upcase" {
		t.Fatalf("expected method_name upcase, got %v", method)
	}
}
