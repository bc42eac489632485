package lintservice

// schemaSource is the lint service's wire contract, parsed at server
// construction time via jhump/protoreflect's protoparse rather than
// protoc-generated stubs, the same dynamic-schema approach
// internal/evaluator/builtins_grpc.go uses for its own RPCs.
const schemaSource = `
syntax = "proto3";
package methodray;

message LintRequest {
  string filename = 1;
  string source = 2;
}

message LintError {
  string receiver_type = 1;
  string method_name = 2;
  int32 line = 3;
  int32 column = 4;
}

message LintResponse {
  repeated LintError errors = 1;
}

service Linter {
  rpc Lint(LintRequest) returns (LintResponse);
}
`

const schemaFilename = "lintservice.proto"
const serviceFullName = "methodray.Linter"
