package proto

//go:generate protoc -I . --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative receipts/v1/receipts.proto
