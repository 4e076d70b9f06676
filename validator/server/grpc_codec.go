// Copyright 2026, Offchain Labs, Inc.
// For license information, see https://github.com/OffchainLabs/nitro/blob/master/LICENSE.md

package server

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/encoding"
	grpcproto "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/proto"

	"github.com/offchainlabs/certificate-validator/validator/server_api"
)

// ProtoCodecName is the default gRPC content subtype. The validator messages
// use their protowire encoding under it; generated protobuf messages, such as
// the health service's, keep the stock encoding.
const ProtoCodecName = grpcproto.Name

// JSONCodecName is an extra content subtype carrying the JSON-RPC encoding.
const JSONCodecName = "json"

type protoCodec struct{}

func (protoCodec) Marshal(v interface{}) ([]byte, error) {
	switch m := v.(type) {
	case server_api.ProtoMessage:
		return m.MarshalProto(), nil
	case proto.Message:
		return proto.Marshal(m)
	}
	return nil, fmt.Errorf("proto codec: cannot marshal %T", v)
}

func (protoCodec) Unmarshal(data []byte, v interface{}) error {
	switch m := v.(type) {
	case server_api.ProtoMessage:
		return m.UnmarshalProto(data)
	case proto.Message:
		return proto.Unmarshal(data, m)
	}
	return fmt.Errorf("proto codec: cannot unmarshal into %T", v)
}

func (protoCodec) Name() string {
	return ProtoCodecName
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return JSONCodecName
}

func init() {
	encoding.RegisterCodec(protoCodec{})
	encoding.RegisterCodec(jsonCodec{})
}
