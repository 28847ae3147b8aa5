// Package packet holds the wire messages exchanged with vision, the referee,
// the radio and the cycle log. The protobuf schemas and generated code live in
// the pb subpackage; this package adds the value types the control loop works
// with and converts them to and from their generated form.
package packet

//go:generate protoc --proto_path=pb --go_out=pb --go_opt=paths=source_relative ssl_vision.proto soccer.proto

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/Pi3th0n/robocup-software/internal/packet/pb"
)

var (
	// ErrMalformed is returned when the bytes are not valid protobuf wire format
	// or a decoded value is out of range.
	ErrMalformed = errors.New("malformed message")
	// ErrMissingField is returned when a required field is absent.
	ErrMissingField = errors.New("missing required field")
)

var (
	decodeOpts = proto.UnmarshalOptions{AllowPartial: true}
	encodeOpts = proto.MarshalOptions{}
)

// Decode unmarshals b into m, replacing its contents. Wire errors wrap
// ErrMalformed and absent required fields wrap ErrMissingField.
func Decode(b []byte, m proto.Message) error {
	if err := decodeOpts.Unmarshal(b, m); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := proto.CheckInitialized(m); err != nil {
		return fmt.Errorf("%w: %v", ErrMissingField, err)
	}
	return nil
}

// DecodeVision decodes an SSL-Vision wrapper datagram into m.
func DecodeVision(b []byte, m *pb.SSL_WrapperPacket) error {
	return Decode(b, m)
}

// appendRaw appends a copy of data to list, reusing the capacity of a slot
// left over from a previous cycle when one exists.
func appendRaw(list [][]byte, data []byte) [][]byte {
	if len(list) < cap(list) {
		list = list[:len(list)+1]
		list[len(list)-1] = append(list[len(list)-1][:0], data...)
		return list
	}
	return append(list, append([]byte(nil), data...))
}
