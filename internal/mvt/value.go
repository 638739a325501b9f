package mvt

// value.go - layer value dictionary decoding
// MVT spec §4.1: a Value message carries exactly one of seven typed
// fields. Feature tags index into the layer's value dictionary.

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Value message field numbers (MVT spec §4.1)
const (
	valueFieldString = 1
	valueFieldFloat  = 2
	valueFieldDouble = 3
	valueFieldInt    = 4
	valueFieldUint   = 5
	valueFieldSint   = 6
	valueFieldBool   = 7
)

// decodeValue decodes one value message into a string, float64, int64,
// uint64, bool, or nil for an empty message. 32-bit floats widen to
// float64. If a malformed message carries several typed fields, the
// last one wins.
func decodeValue(data []byte) (interface{}, error) {
	var out interface{}
	r := newReader(data)
	for !r.done() {
		num, typ, err := r.tag()
		if err != nil {
			return nil, err
		}
		switch {
		case num == valueFieldString && typ == protowire.BytesType:
			b, err := r.bytes()
			if err != nil {
				return nil, err
			}
			out = string(b)
		case num == valueFieldFloat && typ == protowire.Fixed32Type:
			v, err := r.fixed32()
			if err != nil {
				return nil, err
			}
			out = float64(math.Float32frombits(v))
		case num == valueFieldDouble && typ == protowire.Fixed64Type:
			v, err := r.fixed64()
			if err != nil {
				return nil, err
			}
			out = math.Float64frombits(v)
		case num == valueFieldInt && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			out = int64(v)
		case num == valueFieldUint && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			out = v
		case num == valueFieldSint && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			out = protowire.DecodeZigZag(v)
		case num == valueFieldBool && typ == protowire.VarintType:
			v, err := r.varint()
			if err != nil {
				return nil, err
			}
			out = protowire.DecodeBool(v)
		default:
			if err := r.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
