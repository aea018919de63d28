package blockchain

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustType(t *testing.T, name string) abi.Type {
	t.Helper()
	typ, err := abi.NewType(name, "", nil)
	require.NoError(t, err)
	return typ
}

func TestCoerceArgs(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		arg     string
		want    interface{}
		wantErr string
	}{
		{name: "address", typ: "address", arg: "0x5fbdb2315678afecb367f032d93f642f64180aa3", want: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")},
		{name: "bad address", typ: "address", arg: "0xAAA", wantErr: "invalid address"},
		{name: "bool", typ: "bool", arg: "true", want: true},
		{name: "string", typ: "string", arg: "Gnft", want: "Gnft"},
		{name: "uint8", typ: "uint8", arg: "255", want: uint8(255)},
		{name: "uint8 overflow", typ: "uint8", arg: "256", wantErr: "out of range for uint8"},
		{name: "uint64 hex", typ: "uint64", arg: "0x10", want: uint64(16)},
		{name: "uint256", typ: "uint256", arg: "1000000000000000000000", want: mustBig("1000000000000000000000")},
		{name: "negative uint", typ: "uint256", arg: "-1", wantErr: "out of range"},
		{name: "int8 min", typ: "int8", arg: "-128", want: int8(-128)},
		{name: "int8 underflow", typ: "int8", arg: "-129", wantErr: "out of range for int8"},
		{name: "int8 overflow", typ: "int8", arg: "128", wantErr: "out of range for int8"},
		{name: "int32", typ: "int32", arg: "-5", want: int32(-5)},
		{name: "int256", typ: "int256", arg: "-5", want: big.NewInt(-5)},
		{name: "bad integer", typ: "uint256", arg: "ten", wantErr: "invalid integer"},
		{name: "bytes", typ: "bytes", arg: "0x0102", want: []byte{1, 2}},
		{name: "bytes4", typ: "bytes4", arg: "0x01020304", want: [4]byte{1, 2, 3, 4}},
		{name: "bytes4 wrong size", typ: "bytes4", arg: "0x0102", wantErr: "expected 4 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := abi.Arguments{{Name: "value", Type: mustType(t, tt.typ)}}
			values, err := CoerceArgs(inputs, []string{tt.arg})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, err.Error(), "argument value ("+tt.typ+")")
				return
			}
			require.NoError(t, err)
			require.Len(t, values, 1)
			assert.Equal(t, tt.want, values[0])

			// The coerced value must be accepted by the encoder
			_, err = inputs.Pack(values...)
			assert.NoError(t, err)
		})
	}
}

func TestCoerceArgsCount(t *testing.T) {
	inputs := abi.Arguments{{Name: "token", Type: mustType(t, "address")}}

	_, err := CoerceArgs(inputs, nil)
	assert.EqualError(t, err, "expected 1 arguments, got 0")

	values, err := CoerceArgs(abi.Arguments{}, []string{})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func mustBig(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return v
}
