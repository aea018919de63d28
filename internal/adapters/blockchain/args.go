package blockchain

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CoerceArgs converts string arguments from the deploy plan to the Go values the
// ABI encoder expects for inputs
func CoerceArgs(inputs abi.Arguments, args []string) ([]interface{}, error) {
	if len(inputs) != len(args) {
		return nil, fmt.Errorf("expected %d arguments, got %d", len(inputs), len(args))
	}

	values := make([]interface{}, len(args))
	for i, input := range inputs {
		v, err := coerce(input.Type, args[i])
		if err != nil {
			name := input.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return nil, fmt.Errorf("argument %s (%s): %w", name, input.Type.String(), err)
		}
		values[i] = v
	}
	return values, nil
}

func coerce(t abi.Type, s string) (interface{}, error) {
	switch t.T {
	case abi.AddressTy:
		if !common.IsHexAddress(s) {
			return nil, fmt.Errorf("invalid address %q", s)
		}
		return common.HexToAddress(s), nil

	case abi.BoolTy:
		return strconv.ParseBool(s)

	case abi.StringTy:
		return s, nil

	case abi.UintTy, abi.IntTy:
		return coerceInteger(t, s)

	case abi.BytesTy:
		return hexutil.Decode(s)

	case abi.FixedBytesTy:
		b, err := hexutil.Decode(s)
		if err != nil {
			return nil, err
		}
		if len(b) != t.Size {
			return nil, fmt.Errorf("expected %d bytes, got %d", t.Size, len(b))
		}
		arr := reflect.New(t.GetType()).Elem()
		reflect.Copy(arr, reflect.ValueOf(b))
		return arr.Interface(), nil
	}

	return nil, fmt.Errorf("unsupported argument type %s", t.String())
}

func coerceInteger(t abi.Type, s string) (interface{}, error) {
	v, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer %q", s)
	}

	if t.T == abi.UintTy {
		if v.Sign() < 0 || v.BitLen() > t.Size {
			return nil, fmt.Errorf("%s out of range for uint%d", s, t.Size)
		}
		switch t.Size {
		case 8:
			return uint8(v.Uint64()), nil
		case 16:
			return uint16(v.Uint64()), nil
		case 32:
			return uint32(v.Uint64()), nil
		case 64:
			return v.Uint64(), nil
		}
		return v, nil
	}

	magnitude := v
	if v.Sign() < 0 {
		magnitude = new(big.Int).Add(v, big.NewInt(1))
	}
	if magnitude.BitLen() > t.Size-1 {
		return nil, fmt.Errorf("%s out of range for int%d", s, t.Size)
	}
	switch t.Size {
	case 8:
		return int8(v.Int64()), nil
	case 16:
		return int16(v.Int64()), nil
	case 32:
		return int32(v.Int64()), nil
	case 64:
		return v.Int64(), nil
	}
	return v, nil
}
