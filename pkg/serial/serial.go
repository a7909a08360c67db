// File: serial.go
// Title: Type-Tagged Serialization
// Description: Encodes Serializable values as flat objects carrying a
//              "$typename" discriminator, in JSON or MessagePack, and decodes
//              them back through an explicit builder after checking the tag.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package serial

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// TypeField is the discriminator key added to every envelope
const TypeField = "$typename"

// Serializable is implemented by values that can be written to an envelope
type Serializable interface {
	TypeName() string
	SerialFields() map[string]interface{}
}

// Marshal encodes v as a JSON envelope
func Marshal(v Serializable) ([]byte, error) {
	env, err := envelope("Marshal", v)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleSerial, "Marshal", mdwerror.CodeEncodeFailed, err)
	}
	return data, nil
}

// Unmarshal decodes a JSON envelope tagged typeName. build receives the
// envelope fields without the discriminator.
func Unmarshal[T any](data []byte, typeName string, build func(map[string]interface{}) (T, error)) (T, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal(data, &fields); err != nil {
		var zero T
		return zero, mdwerrors.OperationFailed(mdwerrors.ModuleSerial, "Unmarshal", mdwerror.CodeDecodeFailed, err)
	}
	return open("Unmarshal", fields, typeName, build)
}

// MarshalMsgpack encodes v as a MessagePack envelope
func MarshalMsgpack(v Serializable) ([]byte, error) {
	env, err := envelope("MarshalMsgpack", v)
	if err != nil {
		return nil, err
	}
	data, err := msgpack.Marshal(env)
	if err != nil {
		return nil, mdwerrors.OperationFailed(mdwerrors.ModuleSerial, "MarshalMsgpack", mdwerror.CodeEncodeFailed, err)
	}
	return data, nil
}

// UnmarshalMsgpack decodes a MessagePack envelope tagged typeName with build
func UnmarshalMsgpack[T any](data []byte, typeName string, build func(map[string]interface{}) (T, error)) (T, error) {
	var fields map[string]interface{}
	if err := msgpack.Unmarshal(data, &fields); err != nil {
		var zero T
		return zero, mdwerrors.OperationFailed(mdwerrors.ModuleSerial, "UnmarshalMsgpack", mdwerror.CodeDecodeFailed, err)
	}
	return open("UnmarshalMsgpack", fields, typeName, build)
}

// TypeOf returns the discriminator of a JSON envelope without decoding it
func TypeOf(data []byte) (string, error) {
	var head struct {
		TypeName string `json:"$typename"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return "", mdwerrors.OperationFailed(mdwerrors.ModuleSerial, "TypeOf", mdwerror.CodeDecodeFailed, err)
	}
	if head.TypeName == "" {
		return "", mdwerrors.Required(mdwerrors.ModuleSerial, "TypeOf", TypeField)
	}
	return head.TypeName, nil
}

func envelope(operation string, v Serializable) (map[string]interface{}, error) {
	if v == nil {
		return nil, mdwerrors.Required(mdwerrors.ModuleSerial, operation, "value")
	}
	fields := v.SerialFields()
	env := make(map[string]interface{}, len(fields)+1)
	for k, val := range fields {
		if k == TypeField {
			return nil, mdwerrors.InvalidArgument(mdwerrors.ModuleSerial, operation, "field", k, "reserved field name")
		}
		env[k] = val
	}
	env[TypeField] = v.TypeName()
	return env, nil
}

func open[T any](operation string, fields map[string]interface{}, typeName string, build func(map[string]interface{}) (T, error)) (T, error) {
	var zero T
	got, _ := fields[TypeField].(string)
	if got != typeName {
		return zero, mdwerrors.NewErrorBuilder(mdwerrors.ModuleSerial).
			Operation(operation).
			Code(mdwerror.CodeTypeMismatch).
			Detail("expected", typeName).
			Detail("actual", got).
			Message(fmt.Sprintf("envelope type %q does not match %q", got, typeName)).
			Build()
	}
	delete(fields, TypeField)

	v, err := build(fields)
	if err != nil {
		return zero, mdwerrors.OperationFailed(mdwerrors.ModuleSerial, operation, mdwerror.CodeDecodeFailed, err)
	}
	return v, nil
}
