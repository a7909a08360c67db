// File: codec.go
// Title: DateTime Encoding
// Description: JSON, YAML, text, MessagePack and SQL codecs for DateTime.
//              Every decoder runs the full validation pipeline and only
//              replaces the receiver once a value has been built.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-19
// Modified: 2025-10-19
//
// Change History:
// - 2025-10-19 v0.1.0: Initial implementation

package datetime

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

// SerialTypeName identifies DateTime in type-tagged envelopes
const SerialTypeName = "DateTime"

var (
	_ json.Marshaler           = (*DateTime)(nil)
	_ json.Unmarshaler         = (*DateTime)(nil)
	_ yaml.Marshaler           = (*DateTime)(nil)
	_ yaml.Unmarshaler         = (*DateTime)(nil)
	_ encoding.TextMarshaler   = (*DateTime)(nil)
	_ encoding.TextUnmarshaler = (*DateTime)(nil)
	_ msgpack.CustomEncoder    = (*DateTime)(nil)
	_ msgpack.CustomDecoder    = (*DateTime)(nil)
	_ driver.Valuer            = (*DateTime)(nil)
	_ sql.Scanner              = (*DateTime)(nil)
)

// TypeName returns the envelope type name
func (d *DateTime) TypeName() string {
	return SerialTypeName
}

// SerialFields returns the fields needed to rebuild the value
func (d *DateTime) SerialFields() map[string]interface{} {
	return map[string]interface{}{
		"value": d.value,
		"zone":  d.zone,
	}
}

// FromSerialFields rebuilds a DateTime from SerialFields output
func FromSerialFields(fields map[string]interface{}, opts ...Option) (*DateTime, error) {
	value, _ := fields["value"].(string)
	zone, _ := fields["zone"].(string)
	o := buildOptions(opts)
	return build("FromSerialFields", value, zone, o.calendar)
}

// assign replaces d with a freshly built value
func (d *DateTime) assign(operation string, p Payload) error {
	built, err := build(operation, p.Value, p.Zone, DefaultCalendar())
	if err != nil {
		return err
	}
	*d = *built
	return nil
}

// MarshalJSON encodes {"value": ..., "zone": ...}
func (d *DateTime) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	return json.Marshal(d.Payload())
}

// UnmarshalJSON decodes {"value": ..., "zone": ...}
func (d *DateTime) UnmarshalJSON(data []byte) error {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return decodeError("UnmarshalJSON", err)
	}
	return d.assign("UnmarshalJSON", p)
}

// MarshalYAML encodes the construction record as a mapping
func (d *DateTime) MarshalYAML() (interface{}, error) {
	return d.Payload(), nil
}

// UnmarshalYAML decodes a mapping with value and zone
func (d *DateTime) UnmarshalYAML(node *yaml.Node) error {
	var p Payload
	if err := node.Decode(&p); err != nil {
		return decodeError("UnmarshalYAML", err)
	}
	return d.assign("UnmarshalYAML", p)
}

// MarshalText encodes "<value> <zone>"
func (d *DateTime) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes "<value> <zone>"; the zone follows the last space
func (d *DateTime) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return mdwerrors.InvalidFormat(mdwerrors.ModuleDatetime, "UnmarshalText", "text", s, "YYYY-MM-DD hh:mm <zone>")
	}
	return d.assign("UnmarshalText", Payload{Value: s[:i], Zone: s[i+1:]})
}

// EncodeMsgpack encodes the construction record
func (d *DateTime) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(d.Payload())
}

// DecodeMsgpack decodes the construction record
func (d *DateTime) DecodeMsgpack(dec *msgpack.Decoder) error {
	var p Payload
	if err := dec.Decode(&p); err != nil {
		return decodeError("DecodeMsgpack", err)
	}
	return d.assign("DecodeMsgpack", p)
}

// Value stores the text form in a database column
func (d *DateTime) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	return d.String(), nil
}

// Scan reads the text form from a database column
func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case nil:
		return mdwerrors.Required(mdwerrors.ModuleDatetime, "Scan", "value")
	default:
		return mdwerrors.NewErrorBuilder(mdwerrors.ModuleDatetime).
			Operation("Scan").
			Code(mdwerror.CodeTypeMismatch).
			Detail("type", fmt.Sprintf("%T", src)).
			Messagef("cannot scan %T into DateTime", src).
			Build()
	}
}

func decodeError(operation string, err error) error {
	return mdwerrors.OperationFailed(mdwerrors.ModuleDatetime, operation, mdwerror.CodeDecodeFailed, err)
}
