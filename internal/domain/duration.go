package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Duration is an exercise duration in minutes with an explicit invalid state.
// Non-numeric caller input does not fail the request; it is stored as the
// invalid sentinel, which marshals to null in both JSON and BSON.
type Duration struct {
	Minutes int
	Valid   bool
}

// ParseDuration converts raw caller input into a Duration. Anything that is
// not a plain integer yields the invalid sentinel.
func ParseDuration(raw string) Duration {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return Duration{}
	}
	return Duration{Minutes: n, Valid: true}
}

// MinutesDuration constructs a valid Duration.
func MinutesDuration(n int) Duration {
	return Duration{Minutes: n, Valid: true}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(d.Minutes)
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Duration{}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*d = Duration{Minutes: n, Valid: true}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*d = ParseDuration(s)
		return nil
	}
	*d = Duration{}
	return nil
}

func (d Duration) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if !d.Valid {
		return bson.MarshalValue(primitive.Null{})
	}
	return bson.MarshalValue(int32(d.Minutes))
}

func (d *Duration) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*d = Duration{}
		return nil
	case bsontype.Int32:
		*d = Duration{Minutes: int(rv.Int32()), Valid: true}
		return nil
	case bsontype.Int64:
		*d = Duration{Minutes: int(rv.Int64()), Valid: true}
		return nil
	case bsontype.Double:
		*d = Duration{Minutes: int(rv.Double()), Valid: true}
		return nil
	}
	return fmt.Errorf("cannot decode BSON %s into a duration", t)
}

func (d Duration) String() string {
	if !d.Valid {
		return "NaN"
	}
	return strconv.Itoa(d.Minutes)
}
