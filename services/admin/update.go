package admin

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
)

// fieldCoercer converts a patch value the panel sent as text into the type
// the field is stored as. It reports false when the value cannot be converted.
type fieldCoercer func(v any) (any, bool)

// doctorCoercers covers the doctor fields the panel edits through form inputs.
var doctorCoercers = map[string]fieldCoercer{
	"fees":      numberField,
	"available": boolField,
	"date":      epochField,
}

func numberField(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return v, true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f, err == nil
}

func boolField(v any) (any, bool) {
	s, ok := v.(string)
	if !ok {
		return v, true
	}
	b, err := strconv.ParseBool(strings.TrimSpace(s))
	return b, err == nil
}

func epochField(v any) (any, bool) {
	switch n := v.(type) {
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i, err == nil
	case float64:
		if n != math.Trunc(n) {
			return v, false
		}
		return int64(n), true
	}
	return v, true
}

// prepareUpdate turns a request body into a $set document. The identity is
// never updatable and a password is stored hashed. The patch must decode into
// model, so a write can never leave a document the model cannot read back.
func prepareUpdate(update map[string]any, model any, coercers map[string]fieldCoercer) (bson.M, error) {
	fields := bson.M{}
	for k, v := range update {
		if k == "_id" || k == "id" {
			continue
		}
		if coerce, ok := coercers[k]; ok {
			converted, ok := coerce(v)
			if !ok {
				return nil, validationError(MsgInvalidField + k)
			}
			v = converted
		}
		fields[k] = v
	}

	if raw, ok := fields["password"]; ok {
		pw, isString := raw.(string)
		if !isString || pw == "" {
			return nil, validationError(MsgInvalidPassword)
		}
		hash, err := hashPassword(pw)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	if err := conformsTo(fields, model); err != nil {
		return nil, err
	}
	return fields, nil
}

func conformsTo(fields bson.M, model any) error {
	raw, err := bson.Marshal(fields)
	if err != nil {
		return validationError(MsgInvalidUpdate)
	}
	if err := bson.Unmarshal(raw, model); err != nil {
		var de *bsoncodec.DecodeError
		if errors.As(err, &de) && len(de.Keys()) > 0 {
			return validationError(MsgInvalidField + de.Keys()[0])
		}
		return validationError(MsgInvalidUpdate)
	}
	return nil
}
