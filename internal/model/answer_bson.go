package model

import (
	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// MarshalBSONValue stores an answer as a plain BSON int, string or array
func (a Answer) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(a.Interface())
}

func (a *Answer) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Null, bsontype.Undefined:
		*a = Answer{}
	case bsontype.Int32:
		*a = IntAnswer(int(rv.Int32()))
	case bsontype.Int64:
		n, err := checkAnswerInt(rv.Int64(), rv.String())
		if err != nil {
			return err
		}
		*a = IntAnswer(n)
	case bsontype.Double:
		n, err := integerFromFloat(rv.Double(), rv.String())
		if err != nil {
			return err
		}
		*a = IntAnswer(n)
	case bsontype.String:
		*a = StringAnswer(rv.StringValue())
	case bsontype.Array:
		items, err := rv.Array().Values()
		if err != nil {
			return err
		}
		values := make([]string, 0, len(items))
		for _, item := range items {
			s, ok := item.StringValueOK()
			if !ok {
				return eris.Errorf("answer set item has type %s", item.Type)
			}
			values = append(values, s)
		}
		*a = SetAnswer(values...)
	default:
		return eris.Errorf("cannot decode answer from bson type %s", t)
	}
	return nil
}
