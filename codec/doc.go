/*
Package codec implements the symmetric serializer for attribute-declared models.

Both halves of the codec walk the same attribute registry, which is what makes
them symmetric: for any entity E with only registered attributes populated,

	Decode(Encode(E)) == E

field by field. Adding an attribute to a model means editing its registry
declaration only; construction and persistence pick it up without changes.

Encode writes (name, value) pairs into an abstract KVWriter in declaration
order. Decode builds a fresh entity from an abstract KVReader, leaving any
attribute absent from the source at its default — a deliberate
forward/backward-compatibility policy, not an error.

EncodeBlob and DecodeBlob bridge the attribute-level codec to stores that
persist one opaque value per entity:

	data, err := codec.EncodeBlob(user)
	...
	user, err := codec.DecodeBlob[User](data)

MapWriter and MapReader are the in-memory sink/source used by the blob bridge
and by tests asserting on write order.
*/
package codec
