package protocol

import (
	"bytes"
	"encoding/asn1"
	"sort"
)

// AnySet is a helper for dealing with SET OF ANY types.
type AnySet struct {
	Elements []asn1.RawValue `asn1:"set"`
}

// NewAnySet creates a new AnySet.
func NewAnySet(elts ...asn1.RawValue) AnySet {
	return AnySet{elts}
}

// DecodeAnySet manually decodes a SET OF ANY type, since Go's parser can't
// handle them.
func DecodeAnySet(rv asn1.RawValue) (as AnySet, err error) {
	// Make sure it's really a SET.
	if rv.Class != asn1.ClassUniversal || rv.Tag != asn1.TagSet {
		err = ErrWrongType
		return
	}

	// Decode each element.
	der := rv.Bytes
	for len(der) > 0 {
		var elt asn1.RawValue
		if der, err = asn1.Unmarshal(der, &elt); err != nil {
			return
		}

		as.Elements = append(as.Elements, elt)
	}

	return
}

// Encode manually encodes a SET OF ANY type, since Go's parser can't handle
// them. Elements are written in DER SET OF order.
func (as AnySet) Encode(dst *asn1.RawValue) (err error) {
	encoded := make([][]byte, 0, len(as.Elements))
	for _, elt := range as.Elements {
		var der []byte
		if len(elt.FullBytes) > 0 {
			der = elt.FullBytes
		} else if der, err = asn1.Marshal(elt); err != nil {
			return
		}
		encoded = append(encoded, der)
	}

	sort.Slice(encoded, func(i, j int) bool {
		return bytes.Compare(encoded[i], encoded[j]) < 0
	})

	var der []byte
	if der, err = asn1.Marshal(asn1.RawValue{
		Class:      asn1.ClassUniversal,
		Tag:        asn1.TagSet,
		IsCompound: true,
		Bytes:      bytes.Join(encoded, nil),
	}); err != nil {
		return
	}

	_, err = asn1.Unmarshal(der, dst)

	return
}
