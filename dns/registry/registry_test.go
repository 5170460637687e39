package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupKnownTypes(t *testing.T) {
	cases := []struct {
		typ    uint16
		fields []FieldTag
	}{
		{1, []FieldTag{TagIPv4}},
		{2, []FieldTag{TagDomainName}},
		{5, []FieldTag{TagDomainName}},
		{12, []FieldTag{TagDomainName}},
		{15, []FieldTag{TagU16, TagDomainName}},
		{16, []FieldTag{TagCharacterString}},
		{28, []FieldTag{TagIPv6}},
		{6, []FieldTag{TagDomainName, TagDomainName, TagU32, TagU32, TagU32, TagU32, TagU32}},
	}

	for _, tc := range cases {
		s, ok := Lookup(tc.typ)
		require.Truef(t, ok, "type %d should be registered", tc.typ)
		require.Equal(t, tc.fields, s.Fields)
	}
}

func TestLookupUnknownType(t *testing.T) {
	_, ok := Lookup(65535)
	require.False(t, ok)
}

func TestResourceBuilderFallsBackToAnything(t *testing.T) {
	s := ResourceBuilder(65535)
	require.Equal(t, Anything, s)
}

func TestResourceBuilderKnownType(t *testing.T) {
	s := ResourceBuilder(1)
	require.Equal(t, Schema{Fields: []FieldTag{TagIPv4}}, s)
}

func TestSchemaComposite(t *testing.T) {
	require.False(t, Schema{Fields: []FieldTag{TagIPv4}}.Composite())
	require.True(t, Schema{Fields: []FieldTag{TagU16, TagDomainName}}.Composite())
	require.False(t, Anything.Composite())
}
