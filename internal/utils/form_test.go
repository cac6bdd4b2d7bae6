package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeForm_SpecialCharacters(t *testing.T) {
	body := EncodeForm(
		FormField{Key: "username", Value: "a b"},
		FormField{Key: "password", Value: "p&q"},
	)

	assert.Equal(t, "username=a%20b&password=p%26q", body)
}

func TestEncodeForm_KeepsInsertionOrder(t *testing.T) {
	body := EncodeForm(
		FormField{Key: "z", Value: "1"},
		FormField{Key: "a", Value: "2"},
	)

	assert.Equal(t, "z=1&a=2", body)
}

func TestEncodeForm_Empty(t *testing.T) {
	assert.Equal(t, "", EncodeForm())
}

func TestEncodeForm_EmptyValue(t *testing.T) {
	assert.Equal(t, "username=&password=", EncodeForm(
		FormField{Key: "username"},
		FormField{Key: "password"},
	))
}

func TestEncodeURIComponent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "abcXYZ019", want: "abcXYZ019"},
		{name: "email", in: "u@test.com", want: "u%40test.com"},
		{name: "space", in: "a b", want: "a%20b"},
		{name: "plus", in: "a+b", want: "a%2Bb"},
		{name: "reserved", in: "=&?/#", want: "%3D%26%3F%2F%23"},
		{name: "unreserved marks", in: "-_.!~*'()", want: "-_.!~*'()"},
		{name: "utf-8", in: "ш", want: "%D1%88"},
		{name: "percent", in: "100%", want: "100%25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeURIComponent(tt.in))
		})
	}
}

func TestEncodeForm_ParsesBack(t *testing.T) {
	secret := "p&q=r s+t%"
	body := EncodeForm(
		FormField{Key: "username", Value: "u@test.com"},
		FormField{Key: "password", Value: secret},
	)

	values, err := url.ParseQuery(body)
	require.NoError(t, err)
	assert.Equal(t, "u@test.com", values.Get("username"))
	assert.Equal(t, secret, values.Get("password"))
}
