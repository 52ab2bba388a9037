package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depcache/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	t.Parallel()

	a := domain.NewInternedString("com.squareup.okio")
	b := domain.NewInternedString("com.squareup." + "okio")

	assert.Equal(t, a, b)
	assert.Equal(t, "com.squareup.okio", a.String())
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, domain.NewInternedString("com.squareup.okhttp3"))
}

func TestInternedString_Zero(t *testing.T) {
	t.Parallel()

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
	assert.False(t, domain.NewInternedString("").IsZero())
}
