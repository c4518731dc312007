package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/doccatalog/internal/foundation/errors"
)

type span struct{ lo, hi int }

func TestValidatorChain(t *testing.T) {
	ordered := func(s span) ValidationResult {
		if s.lo > s.hi {
			return Invalid(NewFieldError("lo", "order", "must not exceed hi"))
		}
		return Valid()
	}
	positive := func(s span) ValidationResult {
		if s.lo < 0 {
			return Invalid(NewFieldError("lo", "min", "must be positive"))
		}
		return Valid()
	}
	chain := NewValidatorChain(ordered).Add(positive)

	assert.True(t, chain.Validate(span{1, 2}).Valid)

	res := chain.Validate(span{-1, -2})
	assert.False(t, res.Valid)
	require.Len(t, res.Errors, 2)
	assert.Equal(t, "lo: must not exceed hi", res.Errors[0].Error())

	err := res.ToErrorIn(errors.CategoryConfig)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
	assert.Equal(t, "lo: must not exceed hi; lo: must be positive", err.(*errors.ClassifiedError).Message())

	assert.True(t, errors.HasCategory(res.ToError(), errors.CategoryValidation))
	assert.NoError(t, Valid().ToError())
}

func TestFieldError_WithoutField(t *testing.T) {
	assert.Equal(t, "broken", NewFieldError("", "x", "broken").Error())
}
