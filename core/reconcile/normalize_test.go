package reconcile

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_EquivalentForms(t *testing.T) {
	// normalize(123) == normalize("123") == normalize(123.0)
	assert.Equal(t, Normalize(123), Normalize("123"))
	assert.Equal(t, Normalize("123"), Normalize(123.0))
	assert.Equal(t, "123", Normalize(float64(123)))
	assert.Equal(t, "123", Normalize("123.0"))
}

func TestNormalize_Sentinel(t *testing.T) {
	assert.Equal(t, EmptyReference, Normalize(nil))
	assert.Equal(t, EmptyReference, Normalize(""))
	assert.Equal(t, EmptyReference, Normalize(math.NaN()))
}

func TestNormalize_FractionalFloatKept(t *testing.T) {
	assert.Equal(t, "123.5", Normalize(123.5))
	assert.Equal(t, "123.5", Normalize("123.5"))
}

func TestNormalize_PlainStringsUntouched(t *testing.T) {
	assert.Equal(t, "ABC-01", Normalize("ABC-01"))
	// Case-sensitive, no trimming beyond the numeric collapse.
	assert.Equal(t, "abc", Normalize("abc"))
	assert.NotEqual(t, Normalize("ABC"), Normalize("abc"))
	// Version-like strings are not valid floats and stay as-is.
	assert.Equal(t, "1.2.3", Normalize("1.2.3"))
}

func TestNormalize_NegativeAndLarge(t *testing.T) {
	assert.Equal(t, "-5", Normalize(-5.0))
	assert.Equal(t, "8001234567890", Normalize(8001234567890.0))
}
