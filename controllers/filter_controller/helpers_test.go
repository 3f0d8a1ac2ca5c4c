package filter_controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCriteria(t *testing.T) {
	values, err := url.ParseQuery("MinPrice=9.5&maxprice=-1&size=%20Large%20&highlight=a,,B,a")
	require.NoError(t, err)

	criteria, err := parseCriteria(values)
	require.NoError(t, err)
	require.NotNil(t, criteria.MinPrice)
	require.NotNil(t, criteria.MaxPrice)
	assert.Equal(t, 9.5, *criteria.MinPrice)
	assert.Equal(t, -1.0, *criteria.MaxPrice)
	assert.Equal(t, "Large", criteria.Size)
	assert.Equal(t, []string{"a", "B"}, criteria.Highlight)
}

func TestParseCriteria_Empty(t *testing.T) {
	criteria, err := parseCriteria(url.Values{})
	require.NoError(t, err)
	assert.Nil(t, criteria.MinPrice)
	assert.Nil(t, criteria.MaxPrice)
	assert.Empty(t, criteria.Size)
	assert.False(t, criteria.HasHighlight())
}

func TestParseCriteria_MixedSpellings(t *testing.T) {
	values := url.Values{
		"MinPrice": {"20"},
		"minprice": {"10"},
		"MAXPRICE": {"90"},
		"MaxPrice": {"80"},
		"SIZE":     {" "},
		"Size":     {"Large"},
	}

	for range 50 {
		criteria, err := parseCriteria(values)
		require.NoError(t, err)
		assert.Equal(t, 10.0, *criteria.MinPrice)
		assert.Equal(t, 90.0, *criteria.MaxPrice)
		assert.Equal(t, "Large", criteria.Size)
	}
}

func TestParsePrice(t *testing.T) {
	p, err := parsePrice("minprice", "")
	assert.NoError(t, err)
	assert.Nil(t, p)

	_, err = parsePrice("minprice", "ten")
	assert.ErrorContains(t, err, "minprice")

	assert.Equal(t, "12.5", formatPrice(&[]float64{12.5}[0]))
	assert.Equal(t, "", formatPrice(nil))
}
