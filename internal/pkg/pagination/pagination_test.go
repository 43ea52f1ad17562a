package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paramsFor(t *testing.T, query string) *Params {
	t.Helper()

	app := fiber.New()
	var params *Params
	app.Get("/", func(c *fiber.Ctx) error {
		params = GetParams(c)
		return nil
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?"+query, nil))
	require.NoError(t, err)
	return params
}

func TestGetParams(t *testing.T) {
	params := paramsFor(t, "page=3&limit=10")
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Limit)
	assert.Equal(t, 20, params.Offset)
}

func TestGetParamsDefaults(t *testing.T) {
	params := paramsFor(t, "")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
	assert.Equal(t, 0, params.Offset)
}

func TestGetParamsClamping(t *testing.T) {
	params := paramsFor(t, "page=-1&limit=9999")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxLimit, params.Limit)

	params = paramsFor(t, "page=abc&limit=0")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultLimit, params.Limit)
}

func TestGetMeta(t *testing.T) {
	meta := GetMeta(&Params{Page: 2, Limit: 10}, 25)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.True(t, meta.HasNext)
	assert.True(t, meta.HasPrev)

	meta = GetMeta(&Params{Page: 1, Limit: 10}, 5)
	assert.Equal(t, 1, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrev)
}
