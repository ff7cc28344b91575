package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, map[string]string{"code": "not_found"}, http.StatusNotFound)

	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":"not_found"}`, w.Body.String())
}

func TestWriteJSONAs_ContentType(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSONAs(w, "application/connect+json", struct{}{}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "application/connect+json", w.Header().Get("Content-Type"))
}

func TestWriteJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReadJSON(t *testing.T) {
	var v struct {
		Page int32 `json:"page"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"page":3}`))

	require.NoError(t, ReadJSON(r, &v))
	assert.Equal(t, int32(3), v.Page)
}

func TestReadJSON_EmptyBody(t *testing.T) {
	v := struct{ Page int32 }{Page: 7}
	r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)

	require.NoError(t, ReadJSON(r, &v))
	assert.Equal(t, int32(7), v.Page)
}

func TestReadJSON_Malformed(t *testing.T) {
	var v map[string]any
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"page":`))

	assert.Error(t, ReadJSON(r, &v))
}
