package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yptkiasma/admin-backend/internal/models"
	"github.com/yptkiasma/admin-backend/internal/types"
)

func TestCreateDonorRequiresAuth(t *testing.T) {
	r, _, _ := setupTest(t)

	w := doRequest(t, r, "POST", "/api/donors", donorBody("Jane"), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func donorBody(name string) map[string]interface{} {
	return map[string]interface{}{"name": name}
}

func TestDonorLifecycle(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, "POST", "/api/donors", map[string]interface{}{
		"name":  "Jane",
		"email": "jane@example.com",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Donor
	decodeJSON(t, w, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Jane", created.Name)

	w = doRequest(t, r, "GET", "/api/donors/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		models.Donor
		Donations []models.Donation `json:"donations"`
	}
	decodeJSON(t, w, &fetched)
	assert.Equal(t, created.ID, fetched.ID)
	assert.NotNil(t, fetched.Donations)
	assert.Empty(t, fetched.Donations)

	w = doRequest(t, r, "PUT", "/api/donors/"+created.ID, map[string]interface{}{
		"name": "Jane Doe",
	}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Donor
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Jane Doe", updated.Name)

	w = doRequest(t, r, "DELETE", "/api/donors/"+created.ID, nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Donor deleted successfully")

	w = doRequest(t, r, "GET", "/api/donors/"+created.ID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateMissingDonorReturnsNotFound(t *testing.T) {
	r, _, token := setupTest(t)

	w := doRequest(t, r, "PUT", "/api/donors/does-not-exist", donorBody("X"), token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, "DELETE", "/api/donors/does-not-exist", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDonorsPagination(t *testing.T) {
	r, _, token := setupTest(t)

	for i := 0; i < 5; i++ {
		w := doRequest(t, r, "POST", "/api/donors", donorBody(fmt.Sprintf("Donor %d", i)), token)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(t, r, "GET", "/api/donors?page=2&limit=2", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data       []map[string]interface{} `json:"data"`
		Pagination types.Pagination         `json:"pagination"`
	}
	decodeJSON(t, w, &resp)

	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Pagination.Page)
	assert.Equal(t, 2, resp.Pagination.Limit)
	assert.Equal(t, int64(5), resp.Pagination.Total)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
}
