package apartment

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"imobiliare/internal/database"
	"imobiliare/internal/domain"
	"imobiliare/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(repository.NewApartmentRepository(db))

	router := gin.New()
	api := router.Group("/api")
	handler.RegisterRoutes(api)

	return router, db
}

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func validPayload() domain.Apartment {
	return domain.Apartment{
		Address: "Str. Avram Iancu 12",
		City:    "Cluj-Napoca",
		Price:   95000,
		Surface: 54,
		Rooms:   2,
		Owner: &domain.Owner{
			Name:  "Ion Popescu",
			Email: "ion.popescu@example.com",
		},
	}
}

func TestCreateThenGetReturnsEquivalentRecord(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodPost, "/api/apartments", validPayload())
	require.Equal(t, http.StatusCreated, resp.Code)

	var created domain.Apartment
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotZero(t, created.ID)
	require.NotZero(t, created.OwnerID)

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/api/apartments/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var fetched domain.Apartment
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.Address, fetched.Address)
	assert.Equal(t, created.City, fetched.City)
	assert.Equal(t, created.Price, fetched.Price)
	assert.Equal(t, created.OwnerID, fetched.OwnerID)
	require.NotNil(t, fetched.Owner)
	assert.Equal(t, "Ion Popescu", fetched.Owner.Name)
}

func TestCreateValidation(t *testing.T) {
	router, db := setupRouter(t)

	payload := validPayload()
	payload.Address = ""
	payload.Price = 0

	resp := performRequest(router, http.MethodPost, "/api/apartments", payload)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "validation failed", body.Error)
	assert.Contains(t, body.Details, "Address")
	assert.Contains(t, body.Details, "Price")

	var count int64
	require.NoError(t, db.Model(&domain.Apartment{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGetUnknownApartment(t *testing.T) {
	router, _ := setupRouter(t)

	resp := performRequest(router, http.MethodGet, "/api/apartments/9999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(router, http.MethodGet, "/api/apartments/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestListByOwnerFiltersByOwner(t *testing.T) {
	router, db := setupRouter(t)

	first := domain.Owner{Name: "Ion Popescu", Email: "ion.popescu@example.com"}
	second := domain.Owner{Name: "Maria Ionescu", Email: "maria.ionescu@example.com"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	a1 := domain.Apartment{Address: "Str. Avram Iancu 12", City: "Cluj-Napoca", Price: 95000, OwnerID: first.ID}
	a2 := domain.Apartment{Address: "Bd. Unirii 40", City: "Bucuresti", Price: 150000, OwnerID: second.ID}
	require.NoError(t, db.Create(&a1).Error)
	require.NoError(t, db.Create(&a2).Error)

	resp := performRequest(router, http.MethodGet, fmt.Sprintf("/api/apartments/getByOwner/%d", first.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var apartments []domain.Apartment
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apartments))
	require.Len(t, apartments, 1)
	assert.Equal(t, a1.ID, apartments[0].ID)

	// unknown owner is an empty list, not an error
	resp = performRequest(router, http.MethodGet, "/api/apartments/getByOwner/9999", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	apartments = nil
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &apartments))
	assert.Empty(t, apartments)
}

func TestUpdateIsUpsert(t *testing.T) {
	router, db := setupRouter(t)

	owner := domain.Owner{Name: "Ion Popescu", Email: "ion.popescu@example.com"}
	require.NoError(t, db.Create(&owner).Error)

	// unknown id creates the row instead of failing
	payload := domain.Apartment{ID: 77, Address: "Str. Closca 5", City: "Timisoara", Price: 72000, OwnerID: owner.ID}
	resp := performRequest(router, http.MethodPut, "/api/apartments", payload)
	require.Equal(t, http.StatusOK, resp.Code)

	var stored domain.Apartment
	require.NoError(t, db.First(&stored, 77).Error)
	assert.Equal(t, "Str. Closca 5", stored.Address)

	// full replace of the existing row
	payload.Price = 74500
	resp = performRequest(router, http.MethodPut, "/api/apartments", payload)
	require.Equal(t, http.StatusOK, resp.Code)

	require.NoError(t, db.First(&stored, 77).Error)
	assert.Equal(t, 74500.0, stored.Price)
}

func TestDeleteThenGetFails(t *testing.T) {
	router, db := setupRouter(t)

	owner := domain.Owner{Name: "Ion Popescu", Email: "ion.popescu@example.com"}
	require.NoError(t, db.Create(&owner).Error)
	apartment := domain.Apartment{Address: "Str. Avram Iancu 12", City: "Cluj-Napoca", Price: 95000, OwnerID: owner.ID}
	require.NoError(t, db.Create(&apartment).Error)

	resp := performRequest(router, http.MethodDelete, fmt.Sprintf("/api/apartments/%d", apartment.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, fmt.Sprintf("Apartment with id %d was successfully deleted", apartment.ID), resp.Body.String())

	resp = performRequest(router, http.MethodGet, fmt.Sprintf("/api/apartments/%d", apartment.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = performRequest(router, http.MethodDelete, fmt.Sprintf("/api/apartments/%d", apartment.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
