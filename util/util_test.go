package util

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabobank/bssb/conf"
	"github.com/rabobank/bssb/model"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	conf.EncryptKey = "0123456789abcdef0123456789abcdef"

	encrypted, err := Encrypt(`{"username":"b1","password":"secret"}`)
	require.NoError(t, err)
	assert.NotEqual(t, `{"username":"b1","password":"secret"}`, encrypted)

	decrypted, err := Decrypt(encrypted)
	require.NoError(t, err)
	assert.Equal(t, `{"username":"b1","password":"secret"}`, decrypted)
}

func TestEncryptEmptyString(t *testing.T) {
	conf.EncryptKey = "0123456789abcdef0123456789abcdef"

	encrypted, err := Encrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", encrypted)

	decrypted, err := Decrypt("")
	require.NoError(t, err)
	assert.Equal(t, "", decrypted)
}

func TestDecryptTooShort(t *testing.T) {
	conf.EncryptKey = "0123456789abcdef0123456789abcdef"
	_, err := Decrypt("abcd")
	assert.Error(t, err)
}

func TestBasicAuth(t *testing.T) {
	conf.BrokerUser = "broker"
	conf.BrokerPassword = "secret"

	r := httptest.NewRequest(http.MethodGet, "/v2/catalog", nil)
	r.SetBasicAuth("broker", "secret")
	w := httptest.NewRecorder()
	assert.True(t, BasicAuth(w, r, conf.BrokerUser, conf.BrokerPassword))

	r = httptest.NewRequest(http.MethodGet, "/v2/catalog", nil)
	r.SetBasicAuth("broker", "wrong")
	w = httptest.NewRecorder()
	assert.False(t, BasicAuth(w, r, conf.BrokerUser, conf.BrokerPassword))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Basic realm=")

	r = httptest.NewRequest(http.MethodGet, "/v2/catalog", nil)
	w = httptest.NewRecorder()
	assert.False(t, BasicAuth(w, r, conf.BrokerUser, conf.BrokerPassword))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestWriteHttpResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteHttpResponse(w, http.StatusCreated, model.CreateServiceBindingResponse{Credentials: map[string]interface{}{"username": "b1"}})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"credentials":{"username":"b1"}}`, w.Body.String())
}

func TestWriteHttpResponseEmptyObject(t *testing.T) {
	w := httptest.NewRecorder()
	WriteHttpResponse(w, http.StatusOK, struct{}{})
	assert.Equal(t, "{}", w.Body.String())
}

func TestCatalogLookups(t *testing.T) {
	conf.Catalog = model.Catalog{Services: []model.Service{
		{Name: "bookstore-service", Id: "service-1", Plans: []model.ServicePlan{{Name: "standard", Id: "plan-1"}}},
	}}

	assert.Equal(t, "bookstore-service", GetServiceById("service-1").Name)
	assert.Equal(t, "", GetServiceById("no-such-service").Name)
	assert.Equal(t, "standard", GetPlan("service-1", "plan-1").Name)
	assert.Equal(t, "", GetPlan("service-1", "no-such-plan").Name)
}
