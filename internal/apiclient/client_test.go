package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kravdojo/gym-api/internal/domain"
)

func TestLoginAndBearerToken(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		switch r.URL.Path {
		case "/api/v1/login":
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@email.com", body["email"])
			_ = json.NewEncoder(w).Encode(map[string]any{
				"user":  map[string]any{"id": "u1", "name": "Ana", "email": "ana@email.com", "role": "member"},
				"token": "tok",
			})
		case "/api/v1/Users":
			_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "u1", "name": "Ana"}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	token := ""
	c := New(srv.URL+"/api/v1/", WithTokenSource(func() string { return token }))

	res, err := c.Login(context.Background(), "ana@email.com", "123456")
	require.NoError(t, err)
	assert.Equal(t, "tok", res.Token)
	assert.Equal(t, "u1", res.User.ID)
	assert.Equal(t, domain.RoleMember, res.User.Role)

	token = res.Token
	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)

	assert.Equal(t, []string{"", "Bearer tok"}, gotAuth)
}

func TestSignUpSendsPascalCase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/Users", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"Nome": "Ana", "Sobrenome": "Costa", "Email": "ana@email.com", "Password": "123456", "Faixa": "Faixa Branca",
		}, body)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"user":  map[string]any{"id": "u2", "name": "Ana", "sobrenome": "Costa", "faixa": "Faixa Branca"},
			"token": "t2",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	user, err := c.CreateUser(context.Background(), domain.User{
		Name: "Ana", Surname: "Costa", Email: "ana@email.com", Password: "123456", Belt: "Faixa Branca",
	})
	require.NoError(t, err)
	assert.Equal(t, "u2", user.ID)
	assert.Equal(t, "Costa", user.Surname)
	assert.Equal(t, "Faixa Branca", user.Belt)
}

func TestErrorsCarryStatusAndMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"status":403,"code":"permission_denied","error":"admin only"}`))
			return
		}
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)

	err := c.DeleteUser(context.Background(), "u1")
	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "admin only", apiErr.Message)

	_, err = c.ListUsers(context.Background())
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream down", apiErr.Message)
}

func TestUpdateAndDelete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Users/u1", r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"name": "Novo"}, body)
			_ = json.NewEncoder(w).Encode(map[string]any{"id": "u1", "name": "Novo"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	name := "Novo"
	user, err := c.UpdateUser(context.Background(), "u1", domain.UserUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Novo", user.Name)

	require.NoError(t, c.DeleteUser(context.Background(), "u1"))
}

func TestListProductsEncodesFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "krav", q.Get("q"))
		assert.Equal(t, "livros", q.Get("category"))
		assert.Equal(t, "50", q.Get("min_price"))
		assert.Equal(t, "100.5", q.Get("max_price"))
		assert.Equal(t, "true", q.Get("in_stock"))
		assert.Empty(t, q.Get("type"))
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": "5", "name": "Manual Krav Maga", "price": 59.9}})
	}))
	defer srv.Close()

	inStock := true
	products, err := New(srv.URL).ListProducts(context.Background(), "krav", domain.ProductFilter{
		Category:   "livros",
		PriceRange: &domain.PriceRange{Min: 50, Max: 100.5},
		InStock:    &inStock,
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 59.9, products[0].Price)
}
