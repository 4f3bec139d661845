package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doJSON(t *testing.T, server http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.ServeHTTP(w, req)
	return w
}

func loginAdmin(t *testing.T, server http.Handler) string {
	t.Helper()

	w := doJSON(t, server, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": testAdminUsername,
		"password": testAdminPassword,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestAuthAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)

	t.Run("login with valid credentials returns a token and user", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": testAdminUsername,
			"password": testAdminPassword,
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Token   string `json:"token"`
			User    struct {
				Username string `json:"username"`
				Role     string `json:"role"`
			} `json:"user"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, testAdminUsername, resp.User.Username)
		assert.Equal(t, "admin", resp.User.Role)
	})

	t.Run("login failures are indistinguishable", func(t *testing.T) {
		wrongPassword := doJSON(t, app.Handler, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": testAdminUsername,
			"password": "wrong",
		})
		wrongUsername := doJSON(t, app.Handler, http.MethodPost, "/api/auth/login", "", map[string]string{
			"username": "intruder",
			"password": testAdminPassword,
		})

		assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
		assert.Equal(t, http.StatusUnauthorized, wrongUsername.Code)
		assert.JSONEq(t, wrongUsername.Body.String(), wrongPassword.Body.String())
	})

	t.Run("issued token passes the auth gate", func(t *testing.T) {
		token := loginAdmin(t, app.Handler)

		w := doJSON(t, app.Handler, http.MethodGet, "/api/reservations", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestReservationAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)
	token := loginAdmin(t, app.Handler)

	t.Run("create then list round-trips through the store", func(t *testing.T) {
		create := doJSON(t, app.Handler, http.MethodPost, "/api/reservations", "", map[string]any{
			"full_name":    "Asha Rao",
			"email":        "asha@example.com",
			"phone":        "9876543210",
			"num_people":   "4",
			"arrival_date": "2024-06-01",
			"arrival_time": "19:30",
		})
		require.Equal(t, http.StatusCreated, create.Code)

		var created struct {
			Success     bool `json:"success"`
			Reservation struct {
				ID        int64  `json:"id"`
				FullName  string `json:"full_name"`
				NumPeople int    `json:"num_people"`
				Purpose   string `json:"purpose"`
				Status    string `json:"status"`
			} `json:"reservation"`
		}
		require.NoError(t, json.NewDecoder(create.Body).Decode(&created))
		assert.True(t, created.Success)
		assert.Equal(t, int64(1), created.Reservation.ID)
		assert.Equal(t, 4, created.Reservation.NumPeople)
		assert.Equal(t, "dining", created.Reservation.Purpose)
		assert.Equal(t, "confirmed", created.Reservation.Status)

		list := doJSON(t, app.Handler, http.MethodGet, "/api/reservations", token, nil)
		require.Equal(t, http.StatusOK, list.Code)

		var listed struct {
			Success      bool `json:"success"`
			Reservations []struct {
				ID       int64  `json:"id"`
				FullName string `json:"full_name"`
			} `json:"reservations"`
		}
		require.NoError(t, json.NewDecoder(list.Body).Decode(&listed))
		require.Len(t, listed.Reservations, 1)
		assert.Equal(t, "Asha Rao", listed.Reservations[0].FullName)
	})

	t.Run("missing field returns 400 naming the field", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodPost, "/api/reservations", "", map[string]any{
			"full_name": "Asha Rao",
			"email":     "asha@example.com",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "phone is required", resp.Error)
	})

	t.Run("listing without a token is rejected", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodGet, "/api/reservations", "", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp struct {
			Success bool   `json:"success"`
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Token is missing", resp.Message)
	})

	t.Run("listing with a garbage token is rejected", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodGet, "/api/reservations", "not-a-token", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var resp struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "Token is invalid", resp.Message)
	})
}

func TestMenuAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)
	token := loginAdmin(t, app.Handler)

	t.Run("seed is idempotent", func(t *testing.T) {
		SeedMenu(t, app)
		SeedMenu(t, app)

		w := doJSON(t, app.Handler, http.MethodGet, "/api/menu", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			MenuItems []struct {
				Name string `json:"name"`
			} `json:"menu_items"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Len(t, resp.MenuItems, 2)
	})

	t.Run("adding requires a token", func(t *testing.T) {
		item := map[string]any{
			"name":     "Masala Dosa",
			"category": "South Indian",
			"price":    180,
			"quantity": "1 plate",
		}

		unauth := doJSON(t, app.Handler, http.MethodPost, "/api/menu", "", item)
		assert.Equal(t, http.StatusUnauthorized, unauth.Code)

		authed := doJSON(t, app.Handler, http.MethodPost, "/api/menu", token, item)
		require.Equal(t, http.StatusCreated, authed.Code)

		var created struct {
			MenuItem struct {
				Name  string `json:"name"`
				IsVeg bool   `json:"is_veg"`
			} `json:"menu_item"`
		}
		require.NoError(t, json.NewDecoder(authed.Body).Decode(&created))
		assert.Equal(t, "Masala Dosa", created.MenuItem.Name)
		assert.True(t, created.MenuItem.IsVeg, "is_veg should default to vegetarian")
	})
}

func TestChatAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)

	tests := []struct {
		name       string
		message    string
		wantSubstr string
	}{
		{"menu keyword", "What's on the MENU today?", "Butter Chicken"},
		{"table keyword", "can I book a table", "table"},
		{"unmatched message falls back", "tell me a joke", "help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, app.Handler, http.MethodPost, "/api/ai-chat", "", map[string]string{
				"message": tt.message,
			})

			require.Equal(t, http.StatusOK, w.Code)

			var resp struct {
				Success  bool   `json:"success"`
				Response string `json:"response"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.True(t, resp.Success)
			assert.Contains(t, resp.Response, tt.wantSubstr)
		})
	}
}

func TestAnalyticsAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)
	token := loginAdmin(t, app.Handler)
	SeedMenu(t, app)

	for _, amount := range []float64{100, 250} {
		w := doJSON(t, app.Handler, http.MethodPost, "/api/reservations", "", map[string]any{
			"full_name":    "Asha Rao",
			"email":        "asha@example.com",
			"phone":        "9876543210",
			"num_people":   2,
			"arrival_date": "2024-06-01",
			"arrival_time": "19:30",
			"total_amount": amount,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("summary reflects stored data", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodGet, "/api/analytics", token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Success   bool `json:"success"`
			Analytics struct {
				TotalReservations    int      `json:"total_reservations"`
				TotalMenuItems       int      `json:"total_menu_items"`
				TotalRevenue         float64  `json:"total_revenue"`
				PopularDishes        []string `json:"popular_dishes"`
				CustomerSatisfaction float64  `json:"customer_satisfaction"`
			} `json:"analytics"`
		}
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 2, resp.Analytics.TotalReservations)
		assert.Equal(t, 2, resp.Analytics.TotalMenuItems)
		assert.Equal(t, 350.0, resp.Analytics.TotalRevenue)
		assert.Equal(t, []string{"Butter Chicken"}, resp.Analytics.PopularDishes)
		assert.Equal(t, 4.5, resp.Analytics.CustomerSatisfaction)
	})

	t.Run("requires a token", func(t *testing.T) {
		w := doJSON(t, app.Handler, http.MethodGet, "/api/analytics", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHealthAPI_Integration(t *testing.T) {
	app := SetupTestApp(t)

	w := doJSON(t, app.Handler, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
}
