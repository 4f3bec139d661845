package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"
)

// Smoke-checks a running server: health, login, reservation create,
// authorized list, chat and analytics. Run it against a freshly
// started instance:
//
//	go run ./scripts/smoke_api
//
// Override the target with DINE24_BASE_URL and the admin password
// with ADMIN_PASSWORD.
func main() {
	baseURL := getenv("DINE24_BASE_URL", "http://localhost:5000")
	password := getenv("ADMIN_PASSWORD", "admin123")

	client := &http.Client{Timeout: 5 * time.Second}

	fmt.Printf("Target: %s\n\n", baseURL)

	// 1. Health
	var health struct {
		Status string `json:"status"`
	}
	mustGet(client, baseURL+"/api/health", "", &health)
	if health.Status != "healthy" {
		log.Fatalf("unexpected health status: %q", health.Status)
	}
	fmt.Println("health ........... ok")

	// 2. Login
	var login struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	mustPost(client, baseURL+"/api/auth/login", "", map[string]string{
		"username": "admin",
		"password": password,
	}, &login)
	if !login.Success || login.Token == "" {
		log.Fatal("login did not return a token")
	}
	fmt.Println("login ............ ok")

	// 3. Create a reservation (public endpoint)
	var created struct {
		Success     bool `json:"success"`
		Reservation struct {
			ID int64 `json:"id"`
		} `json:"reservation"`
	}
	mustPost(client, baseURL+"/api/reservations", "", map[string]any{
		"full_name":    "Smoke Test",
		"email":        "smoke@example.com",
		"phone":        "9999999999",
		"num_people":   2,
		"arrival_date": time.Now().Format("2006-01-02"),
		"arrival_time": "19:00",
	}, &created)
	if !created.Success || created.Reservation.ID == 0 {
		log.Fatal("reservation was not created")
	}
	fmt.Printf("reservation ...... ok (id=%d)\n", created.Reservation.ID)

	// 4. List reservations requires the token
	noAuthReq, err := http.NewRequest(http.MethodGet, baseURL+"/api/reservations", nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	unauth, err := client.Do(noAuthReq)
	if err != nil {
		log.Fatalf("list reservations without token: %v", err)
	}
	unauth.Body.Close()
	if unauth.StatusCode != http.StatusUnauthorized {
		log.Fatalf("expected 401 without token, got %d", unauth.StatusCode)
	}
	var list struct {
		Success      bool             `json:"success"`
		Reservations []map[string]any `json:"reservations"`
	}
	mustGet(client, baseURL+"/api/reservations", login.Token, &list)
	if !list.Success || len(list.Reservations) == 0 {
		log.Fatal("authorized list returned no reservations")
	}
	fmt.Printf("list ............. ok (%d reservations, 401 without token)\n", len(list.Reservations))

	// 5. Chat
	var chat struct {
		Success  bool   `json:"success"`
		Response string `json:"response"`
	}
	mustPost(client, baseURL+"/api/ai-chat", "", map[string]string{
		"message": "what is on the menu?",
	}, &chat)
	if !chat.Success || chat.Response == "" {
		log.Fatal("chat returned no response")
	}
	fmt.Println("chat ............. ok")

	// 6. Analytics (protected)
	var analytics struct {
		Success   bool `json:"success"`
		Analytics struct {
			TotalReservations int `json:"total_reservations"`
		} `json:"analytics"`
	}
	mustGet(client, baseURL+"/api/analytics", login.Token, &analytics)
	if !analytics.Success {
		log.Fatal("analytics request failed")
	}
	fmt.Printf("analytics ........ ok (%d reservations counted)\n\n", analytics.Analytics.TotalReservations)

	fmt.Println("All smoke checks passed.")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func mustGet(client *http.Client, url, token string, out any) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Fatalf("build request for %s: %v", url, err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	do(client, req, out)
}

func mustPost(client *http.Client, url, token string, payload, out any) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Fatalf("marshal payload for %s: %v", url, err)
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Fatalf("build request for %s: %v", url, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	do(client, req, out)
}

func do(client *http.Client, req *http.Request, out any) {
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Fatalf("%s %s: status %d", req.Method, req.URL, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Fatalf("decode response from %s: %v", req.URL, err)
	}
}
