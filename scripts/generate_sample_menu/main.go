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

// Seeds a running server with a fuller demo menu than the built-in
// startup seed. Menu creation is auth-gated, so the script logs in as
// the admin first:
//
//	go run ./scripts/generate_sample_menu
//
// Override the target with DINE24_BASE_URL and the admin password
// with ADMIN_PASSWORD.
func main() {
	baseURL := getenv("DINE24_BASE_URL", "http://localhost:5000")
	password := getenv("ADMIN_PASSWORD", "admin123")

	client := &http.Client{Timeout: 5 * time.Second}

	token, err := login(client, baseURL, password)
	if err != nil {
		log.Fatalf("Login failed: %v", err)
	}

	items := []map[string]any{
		{"name": "Butter Chicken", "category": "North Indian", "price": 450, "offer_price": 399, "quantity": "1 plate", "rating": 4.5, "is_veg": false},
		{"name": "Paneer Tikka", "category": "North Indian", "price": 320, "quantity": "6 pieces", "rating": 4.3, "is_veg": true},
		{"name": "Masala Dosa", "category": "South Indian", "price": 180, "quantity": "1 plate", "rating": 4.6, "is_veg": true},
		{"name": "Idli Sambar", "category": "South Indian", "price": 120, "quantity": "4 pieces", "rating": 4.2, "is_veg": true},
		{"name": "Veg Hakka Noodles", "category": "Chinese", "price": 220, "quantity": "1 bowl", "rating": 4.0, "is_veg": true},
		{"name": "Chilli Chicken", "category": "Chinese", "price": 340, "quantity": "1 plate", "rating": 4.4, "is_veg": false},
		{"name": "Grilled Sandwich", "category": "Continental", "price": 160, "quantity": "2 pieces", "rating": 3.9, "is_veg": true},
		{"name": "Gulab Jamun", "category": "Desserts", "price": 90, "quantity": "2 pieces", "rating": 4.7, "is_veg": true},
	}

	created := 0
	for _, item := range items {
		if err := addItem(client, baseURL, token, item); err != nil {
			log.Fatalf("Failed to add %q: %v", item["name"], err)
		}
		fmt.Printf("Added %s (%s)\n", item["name"], item["category"])
		created++
	}

	fmt.Printf("\n%d menu items created.\n", created)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func login(client *http.Client, baseURL, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": "admin",
		"password": password,
	})
	if err != nil {
		return "", err
	}

	resp, err := client.Post(baseURL+"/api/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("no token in response")
	}
	return result.Token, nil
}

func addItem(client *http.Client, baseURL, token string, item map[string]any) error {
	body, err := json.Marshal(item)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/menu", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d", resp.StatusCode)
	}
	return nil
}
