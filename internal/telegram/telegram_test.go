package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient_Validation(t *testing.T) {
	tests := []struct {
		name      string
		botToken  string
		chatID    string
		wantError bool
	}{
		{
			name:      "valid parameters",
			botToken:  "test-token",
			chatID:    "12345",
			wantError: false,
		},
		{
			name:      "empty bot token",
			botToken:  "",
			chatID:    "12345",
			wantError: true,
		},
		{
			name:      "empty chat ID",
			botToken:  "test-token",
			chatID:    "",
			wantError: true,
		},
		{
			name:      "both empty",
			botToken:  "",
			chatID:    "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.botToken, tt.chatID)
			if tt.wantError {
				if err == nil {
					t.Error("NewClient() expected error, got nil")
				}
				if client != nil {
					t.Error("NewClient() should return nil client on error")
				}
				return
			}
			if err != nil {
				t.Errorf("NewClient() unexpected error: %v", err)
			}
			if client == nil {
				t.Fatal("NewClient() returned nil client")
			}
			if client.httpClient == nil {
				t.Error("httpClient should not be nil")
			}
		})
	}
}

func TestSendMessage_EmptyText(t *testing.T) {
	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage(""); err == nil {
		t.Error("SendMessage() expected error for empty message, got nil")
	}
}

func TestSendMessage_Success(t *testing.T) {
	var gotPayload map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" {
			t.Errorf("expected POST request, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decoding payload: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage("Test message"); err != nil {
		t.Fatalf("SendMessage() unexpected error: %v", err)
	}

	if gotPayload["chat_id"] != "12345" {
		t.Errorf("chat_id = %v, want 12345", gotPayload["chat_id"])
	}
	if gotPayload["text"] != "Test message" {
		t.Errorf("text = %v, want 'Test message'", gotPayload["text"])
	}
	if gotPayload["parse_mode"] != "HTML" {
		t.Errorf("parse_mode = %v, want HTML", gotPayload["parse_mode"])
	}
}

func TestSendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Bad Request: chat not found",
		})
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "test-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	err := client.SendMessage("Test message")
	if err == nil {
		t.Fatal("SendMessage() expected error for ok=false response")
	}
}

func TestSendMessage_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer server.Close()

	originalURL := apiBaseURL
	apiBaseURL = server.URL + "/bot"
	defer func() { apiBaseURL = originalURL }()

	client := &Client{
		botToken:   "bad-token",
		chatID:     "12345",
		httpClient: &http.Client{},
	}

	if err := client.SendMessage("Test message"); err == nil {
		t.Fatal("SendMessage() expected error for 401 response")
	}
}
