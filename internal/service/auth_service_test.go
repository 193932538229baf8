package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/jobledger/internal/auth"
	"github.com/mmynk/jobledger/internal/middleware"
	"github.com/mmynk/jobledger/internal/storage/jsonfile"
	pb "github.com/mmynk/jobledger/pkg/proto"
	"github.com/mmynk/jobledger/pkg/proto/protoconnect"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// setupAuthServer serves both services the way the server binary does: login
// is open, the ledger requires a token.
func setupAuthServer(t *testing.T) (protoconnect.AuthServiceClient, protoconnect.LedgerServiceClient) {
	t.Helper()

	hash, err := auth.HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	jwtManager := auth.NewJWTManager(testSecret, time.Hour)

	store, err := jsonfile.Open(filepath.Join(t.TempDir(), "ledger.json"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	ledgerSvc, err := NewLedgerService(context.Background(), store, testLogger())
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	authSvc := NewAuthService(auth.NewOwnerAuthenticator("dana", hash), jwtManager, testLogger())

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(authSvc))
	mux.Handle(protoconnect.NewLedgerServiceHandler(ledgerSvc,
		connect.WithInterceptors(middleware.RequireAuth(jwtManager)),
	))
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		protoconnect.NewLedgerServiceClient(http.DefaultClient, server.URL)
}

func TestLogin(t *testing.T) {
	authClient, _ := setupAuthServer(t)

	tests := []struct {
		name     string
		user     string
		password string
		wantCode connect.Code
	}{
		{"valid", "dana", "correct horse", 0},
		{"wrong password", "dana", "battery staple", connect.CodeUnauthenticated},
		{"unknown owner", "eve", "correct horse", connect.CodeUnauthenticated},
		{"missing password", "dana", "", connect.CodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := authClient.Login(context.Background(), connect.NewRequest(&pb.LoginRequest{
				Name:     tt.user,
				Password: tt.password,
			}))
			if tt.wantCode != 0 {
				if connect.CodeOf(err) != tt.wantCode {
					t.Errorf("expected %v, got %v", tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login failed: %v", err)
			}
			if resp.Msg.Token == "" || resp.Msg.UserName != "dana" {
				t.Errorf("unexpected response %+v", resp.Msg)
			}
			if resp.Msg.ExpiresAt <= time.Now().Unix() {
				t.Errorf("token already expired: %d", resp.Msg.ExpiresAt)
			}
		})
	}
}

func TestLedgerRequiresToken(t *testing.T) {
	authClient, ledgerClient := setupAuthServer(t)
	ctx := context.Background()

	_, err := ledgerClient.ListProjects(ctx, connect.NewRequest(&pb.ListProjectsRequest{}))
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Fatalf("expected Unauthenticated without a token, got %v", err)
	}

	login, err := authClient.Login(ctx, connect.NewRequest(&pb.LoginRequest{Name: "dana", Password: "correct horse"}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	req := connect.NewRequest(&pb.CreateProjectRequest{Name: "Deck"})
	req.Header().Set("Authorization", "Bearer "+login.Msg.Token)
	resp, err := ledgerClient.CreateProject(ctx, req)
	if err != nil {
		t.Fatalf("CreateProject with token failed: %v", err)
	}
	if !resp.Msg.Persisted {
		t.Errorf("expected the document store to persist the project")
	}

	bad := connect.NewRequest(&pb.ListProjectsRequest{})
	bad.Header().Set("Authorization", "Bearer not-a-token")
	if _, err := ledgerClient.ListProjects(ctx, bad); connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("expected Unauthenticated for a bad token, got %v", err)
	}
}
