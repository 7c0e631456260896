package auth

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// testJwtPrivateKey is initialized in TestMain.
var testJwtPrivateKey *ecdsa.PrivateKey

const (
	validKeyFile   = "test_valid_private.pem"
	invalidKeyFile = "test_invalid_private.pem"
)

// TestMain writes a valid and an invalid PEM key for the key loading tests.
func TestMain(m *testing.M) {
	validKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		log.Fatalf("Failed to generate ECDSA private key for tests: %v", err)
	}
	testJwtPrivateKey = validKey

	if err := WriteECDSAPrivateKey(validKeyFile, validKey); err != nil {
		log.Fatalf("Failed to write valid private key to PEM: %v", err)
	}

	if err := os.WriteFile(invalidKeyFile,
		[]byte("-----BEGIN INVALID KEY-----\nnot-a-real-key\n-----END INVALID KEY-----\n"), 0o600); err != nil {
		log.Fatalf("Failed to write invalid key to PEM: %v", err)
	}

	code := m.Run()

	for _, f := range []string{validKeyFile, invalidKeyFile} {
		if err := os.Remove(f); err != nil {
			log.Printf("Warning: failed to remove %s: %v", f, err)
		}
	}

	os.Exit(code)
}

func TestCreateToken(t *testing.T) {
	type args struct {
		sessionID  string
		userName   string
		privateKey *ecdsa.PrivateKey
		ttl        time.Duration
	}
	tests := []struct {
		name    string
		args    args
		wantTTL time.Duration
		wantErr bool
	}{
		{
			name: "Successful token creation for valid user",
			args: args{
				sessionID:  uuid.NewString(),
				userName:   "operadora",
				privateKey: testJwtPrivateKey,
				ttl:        30 * time.Minute,
			},
			wantTTL: 30 * time.Minute,
		},
		{
			name: "Default TTL when none is given",
			args: args{
				sessionID:  uuid.NewString(),
				userName:   "operadora",
				privateKey: testJwtPrivateKey,
			},
			wantTTL: DefaultTTL,
		},
		{
			name: "Error with nil private key",
			args: args{
				sessionID: uuid.NewString(),
				userName:  "operadora",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTokenString, err := CreateToken(tt.args.sessionID, tt.args.userName, tt.args.privateKey, tt.args.ttl)
			if (err != nil) != tt.wantErr {
				t.Errorf("CreateToken() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}

			parsedToken, parseErr := jwt.ParseWithClaims(gotTokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return &tt.args.privateKey.PublicKey, nil
			}, jwt.WithValidMethods([]string{"ES256"}))
			if parseErr != nil {
				t.Fatalf("Failed to parse or validate token: %v", parseErr)
			}

			claims, ok := parsedToken.Claims.(*SessionClaims)
			if !ok {
				t.Fatal("Failed to cast claims to *SessionClaims")
			}
			if claims.Username != tt.args.userName {
				t.Errorf("Expected Username to be %s, got %s", tt.args.userName, claims.Username)
			}
			if claims.SessionID != tt.args.sessionID {
				t.Errorf("Expected SessionID to be %s, got %s", tt.args.sessionID, claims.SessionID)
			}

			now := time.Now()
			if claims.ExpiresAt == nil ||
				claims.ExpiresAt.Before(now.Add(tt.wantTTL-time.Minute)) ||
				claims.ExpiresAt.After(now.Add(tt.wantTTL+time.Minute)) {
				t.Errorf("ExpiresAt claim is not within expected range, got %v", claims.ExpiresAt)
			}
			if claims.Issuer != ISSUER {
				t.Errorf("Expected Issuer to be %s, got %s", ISSUER, claims.Issuer)
			}
			if claims.Subject != SUBJECT {
				t.Errorf("Expected Subject to be %s, got %s", SUBJECT, claims.Subject)
			}
			if _, err := uuid.Parse(claims.ID); err != nil {
				t.Errorf("ID (JTI) claim is not a valid UUID: %v", err)
			}
		})
	}
}

func TestVerifyToken(t *testing.T) {
	otherKey, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	valid, err := CreateToken("sid-1", "operadora", testJwtPrivateKey, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create token for test: %v", err)
	}
	signedByOther, err := CreateToken("sid-1", "operadora", otherKey, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create token for test: %v", err)
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodES256, SessionClaims{
		SessionID: "sid-1",
		Username:  "operadora",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Issuer:    ISSUER,
			Subject:   SUBJECT,
			Audience:  []string{"web" + ISSUER},
		},
	}).SignedString(testJwtPrivateKey)
	if err != nil {
		t.Fatalf("Failed to sign expired token: %v", err)
	}
	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name        string
		tokenString string
		wantErr     bool
	}{
		{name: "Successful token verification with valid token", tokenString: valid},
		{name: "Error with invalid token format", tokenString: "invalid-token-format", wantErr: true},
		{name: "Error with tampered token", tokenString: tampered, wantErr: true},
		{name: "Error with expired token", tokenString: expired, wantErr: true},
		{name: "Error with token signed by different key", tokenString: signedByOther, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims, err := VerifyToken(tt.tokenString, &testJwtPrivateKey.PublicKey)
			if (err != nil) != tt.wantErr {
				t.Errorf("VerifyToken() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if gotClaims.Username != "operadora" {
				t.Errorf("Expected Username to be 'operadora', got %s", gotClaims.Username)
			}
			if gotClaims.SessionID != "sid-1" {
				t.Errorf("Expected SessionID to be 'sid-1', got %s", gotClaims.SessionID)
			}
		})
	}
}
