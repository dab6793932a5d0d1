package bigcommerce

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func loginClient(t *testing.T) *Client {
	t.Helper()
	c, err := New(Config{
		ClientID:     "cid",
		ClientSecret: "sekrit",
		AuthToken:    "tok",
		StoreHash:    "abc123",
		StoreURL:     "https://store.example.com",
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return c
}

func TestCustomerLoginTokenSignsVerifiableClaims(t *testing.T) {
	c := loginClient(t)
	tok, err := c.CustomerLoginToken(LoginTokenParams{CustomerID: 42, RedirectTo: "/account"})
	if err != nil {
		t.Fatalf("CustomerLoginToken error: %v", err)
	}

	parsed, err := jwt.Parse(tok, func(t *jwt.Token) (any, error) {
		return []byte("sekrit"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if claims["operation"] != "customer_login" {
		t.Fatalf("operation = %v", claims["operation"])
	}
	if claims["iss"] != "cid" || claims["store_hash"] != "abc123" {
		t.Fatalf("issuer claims wrong: %v", claims)
	}
	if claims["customer_id"] != float64(42) {
		t.Fatalf("customer_id = %v", claims["customer_id"])
	}
	if claims["redirect_to"] != "/account" {
		t.Fatalf("redirect_to = %v", claims["redirect_to"])
	}
	if _, err := uuid.Parse(claims["jti"].(string)); err != nil {
		t.Fatalf("jti is not a uuid: %v", claims["jti"])
	}
}

func TestCustomerLoginTokenUniqueJTI(t *testing.T) {
	c := loginClient(t)
	t1, err := c.CustomerLoginToken(LoginTokenParams{CustomerID: 42})
	if err != nil {
		t.Fatalf("token 1: %v", err)
	}
	t2, err := c.CustomerLoginToken(LoginTokenParams{CustomerID: 42})
	if err != nil {
		t.Fatalf("token 2: %v", err)
	}
	if t1 == t2 {
		t.Fatal("tokens must be single-use; jti should differ")
	}
}

func TestCustomerLoginTokenRequiresOAuthConfig(t *testing.T) {
	c, err := New(Config{StoreURL: "https://x", Username: "u", APIKey: "k"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := c.CustomerLoginToken(LoginTokenParams{CustomerID: 42}); err == nil {
		t.Fatal("expected error without oauth credentials")
	}
}

func TestCustomerLoginTokenRejectsBadCustomerID(t *testing.T) {
	c := loginClient(t)
	if _, err := c.CustomerLoginToken(LoginTokenParams{CustomerID: 0}); err == nil {
		t.Fatal("expected error for zero customer id")
	}
}

func TestCustomerLoginURL(t *testing.T) {
	c := loginClient(t)
	if got := c.CustomerLoginURL("tok123"); got != "https://store.example.com/login/token/tok123" {
		t.Fatalf("CustomerLoginURL = %q", got)
	}
}
