package utils_test

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/lcadata/assembly_backend/utils"
)

func signToken(t *testing.T, secret string, claims *utils.JwtCustomClaim) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestJwtValidate(t *testing.T) {
	claims := &utils.JwtCustomClaim{
		UserId: "user-1",
		Name:   "Test",
		Admin:  true,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}

	parsed, err := utils.JwtValidate(signToken(t, "Assembly-Secret", claims))
	if err != nil {
		t.Fatalf("JwtValidate: %v", err)
	}
	got, ok := parsed.Claims.(*utils.JwtCustomClaim)
	if !ok {
		t.Fatalf("claims type = %T", parsed.Claims)
	}
	if got.UserId != "user-1" || !got.Admin {
		t.Fatalf("claims = %+v", got)
	}
}

func TestJwtValidateRejectsWrongSecret(t *testing.T) {
	claims := &utils.JwtCustomClaim{UserId: "user-1"}
	if _, err := utils.JwtValidate(signToken(t, "other-secret", claims)); err == nil {
		t.Fatalf("JwtValidate accepted a token signed with the wrong secret")
	}
}

func TestJwtValidateRejectsExpiredToken(t *testing.T) {
	claims := &utils.JwtCustomClaim{
		UserId: "user-1",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	if _, err := utils.JwtValidate(signToken(t, "Assembly-Secret", claims)); err == nil {
		t.Fatalf("JwtValidate accepted an expired token")
	}
}
