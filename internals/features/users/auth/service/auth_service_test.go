package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"paisleygames_backend/internals/constants"
	authHelper "paisleygames_backend/internals/features/users/auth/helper"
	userModel "paisleygames_backend/internals/features/users/user/model"
)

func newAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&userModel.AdminModel{}, &userModel.UserModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := authHelper.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return hash
}

// A user may share a username with an admin; the admin row only claims the
// login when its own password matches.
func TestLoginSharedUsernameFallsThroughToUser(t *testing.T) {
	db := newAuthTestDB(t)
	db.Create(&userModel.AdminModel{Username: "bob", Password: mustHash(t, "admin-secret-1")})
	db.Create(&userModel.UserModel{Username: "bob", Email: "bob@example.com", Password: mustHash(t, "user-secret-1")})

	result, err := Login(db, "bob", "admin-secret-1")
	if err != nil {
		t.Fatalf("admin login rejected: %v", err)
	}
	if result.Role != constants.RoleAdmin {
		t.Errorf("role = %q, want admin", result.Role)
	}

	result, err = Login(db, "bob", "user-secret-1")
	if err != nil {
		t.Fatalf("user login with shared username rejected: %v", err)
	}
	if result.Role != constants.RoleUser {
		t.Errorf("role = %q, want user", result.Role)
	}
	if result.Email != "bob@example.com" {
		t.Errorf("email = %q", result.Email)
	}

	if _, err := Login(db, "bob", "neither-password"); err == nil {
		t.Error("wrong password for both tables accepted")
	}
}

func TestLoginUserByEmail(t *testing.T) {
	db := newAuthTestDB(t)
	db.Create(&userModel.UserModel{Username: "morag", Email: "morag@example.com", Password: mustHash(t, "user-secret-2")})

	result, err := Login(db, "morag@example.com", "user-secret-2")
	if err != nil {
		t.Fatalf("login by email rejected: %v", err)
	}
	if result.Role != constants.RoleUser || result.Username != "morag" {
		t.Errorf("result = %+v", result)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	db := newAuthTestDB(t)
	if _, err := Login(db, "nobody", "whatever-pass"); err == nil {
		t.Error("unknown account accepted")
	}
}
