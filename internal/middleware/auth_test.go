package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/alouie1020/sample-traivs/pkg/utils"
)

func newGuardedApp(secret string, reached *bool) *fiber.App {
	app := fiber.New()
	app.Get("/programs", AuthRequired(secret), func(c *fiber.Ctx) error {
		*reached = true
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id")})
	})
	return app
}

func TestAuthRequiredRejectsMissingHeader(t *testing.T) {
	reached := false
	app := newGuardedApp("secret", &reached)

	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if reached {
		t.Errorf("expected handler not to run without a token")
	}
}

func TestAuthRequiredRejectsMalformedHeader(t *testing.T) {
	reached := false
	app := newGuardedApp("secret", &reached)

	for _, header := range []string{"Bearer", "Basic abc", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/programs", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("header %q: expected 401, got %d", header, resp.StatusCode)
		}
	}
	if reached {
		t.Errorf("expected handler not to run with malformed headers")
	}
}

func TestAuthRequiredRejectsBadSignature(t *testing.T) {
	reached := false
	app := newGuardedApp("secret", &reached)

	token, err := utils.GenerateToken("7", "othersecret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if reached {
		t.Errorf("expected handler not to run with a bad signature")
	}
}

func TestAuthRequiredPassesValidToken(t *testing.T) {
	reached := false
	app := newGuardedApp("secret", &reached)

	token, err := utils.GenerateToken("7", "secret")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/programs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if !reached {
		t.Errorf("expected handler to run with a valid token")
	}
}
