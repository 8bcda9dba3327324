package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	pkgErrors "taskflow/pkg/errors"
	"taskflow/pkg/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)
	return w
}

func TestOK(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.OK(c, gin.H{"hello": "world"})
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.ErrorCode != 0 || resp.Message != response.MessageSuccess {
		t.Errorf("resp = %+v", resp)
	}
}

func TestErrorWithHTTPError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, pkgErrors.NewHTTPError(404, "session not found"))
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.ErrorCode != 404 || resp.Message != "session not found" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestErrorWithPlainError(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Error(c, errors.New("boom"))
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if resp.ErrorCode != 1 || resp.Message != "boom" {
		t.Errorf("resp = %+v", resp)
	}
}

func TestInternalErrorHidesCause(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.InternalError(c, errors.New("secret detail"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Errorf("body leaks cause: %s", w.Body.String())
	}
}
