package authfix_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"supafix/internal/config"
	"supafix/internal/supabase"

	"github.com/gin-gonic/gin"
)

type updateCall struct {
	ID   string
	Body string
}

type stubAuthServer struct {
	listStatus   int
	listBody     string
	updateStatus int
	tokenStatus  int
	tokenBody    string

	updates []updateCall
}

func newStubClient(t *testing.T, stub *stubAuthServer) *supabase.Client {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/auth/v1/admin/users", func(c *gin.Context) {
		status := stub.listStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.Data(status, "application/json", []byte(stub.listBody))
	})

	router.PUT("/auth/v1/admin/users/:id", func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		stub.updates = append(stub.updates, updateCall{ID: c.Param("id"), Body: string(body)})
		status := stub.updateStatus
		if status == 0 {
			status = http.StatusOK
		}
		if status != http.StatusOK {
			c.JSON(status, gin.H{"msg": "update rejected"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	router.POST("/auth/v1/token", func(c *gin.Context) {
		status := stub.tokenStatus
		if status == 0 {
			status = http.StatusOK
		}
		c.Data(status, "application/json", []byte(stub.tokenBody))
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Supabase: config.SupabaseConfig{
			URL:            srv.URL,
			AnonKey:        "anon-key",
			ServiceRoleKey: "service-role-key",
		},
	}
	return supabase.NewClient(cfg)
}
