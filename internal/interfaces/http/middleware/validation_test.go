package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestSetupValidator(t *testing.T) {
	// Should not panic
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestSlugValidation(t *testing.T) {
	SetupValidator()

	type createRequest struct {
		Slug string `json:"slug" binding:"required,slug"`
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/test", func(c *gin.Context) {
		var req createRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"slug": req.Slug})
	})

	tests := []struct {
		name     string
		slug     string
		wantCode int
	}{
		{"simple slug", "tees", http.StatusOK},
		{"hyphenated slug", "graphic-tees-2024", http.StatusOK},
		{"uppercase rejected", "Tees", http.StatusBadRequest},
		{"spaces rejected", "graphic tees", http.StatusBadRequest},
		{"leading hyphen rejected", "-tees", http.StatusBadRequest},
		{"double hyphen rejected", "graphic--tees", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := strings.NewReader(`{"slug": "` + tt.slug + `"}`)
			req := httptest.NewRequest("POST", "/test", body)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
