package handlers

import (
	"context"
	"net/http"
	"time"

	"cucisepatu/internal/domain"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether the data store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Index describes the API and its endpoints.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Selamat datang di API Cuci Sepatu",
		"endpoints": gin.H{
			"GET /items":                "Menampilkan semua data sepatu",
			"GET /items?status=Selesai": "Filter berdasarkan status",
			"GET /items/:id":            "Menampilkan satu data sepatu",
			"GET /items/:id/receipt":    "Nota PDF satu data sepatu",
			"POST /items":               "Menambah data sepatu baru",
			"PUT /items/:id":            "Update status sepatu",
			"DELETE /items/:id":         "Hapus data sepatu",
		},
		"statuses": []string{domain.StatusSedangDicuci, domain.StatusSiapDiambil, domain.StatusSelesai},
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok", "message": "api cuci sepatu berjalan"})
}

// DBCheck pings the store with a short timeout.
func DBCheck(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			RespondError(c, http.StatusInternalServerError, "database unreachable", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "database connection OK"})
	}
}
