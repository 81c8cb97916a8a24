package dashboard

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyops/airboss/internal/conflict"
	"github.com/skyops/airboss/internal/recommend"
	"github.com/skyops/airboss/internal/report"
	"github.com/skyops/airboss/internal/snapshot"
	"github.com/skyops/airboss/internal/store"
	"gorm.io/gorm"
)

// registerRoutes sets up the JSON API routes.
func registerRoutes(router *gin.Engine, db *gorm.DB, st store.Store) {
	router.GET("/api/summary", handleSummary(st))
	router.GET("/api/conflicts", handleConflicts(st))
	router.GET("/api/pilots", handlePilots(st))
	router.GET("/api/drones", handleDrones(st))
	router.GET("/api/missions/:id", handleMission(st))
	router.GET("/api/missions/:id/recommendations", handleRecommendations(st))
	router.GET("/api/scans", handleScans(db))
}

// loadSnapshot builds a fresh snapshot per request; every handler sees
// current store state, mirroring the reload-after-write model.
func loadSnapshot(c *gin.Context, st store.Store) *snapshot.Snapshot {
	snap, err := snapshot.FromStore(st)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return nil
	}
	return snap
}

func handleSummary(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		c.JSON(http.StatusOK, report.Summarize(snap, time.Now()))
	}
}

func handleConflicts(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		conflicts := conflict.Detect(snap, time.Now())
		c.JSON(http.StatusOK, gin.H{
			"count":     len(conflicts),
			"conflicts": conflicts,
		})
	}
}

func handlePilots(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		if c.Query("available") == "true" {
			pilots := report.AvailablePilots(snap,
				c.Query("skill"), c.Query("cert"), c.Query("location"))
			c.JSON(http.StatusOK, pilots)
			return
		}
		c.JSON(http.StatusOK, snap.Pilots)
	}
}

func handleDrones(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		if c.Query("available") == "true" {
			drones := report.AvailableDrones(snap, c.Query("capability"), c.Query("location"))
			c.JSON(http.StatusOK, drones)
			return
		}
		c.JSON(http.StatusOK, snap.Drones)
	}
}

func handleMission(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		detail := report.MissionStatus(snap, c.Param("id"), time.Now())
		if detail == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "mission not found"})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

func handleRecommendations(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := loadSnapshot(c, st)
		if snap == nil {
			return
		}
		topN := 3
		if n, err := strconv.Atoi(c.Query("n")); err == nil && n > 0 {
			topN = n
		}
		candidates := recommend.FindBestPilots(snap, c.Param("id"), topN)
		c.JSON(http.StatusOK, gin.H{
			"mission":    c.Param("id"),
			"candidates": candidates,
		})
	}
}

func handleScans(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		scans, err := RecentScans(db, 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, scans)
	}
}
