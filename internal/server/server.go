package server

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/LumpsRGood/cateringcalulator/internal/catalog"
	"github.com/LumpsRGood/cateringcalulator/internal/model"
	"github.com/LumpsRGood/cateringcalulator/internal/service"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the JSON surface a front-of-house UI talks to. Every
// handler is a thin shell over the same services the CLI uses; no order
// math lives here.
func NewRouter(db *sql.DB) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/menu", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"items": catalog.Items()})
	})

	api.GET("/lines", func(c *gin.Context) {
		lines, err := service.ListLines(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"lines": linesJSON(lines)})
	})

	api.POST("/lines", func(c *gin.Context) {
		var req struct {
			Kind         string `json:"kind"`
			ItemID       string `json:"item_id"`
			Protein      string `json:"protein"`
			Griddle      string `json:"griddle"`
			BeverageType string `json:"beverage_type"`
			Qty          int    `json:"qty"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		line, merged, err := service.AddOrMergeLine(db, service.AddLineInput{
			Key: model.SelectionKey{
				Kind:         model.LineKind(req.Kind),
				ItemID:       req.ItemID,
				Protein:      req.Protein,
				Griddle:      req.Griddle,
				BeverageType: req.BeverageType,
			},
			Qty: req.Qty,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		status := http.StatusCreated
		if merged {
			status = http.StatusOK
		}
		c.JSON(status, gin.H{"line": lineJSON(line), "merged": merged})
	})

	api.PATCH("/lines/:id", func(c *gin.Context) {
		id, ok := lineID(c)
		if !ok {
			return
		}
		var req struct {
			Qty int `json:"qty"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if err := service.SetLineQty(db, id, req.Qty); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		line, err := service.LineByID(db, id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"line": lineJSON(line)})
	})

	api.DELETE("/lines/:id", func(c *gin.Context) {
		id, ok := lineID(c)
		if !ok {
			return
		}
		if err := service.RemoveLine(db, id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"removed": id})
	})

	api.DELETE("/order", func(c *gin.Context) {
		if err := service.ClearOrder(db); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"cleared": true})
	})

	api.GET("/meta", func(c *gin.Context) {
		meta, err := service.GetMeta(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, metaJSON(meta))
	})

	api.PUT("/meta", func(c *gin.Context) {
		var req struct {
			Headcount          *int  `json:"headcount"`
			UtensilSetsOrdered *int  `json:"utensil_sets_ordered"`
			WantPlates         *bool `json:"want_plates"`
			WantNapkins        *bool `json:"want_napkins"`
			WantUtensils       *bool `json:"want_utensils"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}
		if req.Headcount != nil {
			if err := service.SetHeadcount(db, *req.Headcount); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.UtensilSetsOrdered != nil {
			if err := service.SetUtensilSetsOrdered(db, *req.UtensilSetsOrdered); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
		}
		if req.WantPlates != nil || req.WantNapkins != nil || req.WantUtensils != nil {
			meta, err := service.GetMeta(db)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			reqs := meta.Requests
			if req.WantPlates != nil {
				reqs.Plates = *req.WantPlates
			}
			if req.WantNapkins != nil {
				reqs.Napkins = *req.WantNapkins
			}
			if req.WantUtensils != nil {
				reqs.Utensils = *req.WantUtensils
			}
			if err := service.SetGuestRequests(db, reqs); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
		}
		meta, err := service.GetMeta(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, metaJSON(meta))
	})

	api.GET("/report", func(c *gin.Context) {
		report, err := service.BuildReport(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"total_servings": report.TotalServings,
			"advice":         report.Advice,
			"prep_lines":     report.PrepLines,
			"packaging":      report.Packaging,
			"condiments":     report.Condiments,
			"serveware":      report.Serveware,
			"plating":        report.Plating,
			"inventory":      report.Inventory,
			"totals": gin.H{
				"food":       report.Totals.Food,
				"packaging":  report.Totals.Packaging,
				"condiments": report.Totals.Condiments,
				"guestware":  report.Totals.Guestware,
				"utensils":   report.Totals.Utensils,
			},
		})
	})

	api.GET("/inventory", func(c *gin.Context) {
		report, err := service.BuildReport(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"inventory": report.Inventory})
	})

	return r
}

func lineID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid line id"})
		return 0, false
	}
	return id, true
}

func lineJSON(line model.OrderLine) gin.H {
	return gin.H{
		"id":            line.ID,
		"kind":          line.Key.Kind,
		"item_id":       line.Key.ItemID,
		"protein":       line.Key.Protein,
		"griddle":       line.Key.Griddle,
		"beverage_type": line.Key.BeverageType,
		"label":         line.Label,
		"qty":           line.Qty,
	}
}

func linesJSON(lines []model.OrderLine) []gin.H {
	out := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		out = append(out, lineJSON(line))
	}
	return out
}

func metaJSON(meta model.OrderMeta) gin.H {
	return gin.H{
		"headcount":            meta.Headcount,
		"utensil_sets_ordered": meta.UtensilSetsOrdered,
		"want_plates":          meta.Requests.Plates,
		"want_napkins":         meta.Requests.Napkins,
		"want_utensils":        meta.Requests.Utensils,
	}
}
