package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/Gokul0616/JOSHI-BROTHERS/internal/service"
)

// UploadProducts bulk-imports products from an uploaded Excel sheet.
// Expected columns on Sheet1 (header row skipped):
// name, description, price, category, brand, image_url, stock, unit.
func (h *CatalogHandler) UploadProducts(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open file"})
		return
	}
	defer f.Close()

	xlsx, err := excelize.OpenReader(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid Excel file"})
		return
	}

	rows, err := xlsx.GetRows("Sheet1")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read sheet"})
		return
	}

	imported := 0
	skipped := 0
	for i, row := range rows {
		if i == 0 {
			continue // skip header
		}
		if len(row) < 5 {
			skipped++
			continue
		}

		price, err := strconv.ParseFloat(row[2], 64)
		if err != nil || price <= 0 {
			skipped++
			continue
		}

		params := service.ProductParams{
			Name:        row[0],
			Description: row[1],
			Price:       price,
			Category:    row[3],
			Brand:       row[4],
		}
		if len(row) > 5 {
			params.ImageURL = row[5]
		}
		if len(row) > 6 {
			if stock, err := strconv.Atoi(row[6]); err == nil {
				params.Stock = stock
			}
		}
		if len(row) > 7 {
			params.Unit = row[7]
		}

		if _, err := h.catalog.CreateProduct(c.Request.Context(), params); err != nil {
			skipped++
			continue
		}
		imported++
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Upload processed",
		"imported": imported,
		"skipped":  skipped,
	})
}
