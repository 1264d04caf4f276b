package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"cafewifi/database"
	"cafewifi/form"
	"cafewifi/model"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet = "Cafes"
	xlsxMIME    = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var sheetHeader = []interface{}{
	"Name", "Map URL", "Image URL", "Location", "Seats",
	"Toilet", "Wifi", "Sockets", "Calls", "Coffee Price",
}

type RowError struct {
	Row    int               `json:"row"`
	Errors map[string]string `json:"errors"`
}

// ExportCafes downloads every cafe as an xlsx workbook.
func (ctl *CafeController) ExportCafes(c *gin.Context) {
	cafes, err := ctl.Cafes.List(c.Request.Context())
	if err != nil {
		log.Printf("Export cafes: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to fetch cafes")
		return
	}

	xl := excelize.NewFile()
	defer xl.Close()

	if err := writeCafeSheet(xl, cafes); err != nil {
		log.Printf("Export cafes: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to build spreadsheet")
		return
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		log.Printf("Export cafes: %v", err)
		renderError(c, http.StatusInternalServerError, "Failed to build spreadsheet")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cafes.xlsx"`)
	c.Data(http.StatusOK, xlsxMIME, buf.Bytes())
}

func writeCafeSheet(xl *excelize.File, cafes []model.Cafe) error {
	if err := xl.SetSheetName(xl.GetSheetName(0), exportSheet); err != nil {
		return err
	}
	if err := xl.SetSheetRow(exportSheet, "A1", &sheetHeader); err != nil {
		return err
	}
	for i, cafe := range cafes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location, cafe.Seats,
			cafe.HasToilet.Token(), cafe.HasWifi.Token(), cafe.HasSockets.Token(), cafe.CanTakeCalls.Token(),
			cafe.Price(),
		}
		if err := xl.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

// ImportCafes bulk-adds cafes from an uploaded xlsx using the export layout.
// Invalid rows and names that already exist are skipped and reported.
func (ctl *CafeController) ImportCafes(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondImport(c, http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondImport(c, http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		respondImport(c, http.StatusBadRequest, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}
	defer xl.Close()

	rows, err := xl.GetRows(xl.GetSheetName(0))
	if err != nil || len(rows) < 2 {
		respondImport(c, http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	existing, err := ctl.Cafes.List(c.Request.Context())
	if err != nil {
		log.Printf("Import cafes: %v", err)
		respondImport(c, http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch cafes"})
		return
	}
	seen := make(map[string]bool, len(existing))
	for _, cafe := range existing {
		seen[cafe.Name] = true
	}

	var cafes []model.Cafe
	var skipped []RowError
	for i, row := range rows[1:] {
		rowNum := i + 2
		if isBlankRow(row) {
			continue
		}

		cafe, errs := parseCafeRow(row)
		if len(errs) == 0 && seen[cafe.Name] {
			errs = map[string]string{"name": "A cafe with this name already exists."}
		}
		if len(errs) > 0 {
			skipped = append(skipped, RowError{Row: rowNum, Errors: errs})
			continue
		}

		seen[cafe.Name] = true
		cafes = append(cafes, cafe)
	}

	if len(cafes) == 0 {
		respondImport(c, http.StatusBadRequest, gin.H{"success": false, "error": "No valid rows found", "skipped": skipped})
		return
	}

	if err := ctl.Cafes.CreateMany(c.Request.Context(), cafes); err != nil {
		if errors.Is(err, database.ErrDuplicateName) {
			respondImport(c, http.StatusConflict, gin.H{"success": false, "error": "A cafe in the file already exists"})
			return
		}
		log.Printf("Import cafes: %v", err)
		respondImport(c, http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to insert cafes"})
		return
	}

	log.Printf("Imported %d cafes, skipped %d rows", len(cafes), len(skipped))
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Bulk cafe upload successful",
			"count":   len(cafes),
			"skipped": skipped,
		})
		return
	}

	notice := fmt.Sprintf("Imported %d cafes.", len(cafes))
	if len(skipped) > 0 {
		notice += fmt.Sprintf(" Skipped %d invalid rows.", len(skipped))
	}
	c.Redirect(http.StatusSeeOther, "/?notice="+url.QueryEscape(notice))
}

func parseCafeRow(row []string) (model.Cafe, map[string]string) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	errs := map[string]string{}
	answers := make([]model.Answer, 4)
	for i, name := range []string{"has_toilet", "has_wifi", "has_sockets", "can_take_calls"} {
		a, err := model.ParseAnswer(cell(5 + i))
		if err != nil {
			errs[name] = "Not a valid choice."
			continue
		}
		answers[i] = a
	}

	cafe := model.Cafe{
		Name:         cell(0),
		MapURL:       cell(1),
		ImgURL:       cell(2),
		Location:     cell(3),
		Seats:        cell(4),
		HasToilet:    answers[0],
		HasWifi:      answers[1],
		HasSockets:   answers[2],
		CanTakeCalls: answers[3],
	}
	if price := cell(9); price != "" {
		cafe.CoffeePrice = &price
	}

	for field, msg := range form.ValidateCafe(&cafe) {
		errs[field] = msg
	}
	return cafe, errs
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func respondImport(c *gin.Context, status int, body gin.H) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(status, body)
		return
	}
	msg, _ := body["error"].(string)
	renderError(c, status, msg)
}
