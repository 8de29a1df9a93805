package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nyumbani-farms/herdbook/config"
	"github.com/nyumbani-farms/herdbook/models"
)

// GetCowInventory returns the running herd totals. The row is created by the
// first cow mutation; before that an empty inventory is reported.
func GetCowInventory(w http.ResponseWriter, r *http.Request) {
	var inv models.CowInventory
	if err := config.DB.First(&inv, "id = ?", 1).Error; err != nil {
		writeJSON(w, http.StatusOK, models.CowInventory{ID: 1})
		return
	}
	writeJSON(w, http.StatusOK, inv)
}

// GetCowInventoryHistory lists the audit trail, newest first.
func GetCowInventoryHistory(w http.ResponseWriter, r *http.Request) {
	var history []models.CowInventoryUpdateHistory
	q := config.DB.Order("id DESC")
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			q = q.Limit(n)
		}
	}
	if err := q.Find(&history).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// ExportInventoryHistoryToExcel downloads the audit trail as a spreadsheet.
func ExportInventoryHistoryToExcel(w http.ResponseWriter, r *http.Request) {
	var history []models.CowInventoryUpdateHistory
	if err := config.DB.Order("id").Find(&history).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f := excelize.NewFile()
	sheet := "Inventory History"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	f.SetCellValue(sheet, "A1", "Date Updated")
	f.SetCellValue(sheet, "B1", "Number Of Cows")
	f.SetCellStyle(sheet, "A1", "B1", headerStyle)
	f.SetColWidth(sheet, "A", "B", 22)

	for i, row := range history {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), row.DateUpdated.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), row.NumberOfCows)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		http.Error(w, "failed to write Excel file", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("cow_inventory_history_%s.xlsx", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buffer.Bytes())
}

// ExportInventoryHistoryToCSV downloads the audit trail as CSV.
func ExportInventoryHistoryToCSV(w http.ResponseWriter, r *http.Request) {
	var history []models.CowInventoryUpdateHistory
	if err := config.DB.Order("id").Find(&history).Error; err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("cow_inventory_history_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	cw := csv.NewWriter(w)
	defer cw.Flush()
	cw.Write([]string{"date_updated", "number_of_cows"})
	for _, row := range history {
		cw.Write([]string{
			row.DateUpdated.Format(time.RFC3339),
			strconv.FormatInt(row.NumberOfCows, 10),
		})
	}
}
